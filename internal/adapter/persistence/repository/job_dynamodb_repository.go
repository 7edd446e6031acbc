package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobsTableName = "jobs"
	jobsCustomerIDIndex  = "customer_id-index"
	jobsMechanicIDIndex  = "mechanic_id-index"
	jobsStatusIndex      = "status-index"
)

type jobItem struct {
	ID            string `dynamodbav:"id"`
	CustomerID    string `dynamodbav:"customer_id"`
	MechanicID    string `dynamodbav:"mechanic_id,omitempty"`
	Category      string `dynamodbav:"category"`
	Subcategory   string `dynamodbav:"subcategory,omitempty"`
	Description   string `dynamodbav:"description,omitempty"`
	Urgency       string `dynamodbav:"urgency"`
	ServiceType   string `dynamodbav:"service_type"`
	Location      string `dynamodbav:"location,omitempty"`
	EstimatedCost string `dynamodbav:"estimated_cost"`
	Status        string `dynamodbav:"status"`
	ScheduleDate  string `dynamodbav:"schedule_date,omitempty"`
	ScheduleTime  string `dynamodbav:"schedule_time,omitempty"`
	PaymentStatus string `dynamodbav:"payment_status"`
	Version       int64  `dynamodbav:"version"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: mechanic_id-index (PK: mechanic_id)
//   - GSI: status-index (PK: status)
//
// Every write bumps the version attribute under a conditional expression, so
// a stale writer loses cleanly instead of clobbering a concurrent transition.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	j.Version = 1
	it := toJobItem(j)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

// Update replaces the whole item with a compare-and-swap on version. The
// caller's copy must carry the version it read; the stored item gets
// version+1.
func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	expected := j.Version
	j.Version = expected + 1
	it := toJobItem(j)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, interfaces.ErrVersionConflict
		}
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error) {
	return r.queryIndex(ctx, jobsCustomerIDIndex, "customer_id = :v", customerID)
}

func (r *JobDynamoRepository) ListByMechanicID(ctx context.Context, mechanicID string) ([]entities.Job, error) {
	return r.queryIndex(ctx, jobsMechanicIDIndex, "mechanic_id = :v", mechanicID)
}

func (r *JobDynamoRepository) ListByStatus(ctx context.Context, status entities.JobStatus) ([]entities.Job, error) {
	return r.queryIndex(ctx, jobsStatusIndex, "#status = :v", string(status),
		withNames(map[string]string{"#status": "status"}))
}

type queryOpt func(*dynamodb.QueryInput)

func withNames(names map[string]string) queryOpt {
	return func(in *dynamodb.QueryInput) {
		in.ExpressionAttributeNames = names
	}
}

func (r *JobDynamoRepository) queryIndex(ctx context.Context, index, keyCond, value string, opts ...queryOpt) ([]entities.Job, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
	for _, opt := range opts {
		opt(in)
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Job, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromJobItem(it))
	}
	return items, nil
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		ID:            j.ID,
		CustomerID:    j.CustomerID,
		MechanicID:    j.MechanicID,
		Category:      j.Category,
		Subcategory:   j.Subcategory,
		Description:   j.Description,
		Urgency:       string(j.Urgency),
		ServiceType:   string(j.ServiceType),
		Location:      j.Location,
		EstimatedCost: floatToString(j.EstimatedCost),
		Status:        string(j.Status),
		PaymentStatus: string(j.PaymentStatus),
		Version:       j.Version,
		CreatedAt:     j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if j.Schedule != nil {
		it.ScheduleDate = j.Schedule.Date
		it.ScheduleTime = j.Schedule.Time
	}
	return it
}

func fromJobItem(it jobItem) entities.Job {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	cost, _ := strconv.ParseFloat(it.EstimatedCost, 64)
	j := entities.Job{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		MechanicID:    it.MechanicID,
		Category:      it.Category,
		Subcategory:   it.Subcategory,
		Description:   it.Description,
		Urgency:       entities.Urgency(it.Urgency),
		ServiceType:   entities.ServiceType(it.ServiceType),
		Location:      it.Location,
		EstimatedCost: cost,
		Status:        entities.JobStatus(it.Status),
		PaymentStatus: entities.JobPaymentStatus(it.PaymentStatus),
		Version:       it.Version,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if it.ScheduleDate != "" || it.ScheduleTime != "" {
		j.Schedule = &entities.JobSchedule{Date: it.ScheduleDate, Time: it.ScheduleTime}
	}
	return j
}
