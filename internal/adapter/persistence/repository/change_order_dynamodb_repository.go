package repository

import (
	"context"
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
	defaultChangeOrdersTableName = "change_orders"
	changeOrdersJobIDIndex       = "job_id-index"
)

type changeOrderItem struct {
	ID          string `dynamodbav:"id"`
	JobID       string `dynamodbav:"job_id"`
	MechanicID  string `dynamodbav:"mechanic_id"`
	CustomerID  string `dynamodbav:"customer_id"`
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	ResolvedAt  string `dynamodbav:"resolved_at,omitempty"`
}

// ChangeOrderDynamoRepository persists ChangeOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)

type ChangeOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChangeOrderRepository = (*ChangeOrderDynamoRepository)(nil)

func NewChangeOrderDynamoRepository(ddb *dynamodb.Client) *ChangeOrderDynamoRepository {
	return &ChangeOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHANGE_ORDERS_TABLE", defaultChangeOrdersTableName),
	}
}

func (r *ChangeOrderDynamoRepository) Create(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error) {
	it := toChangeOrderItem(co)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ChangeOrder{}, err
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
		return entities.ChangeOrder{}, err
	}
	return co, nil
}

func (r *ChangeOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChangeOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChangeOrder{}, nil
	}

	var it changeOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChangeOrder{}, err
	}
	return fromChangeOrderItem(it), nil
}

func (r *ChangeOrderDynamoRepository) Update(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error) {
	it := toChangeOrderItem(co)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ChangeOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	return co, nil
}

func (r *ChangeOrderDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(changeOrdersJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ChangeOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it changeOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromChangeOrderItem(it))
	}
	return items, nil
}

func toChangeOrderItem(co entities.ChangeOrder) changeOrderItem {
	it := changeOrderItem{
		ID:          co.ID,
		JobID:       co.JobID,
		MechanicID:  co.MechanicID,
		CustomerID:  co.CustomerID,
		Description: co.Description,
		Amount:      floatToString(co.Amount),
		Status:      string(co.Status),
		CreatedAt:   co.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if co.ResolvedAt != nil {
		it.ResolvedAt = co.ResolvedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromChangeOrderItem(it changeOrderItem) entities.ChangeOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	co := entities.ChangeOrder{
		ID:          it.ID,
		JobID:       it.JobID,
		MechanicID:  it.MechanicID,
		CustomerID:  it.CustomerID,
		Description: it.Description,
		Amount:      amount,
		Status:      entities.ChangeOrderStatus(it.Status),
		CreatedAt:   createdAt,
	}
	if it.ResolvedAt != "" {
		resolvedAt, _ := time.Parse(time.RFC3339Nano, it.ResolvedAt)
		co.ResolvedAt = &resolvedAt
	}
	return co
}
