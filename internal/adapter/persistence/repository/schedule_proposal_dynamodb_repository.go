package repository

import (
	"context"
	"time"

	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultScheduleProposalsTableName = "schedule_proposals"

type scheduleProposalItem struct {
	JobID      string `dynamodbav:"job_id"`
	ProposedBy string `dynamodbav:"proposed_by"`
	Date       string `dynamodbav:"date"`
	Time       string `dynamodbav:"time"`
	Notes      string `dynamodbav:"notes,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ScheduleProposalDynamoRepository persists the pending schedule proposal of
// a job in DynamoDB.
//
// Table requirements:
//   - PK: job_id (string)
//
// Using the job id as PK guarantees at most one pending proposal per job: a
// new proposal overwrites the previous one, matching the supersede semantics
// of the negotiation.

type ScheduleProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IScheduleProposalRepository = (*ScheduleProposalDynamoRepository)(nil)

func NewScheduleProposalDynamoRepository(ddb *dynamodb.Client) *ScheduleProposalDynamoRepository {
	return &ScheduleProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SCHEDULE_PROPOSALS_TABLE", defaultScheduleProposalsTableName),
	}
}

func (r *ScheduleProposalDynamoRepository) Put(ctx context.Context, p entities.ScheduleProposal) (entities.ScheduleProposal, error) {
	it := toScheduleProposalItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ScheduleProposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ScheduleProposal{}, err
	}
	return p, nil
}

func (r *ScheduleProposalDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.ScheduleProposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"job_id": &types.AttributeValueMemberS{Value: jobID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ScheduleProposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.ScheduleProposal{}, nil
	}

	var it scheduleProposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ScheduleProposal{}, err
	}
	return fromScheduleProposalItem(it), nil
}

func (r *ScheduleProposalDynamoRepository) DeleteByJobID(ctx context.Context, jobID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"job_id": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	return err
}

func toScheduleProposalItem(p entities.ScheduleProposal) scheduleProposalItem {
	return scheduleProposalItem{
		JobID:      p.JobID,
		ProposedBy: string(p.ProposedBy),
		Date:       p.Date,
		Time:       p.Time,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromScheduleProposalItem(it scheduleProposalItem) entities.ScheduleProposal {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ScheduleProposal{
		JobID:      it.JobID,
		ProposedBy: entities.Actor(it.ProposedBy),
		Date:       it.Date,
		Time:       it.Time,
		Notes:      it.Notes,
		CreatedAt:  createdAt,
	}
}
