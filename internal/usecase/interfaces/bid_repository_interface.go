package interfaces

import (
	"context"
	"wrenchworks/internal/domain/entities"
)

// IBidRepository abstracts DynamoDB persistence for Bid.

type IBidRepository interface {
	Create(ctx context.Context, b entities.Bid) (entities.Bid, error)
	GetByID(ctx context.Context, id string) (entities.Bid, error)
	Update(ctx context.Context, b entities.Bid) (entities.Bid, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Bid, error)
}
