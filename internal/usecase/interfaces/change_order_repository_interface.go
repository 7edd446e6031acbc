package interfaces

import (
	"context"
	"wrenchworks/internal/domain/entities"
)

// IChangeOrderRepository abstracts DynamoDB persistence for ChangeOrder.

type IChangeOrderRepository interface {
	Create(ctx context.Context, c entities.ChangeOrder) (entities.ChangeOrder, error)
	GetByID(ctx context.Context, id string) (entities.ChangeOrder, error)
	Update(ctx context.Context, c entities.ChangeOrder) (entities.ChangeOrder, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error)
}
