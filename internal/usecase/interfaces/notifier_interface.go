package interfaces

import (
	"context"
	"wrenchworks/internal/domain/entities"
)

// INotifier delivers workflow events to the notification collaborator.
//
// Delivery is fire-and-forget: use cases log a returned error and continue.
// A failed notification must never roll back the transition that caused it.
type INotifier interface {
	Notify(ctx context.Context, event entities.Event) error
}
