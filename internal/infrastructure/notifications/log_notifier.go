package notifications

import (
	"context"
	"encoding/json"
	"log"

	"wrenchworks/internal/domain/entities"
	"wrenchworks/internal/usecase/interfaces"
)

// LogNotifier writes workflow events to the application log. It stands in
// for a real push/email collaborator; swapping it out only requires another
// INotifier implementation wired in routes.
type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(_ context.Context, event entities.Event) error {
	payload, err := json.Marshal(event.Context)
	if err != nil {
		payload = []byte("{}")
	}
	log.Printf("[notification][infra] event=%s job_id=%s recipient_id=%s context=%s",
		event.Type, event.JobID, event.RecipientID, payload)
	return nil
}
