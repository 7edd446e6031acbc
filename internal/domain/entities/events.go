package entities

// EventType enumerates the workflow events handed to the notification
// collaborator. Delivery is fire-and-forget; a failed notification never
// rolls back the transition that produced it.

type EventType string

const (
	EventBidPlaced            EventType = "bid_placed"
	EventBidAccepted          EventType = "bid_accepted"
	EventScheduleProposed     EventType = "schedule_proposed"
	EventScheduleConfirmed    EventType = "schedule_confirmed"
	EventScheduleRejected     EventType = "schedule_rejected"
	EventJobStarted           EventType = "job_started"
	EventJobCompleted         EventType = "job_completed"
	EventJobCancelled         EventType = "job_cancelled"
	EventChangeOrderRequested EventType = "change_order_requested"
	EventChangeOrderResolved  EventType = "change_order_resolved"
)

// Event is the payload emitted to the notification collaborator.
type Event struct {
	Type        EventType      `json:"event_type"`
	JobID       string         `json:"job_id"`
	RecipientID string         `json:"recipient_id"`
	Context     map[string]any `json:"context,omitempty"`
}
