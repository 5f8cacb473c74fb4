package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMenuChanged  EventType = "menu_changed"
	EventOfferChanged EventType = "offer_changed"
	EventStaffChanged EventType = "staff_changed"
	EventUserChanged  EventType = "user_changed"
)

// ChangeKind describes the mutation that produced an event.
type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

// Event represents a content mutation emitted by services. Subscribers
// drive side effects such as public-cache invalidation.
type Event struct {
	Type      EventType  `json:"type"`
	Change    ChangeKind `json:"change"`
	RecordID  string     `json:"record_id"`
	ActorID   string     `json:"actor_id,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}
