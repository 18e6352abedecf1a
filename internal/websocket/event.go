// internal/websocket/event.go
package websocket

import (
	"encoding/json"
	"time"
)

// Event types pushed to the admin activity feed.
const (
	EventConnected            = "connected"
	EventLeadCreated          = "lead.created"
	EventLeadStatusChanged    = "lead.status_changed"
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

// Event is a single feed message.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
	At   time.Time   `json:"at"`
}

func NewEvent(eventType string, data interface{}) *Event {
	return &Event{
		Type: eventType,
		Data: data,
		At:   time.Now().UTC(),
	}
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
