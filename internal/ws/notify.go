package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type event struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

// EventNotifier wraps the hub behind the small interface the usecases call.
type EventNotifier struct {
	hub *Hub
}

func NewEventNotifier(hub *Hub) *EventNotifier {
	return &EventNotifier{hub: hub}
}

func (n *EventNotifier) NotifyUser(userID uuid.UUID, eventType string, payload any) {
	if n == nil || n.hub == nil || userID == uuid.Nil {
		return
	}

	b, err := json.Marshal(event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	n.hub.Send(userID, b)
}
