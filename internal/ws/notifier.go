package ws

import (
	"encoding/json"
	"log"
	"time"
)

// Event is the envelope pushed to subscribers for every domain event.
type Event struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the usecase EventEmitter interface. Emission is
// fire-and-forget: marshal failures and full buffers are logged and dropped.
type Notifier struct {
	hub    *Hub
	logger *log.Logger
}

func NewNotifier(hub *Hub, logger *log.Logger) *Notifier {
	return &Notifier{hub: hub, logger: logger}
}

func (n *Notifier) Emit(event string, payload any) {
	if n == nil || n.hub == nil || event == "" {
		return
	}

	b, err := json.Marshal(Event{
		Type:      event,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		if n.logger != nil {
			n.logger.Printf("WS event marshal failed | event=%s err=%v", event, err)
		}
		return
	}

	n.hub.Broadcast(b)
}
