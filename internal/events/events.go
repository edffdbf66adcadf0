package events

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TicketReserved      Type = "ticket_reserved"
	TicketReleased      Type = "ticket_released"
	TicketPurchased     Type = "ticket_purchased"
	RaffleStatusChanged Type = "raffle_status_changed"
	WinnerDrawn         Type = "winner_drawn"
	DrawCancelled       Type = "draw_cancelled"
)

// Event is an outbound notification for UI/notification layers. Delivery is
// fire-and-forget: the core never blocks on, or fails because of, a sink.
type Event struct {
	ID         string         `json:"id"`
	Type       Type           `json:"type"`
	RaffleCode string         `json:"raffle_code"`
	Payload    map[string]any `json:"payload,omitempty"`
	At         time.Time      `json:"at"`
}

func New(eventType Type, raffleCode string, payload map[string]any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		RaffleCode: raffleCode,
		Payload:    payload,
		At:         time.Now(),
	}
}

// Sink receives events after the business transaction has committed.
type Sink interface {
	Publish(event Event)
}

// NopSink discards every event. Used in tests.
type NopSink struct{}

func (NopSink) Publish(Event) {}
