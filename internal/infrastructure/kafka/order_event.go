package publisher

import "time"

// OrderEvent is the message published for order lifecycle changes.
type OrderEvent struct {
	EventType  string    `json:"event_type"`
	OrderNo    string    `json:"order_no"`
	UserID     string    `json:"user_id,omitempty"`
	Amount     int64     `json:"amount,omitempty"`
	PaidAt     time.Time `json:"paid_at,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventOrderFinalized     = "order.finalized"
	EventReservationExpired = "reservation.expired"
)
