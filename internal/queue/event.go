// Package queue defines message payloads exchanged over the message broker.
package queue

// BillSettledEvent is published when a front-desk check-out settles a
// bill.  It carries enough for downstream consumers to log, notify, or
// feed revenue reporting without calling back into the service.
type BillSettledEvent struct {
	BillID        string `json:"bill_id"`
	ReservationID string `json:"reservation_id"`
	UserID        string `json:"user_id"`
	RoomID        string `json:"room_id"`
	ItemCount     int    `json:"item_count"`
	TotalAmount   int64  `json:"total_amount"`
	PaymentMethod string `json:"payment_method"`
	SettledAt     string `json:"settled_at"`
}
