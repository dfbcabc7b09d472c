package model

import "time"

// PaymentMethod is how a bill was settled at checkout.  It stays
// empty until checkout assigns it.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit_card"
)

// Valid reports whether m names a supported payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCreditCard
}

// PaymentStatus tracks whether a bill has been settled.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// BillCategory is the closed set of charge categories a line item can
// carry.
type BillCategory string

const (
	CategoryRoom        BillCategory = "room"
	CategoryRestaurant  BillCategory = "restaurant"
	CategoryRoomService BillCategory = "room_service"
	CategoryLaundry     BillCategory = "laundry"
	CategoryTelephone   BillCategory = "telephone"
	CategoryOther       BillCategory = "other"
)

// Valid reports whether c is a member of the category enum.
func (c BillCategory) Valid() bool {
	switch c {
	case CategoryRoom, CategoryRestaurant, CategoryRoomService, CategoryLaundry, CategoryTelephone, CategoryOther:
		return true
	}
	return false
}

// BillItem is a single charge on a bill.  Items are immutable once
// added; corrections are modelled as additional items.
type BillItem struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	Amount      int64        `json:"amount"`
	Category    BillCategory `json:"category"`
}

// Bill aggregates the charges of one reservation.  TotalAmount always
// equals the sum of the item amounts; the ledger maintains that
// invariant on every mutation rather than recomputing lazily.  At
// most one bill exists per reservation.
//
// Fields:
//  ID            – ledger identifier.
//  ReservationID – owning reservation.
//  UserID        – guest the bill is addressed to.
//  Items         – ordered line items, append-only.
//  TotalAmount   – sum of item amounts in whole LKR.
//  PaymentMethod – empty until checkout settles the bill.
//  PaymentStatus – pending until checkout marks it paid.
//  CreatedAt     – creation timestamp (UTC).
//  UpdatedAt     – last mutation timestamp (UTC).
type Bill struct {
	ID            string        `json:"id"`
	ReservationID string        `json:"reservation_id"`
	UserID        string        `json:"user_id"`
	Items         []BillItem    `json:"items"`
	TotalAmount   int64         `json:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
