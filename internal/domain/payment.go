package domain

import "time"

type PaymentKind string

const (
	PaymentKindCharge PaymentKind = "charge"
	PaymentKindRefund PaymentKind = "refund"
)

type Payment struct {
	ID        string      `json:"id"`
	BookingID string      `json:"booking_id"`
	PayerID   string      `json:"payer_id"`
	Amount    float64     `json:"amount"`
	Kind      PaymentKind `json:"kind"`
	CreatedAt time.Time   `json:"created_at"`
}
