package model

import "time"

// Payment is an append-only audit record written when a booking is
// confirmed.  Payments are never mutated after creation and the core
// logic never reads them back; they exist for reconciliation.  No
// partial or failed payment states are modeled.
//
// Fields:
//  ID            – primary key identifier.
//  Reference     – opaque payment reference handed back to the client.
//  BookingID     – booking the payment belongs to.
//  UserID        – paying user.
//  Amount        – amount charged.
//  PaymentMethod – free-form method label (card, upi, ...).
//  Status        – always "completed".
//  CreatedAt     – creation timestamp.
type Payment struct {
    ID            uint64    `json:"id"`             // payments.id
    Reference     string    `json:"reference"`      // payments.reference
    BookingID     uint64    `json:"booking_id"`     // payments.booking_id
    UserID        uint64    `json:"user_id"`        // payments.user_id
    Amount        float64   `json:"amount"`         // payments.amount
    PaymentMethod string    `json:"payment_method"` // payments.payment_method
    Status        string    `json:"status"`         // payments.status
    CreatedAt     time.Time `json:"created_at"`     // payments.created_at
}
