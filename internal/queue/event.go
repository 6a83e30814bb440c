// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking is paid and confirmed.
// It carries enough information for downstream consumers to log, notify,
// or feed analytics without querying the primary database.
type BookingConfirmedEvent struct {
    BookingID    uint64  `json:"booking_id"`
    UserID       uint64  `json:"user_id"`
    RoomID       uint64  `json:"room_id"`
    RoomNumber   string  `json:"room_number"`
    RoomName     string  `json:"room_name"`
    CheckinDate  string  `json:"checkin_date"`
    CheckoutDate string  `json:"checkout_date"`
    TotalPrice   uint32  `json:"total_price"`
    AmountPaid   float64 `json:"amount_paid"`
    Reference    string  `json:"payment_reference"`
    ConfirmedAt  string  `json:"confirmed_at"`
}
