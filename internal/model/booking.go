package model

import "time"

// Booking statuses.
const (
    BookingStatusPending   = "pending"
    BookingStatusConfirmed = "confirmed"
    BookingStatusCancelled = "cancelled"
)

// Payment statuses carried on a booking.
const (
    PaymentStatusPending   = "pending"
    PaymentStatusCompleted = "completed"
)

// DateLayout is the calendar-date format used for check-in and check-out.
// Dates are stored as plain YYYY-MM-DD strings rather than timestamps so
// that range comparisons reduce to lexical comparisons in SQL.
const DateLayout = "2006-01-02"

// Booking records a guest's stay in a room over a date range.  The room
// number and name are denormalized onto the booking at creation time so
// booking listings do not need a join for display.
//
// Fields:
//  ID            – primary key identifier.
//  UserID        – user who made the booking.
//  RoomID        – room being booked.
//  RoomNumber    – room number copied from the room at creation.
//  RoomName      – room name copied from the room at creation.
//  CheckinDate   – first night, YYYY-MM-DD.
//  CheckoutDate  – departure date, YYYY-MM-DD, strictly after CheckinDate.
//  Guests        – number of guests staying.
//  Rooms         – requested unit count (defaults to 1).
//  PricePerNight – nightly rate captured at creation.
//  TotalPrice    – nights x PricePerNight.
//  Status        – pending, confirmed or cancelled.
//  PaymentStatus – pending or completed.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – timestamp of the last status change.
type Booking struct {
    ID            uint64    `json:"id"`              // bookings.id
    UserID        uint64    `json:"user_id"`         // bookings.user_id
    RoomID        uint64    `json:"room_id"`         // bookings.room_id
    RoomNumber    string    `json:"room_number"`     // bookings.room_number
    RoomName      string    `json:"room_name"`       // bookings.room_name
    CheckinDate   string    `json:"checkin_date"`    // bookings.checkin_date (YYYY-MM-DD)
    CheckoutDate  string    `json:"checkout_date"`   // bookings.checkout_date (YYYY-MM-DD)
    Guests        uint32    `json:"guests"`          // bookings.guests
    Rooms         uint32    `json:"rooms"`           // bookings.rooms
    PricePerNight uint32    `json:"price_per_night"` // bookings.price_per_night
    TotalPrice    uint32    `json:"total_price"`     // bookings.total_price
    Status        string    `json:"status"`          // bookings.status
    PaymentStatus string    `json:"payment_status"`  // bookings.payment_status
    CreatedAt     time.Time `json:"created_at"`      // bookings.created_at
    UpdatedAt     time.Time `json:"updated_at"`      // bookings.updated_at
}
