package model

import "time"

// Feedback is a guest review left after a stay.  Rating is bounded to
// 1..5 at the handler layer.  BookingID is optional; general feedback
// about the hotel carries no booking reference.
type Feedback struct {
    ID        uint64    `json:"id"`                   // feedback.id
    UserID    uint64    `json:"user_id"`              // feedback.user_id
    UserEmail string    `json:"user_email"`           // feedback.user_email
    BookingID *uint64   `json:"booking_id,omitempty"` // feedback.booking_id (nullable)
    Rating    uint8     `json:"rating"`               // feedback.rating (1..5)
    Comment   string    `json:"comment"`              // feedback.comment
    CreatedAt time.Time `json:"created_at"`           // feedback.created_at
}
