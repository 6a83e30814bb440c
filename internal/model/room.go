package model

import "time"

// Room statuses.  A room may only ever be in one of these three states;
// any other value is rejected before it reaches persistence.
const (
    RoomStatusAvailable   = "available"
    RoomStatusOccupied    = "occupied"
    RoomStatusMaintenance = "maintenance"
)

// ValidRoomStatus reports whether s is one of the three allowed room
// statuses.
func ValidRoomStatus(s string) bool {
    switch s {
    case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
        return true
    }
    return false
}

// Room represents a bookable hotel room as stored in the `rooms` table.
// Status tracks whether the room can currently take new bookings and
// NeedsCleaning is the housekeeping flag staff work from.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name of the room (e.g. "Luxury King Suite").
//  Type          – room category (standard, deluxe, suite, ...).
//  RoomNumber    – the physical room number, unique per hotel.
//  Price         – price per night.
//  Capacity      – maximum number of guests.
//  Amenities     – list of amenity labels.
//  Description   – optional free text about the room.
//  Image         – optional image URL.
//  Status        – available, occupied or maintenance.
//  NeedsCleaning – housekeeping flag.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – timestamp of the last mutation.
type Room struct {
    ID            uint64    `json:"id"`             // rooms.id
    Name          string    `json:"name"`           // rooms.name
    Type          string    `json:"type"`           // rooms.type
    RoomNumber    string    `json:"roomNumber"`     // rooms.room_number
    Price         uint32    `json:"price"`          // rooms.price (per night)
    Capacity      uint32    `json:"capacity"`       // rooms.capacity
    Amenities     []string  `json:"amenities"`      // rooms.amenities (JSON text)
    Description   string    `json:"description"`    // rooms.description
    Image         string    `json:"image"`          // rooms.image
    Status        string    `json:"status"`         // rooms.status
    NeedsCleaning bool      `json:"needs_cleaning"` // rooms.needs_cleaning
    CreatedAt     time.Time `json:"created_at"`     // rooms.created_at
    UpdatedAt     time.Time `json:"updated_at"`     // rooms.updated_at
}
