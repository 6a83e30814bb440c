package service

import (
    "context"
    "errors"

    "github.com/easestay/easestay/internal/model"
)

// Availability decides whether a room can be booked for a date range by
// combining the room's current status with the ledger's overlap query.
// It performs no mutation and no date validation; callers validate the
// range before asking.
type Availability struct {
    rooms    RoomDirectory
    bookings BookingLedger
}

// NewAvailability constructs an Availability checker over the given stores.
func NewAvailability(rooms RoomDirectory, bookings BookingLedger) *Availability {
    if rooms == nil || bookings == nil {
        panic("nil store passed to NewAvailability")
    }
    return &Availability{rooms: rooms, bookings: bookings}
}

// Check returns nil when the room can be booked for [checkin, checkout)
// and otherwise reports why not: ErrRoomNotFound when the room does not
// exist, ErrRoomUnavailable when its status is not available, or
// ErrDateConflict when the range overlaps a pending or confirmed
// booking.  Dates are YYYY-MM-DD strings.
func (a *Availability) Check(ctx context.Context, roomID uint64, checkin, checkout string) error {
    room, err := a.rooms.GetByID(ctx, roomID)
    if err != nil {
        return err
    }
    if room.Status != model.RoomStatusAvailable {
        return ErrRoomUnavailable
    }
    overlaps, err := a.bookings.Overlaps(ctx, roomID, checkin, checkout)
    if err != nil {
        return err
    }
    if overlaps {
        return ErrDateConflict
    }
    return nil
}

// IsBookable is the boolean form of Check.  Store failures are still
// surfaced as errors; a false result always carries a nil error.
func (a *Availability) IsBookable(ctx context.Context, roomID uint64, checkin, checkout string) (bool, error) {
    err := a.Check(ctx, roomID, checkin, checkout)
    if err == nil {
        return true, nil
    }
    if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrRoomUnavailable) || errors.Is(err, ErrDateConflict) {
        return false, nil
    }
    return false, err
}
