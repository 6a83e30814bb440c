package service

import (
    "context"

    "github.com/easestay/easestay/internal/model"
)

// RoomDirectory is the storage contract for rooms.  Implementations
// must return ErrRoomNotFound when an id has no matching record and
// must stamp UpdatedAt on every mutation.  SetStatus rejects values
// outside the three enumerated room statuses with ErrValidation before
// touching persistence.
type RoomDirectory interface {
    Create(ctx context.Context, room *model.Room) error
    GetByID(ctx context.Context, id uint64) (*model.Room, error)
    ListAll(ctx context.Context) ([]*model.Room, error)
    ListAvailable(ctx context.Context) ([]*model.Room, error)
    SetStatus(ctx context.Context, id uint64, status string) error
    SetNeedsCleaning(ctx context.Context, id uint64, needs bool) error
    // ListNeedingAttention returns rooms with needs_cleaning set or in
    // maintenance status, the housekeeping work queue.
    ListNeedingAttention(ctx context.Context) ([]*model.Room, error)
}

// BookingLedger is the storage contract for bookings.  The ledger is a
// pure storage abstraction: Create does not check availability, that is
// the orchestrator's job.  Implementations return ErrBookingNotFound
// when an id has no matching record.
type BookingLedger interface {
    Create(ctx context.Context, b *model.Booking) error
    GetByID(ctx context.Context, id uint64) (*model.Booking, error)
    // ListByUser returns the user's bookings ordered by created_at descending.
    ListByUser(ctx context.Context, userID uint64) ([]*model.Booking, error)
    // ListAll returns every booking ordered by created_at descending.
    ListAll(ctx context.Context) ([]*model.Booking, error)
    // Overlaps reports whether any pending or confirmed booking on the
    // room satisfies existing.checkin <= checkout AND existing.checkout
    // >= checkin.  The boundary comparison is inclusive: a checkout on
    // the same day as a new check-in counts as an overlap.
    Overlaps(ctx context.Context, roomID uint64, checkin, checkout string) (bool, error)
    // SetStatus updates a booking's status.  Setting the status to
    // confirmed also sets payment_status to completed in the same write;
    // the two fields are not independently settable through this call.
    SetStatus(ctx context.Context, id uint64, status string) error
    // Delete removes a booking.  When ownerID is non-nil the delete only
    // succeeds if the stored booking belongs to that user; a nil ownerID
    // deletes unconditionally by id (administrator path).
    Delete(ctx context.Context, id uint64, ownerID *uint64) error
}

// PaymentLog appends payment audit records.  Records are never read
// back or mutated by the core.
type PaymentLog interface {
    Create(ctx context.Context, p *model.Payment) error
}

// TxRunner executes fn inside a single storage transaction.  The
// orchestrator uses it to make its paired booking and room writes
// atomic; store methods called with the context passed to fn take part
// in the transaction.
type TxRunner interface {
    WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
