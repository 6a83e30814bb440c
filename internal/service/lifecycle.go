package service

import (
    "context"
    "fmt"
    "time"

    "github.com/google/uuid"

    "github.com/easestay/easestay/internal/model"
)

// Lifecycle is the booking lifecycle orchestrator, the only component
// that mutates both the room directory and the booking ledger for one
// logical event.  The state machine per booking:
//
//	[none]    --request (valid + available)--> pending
//	pending   --confirm+pay----------------> confirmed  (room -> occupied)
//	pending   --cancel by owner------------> deleted    (room untouched)
//	confirmed --cancel by admin------------> deleted    (room -> available)
//
// The paired booking/room writes of confirm and cancel run inside one
// storage transaction via the TxRunner.
type Lifecycle struct {
    rooms    RoomDirectory
    bookings BookingLedger
    payments PaymentLog
    avail    *Availability
    tx       TxRunner
}

// NewLifecycle constructs the orchestrator.  All dependencies must be non-nil.
func NewLifecycle(rooms RoomDirectory, bookings BookingLedger, payments PaymentLog, avail *Availability, tx TxRunner) *Lifecycle {
    if rooms == nil || bookings == nil || payments == nil || avail == nil || tx == nil {
        panic("nil dependency passed to NewLifecycle")
    }
    return &Lifecycle{rooms: rooms, bookings: bookings, payments: payments, avail: avail, tx: tx}
}

// BookingRequest carries the caller-supplied fields of a booking request.
type BookingRequest struct {
    RoomID       uint64
    CheckinDate  string
    CheckoutDate string
    Guests       uint32
    Rooms        uint32
}

// RequestBooking validates the request, checks availability and
// persists a pending booking.  The availability check and the insert
// are two separate store operations; two concurrent requests for the
// same room and dates can both pass the check before either inserts.
// That race is accepted for a single-node, low-contention workload.
//
// Failure modes: ErrValidation (bad dates, past check-in, guests < 1),
// ErrRoomNotFound, ErrRoomUnavailable, ErrDateConflict.
func (l *Lifecycle) RequestBooking(ctx context.Context, userID uint64, req BookingRequest) (*model.Booking, error) {
    checkin, err := time.Parse(model.DateLayout, req.CheckinDate)
    if err != nil {
        return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
    }
    checkout, err := time.Parse(model.DateLayout, req.CheckoutDate)
    if err != nil {
        return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
    }
    if !checkin.Before(checkout) {
        return nil, fmt.Errorf("%w: check-out date must be after check-in date", ErrValidation)
    }
    today, _ := time.Parse(model.DateLayout, time.Now().UTC().Format(model.DateLayout))
    if checkin.Before(today) {
        return nil, fmt.Errorf("%w: check-in date cannot be in the past", ErrValidation)
    }
    if req.Guests == 0 {
        return nil, fmt.Errorf("%w: guests must be at least 1", ErrValidation)
    }
    units := req.Rooms
    if units == 0 {
        units = 1
    }

    room, err := l.rooms.GetByID(ctx, req.RoomID)
    if err != nil {
        return nil, err
    }
    if err := l.avail.Check(ctx, req.RoomID, req.CheckinDate, req.CheckoutDate); err != nil {
        return nil, err
    }

    nights := uint32(checkout.Sub(checkin).Hours() / 24)
    b := &model.Booking{
        UserID:        userID,
        RoomID:        room.ID,
        RoomNumber:    room.RoomNumber,
        RoomName:      room.Name,
        CheckinDate:   req.CheckinDate,
        CheckoutDate:  req.CheckoutDate,
        Guests:        req.Guests,
        Rooms:         units,
        PricePerNight: room.Price,
        TotalPrice:    nights * room.Price,
        Status:        model.BookingStatusPending,
        PaymentStatus: model.PaymentStatusPending,
    }
    if err := l.bookings.Create(ctx, b); err != nil {
        return nil, err
    }
    return b, nil
}

// ConfirmAndPay confirms a booking against a payment event: the booking
// becomes confirmed (which also completes its payment status), the room
// is flipped to occupied, and a payment audit record is appended.  All
// three writes share one transaction, so a failed room update rolls the
// confirmation back.  Confirming an already-confirmed booking is not an
// error: the room ends up occupied either way, but every call appends a
// fresh payment record.
//
// Failure modes: ErrAmountRequired, ErrBookingNotFound.
func (l *Lifecycle) ConfirmAndPay(ctx context.Context, userID, bookingID uint64, amount float64, method string) (*model.Payment, error) {
    if amount <= 0 {
        return nil, ErrAmountRequired
    }
    if method == "" {
        method = "card"
    }
    b, err := l.bookings.GetByID(ctx, bookingID)
    if err != nil {
        return nil, err
    }

    p := &model.Payment{
        Reference:     uuid.NewString(),
        BookingID:     b.ID,
        UserID:        userID,
        Amount:        amount,
        PaymentMethod: method,
        Status:        model.PaymentStatusCompleted,
    }
    err = l.tx.WithinTx(ctx, func(ctx context.Context) error {
        if err := l.bookings.SetStatus(ctx, b.ID, model.BookingStatusConfirmed); err != nil {
            return err
        }
        if err := l.rooms.SetStatus(ctx, b.RoomID, model.RoomStatusOccupied); err != nil {
            return err
        }
        return l.payments.Create(ctx, p)
    })
    if err != nil {
        return nil, err
    }
    return p, nil
}

// CancelBooking deletes a booking on behalf of the requester.  The
// authorization rule lives in CanCancel.  When the deleted booking was
// confirmed, the room is restored to available in the same transaction;
// a pending booking never occupied the room, so no room write happens.
//
// Failure modes: ErrBookingNotFound, ErrForbidden, ErrNotCancellable.
func (l *Lifecycle) CancelBooking(ctx context.Context, requester Identity, bookingID uint64) error {
    b, err := l.bookings.GetByID(ctx, bookingID)
    if err != nil {
        return err
    }
    if err := CanCancel(requester, b); err != nil {
        return err
    }

    var owner *uint64
    if !requester.IsAdmin() {
        owner = &requester.UserID
    }
    return l.tx.WithinTx(ctx, func(ctx context.Context) error {
        if err := l.bookings.Delete(ctx, bookingID, owner); err != nil {
            return err
        }
        if b.Status == model.BookingStatusConfirmed {
            return l.rooms.SetStatus(ctx, b.RoomID, model.RoomStatusAvailable)
        }
        return nil
    })
}
