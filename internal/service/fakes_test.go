package service_test

// In-memory store fakes backing the service tests.  They honor the
// store contracts: sentinel errors for missing records, defaulted
// statuses on create, and the inclusive overlap comparison on string
// dates.

import (
    "context"
    "fmt"

    "github.com/easestay/easestay/internal/model"
    "github.com/easestay/easestay/internal/service"
)

type fakeRooms struct {
    seq   uint64
    items map[uint64]*model.Room
}

func newFakeRooms() *fakeRooms { return &fakeRooms{items: map[uint64]*model.Room{}} }

func (f *fakeRooms) Create(ctx context.Context, room *model.Room) error {
    if room.Status == "" {
        room.Status = model.RoomStatusAvailable
    }
    f.seq++
    room.ID = f.seq
    cp := *room
    f.items[room.ID] = &cp
    return nil
}

func (f *fakeRooms) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
    r, ok := f.items[id]
    if !ok {
        return nil, service.ErrRoomNotFound
    }
    cp := *r
    return &cp, nil
}

func (f *fakeRooms) ListAll(ctx context.Context) ([]*model.Room, error) {
    out := make([]*model.Room, 0, len(f.items))
    for _, r := range f.items {
        cp := *r
        out = append(out, &cp)
    }
    return out, nil
}

func (f *fakeRooms) ListAvailable(ctx context.Context) ([]*model.Room, error) {
    var out []*model.Room
    for _, r := range f.items {
        if r.Status == model.RoomStatusAvailable {
            cp := *r
            out = append(out, &cp)
        }
    }
    return out, nil
}

func (f *fakeRooms) SetStatus(ctx context.Context, id uint64, status string) error {
    if !model.ValidRoomStatus(status) {
        return fmt.Errorf("%w: invalid room status %q", service.ErrValidation, status)
    }
    r, ok := f.items[id]
    if !ok {
        return service.ErrRoomNotFound
    }
    r.Status = status
    return nil
}

func (f *fakeRooms) SetNeedsCleaning(ctx context.Context, id uint64, needs bool) error {
    r, ok := f.items[id]
    if !ok {
        return service.ErrRoomNotFound
    }
    r.NeedsCleaning = needs
    return nil
}

func (f *fakeRooms) ListNeedingAttention(ctx context.Context) ([]*model.Room, error) {
    var out []*model.Room
    for _, r := range f.items {
        if r.NeedsCleaning || r.Status == model.RoomStatusMaintenance {
            cp := *r
            out = append(out, &cp)
        }
    }
    return out, nil
}

type fakeLedger struct {
    seq   uint64
    items map[uint64]*model.Booking
}

func newFakeLedger() *fakeLedger { return &fakeLedger{items: map[uint64]*model.Booking{}} }

func (f *fakeLedger) Create(ctx context.Context, b *model.Booking) error {
    if b.Status == "" {
        b.Status = model.BookingStatusPending
    }
    if b.PaymentStatus == "" {
        b.PaymentStatus = model.PaymentStatusPending
    }
    f.seq++
    b.ID = f.seq
    cp := *b
    f.items[b.ID] = &cp
    return nil
}

func (f *fakeLedger) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
    b, ok := f.items[id]
    if !ok {
        return nil, service.ErrBookingNotFound
    }
    cp := *b
    return &cp, nil
}

func (f *fakeLedger) ListByUser(ctx context.Context, userID uint64) ([]*model.Booking, error) {
    var out []*model.Booking
    for _, b := range f.items {
        if b.UserID == userID {
            cp := *b
            out = append(out, &cp)
        }
    }
    return out, nil
}

func (f *fakeLedger) ListAll(ctx context.Context) ([]*model.Booking, error) {
    out := make([]*model.Booking, 0, len(f.items))
    for _, b := range f.items {
        cp := *b
        out = append(out, &cp)
    }
    return out, nil
}

func (f *fakeLedger) Overlaps(ctx context.Context, roomID uint64, checkin, checkout string) (bool, error) {
    for _, b := range f.items {
        if b.RoomID != roomID {
            continue
        }
        if b.Status != model.BookingStatusPending && b.Status != model.BookingStatusConfirmed {
            continue
        }
        // ISO dates compare correctly as strings, boundary inclusive.
        if b.CheckinDate <= checkout && b.CheckoutDate >= checkin {
            return true, nil
        }
    }
    return false, nil
}

func (f *fakeLedger) SetStatus(ctx context.Context, id uint64, status string) error {
    b, ok := f.items[id]
    if !ok {
        return service.ErrBookingNotFound
    }
    b.Status = status
    if status == model.BookingStatusConfirmed {
        b.PaymentStatus = model.PaymentStatusCompleted
    }
    return nil
}

func (f *fakeLedger) Delete(ctx context.Context, id uint64, ownerID *uint64) error {
    b, ok := f.items[id]
    if !ok {
        return service.ErrBookingNotFound
    }
    if ownerID != nil && b.UserID != *ownerID {
        return service.ErrBookingNotFound
    }
    delete(f.items, id)
    return nil
}

type fakePayments struct {
    seq     uint64
    records []model.Payment
}

func (f *fakePayments) Create(ctx context.Context, p *model.Payment) error {
    f.seq++
    p.ID = f.seq
    f.records = append(f.records, *p)
    return nil
}

// fakeTx runs the function directly; the fakes have no transactions.
type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
    return fn(ctx)
}

// env wires the service layer over fresh fakes for one test.
type env struct {
    rooms    *fakeRooms
    ledger   *fakeLedger
    payments *fakePayments
    avail    *service.Availability
    life     *service.Lifecycle
}

func newEnv() *env {
    rooms := newFakeRooms()
    ledger := newFakeLedger()
    payments := &fakePayments{}
    avail := service.NewAvailability(rooms, ledger)
    return &env{
        rooms:    rooms,
        ledger:   ledger,
        payments: payments,
        avail:    avail,
        life:     service.NewLifecycle(rooms, ledger, payments, avail, fakeTx{}),
    }
}

func (e *env) addRoom(status string, price uint32) *model.Room {
    room := &model.Room{
        Name:       "Deluxe Double Room",
        Type:       "deluxe",
        RoomNumber: "205",
        Price:      price,
        Capacity:   3,
        Status:     status,
    }
    _ = e.rooms.Create(context.Background(), room)
    return room
}
