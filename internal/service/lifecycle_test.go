package service_test

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/easestay/easestay/internal/model"
    "github.com/easestay/easestay/internal/service"
)

// day returns today+offset as a YYYY-MM-DD string.
func day(offset int) string {
    return time.Now().UTC().AddDate(0, 0, offset).Format(model.DateLayout)
}

func TestRequestBookingCreatesPending(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)

    b, err := e.life.RequestBooking(context.Background(), 7, service.BookingRequest{
        RoomID:       room.ID,
        CheckinDate:  day(10),
        CheckoutDate: day(13),
        Guests:       2,
    })
    if err != nil {
        t.Fatalf("RequestBooking failed: %v", err)
    }
    if b.ID == 0 {
        t.Fatal("booking was not assigned an id")
    }
    if b.Status != model.BookingStatusPending || b.PaymentStatus != model.PaymentStatusPending {
        t.Fatalf("new booking status = %s/%s, want pending/pending", b.Status, b.PaymentStatus)
    }
    if b.TotalPrice != 15000 {
        t.Fatalf("total price = %d, want 15000 (3 nights at 5000)", b.TotalPrice)
    }
    if b.PricePerNight != 5000 {
        t.Fatalf("price per night = %d, want 5000", b.PricePerNight)
    }
    if b.Rooms != 1 {
        t.Fatalf("rooms defaulted to %d, want 1", b.Rooms)
    }
    if b.RoomNumber != room.RoomNumber || b.RoomName != room.Name {
        t.Fatalf("room snapshot = %s/%s, want %s/%s", b.RoomNumber, b.RoomName, room.RoomNumber, room.Name)
    }
    // A pending booking never touches the room status.
    got, _ := e.rooms.GetByID(context.Background(), room.ID)
    if got.Status != model.RoomStatusAvailable {
        t.Fatalf("room status after pending booking = %s, want available", got.Status)
    }
}

func TestRequestBookingValidation(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)

    cases := []struct {
        name string
        req  service.BookingRequest
    }{
        {"malformed checkin", service.BookingRequest{RoomID: room.ID, CheckinDate: "10-03-2030", CheckoutDate: day(13), Guests: 2}},
        {"malformed checkout", service.BookingRequest{RoomID: room.ID, CheckinDate: day(10), CheckoutDate: "soon", Guests: 2}},
        {"checkin equals checkout", service.BookingRequest{RoomID: room.ID, CheckinDate: day(10), CheckoutDate: day(10), Guests: 2}},
        {"checkout before checkin", service.BookingRequest{RoomID: room.ID, CheckinDate: day(13), CheckoutDate: day(10), Guests: 2}},
        {"checkin in the past", service.BookingRequest{RoomID: room.ID, CheckinDate: day(-1), CheckoutDate: day(3), Guests: 2}},
        {"zero guests", service.BookingRequest{RoomID: room.ID, CheckinDate: day(10), CheckoutDate: day(13), Guests: 0}},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            _, err := e.life.RequestBooking(context.Background(), 7, tc.req)
            if !errors.Is(err, service.ErrValidation) {
                t.Fatalf("RequestBooking = %v, want ErrValidation", err)
            }
        })
    }
    if len(e.ledger.items) != 0 {
        t.Fatalf("ledger holds %d bookings after rejected requests, want 0", len(e.ledger.items))
    }
}

func TestRequestBookingUnknownRoom(t *testing.T) {
    e := newEnv()
    _, err := e.life.RequestBooking(context.Background(), 7, service.BookingRequest{
        RoomID: 99, CheckinDate: day(10), CheckoutDate: day(13), Guests: 2,
    })
    if !errors.Is(err, service.ErrRoomNotFound) {
        t.Fatalf("RequestBooking = %v, want ErrRoomNotFound", err)
    }
}

func TestRequestBookingRoomNotAvailable(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusMaintenance, 5000)
    _, err := e.life.RequestBooking(context.Background(), 7, service.BookingRequest{
        RoomID: room.ID, CheckinDate: day(10), CheckoutDate: day(13), Guests: 2,
    })
    if !errors.Is(err, service.ErrRoomUnavailable) {
        t.Fatalf("RequestBooking = %v, want ErrRoomUnavailable", err)
    }
}

// Same-day turnover is rejected: a new check-in on an existing booking's
// checkout day counts as an overlap.  The boundary is inclusive on both
// ends, so the room effectively gets a buffer day between stays.
func TestRequestBookingSameDayTurnoverRejected(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)

    _, err := e.life.RequestBooking(context.Background(), 7, service.BookingRequest{
        RoomID: room.ID, CheckinDate: day(10), CheckoutDate: day(12), Guests: 2,
    })
    if err != nil {
        t.Fatalf("first booking failed: %v", err)
    }

    _, err = e.life.RequestBooking(context.Background(), 8, service.BookingRequest{
        RoomID: room.ID, CheckinDate: day(12), CheckoutDate: day(14), Guests: 2,
    })
    if !errors.Is(err, service.ErrDateConflict) {
        t.Fatalf("same-day turnover booking = %v, want ErrDateConflict", err)
    }

    // The day after checkout is free.
    if _, err := e.life.RequestBooking(context.Background(), 8, service.BookingRequest{
        RoomID: room.ID, CheckinDate: day(13), CheckoutDate: day(14), Guests: 2,
    }); err != nil {
        t.Fatalf("booking after buffer day failed: %v", err)
    }
}

func TestConfirmAndPay(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)
    b, err := e.life.RequestBooking(context.Background(), 7, service.BookingRequest{
        RoomID: room.ID, CheckinDate: day(10), CheckoutDate: day(13), Guests: 2,
    })
    if err != nil {
        t.Fatal(err)
    }

    p, err := e.life.ConfirmAndPay(context.Background(), 7, b.ID, 15000, "")
    if err != nil {
        t.Fatalf("ConfirmAndPay failed: %v", err)
    }
    if p.Reference == "" {
        t.Fatal("payment reference is empty")
    }
    if p.PaymentMethod != "card" {
        t.Fatalf("payment method = %q, want default card", p.PaymentMethod)
    }
    if p.Status != model.PaymentStatusCompleted {
        t.Fatalf("payment status = %q, want completed", p.Status)
    }

    got, _ := e.ledger.GetByID(context.Background(), b.ID)
    if got.Status != model.BookingStatusConfirmed {
        t.Fatalf("booking status = %s, want confirmed", got.Status)
    }
    if got.PaymentStatus != model.PaymentStatusCompleted {
        t.Fatalf("booking payment status = %s, want completed", got.PaymentStatus)
    }
    r, _ := e.rooms.GetByID(context.Background(), room.ID)
    if r.Status != model.RoomStatusOccupied {
        t.Fatalf("room status = %s, want occupied", r.Status)
    }
    if len(e.payments.records) != 1 {
        t.Fatalf("payment records = %d, want 1", len(e.payments.records))
    }
}

func TestConfirmAndPayRepeatAppendsPayment(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)
    b, err := e.life.RequestBooking(context.Background(), 7, service.BookingRequest{
        RoomID: room.ID, CheckinDate: day(10), CheckoutDate: day(13), Guests: 2,
    })
    if err != nil {
        t.Fatal(err)
    }

    first, err := e.life.ConfirmAndPay(context.Background(), 7, b.ID, 15000, "card")
    if err != nil {
        t.Fatal(err)
    }
    second, err := e.life.ConfirmAndPay(context.Background(), 7, b.ID, 15000, "card")
    if err != nil {
        t.Fatalf("second confirm = %v, want nil", err)
    }
    if first.Reference == second.Reference {
        t.Fatal("repeated confirmation reused the payment reference")
    }
    if len(e.payments.records) != 2 {
        t.Fatalf("payment records = %d, want 2", len(e.payments.records))
    }
}

func TestConfirmAndPayErrors(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)
    b, err := e.life.RequestBooking(context.Background(), 7, service.BookingRequest{
        RoomID: room.ID, CheckinDate: day(10), CheckoutDate: day(13), Guests: 2,
    })
    if err != nil {
        t.Fatal(err)
    }

    if _, err := e.life.ConfirmAndPay(context.Background(), 7, b.ID, 0, "card"); !errors.Is(err, service.ErrAmountRequired) {
        t.Fatalf("zero amount = %v, want ErrAmountRequired", err)
    }
    if _, err := e.life.ConfirmAndPay(context.Background(), 7, b.ID, -5, "card"); !errors.Is(err, service.ErrAmountRequired) {
        t.Fatalf("negative amount = %v, want ErrAmountRequired", err)
    }
    if _, err := e.life.ConfirmAndPay(context.Background(), 7, 999, 100, "card"); !errors.Is(err, service.ErrBookingNotFound) {
        t.Fatalf("unknown booking = %v, want ErrBookingNotFound", err)
    }
    if len(e.payments.records) != 0 {
        t.Fatalf("payment records after failures = %d, want 0", len(e.payments.records))
    }
}

func TestCancelPendingByOwner(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)
    b, err := e.life.RequestBooking(context.Background(), 7, service.BookingRequest{
        RoomID: room.ID, CheckinDate: day(10), CheckoutDate: day(13), Guests: 2,
    })
    if err != nil {
        t.Fatal(err)
    }

    owner := service.Identity{UserID: 7, Role: model.RoleGuest}
    if err := e.life.CancelBooking(context.Background(), owner, b.ID); err != nil {
        t.Fatalf("owner cancel of pending booking = %v, want nil", err)
    }
    if _, err := e.ledger.GetByID(context.Background(), b.ID); !errors.Is(err, service.ErrBookingNotFound) {
        t.Fatal("booking still present after cancel")
    }
    r, _ := e.rooms.GetByID(context.Background(), room.ID)
    if r.Status != model.RoomStatusAvailable {
        t.Fatalf("room status after pending cancel = %s, want available", r.Status)
    }
}

func TestCancelConfirmedByOwnerRejected(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)
    b, err := e.life.RequestBooking(context.Background(), 7, service.BookingRequest{
        RoomID: room.ID, CheckinDate: day(10), CheckoutDate: day(13), Guests: 2,
    })
    if err != nil {
        t.Fatal(err)
    }
    if _, err := e.life.ConfirmAndPay(context.Background(), 7, b.ID, 15000, "card"); err != nil {
        t.Fatal(err)
    }

    owner := service.Identity{UserID: 7, Role: model.RoleGuest}
    if err := e.life.CancelBooking(context.Background(), owner, b.ID); !errors.Is(err, service.ErrNotCancellable) {
        t.Fatalf("owner cancel of confirmed booking = %v, want ErrNotCancellable", err)
    }
    if _, err := e.ledger.GetByID(context.Background(), b.ID); err != nil {
        t.Fatal("booking disappeared after rejected cancel")
    }
}

func TestCancelByStrangerForbidden(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)
    b, err := e.life.RequestBooking(context.Background(), 7, service.BookingRequest{
        RoomID: room.ID, CheckinDate: day(10), CheckoutDate: day(13), Guests: 2,
    })
    if err != nil {
        t.Fatal(err)
    }

    stranger := service.Identity{UserID: 8, Role: model.RoleGuest}
    if err := e.life.CancelBooking(context.Background(), stranger, b.ID); !errors.Is(err, service.ErrForbidden) {
        t.Fatalf("stranger cancel = %v, want ErrForbidden", err)
    }
}

func TestCancelConfirmedByAdminFreesRoom(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)
    b, err := e.life.RequestBooking(context.Background(), 7, service.BookingRequest{
        RoomID: room.ID, CheckinDate: day(10), CheckoutDate: day(13), Guests: 2,
    })
    if err != nil {
        t.Fatal(err)
    }
    if _, err := e.life.ConfirmAndPay(context.Background(), 7, b.ID, 15000, "card"); err != nil {
        t.Fatal(err)
    }

    admin := service.Identity{UserID: 1, Role: model.RoleAdmin}
    if err := e.life.CancelBooking(context.Background(), admin, b.ID); err != nil {
        t.Fatalf("admin cancel of confirmed booking = %v, want nil", err)
    }
    if _, err := e.ledger.GetByID(context.Background(), b.ID); !errors.Is(err, service.ErrBookingNotFound) {
        t.Fatal("booking still present after admin cancel")
    }
    r, _ := e.rooms.GetByID(context.Background(), room.ID)
    if r.Status != model.RoomStatusAvailable {
        t.Fatalf("room status after admin cancel = %s, want available", r.Status)
    }
}

func TestCancelUnknownBooking(t *testing.T) {
    e := newEnv()
    admin := service.Identity{UserID: 1, Role: model.RoleAdmin}
    if err := e.life.CancelBooking(context.Background(), admin, 404); !errors.Is(err, service.ErrBookingNotFound) {
        t.Fatalf("cancel of unknown booking = %v, want ErrBookingNotFound", err)
    }
}
