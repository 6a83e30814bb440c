package service_test

import (
    "context"
    "errors"
    "testing"

    "github.com/easestay/easestay/internal/model"
    "github.com/easestay/easestay/internal/service"
)

func TestCheckUnknownRoom(t *testing.T) {
    e := newEnv()
    err := e.avail.Check(context.Background(), 42, "2030-03-10", "2030-03-13")
    if !errors.Is(err, service.ErrRoomNotFound) {
        t.Fatalf("Check on unknown room = %v, want ErrRoomNotFound", err)
    }
}

func TestCheckRoomNotAvailable(t *testing.T) {
    for _, status := range []string{model.RoomStatusOccupied, model.RoomStatusMaintenance} {
        t.Run(status, func(t *testing.T) {
            e := newEnv()
            room := e.addRoom(status, 5000)
            err := e.avail.Check(context.Background(), room.ID, "2030-03-10", "2030-03-13")
            if !errors.Is(err, service.ErrRoomUnavailable) {
                t.Fatalf("Check on %s room = %v, want ErrRoomUnavailable", status, err)
            }
        })
    }
}

func TestCheckDateConflict(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)
    existing := &model.Booking{
        UserID:       1,
        RoomID:       room.ID,
        CheckinDate:  "2030-03-10",
        CheckoutDate: "2030-03-12",
        Status:       model.BookingStatusConfirmed,
    }
    if err := e.ledger.Create(context.Background(), existing); err != nil {
        t.Fatal(err)
    }

    cases := []struct {
        name               string
        checkin, checkout  string
        wantConflict       bool
    }{
        {"inside existing stay", "2030-03-10", "2030-03-11", true},
        {"spanning existing stay", "2030-03-09", "2030-03-13", true},
        {"checkin on existing checkout day", "2030-03-12", "2030-03-14", true},
        {"checkout on existing checkin day", "2030-03-08", "2030-03-10", true},
        {"clearly after", "2030-03-13", "2030-03-15", false},
        {"clearly before", "2030-03-05", "2030-03-09", false},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            err := e.avail.Check(context.Background(), room.ID, tc.checkin, tc.checkout)
            if tc.wantConflict && !errors.Is(err, service.ErrDateConflict) {
                t.Fatalf("Check(%s, %s) = %v, want ErrDateConflict", tc.checkin, tc.checkout, err)
            }
            if !tc.wantConflict && err != nil {
                t.Fatalf("Check(%s, %s) = %v, want nil", tc.checkin, tc.checkout, err)
            }
        })
    }
}

func TestCheckIgnoresCancelledAndDeleted(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)
    cancelled := &model.Booking{
        UserID:       1,
        RoomID:       room.ID,
        CheckinDate:  "2030-03-10",
        CheckoutDate: "2030-03-12",
        Status:       model.BookingStatusCancelled,
    }
    if err := e.ledger.Create(context.Background(), cancelled); err != nil {
        t.Fatal(err)
    }
    if err := e.avail.Check(context.Background(), room.ID, "2030-03-10", "2030-03-12"); err != nil {
        t.Fatalf("Check against cancelled booking = %v, want nil", err)
    }
}

func TestIsBookable(t *testing.T) {
    e := newEnv()
    room := e.addRoom(model.RoomStatusAvailable, 5000)

    ok, err := e.avail.IsBookable(context.Background(), room.ID, "2030-03-10", "2030-03-13")
    if err != nil || !ok {
        t.Fatalf("IsBookable on open room = (%v, %v), want (true, nil)", ok, err)
    }

    ok, err = e.avail.IsBookable(context.Background(), 999, "2030-03-10", "2030-03-13")
    if err != nil || ok {
        t.Fatalf("IsBookable on unknown room = (%v, %v), want (false, nil)", ok, err)
    }
}
