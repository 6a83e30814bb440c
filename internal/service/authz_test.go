package service_test

import (
    "errors"
    "testing"

    "github.com/easestay/easestay/internal/model"
    "github.com/easestay/easestay/internal/service"
)

func TestCanCancel(t *testing.T) {
    booking := func(owner uint64, status string) *model.Booking {
        return &model.Booking{ID: 1, UserID: owner, Status: status}
    }

    cases := []struct {
        name      string
        requester service.Identity
        booking   *model.Booking
        want      error
    }{
        {"owner cancels pending", service.Identity{UserID: 7, Role: model.RoleGuest}, booking(7, model.BookingStatusPending), nil},
        {"owner cancels confirmed", service.Identity{UserID: 7, Role: model.RoleGuest}, booking(7, model.BookingStatusConfirmed), service.ErrNotCancellable},
        {"stranger cancels pending", service.Identity{UserID: 8, Role: model.RoleGuest}, booking(7, model.BookingStatusPending), service.ErrForbidden},
        {"staff cancels someone else's", service.Identity{UserID: 8, Role: model.RoleStaff}, booking(7, model.BookingStatusPending), service.ErrForbidden},
        {"admin cancels pending", service.Identity{UserID: 1, Role: model.RoleAdmin}, booking(7, model.BookingStatusPending), nil},
        {"admin cancels confirmed", service.Identity{UserID: 1, Role: model.RoleAdmin}, booking(7, model.BookingStatusConfirmed), nil},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            err := service.CanCancel(tc.requester, tc.booking)
            if tc.want == nil && err != nil {
                t.Fatalf("CanCancel = %v, want nil", err)
            }
            if tc.want != nil && !errors.Is(err, tc.want) {
                t.Fatalf("CanCancel = %v, want %v", err, tc.want)
            }
        })
    }
}
