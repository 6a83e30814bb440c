package service

import "github.com/easestay/easestay/internal/model"

// Identity is the verified caller of a mutating operation, as handed
// down by the authentication layer.
type Identity struct {
    UserID uint64
    Role   string
}

// IsAdmin reports whether the identity carries the admin role.
func (id Identity) IsAdmin() bool { return id.Role == model.RoleAdmin }

// CanCancel is the single authorization predicate for booking
// cancellation.  Administrators may cancel any booking at any status.
// Everyone else must own the booking and the booking must still be
// pending.  It returns nil to allow, ErrForbidden when the requester
// does not own the booking, and ErrNotCancellable when the owner tries
// to cancel a booking that already left the pending state.
func CanCancel(requester Identity, b *model.Booking) error {
    if requester.IsAdmin() {
        return nil
    }
    if b.UserID != requester.UserID {
        return ErrForbidden
    }
    if b.Status != model.BookingStatusPending {
        return ErrNotCancellable
    }
    return nil
}
