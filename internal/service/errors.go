// Package service implements the booking core: the room directory and
// booking ledger contracts, the availability checker and the booking
// lifecycle orchestrator.  Handlers translate the sentinel errors
// defined here into HTTP status codes with errors.Is, the same way
// repository sentinels are handled elsewhere in the codebase.
package service

import "errors"

// ErrValidation marks locally detected input problems (malformed dates,
// check-in not before check-out, missing fields).  It is always wrapped
// with a human-readable message: fmt.Errorf("%w: ...", ErrValidation).
// Handlers map it to HTTP 400.
var ErrValidation = errors.New("validation failed")

// ErrRoomNotFound is returned when a room lookup has no matching record.
// Handlers map it to HTTP 404.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a booking lookup has no matching
// record.  Handlers map it to HTTP 404.
var ErrBookingNotFound = errors.New("booking not found")

// ErrRoomUnavailable is returned when the requested room exists but is
// occupied or in maintenance.  Handlers map it to HTTP 400.
var ErrRoomUnavailable = errors.New("room is not available")

// ErrDateConflict is returned when the requested date range overlaps an
// existing pending or confirmed booking on the same room.  Handlers map
// it to HTTP 400.
var ErrDateConflict = errors.New("room is already booked for these dates")

// ErrForbidden is returned when a caller attempts an operation on a
// booking they do not own without being an administrator.  Handlers map
// it to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrNotCancellable is returned when the owner of a booking tries to
// cancel it after it left the pending state.  Only administrators may
// cancel confirmed bookings.  Handlers map it to HTTP 400.
var ErrNotCancellable = errors.New("only pending bookings can be deleted")

// ErrAmountRequired is returned when a payment is submitted without a
// positive amount.  Handlers map it to HTTP 400.
var ErrAmountRequired = errors.New("booking ID and amount are required")
