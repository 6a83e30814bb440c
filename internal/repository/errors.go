// Package repository implements MySQL-backed storage for rooms,
// bookings, payments, users and feedback.  Domain-level sentinels
// (room/booking not found, forbidden, validation) live in the service
// package because they belong to the store contracts defined there;
// this file keeps the sentinels only the persistence layer and the
// auth handlers care about.
package repository

import "errors"

// ErrEmailExists is returned when a registration hits the unique email
// constraint.  The register handler turns it into an HTTP 400.
var ErrEmailExists = errors.New("email already exists")
