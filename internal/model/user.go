package model

import "time"

// User roles.
const (
    RoleGuest = "guest"
    RoleStaff = "staff"
    RoleAdmin = "admin"
)

// User represents an application user record as stored in the `users`
// table.  The password hash is never serialized; handlers build their
// own response types for anything user-facing.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  FirstName    – given name.
//  LastName     – family name.
//  Phone        – optional contact number.
//  Role         – guest, staff or admin.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    `json:"id"`        // users.id
    Email        string    `json:"email"`     // users.email
    PasswordHash string    `json:"-"`         // users.password_hash
    FirstName    string    `json:"firstName"` // users.first_name
    LastName     string    `json:"lastName"`  // users.last_name
    Phone        string    `json:"phone"`     // users.phone
    Role         string    `json:"role"`      // users.role
    CreatedAt    time.Time `json:"created_at"`
    UpdatedAt    time.Time `json:"updated_at"`
}
