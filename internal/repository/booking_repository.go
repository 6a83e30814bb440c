package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/easestay/easestay/internal/model"
    "github.com/easestay/easestay/internal/service"
)

// BookingRepo is the MySQL implementation of service.BookingLedger.
// Check-in and check-out are CHAR(10) YYYY-MM-DD columns, so the
// overlap query is a plain lexical range comparison.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

func (r *BookingRepo) conn(ctx context.Context) executor {
    if tx, ok := txFromContext(ctx); ok {
        return tx
    }
    return r.db
}

const bookingColumns = `id, user_id, room_id, room_number, room_name, checkin_date, checkout_date,
guests, rooms, price_per_night, total_price, status, payment_status, created_at, updated_at`

func scanBooking(row interface{ Scan(dest ...any) error }) (*model.Booking, error) {
    var b model.Booking
    err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.RoomNumber, &b.RoomName,
        &b.CheckinDate, &b.CheckoutDate, &b.Guests, &b.Rooms,
        &b.PricePerNight, &b.TotalPrice, &b.Status, &b.PaymentStatus,
        &b.CreatedAt, &b.UpdatedAt)
    if err != nil {
        return nil, err
    }
    return &b, nil
}

// Create inserts a booking and reads the row back so timestamps and
// defaults land on the provided struct.  The ledger does not check
// availability here; the orchestrator must have done that already.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
    if b.Status == "" {
        b.Status = model.BookingStatusPending
    }
    if b.PaymentStatus == "" {
        b.PaymentStatus = model.PaymentStatusPending
    }
    const q = `INSERT INTO bookings (user_id, room_id, room_number, room_name, checkin_date, checkout_date,
                                     guests, rooms, price_per_night, total_price, status, payment_status)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := r.conn(ctx).ExecContext(ctx, q,
        b.UserID, b.RoomID, b.RoomNumber, b.RoomName, b.CheckinDate, b.CheckoutDate,
        b.Guests, b.Rooms, b.PricePerNight, b.TotalPrice, b.Status, b.PaymentStatus)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)

    created, err := r.GetByID(ctx, b.ID)
    if err != nil {
        return err
    }
    *b = *created
    return nil
}

// GetByID returns a single booking or service.ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
    b, err := scanBooking(r.conn(ctx).QueryRowContext(ctx, q, id))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, service.ErrBookingNotFound
        }
        return nil, err
    }
    return b, nil
}

func (r *BookingRepo) list(ctx context.Context, q string, args ...any) ([]*model.Booking, error) {
    rows, err := r.conn(ctx).QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]*model.Booking, 0)
    for rows.Next() {
        b, err := scanBooking(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// ListByUser returns the user's bookings, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Booking, error) {
    return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
}

// ListAll returns every booking, newest first (administrative view).
func (r *BookingRepo) ListAll(ctx context.Context) ([]*model.Booking, error) {
    return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC, id DESC`)
}

// Overlaps reports whether any pending or confirmed booking on the room
// overlaps the given range.  The boundary comparison is deliberately
// inclusive on both ends: an existing checkout equal to the requested
// check-in counts as an overlap, so same-day turnover is rejected.
func (r *BookingRepo) Overlaps(ctx context.Context, roomID uint64, checkin, checkout string) (bool, error) {
    const q = `SELECT 1 FROM bookings
               WHERE room_id = ?
                 AND status IN (?, ?)
                 AND checkin_date <= ?
                 AND checkout_date >= ?
               LIMIT 1`
    var one int
    err := r.conn(ctx).QueryRowContext(ctx, q, roomID,
        model.BookingStatusPending, model.BookingStatusConfirmed,
        checkout, checkin).Scan(&one)
    if errors.Is(err, sql.ErrNoRows) {
        return false, nil
    }
    if err != nil {
        return false, err
    }
    return true, nil
}

// SetStatus updates a booking's status.  Moving to confirmed completes
// the payment status in the same statement; the two fields cannot be
// set independently through this call.
func (r *BookingRepo) SetStatus(ctx context.Context, id uint64, status string) error {
    var res sql.Result
    var err error
    if status == model.BookingStatusConfirmed {
        const q = `UPDATE bookings SET status = ?, payment_status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
        res, err = r.conn(ctx).ExecContext(ctx, q, status, model.PaymentStatusCompleted, id)
    } else {
        const q = `UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
        res, err = r.conn(ctx).ExecContext(ctx, q, status, id)
    }
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n > 0 {
        return nil
    }
    // Zero changed rows is either a miss or a no-op rewrite; probe.
    var one int
    err = r.conn(ctx).QueryRowContext(ctx, `SELECT 1 FROM bookings WHERE id = ?`, id).Scan(&one)
    if errors.Is(err, sql.ErrNoRows) {
        return service.ErrBookingNotFound
    }
    return err
}

// Delete removes a booking by id.  With a non-nil ownerID the delete is
// scoped to that owner's bookings; a row that exists but belongs to
// someone else reports not-found.
func (r *BookingRepo) Delete(ctx context.Context, id uint64, ownerID *uint64) error {
    var res sql.Result
    var err error
    if ownerID != nil {
        res, err = r.conn(ctx).ExecContext(ctx, `DELETE FROM bookings WHERE id = ? AND user_id = ?`, id, *ownerID)
    } else {
        res, err = r.conn(ctx).ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
    }
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return service.ErrBookingNotFound
    }
    return nil
}
