package repository

import (
    "context"
    "database/sql"

    "github.com/easestay/easestay/internal/model"
)

// PaymentRepo is the MySQL implementation of service.PaymentLog.  The
// payments table is append-only; there is no update or delete path.
type PaymentRepo struct {
    db *sql.DB
}

// NewPaymentRepo returns a PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

func (r *PaymentRepo) conn(ctx context.Context) executor {
    if tx, ok := txFromContext(ctx); ok {
        return tx
    }
    return r.db
}

// Create appends a payment audit record and reads it back so the
// generated id and created_at land on the provided struct.
func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
    if p.Status == "" {
        p.Status = model.PaymentStatusCompleted
    }
    const q = `INSERT INTO payments (reference, booking_id, user_id, amount, payment_method, status)
               VALUES (?, ?, ?, ?, ?, ?)`
    res, err := r.conn(ctx).ExecContext(ctx, q,
        p.Reference, p.BookingID, p.UserID, p.Amount, p.PaymentMethod, p.Status)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    p.ID = uint64(id)

    const sel = `SELECT created_at FROM payments WHERE id = ?`
    return r.conn(ctx).QueryRowContext(ctx, sel, p.ID).Scan(&p.CreatedAt)
}

// ListByBooking returns the audit trail for one booking, oldest first.
// Used by reconciliation tooling rather than the request path.
func (r *PaymentRepo) ListByBooking(ctx context.Context, bookingID uint64) ([]*model.Payment, error) {
    const q = `SELECT id, reference, booking_id, user_id, amount, payment_method, status, created_at
               FROM payments WHERE booking_id = ? ORDER BY id`
    rows, err := r.conn(ctx).QueryContext(ctx, q, bookingID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]*model.Payment, 0)
    for rows.Next() {
        var p model.Payment
        if err := rows.Scan(&p.ID, &p.Reference, &p.BookingID, &p.UserID,
            &p.Amount, &p.PaymentMethod, &p.Status, &p.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, &p)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}
