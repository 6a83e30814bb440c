package repository

import (
    "context"
    "database/sql"

    "github.com/easestay/easestay/internal/model"
)

// FeedbackRepo stores guest reviews.  Feedback is a trusted write; the
// booking core never reads it back.
type FeedbackRepo struct {
    db *sql.DB
}

// NewFeedbackRepo returns a FeedbackRepo bound to the given database.
func NewFeedbackRepo(db *sql.DB) *FeedbackRepo { return &FeedbackRepo{db: db} }

// Create inserts a feedback entry and populates its id and created_at.
func (r *FeedbackRepo) Create(ctx context.Context, f *model.Feedback) error {
    const q = `INSERT INTO feedback (user_id, user_email, booking_id, rating, comment) VALUES (?, ?, ?, ?, ?)`
    var bookingID any
    if f.BookingID != nil {
        bookingID = *f.BookingID
    }
    res, err := r.db.ExecContext(ctx, q, f.UserID, f.UserEmail, bookingID, f.Rating, f.Comment)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    f.ID = uint64(id)

    return r.db.QueryRowContext(ctx, `SELECT created_at FROM feedback WHERE id = ?`, f.ID).Scan(&f.CreatedAt)
}

// ListLatest returns the most recent feedback entries, newest first,
// capped at limit.
func (r *FeedbackRepo) ListLatest(ctx context.Context, limit int) ([]*model.Feedback, error) {
    const q = `SELECT id, user_id, user_email, booking_id, rating, comment, created_at
               FROM feedback ORDER BY created_at DESC, id DESC LIMIT ?`
    rows, err := r.db.QueryContext(ctx, q, limit)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]*model.Feedback, 0)
    for rows.Next() {
        var f model.Feedback
        var bookingID sql.NullInt64
        if err := rows.Scan(&f.ID, &f.UserID, &f.UserEmail, &bookingID, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
            return nil, err
        }
        if bookingID.Valid {
            id := uint64(bookingID.Int64)
            f.BookingID = &id
        }
        out = append(out, &f)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}
