package repository

import (
    "context"
    "database/sql"
    "encoding/json"
    "errors"
    "fmt"

    "github.com/easestay/easestay/internal/model"
    "github.com/easestay/easestay/internal/service"
)

// RoomRepo is the MySQL implementation of service.RoomDirectory.  The
// amenities list is stored as a JSON array in a TEXT column; everything
// else maps one to one onto the rooms table.
type RoomRepo struct {
    db *sql.DB
}

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

func (r *RoomRepo) conn(ctx context.Context) executor {
    if tx, ok := txFromContext(ctx); ok {
        return tx
    }
    return r.db
}

const roomColumns = `id, name, type, room_number, price, capacity, amenities, description, image, status, needs_cleaning, created_at, updated_at`

func scanRoom(row interface{ Scan(dest ...any) error }) (*model.Room, error) {
    var rm model.Room
    var amenities sql.NullString
    err := row.Scan(&rm.ID, &rm.Name, &rm.Type, &rm.RoomNumber, &rm.Price, &rm.Capacity,
        &amenities, &rm.Description, &rm.Image, &rm.Status, &rm.NeedsCleaning,
        &rm.CreatedAt, &rm.UpdatedAt)
    if err != nil {
        return nil, err
    }
    rm.Amenities = []string{}
    if amenities.Valid && amenities.String != "" {
        if err := json.Unmarshal([]byte(amenities.String), &rm.Amenities); err != nil {
            return nil, fmt.Errorf("decode amenities for room %d: %w", rm.ID, err)
        }
    }
    return &rm, nil
}

// Create inserts a new room.  Status defaults to available when unset.
// The row is read back afterwards so timestamps and defaults are
// populated on the provided struct.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
    if room.Status == "" {
        room.Status = model.RoomStatusAvailable
    }
    if !model.ValidRoomStatus(room.Status) {
        return fmt.Errorf("%w: invalid status, must be available, occupied or maintenance", service.ErrValidation)
    }
    amenities, err := json.Marshal(room.Amenities)
    if err != nil {
        return err
    }
    const q = `INSERT INTO rooms (name, type, room_number, price, capacity, amenities, description, image, status, needs_cleaning)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := r.conn(ctx).ExecContext(ctx, q,
        room.Name, room.Type, room.RoomNumber, room.Price, room.Capacity,
        string(amenities), room.Description, room.Image, room.Status, room.NeedsCleaning)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    room.ID = uint64(id)

    created, err := r.GetByID(ctx, room.ID)
    if err != nil {
        return err
    }
    *room = *created
    return nil
}

// GetByID returns a single room or service.ErrRoomNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
    const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
    rm, err := scanRoom(r.conn(ctx).QueryRowContext(ctx, q, id))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, service.ErrRoomNotFound
        }
        return nil, err
    }
    return rm, nil
}

func (r *RoomRepo) list(ctx context.Context, q string, args ...any) ([]*model.Room, error) {
    rows, err := r.conn(ctx).QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]*model.Room, 0)
    for rows.Next() {
        rm, err := scanRoom(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, rm)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// ListAll returns every room ordered by room number.
func (r *RoomRepo) ListAll(ctx context.Context) ([]*model.Room, error) {
    return r.list(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY room_number`)
}

// ListAvailable returns rooms whose status is available.
func (r *RoomRepo) ListAvailable(ctx context.Context) ([]*model.Room, error) {
    return r.list(ctx, `SELECT `+roomColumns+` FROM rooms WHERE status = ? ORDER BY room_number`,
        model.RoomStatusAvailable)
}

// ListNeedingAttention returns the housekeeping work queue: rooms with
// the needs_cleaning flag set or in maintenance status.
func (r *RoomRepo) ListNeedingAttention(ctx context.Context) ([]*model.Room, error) {
    return r.list(ctx, `SELECT `+roomColumns+` FROM rooms WHERE needs_cleaning = TRUE OR status = ? ORDER BY room_number`,
        model.RoomStatusMaintenance)
}

// SetStatus updates a room's status.  Values outside the enumeration
// are rejected before any write.  Returns service.ErrRoomNotFound when
// no row matches.
func (r *RoomRepo) SetStatus(ctx context.Context, id uint64, status string) error {
    if !model.ValidRoomStatus(status) {
        return fmt.Errorf("%w: invalid status, must be available, occupied or maintenance", service.ErrValidation)
    }
    const q = `UPDATE rooms SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
    res, err := r.conn(ctx).ExecContext(ctx, q, status, id)
    if err != nil {
        return err
    }
    return r.checkUpdated(ctx, res, id)
}

// SetNeedsCleaning flips the housekeeping flag.  Returns
// service.ErrRoomNotFound when no row matches.
func (r *RoomRepo) SetNeedsCleaning(ctx context.Context, id uint64, needs bool) error {
    const q = `UPDATE rooms SET needs_cleaning = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
    res, err := r.conn(ctx).ExecContext(ctx, q, needs, id)
    if err != nil {
        return err
    }
    return r.checkUpdated(ctx, res, id)
}

// checkUpdated distinguishes a missing row from a no-op write.  MySQL
// reports changed rows rather than matched rows, so rewriting the value
// already stored affects zero rows; a miss is confirmed with an
// existence probe before reporting not-found.
func (r *RoomRepo) checkUpdated(ctx context.Context, res sql.Result, id uint64) error {
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n > 0 {
        return nil
    }
    var one int
    err = r.conn(ctx).QueryRowContext(ctx, `SELECT 1 FROM rooms WHERE id = ?`, id).Scan(&one)
    if errors.Is(err, sql.ErrNoRows) {
        return service.ErrRoomNotFound
    }
    return err
}
