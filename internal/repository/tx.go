package repository

import (
    "context"
    "database/sql"
)

type txKey struct{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
    return context.WithValue(ctx, txKey{}, tx)
}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
    tx, ok := ctx.Value(txKey{}).(*sql.Tx)
    return tx, ok
}

// executor is satisfied by both *sql.DB and *sql.Tx so repository
// methods run unchanged inside or outside a transaction.
type executor interface {
    ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
    QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
    QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxRunner runs functions inside a SQL transaction.  The transaction is
// carried in the context, so repository methods invoked from fn pick it
// up transparently; committing or rolling back is this type's job alone.
type TxRunner struct {
    db *sql.DB
}

// NewTxRunner returns a TxRunner bound to the given database.
func NewTxRunner(db *sql.DB) *TxRunner { return &TxRunner{db: db} }

// WithinTx begins a transaction, runs fn with the transaction stashed
// in the context, and commits when fn returns nil.  Any error from fn
// rolls the transaction back and is returned to the caller.
func (t *TxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
    tx, err := t.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    if err := fn(withTx(ctx, tx)); err != nil {
        _ = tx.Rollback()
        return err
    }
    return tx.Commit()
}
