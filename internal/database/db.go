package database

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    _ "github.com/go-sql-driver/mysql"

    "github.com/easestay/easestay/internal/config"
)

// Open connects to the MySQL instance described by cfg and verifies the
// connection with a short ping before handing the pool back.
func Open(cfg config.Config) (*sql.DB, error) {
    db, err := sql.Open("mysql", dsn(cfg))
    if err != nil {
        return nil, err
    }

    db.SetMaxOpenConns(20)
    db.SetMaxIdleConns(10)
    db.SetConnMaxLifetime(30 * time.Minute)

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := db.PingContext(ctx); err != nil {
        db.Close()
        return nil, err
    }
    return db, nil
}

// dsn assembles the driver connection string. parseTime=true maps
// DATETIME columns to time.Time; loc=UTC keeps stored times consistent.
func dsn(cfg config.Config) string {
    auth := cfg.DBUser
    if cfg.DBPass != "" {
        auth = fmt.Sprintf("%s:%s", cfg.DBUser, cfg.DBPass)
    }
    return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
        auth, cfg.DBHost, cfg.DBPort, cfg.DBName)
}
