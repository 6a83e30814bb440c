package handler

import (
    "context"
    "database/sql"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness and database reachability for
// load balancers and monitoring.
type HealthHandler struct {
    DB *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler { return &HealthHandler{DB: db} }

// Check pings the database with a short timeout and reports the result.
// The endpoint itself always answers 200; a broken database shows up in
// the payload, not the status code.
func (h *HealthHandler) Check(c echo.Context) error {
    database := "connected"
    ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
    defer cancel()
    if h.DB == nil || h.DB.PingContext(ctx) != nil {
        database = "disconnected"
    }
    return c.JSON(http.StatusOK, echo.Map{
        "status":   "healthy",
        "message":  "EaseStay API is running",
        "database": database,
    })
}
