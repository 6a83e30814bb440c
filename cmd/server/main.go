package main // Entry point package

import (
    "log" // Logging library

    "github.com/joho/godotenv"    // .env loader for local development
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/easestay/easestay/internal/config"     // environment config loaders
    "github.com/easestay/easestay/internal/database"   // MySQL connection pool
    "github.com/easestay/easestay/internal/handler"    // HTTP handlers
    "github.com/easestay/easestay/internal/middleware" // cache and rate limit middleware
    "github.com/easestay/easestay/internal/queue"      // booking.confirmed consumer
    "github.com/easestay/easestay/internal/repository" // MySQL repositories
    "github.com/easestay/easestay/internal/router"     // route registration
    "github.com/easestay/easestay/internal/service"    // booking core
)

func main() {
    _ = godotenv.Load() // Load .env if present; real env wins

    cfg := config.Load() // Load environment config

    db, err := database.Open(cfg) // Connect to MySQL
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    // Repositories over the shared pool.
    rooms := repository.NewRoomRepo(db)
    bookings := repository.NewBookingRepo(db)
    payments := repository.NewPaymentRepo(db)
    users := repository.NewUserRepo(db)
    feedback := repository.NewFeedbackRepo(db)
    tx := repository.NewTxRunner(db)

    // Booking core.
    avail := service.NewAvailability(rooms, bookings)
    life := service.NewLifecycle(rooms, bookings, payments, avail, tx)

    // Redis is optional; cache and rate limiting degrade to no-ops without it.
    rdb := config.NewRedisClient()
    cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
    rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

    e := echo.New()
    router.Register(e, router.Handlers{
        Health:   handler.NewHealthHandler(db),
        Auth:     handler.NewAuthHandler(cfg, users),
        Rooms:    handler.NewRoomHandler(rooms, avail),
        Bookings: handler.NewBookingHandler(life, bookings, rooms, users),
        Payments: handler.NewPaymentHandler(life, bookings),
        Feedback: handler.NewFeedbackHandler(feedback),
    }, cfg.JWTSecret, cacheMW, rateMW)

    go func() { // Background consumer writes logs/booking.log
        if err := queue.StartBookingConsumer(); err != nil {
            log.Printf("booking consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port                                // Address string with port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

    if err := e.Start(addr); err != nil { // Start HTTP server
        log.Fatal(err)
    }
}
