package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/easestay/easestay/internal/handler"    // handlers implementing the endpoints
    "github.com/easestay/easestay/internal/middleware" // JWT authentication and role enforcement
    "github.com/easestay/easestay/internal/model"      // role constants
)

// Handlers bundles every handler the API mounts.
type Handlers struct {
    Health   *handler.HealthHandler
    Auth     *handler.AuthHandler
    Rooms    *handler.RoomHandler
    Bookings *handler.BookingHandler
    Payments *handler.PaymentHandler
    Feedback *handler.FeedbackHandler
}

// Register mounts the whole API under the /api prefix.  cacheMW wraps
// the public room listings; pass nil middleware to skip a layer.
func Register(e *echo.Echo, h Handlers, jwtSecret string, cacheMW, rateMW echo.MiddlewareFunc) {
    api := e.Group("/api")
    if rateMW != nil {
        api.Use(rateMW)
    }

    // Public surface: health, room catalog, testimonials, auth.
    api.GET("/health", h.Health.Check)
    if cacheMW != nil {
        api.GET("/rooms", h.Rooms.List, cacheMW)
        api.GET("/rooms/available", h.Rooms.ListAvailable, cacheMW)
    } else {
        api.GET("/rooms", h.Rooms.List)
        api.GET("/rooms/available", h.Rooms.ListAvailable)
    }
    api.GET("/feedback", h.Feedback.List)
    api.POST("/register", h.Auth.Register)
    api.POST("/login", h.Auth.Login)

    // Any authenticated user.
    auth := api.Group("")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.Use(middleware.RequireRole(model.RoleGuest, model.RoleStaff, model.RoleAdmin))
    auth.POST("/book", h.Bookings.Create)
    auth.GET("/bookings", h.Bookings.ListOwn)
    auth.DELETE("/booking/:id", h.Bookings.Delete)
    auth.POST("/payment", h.Payments.Process)
    auth.POST("/feedback", h.Feedback.Submit)

    // Housekeeping: staff and admins.
    staff := api.Group("")
    staff.Use(middleware.JWTAuth(jwtSecret))
    staff.Use(middleware.RequireStaff())
    staff.GET("/rooms/cleaning", h.Rooms.ListNeedingAttention)
    staff.PUT("/room/:id/clean", h.Rooms.MarkClean)

    // Administration.
    admin := api.Group("")
    admin.Use(middleware.JWTAuth(jwtSecret))
    admin.Use(middleware.RequireAdmin())
    admin.GET("/bookings/all", h.Bookings.ListAll)
    admin.PUT("/room/:id/status", h.Rooms.UpdateStatus)
    admin.PUT("/room/:id/cleaning", h.Rooms.MarkForCleaning)
}
