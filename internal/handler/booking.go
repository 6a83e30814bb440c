package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/easestay/easestay/internal/model"
    "github.com/easestay/easestay/internal/repository"
    "github.com/easestay/easestay/internal/service"
)

// BookingHandler serves booking creation, listing and cancellation.
// Listing responses embed denormalized room and user details so the
// frontend renders booking cards without extra round trips.
type BookingHandler struct {
    Life     *service.Lifecycle
    Bookings service.BookingLedger
    Rooms    service.RoomDirectory
    Users    *repository.UserRepo
}

func NewBookingHandler(life *service.Lifecycle, bookings service.BookingLedger, rooms service.RoomDirectory, users *repository.UserRepo) *BookingHandler {
    if life == nil || bookings == nil || rooms == nil || users == nil {
        panic("nil dependency passed to NewBookingHandler")
    }
    return &BookingHandler{Life: life, Bookings: bookings, Rooms: rooms, Users: users}
}

// ----- DTOs -----

type createBookingReq struct {
    RoomID       uint64 `json:"room_id"`
    CheckinDate  string `json:"checkin_date"`
    CheckoutDate string `json:"checkout_date"`
    Guests       uint32 `json:"guests"`
    Rooms        uint32 `json:"rooms"`
}

type roomDetails struct {
    Name       string `json:"name"`
    Image      string `json:"image"`
    RoomNumber string `json:"roomNumber"`
}

type userDetails struct {
    Email     string `json:"email"`
    FirstName string `json:"firstName"`
    LastName  string `json:"lastName"`
    Phone     string `json:"phone"`
}

type bookingView struct {
    *model.Booking
    RoomDetails *roomDetails `json:"room_details,omitempty"`
    UserDetails *userDetails `json:"user_details,omitempty"`
}

// Create places a new pending booking for the authenticated user.
func (h *BookingHandler) Create(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req createBookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.RoomID == 0 || req.CheckinDate == "" || req.CheckoutDate == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id, checkin_date, checkout_date and guests are required"})
    }

    b, err := h.Life.RequestBooking(c.Request().Context(), uid, service.BookingRequest{
        RoomID:       req.RoomID,
        CheckinDate:  req.CheckinDate,
        CheckoutDate: req.CheckoutDate,
        Guests:       req.Guests,
        Rooms:        req.Rooms,
    })
    if err != nil {
        return serviceError(c, err)
    }
    return c.JSON(http.StatusCreated, echo.Map{"message": "Booking created successfully", "booking": b})
}

// ListOwn returns the caller's bookings, newest first, with room details.
func (h *BookingHandler) ListOwn(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx := c.Request().Context()
    bookings, err := h.Bookings.ListByUser(ctx, uid)
    if err != nil {
        return serviceError(c, err)
    }

    views := make([]bookingView, 0, len(bookings))
    for _, b := range bookings {
        v := bookingView{Booking: b}
        if room, err := h.Rooms.GetByID(ctx, b.RoomID); err == nil {
            v.RoomDetails = &roomDetails{Name: room.Name, Image: room.Image, RoomNumber: room.RoomNumber}
        }
        views = append(views, v)
    }
    return c.JSON(http.StatusOK, echo.Map{"bookings": views, "count": len(views)})
}

// ListAll returns every booking with user and room details attached.
// Admin only.
func (h *BookingHandler) ListAll(c echo.Context) error {
    ctx := c.Request().Context()
    bookings, err := h.Bookings.ListAll(ctx)
    if err != nil {
        return serviceError(c, err)
    }

    views := make([]bookingView, 0, len(bookings))
    for _, b := range bookings {
        v := bookingView{Booking: b}
        if room, err := h.Rooms.GetByID(ctx, b.RoomID); err == nil {
            v.RoomDetails = &roomDetails{Name: room.Name, Image: room.Image, RoomNumber: room.RoomNumber}
        }
        if u, err := h.Users.GetByID(ctx, b.UserID); err == nil {
            v.UserDetails = &userDetails{Email: u.Email, FirstName: u.FirstName, LastName: u.LastName, Phone: u.Phone}
        }
        views = append(views, v)
    }
    return c.JSON(http.StatusOK, echo.Map{"bookings": views, "count": len(views)})
}

// Delete cancels a booking.  Owners may cancel their own pending
// bookings; administrators may cancel anything.
func (h *BookingHandler) Delete(c echo.Context) error {
    requester, err := identityFrom(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }

    if err := h.Life.CancelBooking(c.Request().Context(), requester, id); err != nil {
        return serviceError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "Booking deleted successfully"})
}
