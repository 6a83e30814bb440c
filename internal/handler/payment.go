package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/easestay/easestay/internal/queue"
    "github.com/easestay/easestay/internal/service"
)

// PaymentHandler processes payments, which doubles as booking
// confirmation: a paid booking is a confirmed booking.
type PaymentHandler struct {
    Life     *service.Lifecycle
    Bookings service.BookingLedger
}

func NewPaymentHandler(life *service.Lifecycle, bookings service.BookingLedger) *PaymentHandler {
    if life == nil || bookings == nil {
        panic("nil dependency passed to NewPaymentHandler")
    }
    return &PaymentHandler{Life: life, Bookings: bookings}
}

type paymentReq struct {
    BookingID     uint64  `json:"booking_id"`
    Amount        float64 `json:"amount"`
    PaymentMethod string  `json:"payment_method"`
}

// Process records a payment for a booking, confirms it and flips the
// room to occupied.  On success a booking.confirmed event goes to the
// broker; a publish failure never fails the request.
func (h *PaymentHandler) Process(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req paymentReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.BookingID == 0 || req.Amount == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking ID and amount are required"})
    }

    ctx := c.Request().Context()
    p, err := h.Life.ConfirmAndPay(ctx, uid, req.BookingID, req.Amount, req.PaymentMethod)
    if err != nil {
        return serviceError(c, err)
    }

    if b, err := h.Bookings.GetByID(ctx, req.BookingID); err == nil {
        ev := queue.BookingConfirmedEvent{
            BookingID:    b.ID,
            UserID:       b.UserID,
            RoomID:       b.RoomID,
            RoomNumber:   b.RoomNumber,
            RoomName:     b.RoomName,
            CheckinDate:  b.CheckinDate,
            CheckoutDate: b.CheckoutDate,
            TotalPrice:   b.TotalPrice,
            AmountPaid:   p.Amount,
            Reference:    p.Reference,
            ConfirmedAt:  time.Now().UTC().Format(time.RFC3339),
        }
        go func() {
            pctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
            defer cancel()
            _ = queue.PublishBookingConfirmed(pctx, ev)
        }()
    }

    return c.JSON(http.StatusOK, echo.Map{"message": "Room booked successfully", "payment": p})
}
