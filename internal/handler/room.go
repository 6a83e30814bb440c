package handler

import (
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/easestay/easestay/internal/model"
    "github.com/easestay/easestay/internal/service"
)

// RoomHandler serves the public room catalog and the staff-facing
// housekeeping endpoints.
type RoomHandler struct {
    Rooms service.RoomDirectory
    Avail *service.Availability
}

func NewRoomHandler(rooms service.RoomDirectory, avail *service.Availability) *RoomHandler {
    if rooms == nil || avail == nil {
        panic("nil dependency passed to NewRoomHandler")
    }
    return &RoomHandler{Rooms: rooms, Avail: avail}
}

// List returns the full room catalog.
func (h *RoomHandler) List(c echo.Context) error {
    rooms, err := h.Rooms.ListAll(c.Request().Context())
    if err != nil {
        return serviceError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
}

// ListAvailable returns rooms currently marked available.  With checkin
// and checkout query parameters it additionally drops rooms whose dates
// clash with an existing booking.
func (h *RoomHandler) ListAvailable(c echo.Context) error {
    ctx := c.Request().Context()
    rooms, err := h.Rooms.ListAvailable(ctx)
    if err != nil {
        return serviceError(c, err)
    }

    checkin := c.QueryParam("checkin")
    checkout := c.QueryParam("checkout")
    if checkin != "" && checkout != "" {
        if _, err := time.Parse(model.DateLayout, checkin); err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date format, use YYYY-MM-DD"})
        }
        if _, err := time.Parse(model.DateLayout, checkout); err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date format, use YYYY-MM-DD"})
        }
        open := rooms[:0]
        for _, room := range rooms {
            ok, err := h.Avail.IsBookable(ctx, room.ID, checkin, checkout)
            if err != nil {
                return serviceError(c, err)
            }
            if ok {
                open = append(open, room)
            }
        }
        rooms = open
    }

    return c.JSON(http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
}

type roomStatusReq struct {
    Status string `json:"status"`
}

// UpdateStatus lets an administrator set a room's lifecycle status.
func (h *RoomHandler) UpdateStatus(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    var req roomStatusReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    status := strings.ToLower(strings.TrimSpace(req.Status))
    if !model.ValidRoomStatus(status) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status, must be: available, occupied, or maintenance"})
    }

    ctx := c.Request().Context()
    if err := h.Rooms.SetStatus(ctx, id, status); err != nil {
        return serviceError(c, err)
    }
    room, err := h.Rooms.GetByID(ctx, id)
    if err != nil {
        return serviceError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "Room status updated successfully", "room": room})
}

// MarkForCleaning flags a room for housekeeping and pulls it out of the
// bookable pool by forcing maintenance status.
func (h *RoomHandler) MarkForCleaning(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }

    ctx := c.Request().Context()
    room, err := h.Rooms.GetByID(ctx, id)
    if err != nil {
        return serviceError(c, err)
    }
    if err := h.Rooms.SetNeedsCleaning(ctx, id, true); err != nil {
        return serviceError(c, err)
    }
    if room.Status != model.RoomStatusMaintenance {
        if err := h.Rooms.SetStatus(ctx, id, model.RoomStatusMaintenance); err != nil {
            return serviceError(c, err)
        }
    }
    room, err = h.Rooms.GetByID(ctx, id)
    if err != nil {
        return serviceError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "Room marked for cleaning", "room": room})
}

// ListNeedingAttention returns the housekeeping work queue: rooms
// flagged for cleaning plus rooms sitting in maintenance.
func (h *RoomHandler) ListNeedingAttention(c echo.Context) error {
    rooms, err := h.Rooms.ListNeedingAttention(c.Request().Context())
    if err != nil {
        return serviceError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
}

// MarkClean clears the cleaning flag.  The room stays in maintenance
// until an administrator moves it back to available, so housekeeping
// cannot reopen a room that is down for repairs.
func (h *RoomHandler) MarkClean(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }

    ctx := c.Request().Context()
    if err := h.Rooms.SetNeedsCleaning(ctx, id, false); err != nil {
        return serviceError(c, err)
    }
    room, err := h.Rooms.GetByID(ctx, id)
    if err != nil {
        return serviceError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "Room marked as clean", "room": room})
}
