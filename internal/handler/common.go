// Package handler defines the HTTP handlers for the EaseStay API.
// Handlers bind request bodies, call into the service layer and map its
// sentinel errors onto HTTP status codes.
package handler

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/easestay/easestay/internal/service"
)

// getUserID extracts the user_id from echo.Context and converts it to uint64.
// JWT claims decode numbers as float64, so several shapes are accepted.
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// getRole returns the role claim stored by the JWT middleware, or "".
func getRole(c echo.Context) string {
    if s, ok := c.Get("role").(string); ok {
        return s
    }
    return ""
}

// getEmail returns the email claim stored by the JWT middleware, or "".
func getEmail(c echo.Context) string {
    if s, ok := c.Get("email").(string); ok {
        return s
    }
    return ""
}

// identityFrom builds the service identity of the authenticated caller.
func identityFrom(c echo.Context) (service.Identity, error) {
    uid, err := getUserID(c)
    if err != nil {
        return service.Identity{}, err
    }
    return service.Identity{UserID: uid, Role: getRole(c)}, nil
}

// serviceError maps a service-layer error onto a JSON error response.
func serviceError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, service.ErrRoomNotFound),
        errors.Is(err, service.ErrBookingNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
    case errors.Is(err, service.ErrForbidden):
        return c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized"})
    case errors.Is(err, service.ErrValidation),
        errors.Is(err, service.ErrRoomUnavailable),
        errors.Is(err, service.ErrDateConflict),
        errors.Is(err, service.ErrNotCancellable),
        errors.Is(err, service.ErrAmountRequired):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
    }
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
    return strconv.ParseUint(c.Param("id"), 10, 64)
}
