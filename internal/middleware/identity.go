package middleware

// identity.go defines helpers shared across middleware files. The rate
// limiter keys buckets per user where possible and falls back to the
// anonymous "guest" identity when no token was presented.

import (
    "strconv"

    "github.com/labstack/echo/v4"
)

// userID extracts a user identifier from the context populated by
// JWTAuth. It returns "guest" when no user is authenticated.
func userID(c echo.Context) string {
    switch v := c.Get("user_id").(type) {
    case float64: // MapClaims decode numeric claims as float64
        return strconv.FormatUint(uint64(v), 10)
    case string:
        if v != "" {
            return v
        }
    case uint64:
        return strconv.FormatUint(v, 10)
    }
    return "guest"
}
