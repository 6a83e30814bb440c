package handler

import (
    "encoding/json"
    "fmt"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/easestay/easestay/internal/service"
)

func testContext() (echo.Context, *httptest.ResponseRecorder) {
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    rec := httptest.NewRecorder()
    return e.NewContext(req, rec), rec
}

func TestGetUserID(t *testing.T) {
    cases := []struct {
        name  string
        value interface{}
        want  uint64
        ok    bool
    }{
        {"float64 claim", float64(7), 7, true},
        {"uint64", uint64(7), 7, true},
        {"int", 7, 7, true},
        {"numeric string", "7", 7, true},
        {"garbage string", "x", 0, false},
        {"missing", nil, 0, false},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            c, _ := testContext()
            if tc.value != nil {
                c.Set("user_id", tc.value)
            }
            got, err := getUserID(c)
            if tc.ok && (err != nil || got != tc.want) {
                t.Fatalf("getUserID = (%d, %v), want (%d, nil)", got, err, tc.want)
            }
            if !tc.ok && err == nil {
                t.Fatalf("getUserID = (%d, nil), want error", got)
            }
        })
    }
}

func TestServiceErrorMapping(t *testing.T) {
    cases := []struct {
        err  error
        want int
    }{
        {service.ErrRoomNotFound, http.StatusNotFound},
        {service.ErrBookingNotFound, http.StatusNotFound},
        {service.ErrForbidden, http.StatusForbidden},
        {service.ErrRoomUnavailable, http.StatusBadRequest},
        {service.ErrDateConflict, http.StatusBadRequest},
        {service.ErrNotCancellable, http.StatusBadRequest},
        {service.ErrAmountRequired, http.StatusBadRequest},
        {fmt.Errorf("%w: guests must be at least 1", service.ErrValidation), http.StatusBadRequest},
        {fmt.Errorf("connection refused"), http.StatusInternalServerError},
    }
    for _, tc := range cases {
        t.Run(tc.err.Error(), func(t *testing.T) {
            c, rec := testContext()
            if err := serviceError(c, tc.err); err != nil {
                t.Fatalf("serviceError returned error: %v", err)
            }
            if rec.Code != tc.want {
                t.Fatalf("status for %v = %d, want %d", tc.err, rec.Code, tc.want)
            }
            var body map[string]string
            if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
                t.Fatalf("response is not JSON: %v", err)
            }
            if body["error"] == "" {
                t.Fatal("error field missing from response body")
            }
        })
    }
}

func TestServiceErrorHidesInternals(t *testing.T) {
    c, rec := testContext()
    _ = serviceError(c, fmt.Errorf("dial tcp 10.0.0.5:3306: connect: connection refused"))
    var body map[string]string
    _ = json.Unmarshal(rec.Body.Bytes(), &body)
    if body["error"] != "internal server error" {
        t.Fatalf("internal error leaked to client: %q", body["error"])
    }
}
