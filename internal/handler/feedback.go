package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/easestay/easestay/internal/model"
    "github.com/easestay/easestay/internal/repository"
)

// FeedbackHandler accepts guest feedback and serves the public
// testimonial list.
type FeedbackHandler struct {
    Feedback *repository.FeedbackRepo
}

func NewFeedbackHandler(feedback *repository.FeedbackRepo) *FeedbackHandler {
    if feedback == nil {
        panic("nil repository passed to NewFeedbackHandler")
    }
    return &FeedbackHandler{Feedback: feedback}
}

type feedbackReq struct {
    Rating    uint8   `json:"rating"`
    Comment   string  `json:"comment"`
    BookingID *uint64 `json:"booking_id"`
}

// Submit records a rating and comment from an authenticated user.
func (h *FeedbackHandler) Submit(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req feedbackReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.Rating == 0 || strings.TrimSpace(req.Comment) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating and comment are required"})
    }
    if req.Rating > 5 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
    }

    f := &model.Feedback{
        UserID:    uid,
        UserEmail: getEmail(c),
        BookingID: req.BookingID,
        Rating:    req.Rating,
        Comment:   req.Comment,
    }
    if err := h.Feedback.Create(c.Request().Context(), f); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save feedback failed"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"message": "Feedback submitted successfully", "feedback": f})
}

// List returns the 50 most recent feedback entries, newest first.
func (h *FeedbackHandler) List(c echo.Context) error {
    items, err := h.Feedback.ListLatest(c.Request().Context(), 50)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load feedback failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"feedback": items, "count": len(items)})
}
