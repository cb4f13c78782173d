package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

type FeedbackHandler struct {
	db *gorm.DB
}

func NewFeedbackHandler(db *gorm.DB) *FeedbackHandler { return &FeedbackHandler{db: db} }

// POST /feedback — open to everyone, name optional.
func (h *FeedbackHandler) Create(c echo.Context) error {
	var req struct {
		Name    string `json:"name"`
		Role    string `json:"role"`
		Message string `json:"message"`
		Rating  int    `json:"rating"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return fail(c, http.StatusBadRequest, "message is required")
	}
	if req.Rating < 0 || req.Rating > 5 {
		return fail(c, http.StatusBadRequest, "rating must be between 1 and 5")
	}
	fb := models.Feedback{
		Name:    strings.TrimSpace(req.Name),
		Role:    strings.ToLower(strings.TrimSpace(req.Role)),
		Message: req.Message,
		Rating:  req.Rating,
	}
	if err := h.db.Create(&fb).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return created(c, fb)
}

// GET /feedback — coordinator review list.
func (h *FeedbackHandler) List(c echo.Context) error {
	var out []models.Feedback
	if err := h.db.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, out)
}
