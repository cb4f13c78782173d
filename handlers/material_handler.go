package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

type MaterialHandler struct {
	db *gorm.DB
}

func NewMaterialHandler(db *gorm.DB) *MaterialHandler { return &MaterialHandler{db: db} }

type materialPayload struct {
	Title        string `json:"title"`
	Level        string `json:"level"`
	SambungGroup string `json:"sambung_group"`
	Description  string `json:"description"`
	Link         string `json:"link"`
}

// GET /materials?level=&group=
func (h *MaterialHandler) List(c echo.Context) error {
	tx := h.db.Order("created_at DESC, id DESC")
	if level := strings.TrimSpace(c.QueryParam("level")); level != "" {
		tx = tx.Where("level = ?", level)
	}
	if group := strings.TrimSpace(c.QueryParam("group")); group != "" {
		tx = tx.Where("sambung_group = ?", group)
	}
	var out []models.Material
	if err := tx.Find(&out).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, out)
}

// POST /materials
func (h *MaterialHandler) Create(c echo.Context) error {
	var req materialPayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return fail(c, http.StatusBadRequest, "title is required")
	}
	if req.Level != "" && !models.ValidLevel(req.Level) {
		return fail(c, http.StatusBadRequest, "level must be pra-remaja, remaja or usia-mandiri")
	}
	m := models.Material{
		Title:        req.Title,
		Level:        strings.TrimSpace(req.Level),
		SambungGroup: strings.TrimSpace(req.SambungGroup),
		Description:  strings.TrimSpace(req.Description),
		Link:         strings.TrimSpace(req.Link),
		TeacherID:    currentUserID(c),
	}
	if err := h.db.Create(&m).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return created(c, m)
}

// PUT /materials/:id
func (h *MaterialHandler) Update(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var m models.Material
	if err := h.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "record not found")
		}
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	var req materialPayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return fail(c, http.StatusBadRequest, "title is required")
	}
	updates := map[string]any{
		"title":         req.Title,
		"level":         strings.TrimSpace(req.Level),
		"sambung_group": strings.TrimSpace(req.SambungGroup),
		"description":   strings.TrimSpace(req.Description),
		"link":          strings.TrimSpace(req.Link),
	}
	if err := h.db.Model(&m).Updates(updates).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, m)
}

// DELETE /materials/:id
func (h *MaterialHandler) Delete(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	res := h.db.Delete(&models.Material{}, id)
	if res.Error != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	if res.RowsAffected == 0 {
		return fail(c, http.StatusNotFound, "record not found")
	}
	return okMessage(c, "material deleted")
}
