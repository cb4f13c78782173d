package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

// TeacherHandler is the coordinator-facing account management for teachers.
type TeacherHandler struct {
	db *gorm.DB
}

func NewTeacherHandler(db *gorm.DB) *TeacherHandler { return &TeacherHandler{db: db} }

type teacherPayload struct {
	FullName     string `json:"full_name"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	SambungGroup string `json:"sambung_group"`
	Phone        string `json:"phone"`
}

func (p *teacherPayload) normalize() {
	p.FullName = strings.Join(strings.Fields(p.FullName), " ")
	p.Username = strings.TrimSpace(p.Username)
	p.Role = strings.ToLower(strings.TrimSpace(p.Role))
	p.SambungGroup = strings.TrimSpace(p.SambungGroup)
	p.Phone = strings.TrimSpace(p.Phone)
}

func validateTeacher(p *teacherPayload, requirePassword bool) map[string]string {
	errs := map[string]string{}
	if p.FullName == "" {
		errs["full_name"] = "full name is required"
	}
	if p.Username == "" {
		errs["username"] = "username is required"
	}
	if requirePassword && len(p.Password) < 6 {
		errs["password"] = "password must be at least 6 characters"
	}
	if p.Role != models.RoleTeacher && p.Role != models.RoleCoordinator {
		errs["role"] = "role must be teacher or coordinator"
	}
	return errs
}

// GET /teachers?include_inactive=
func (h *TeacherHandler) List(c echo.Context) error {
	tx := h.db.Order("full_name ASC")
	if c.QueryParam("include_inactive") != "true" {
		tx = tx.Where("is_active = ?", true)
	}
	var out []models.Teacher
	if err := tx.Find(&out).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, out)
}

// POST /teachers
func (h *TeacherHandler) Create(c echo.Context) error {
	var req teacherPayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	req.normalize()
	if errs := validateTeacher(&req, true); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "validation failed", "fields": errs})
	}

	var dup models.Teacher
	if err := h.db.Where("username = ?", req.Username).First(&dup).Error; err == nil {
		return fail(c, http.StatusConflict, "username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "hashing failed")
	}
	t := models.Teacher{
		FullName:     req.FullName,
		Username:     req.Username,
		Password:     string(hash),
		Role:         req.Role,
		SambungGroup: req.SambungGroup,
		Phone:        req.Phone,
		IsActive:     true,
	}
	if err := h.db.Create(&t).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return created(c, t)
}

// PUT /teachers/:id — profile fields; password only when provided.
func (h *TeacherHandler) Update(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var t models.Teacher
	if err := h.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "record not found")
		}
		return fail(c, http.StatusInternalServerError, "internal error")
	}

	var req teacherPayload
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	req.normalize()
	if errs := validateTeacher(&req, false); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "validation failed", "fields": errs})
	}

	updates := map[string]any{
		"full_name":     req.FullName,
		"username":      req.Username,
		"role":          req.Role,
		"sambung_group": req.SambungGroup,
		"phone":         req.Phone,
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return fail(c, http.StatusBadRequest, "password must be at least 6 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fail(c, http.StatusInternalServerError, "hashing failed")
		}
		updates["password"] = string(hash)
	}
	if err := h.db.Model(&t).Updates(updates).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return ok(c, t)
}

// DELETE /teachers/:id — soft delete, mirrors the generus registry.
func (h *TeacherHandler) Deactivate(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var t models.Teacher
	if err := h.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "record not found")
		}
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	if err := h.db.Model(&t).Update("is_active", false).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return okMessage(c, "teacher deactivated")
}
