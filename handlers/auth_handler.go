package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
	"github.com/appdotbuilder/generus-attendance-app-sub000/services"
)

// AuthHandler covers the two identity paths: teachers/coordinators log in
// with username+password and get a JWT; generus "log in" by profile upsert
// with no credential at all.
type AuthHandler struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthHandler(db *gorm.DB, jwtSecret string) *AuthHandler {
	return &AuthHandler{db: db, jwtSecret: jwtSecret}
}

func (h *AuthHandler) signJWT(sub uint, role, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"name": name,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.jwtSecret))
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "username and password are required")
	}

	var t models.Teacher
	if err := h.db.Where("username = ?", username).First(&t).Error; err != nil {
		return fail(c, http.StatusUnauthorized, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(t.Password), []byte(req.Password)) != nil {
		return fail(c, http.StatusUnauthorized, "invalid credentials")
	}
	if !t.IsActive {
		return fail(c, http.StatusForbidden, "account is inactive")
	}

	token, err := h.signJWT(t.ID, t.Role, t.FullName, 7*24*time.Hour)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "token generation failed")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user": map[string]any{
			"id": t.ID, "role": t.Role, "username": t.Username, "name": t.FullName,
		},
	})
}

// POST /auth/generus/login
// Passwordless: resolves (name, level, group) to a profile, creating or
// updating it in place. This is a lookup, not an authentication boundary.
func (h *AuthHandler) GenerusLogin(c echo.Context) error {
	var req services.GenerusProfile
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	g, err := services.NewGenerusService(h.db).UpsertProfile(req)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, g)
}

type changePasswordReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// PUT /profile/password
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if len(req.NewPassword) < 6 {
		return fail(c, http.StatusBadRequest, "new password must be at least 6 characters")
	}

	var t models.Teacher
	if err := h.db.First(&t, currentUserID(c)).Error; err != nil {
		return fail(c, http.StatusUnauthorized, "unknown account")
	}
	if bcrypt.CompareHashAndPassword([]byte(t.Password), []byte(req.OldPassword)) != nil {
		return fail(c, http.StatusUnauthorized, "wrong current password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "hashing failed")
	}
	if err := h.db.Model(&t).Update("password", string(hash)).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "update failed")
	}
	return okMessage(c, "password updated")
}
