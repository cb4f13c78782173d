package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/appdotbuilder/generus-attendance-app-sub000/services"
)

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func paramID(c echo.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// currentUserID reads the authenticated teacher/coordinator id set by
// middlewares.RequireAuth.
func currentUserID(c echo.Context) uint {
	id, _ := c.Get("user_id").(uint)
	return id
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": data})
}

func created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "data": data})
}

func okMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": msg})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{"success": false, "message": msg})
}

// serviceError maps the business-error taxonomy onto HTTP statuses. Anything
// unrecognized is an infrastructure failure and becomes a 500.
func serviceError(c echo.Context, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "validation failed",
			"fields":  verr.Fields,
		})
	case errors.Is(err, services.ErrNotFound):
		return fail(c, http.StatusNotFound, "record not found")
	case errors.Is(err, services.ErrInactive):
		return fail(c, http.StatusForbidden, "record is inactive")
	case errors.Is(err, services.ErrDuplicateCheckinToday):
		return fail(c, http.StatusConflict, "already checked in today")
	default:
		c.Logger().Error(err)
		return fail(c, http.StatusInternalServerError, "internal error")
	}
}
