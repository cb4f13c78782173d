package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
	"github.com/appdotbuilder/generus-attendance-app-sub000/services"
)

type AttendanceHandler struct {
	svc *services.AttendanceService
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler {
	return &AttendanceHandler{svc: services.NewAttendanceService(db)}
}

// PUT /attendance/:id/status — post-hoc correction of one mark.
func (h *AttendanceHandler) UpdateStatus(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var req struct {
		Status models.AttendanceStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	row, err := h.svc.UpdateStatus(id, req.Status)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, row)
}

// GET /attendance/summary
func (h *AttendanceHandler) Summary(c echo.Context) error {
	sum, err := h.svc.SystemSummary()
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, sum)
}

// GET /generus/:id/attendance
func (h *AttendanceHandler) StatsForGenerus(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	stats, err := h.svc.StatsForGenerus(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, stats)
}
