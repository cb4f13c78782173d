package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{svc: services.NewStatsService(db)}
}

// GET /stats/dashboard
func (h *StatsHandler) Dashboard(c echo.Context) error {
	out, err := h.svc.DashboardStats()
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, out)
}

// GET /stats/monthly?year=2024 (default: current year)
func (h *StatsHandler) Monthly(c echo.Context) error {
	year := atoiOr(c.QueryParam("year"), 0)
	out, err := h.svc.MonthlyAttendance(year)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, out)
}

// GET /stats/teachers/:id
func (h *StatsHandler) Teacher(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	out, err := h.svc.TeacherStats(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, out)
}

// GET /stats/generus/:id
func (h *StatsHandler) Generus(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	out, err := h.svc.GenerusOverview(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, out)
}
