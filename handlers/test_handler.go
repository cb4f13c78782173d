package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/services"
)

type TestHandler struct {
	svc *services.TestService
}

func NewTestHandler(db *gorm.DB) *TestHandler {
	return &TestHandler{svc: services.NewTestService(db)}
}

// POST /tests
func (h *TestHandler) Create(c echo.Context) error {
	var req services.TestResultInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	row, err := h.svc.RecordResult(req)
	if err != nil {
		return serviceError(c, err)
	}
	return created(c, row)
}

// GET /generus/:id/tests
func (h *TestHandler) ListByGenerus(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	out, err := h.svc.ListByGenerus(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, out)
}
