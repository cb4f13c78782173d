package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/services"
)

type GenerusHandler struct {
	svc *services.GenerusService
}

func NewGenerusHandler(db *gorm.DB) *GenerusHandler {
	return &GenerusHandler{svc: services.NewGenerusService(db)}
}

// GET /generus?group=&include_inactive=
func (h *GenerusHandler) List(c echo.Context) error {
	group := strings.TrimSpace(c.QueryParam("group"))
	includeInactive := c.QueryParam("include_inactive") == "true"

	if group != "" {
		out, err := h.svc.ListByGroup(group, includeInactive)
		if err != nil {
			return serviceError(c, err)
		}
		return ok(c, out)
	}
	out, err := h.svc.ListAll(includeInactive)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, out)
}

// GET /generus/:id — returns archived members too (historical views).
func (h *GenerusHandler) Get(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	g, err := h.svc.FindByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, g)
}

// POST /generus — upsert on (full name, sambung group).
func (h *GenerusHandler) Upsert(c echo.Context) error {
	var req services.GenerusProfile
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	g, err := h.svc.UpsertProfile(req)
	if err != nil {
		return serviceError(c, err)
	}
	return created(c, g)
}

// DELETE /generus/:id — soft delete.
func (h *GenerusHandler) Deactivate(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Deactivate(id); err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "generus deactivated")
}

// POST /generus/:id/barcode — assign (or replace) the scan code.
func (h *GenerusHandler) AssignBarcode(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	g, err := h.svc.AssignBarcode(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, g)
}

// GET /generus/barcode/:code
func (h *GenerusHandler) FindByBarcode(c echo.Context) error {
	g, err := h.svc.FindByBarcode(c.Param("code"))
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, g)
}
