package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/services"
)

type CheckinHandler struct {
	svc *services.CheckinService
}

func NewCheckinHandler(db *gorm.DB) *CheckinHandler {
	return &CheckinHandler{svc: services.NewCheckinService(db)}
}

// POST /checkins/scan — the scanning teacher comes from the token.
func (h *CheckinHandler) Scan(c echo.Context) error {
	var req struct {
		Barcode string `json:"barcode"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	res, err := h.svc.Scan(req.Barcode, currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return created(c, res)
}

// GET /checkins?group=&generus_id=
func (h *CheckinHandler) List(c echo.Context) error {
	group := strings.TrimSpace(c.QueryParam("group"))
	generusID := atoiOr(c.QueryParam("generus_id"), 0)

	switch {
	case generusID > 0:
		out, err := h.svc.ListByGenerus(uint(generusID))
		if err != nil {
			return serviceError(c, err)
		}
		return ok(c, out)
	case group != "":
		out, err := h.svc.ListBySambungGroup(group)
		if err != nil {
			return serviceError(c, err)
		}
		return ok(c, out)
	default:
		out, err := h.svc.ListAll()
		if err != nil {
			return serviceError(c, err)
		}
		return ok(c, out)
	}
}
