package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/services"
)

type KBMHandler struct {
	svc *services.KBMService
}

func NewKBMHandler(db *gorm.DB) *KBMHandler {
	return &KBMHandler{svc: services.NewKBMService(db)}
}

// POST /kbm — creates the report plus its attendance rows in one go. The
// teacher id comes from the token, not the payload.
func (h *KBMHandler) Create(c echo.Context) error {
	var req services.KBMReportInput
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	req.TeacherID = currentUserID(c)
	report, err := h.svc.CreateReport(req)
	if err != nil {
		return serviceError(c, err)
	}
	return created(c, report)
}

// GET /kbm/:id
func (h *KBMHandler) Get(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	report, err := h.svc.GetReport(id)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, report)
}

// GET /kbm?teacher_id=&start=YYYY-MM-DD&end=YYYY-MM-DD&group=
func (h *KBMHandler) List(c echo.Context) error {
	teacherID := atoiOr(c.QueryParam("teacher_id"), 0)
	start := strings.TrimSpace(c.QueryParam("start"))
	end := strings.TrimSpace(c.QueryParam("end"))
	group := strings.TrimSpace(c.QueryParam("group"))

	switch {
	case teacherID > 0:
		out, err := h.svc.ListByTeacher(uint(teacherID))
		if err != nil {
			return serviceError(c, err)
		}
		return ok(c, out)
	case start != "" && end != "":
		out, err := h.svc.ListByDateRange(start, end)
		if err != nil {
			return serviceError(c, err)
		}
		return ok(c, out)
	case group != "":
		out, err := h.svc.ListByGroup(group)
		if err != nil {
			return serviceError(c, err)
		}
		return ok(c, out)
	default:
		return fail(c, http.StatusBadRequest, "filter by teacher_id, start+end, or group")
	}
}

// PUT /kbm/:id — session-level fields only.
func (h *KBMHandler) Update(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var req services.KBMReportUpdate
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	report, err := h.svc.UpdateReport(id, req)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, report)
}

// DELETE /kbm/:id — cascades to the attendance rows.
func (h *KBMHandler) Delete(c echo.Context) error {
	id, okID := paramID(c)
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteReport(id); err != nil {
		return serviceError(c, err)
	}
	return okMessage(c, "report deleted")
}
