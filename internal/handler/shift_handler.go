package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/hospitality_backoffice/internal/controller"
	"github.com/locvowork/hospitality_backoffice/internal/domain"
	"github.com/locvowork/hospitality_backoffice/internal/schedule"
	"github.com/locvowork/hospitality_backoffice/internal/service/serviceutils"
)

type ShiftHandler struct {
	ctrl *controller.ScheduleController
}

func NewShiftHandler(ctrl *controller.ScheduleController) *ShiftHandler {
	return &ShiftHandler{ctrl: ctrl}
}

// CreateHandler creates one shift upstream and returns the refreshed week.
func (h *ShiftHandler) CreateHandler(c echo.Context) error {
	var req CreateShiftRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if req.Employee <= 0 {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Employee id is required", nil)
	}
	if _, err := time.Parse(schedule.DateLayout, req.ShiftDate); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid shift date", err)
	}

	in := &domain.CreateShift{
		Employee:  req.Employee,
		Date:      req.ShiftDate,
		Type:      domain.ShiftType(req.ShiftType),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	}
	if !in.Type.Valid() {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Unknown shift type", nil)
	}

	ws, err := h.ctrl.CreateShift(c.Request().Context(), in)
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to create shift", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Shift created successfully", toWeekResponse(ws))
}

// UpdateHandler patches one shift's mutable fields and returns the
// refreshed week.
func (h *ShiftHandler) UpdateHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid shift ID", err)
	}

	var req UpdateShiftRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	patch := &domain.ShiftPatch{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	}
	if req.ShiftType != nil {
		st := domain.ShiftType(*req.ShiftType)
		if !st.Valid() {
			return serviceutils.ResponseError(c, http.StatusBadRequest, "Unknown shift type", nil)
		}
		patch.Type = &st
	}

	ws, err := h.ctrl.UpdateShift(c.Request().Context(), id, patch)
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to update shift", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Shift updated successfully", toWeekResponse(ws))
}

// DeleteHandler removes one shift and returns the refreshed week. The
// blocking confirm dialog is the UI's job; this endpoint deletes on sight.
func (h *ShiftHandler) DeleteHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid shift ID", err)
	}

	ws, err := h.ctrl.DeleteShift(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to delete shift", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Shift deleted successfully", toWeekResponse(ws))
}
