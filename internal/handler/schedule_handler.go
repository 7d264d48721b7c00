package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/hospitality_backoffice/internal/controller"
	"github.com/locvowork/hospitality_backoffice/internal/logger"
	"github.com/locvowork/hospitality_backoffice/internal/schedule"
	"github.com/locvowork/hospitality_backoffice/internal/service/serviceutils"
	"github.com/locvowork/hospitality_backoffice/internal/upstream"
	"github.com/locvowork/hospitality_backoffice/pkg/scheduleexcel"
)

type ScheduleHandler struct {
	ctrl             *controller.ScheduleController
	exportLayoutPath string
}

func NewScheduleHandler(ctrl *controller.ScheduleController, exportLayoutPath string) *ScheduleHandler {
	return &ScheduleHandler{ctrl: ctrl, exportLayoutPath: exportLayoutPath}
}

// errorStatus maps an error to the status the envelope should carry:
// a load overtaken by a newer navigation becomes 409, upstream rejections
// become 502 (the suite API said no), everything else stays a plain 500.
func errorStatus(err error) int {
	if errors.Is(err, controller.ErrSuperseded) {
		return http.StatusConflict
	}
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// GetWeekHandler loads the week anchored at ?anchor=YYYY-MM-DD, or the
// controller's current anchor when the parameter is absent.
func (h *ScheduleHandler) GetWeekHandler(c echo.Context) error {
	ctx := c.Request().Context()

	ws, err := h.loadRequestedWeek(c)
	if err != nil {
		if errors.Is(err, errBadAnchor) {
			return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid anchor date", err)
		}
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to load week schedule", err)
	}

	logger.DebugLog(ctx, "serving week %s with %d entries", ws.Dates[0], len(ws.Entries))
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Week schedule loaded successfully", toWeekResponse(ws))
}

// ShiftWeekHandler navigates by ?weeks=N (negative for backwards) and
// returns the newly loaded week.
func (h *ScheduleHandler) ShiftWeekHandler(c echo.Context) error {
	weeks, err := strconv.Atoi(c.QueryParam("weeks"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid weeks offset", err)
	}

	ws, err := h.ctrl.ShiftWeek(c.Request().Context(), weeks)
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to load week schedule", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Week schedule loaded successfully", toWeekResponse(ws))
}

// CurrentWeekHandler jumps back to the Monday of the real current week.
func (h *ScheduleHandler) CurrentWeekHandler(c echo.Context) error {
	ws, err := h.ctrl.JumpToCurrentWeek(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to load week schedule", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Week schedule loaded successfully", toWeekResponse(ws))
}

// ExportWeekHandler renders the requested week as an xlsx download.
func (h *ScheduleHandler) ExportWeekHandler(c echo.Context) error {
	ws, err := h.loadRequestedWeek(c)
	if err != nil {
		if errors.Is(err, errBadAnchor) {
			return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid anchor date", err)
		}
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to load week schedule", err)
	}

	layout := h.loadLayout(c)
	data, err := scheduleexcel.NewExporter(layout).Export(toGrid(ws))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate excel file", err)
	}

	filename := fmt.Sprintf("schedule_%s.xlsx", ws.Dates[0])
	c.Response().Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().Header().Set("Content-Length", strconv.Itoa(len(data)))

	_, err = c.Response().Write(data)
	return err
}

var errBadAnchor = errors.New("anchor must be an ISO date (YYYY-MM-DD)")

func (h *ScheduleHandler) loadRequestedWeek(c echo.Context) (*schedule.WeekSchedule, error) {
	ctx := c.Request().Context()
	anchor := c.QueryParam("anchor")
	if anchor == "" {
		return h.ctrl.LoadWeek(ctx)
	}
	t, err := time.Parse(schedule.DateLayout, anchor)
	if err != nil {
		return nil, errBadAnchor
	}
	return h.ctrl.LoadWeekAt(ctx, t)
}

// loadLayout reads the optional YAML layout config; a missing or broken
// file falls back to the default layout rather than failing the export.
func (h *ScheduleHandler) loadLayout(c echo.Context) scheduleexcel.Layout {
	if h.exportLayoutPath == "" {
		return scheduleexcel.DefaultLayout()
	}
	data, err := os.ReadFile(h.exportLayoutPath)
	if err != nil {
		return scheduleexcel.DefaultLayout()
	}
	layout, err := scheduleexcel.LoadLayout(string(data))
	if err != nil {
		logger.WarnLog(c.Request().Context(), "ignoring invalid export layout %s: %v", h.exportLayoutPath, err)
		return scheduleexcel.DefaultLayout()
	}
	return layout
}
