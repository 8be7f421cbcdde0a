package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timbrapp.com/timbrapp/attendance/core"
	"timbrapp.com/timbrapp/observability"
	"timbrapp.com/timbrapp/utils"
	"timbrapp.com/timbrapp/web/common"
	"timbrapp.com/timbrapp/web/middlewares"
)

// MyStatus reports the derived duty status of the logged-in employee plus
// the open entry, if any, so the kiosk can show when the shift started.
func (h *Handler) MyStatus(c *gin.Context) {
	claims := middlewares.SessionFrom(c)

	status, err := h.Tracker.Status(c.Request.Context(), claims.Subject)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := gin.H{"status": status}
	if status == core.OnDuty {
		open, err := h.Store.OpenEntry(c.Request.Context(), claims.Subject)
		if err == nil && open != nil {
			resp["openEntry"] = open
		}
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(resp))
}

func (h *Handler) ClockIn(c *gin.Context) {
	claims := middlewares.SessionFrom(c)

	emp, err := h.Store.EmployeeByID(c.Request.Context(), claims.Subject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if emp == nil {
		h.respondError(c, core.ErrNotFound)
		return
	}

	entry, err := h.Tracker.ClockIn(c.Request.Context(), emp, time.Now())
	if err != nil {
		switch {
		case err == core.ErrAlreadyOnDuty:
			observability.RecordClockRejection("already_on_duty")
		case err == core.ErrInactiveEmployee:
			observability.RecordClockRejection("inactive_employee")
		}
		h.respondError(c, err)
		return
	}

	observability.RecordClockIn()
	h.Log.Infow("clock-in", "employee", emp.ID, "entry", entry.ID)
	c.JSON(http.StatusOK, common.NewSuccessResponse(entry))
}

func (h *Handler) ClockOut(c *gin.Context) {
	claims := middlewares.SessionFrom(c)

	emp, err := h.Store.EmployeeByID(c.Request.Context(), claims.Subject)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if emp == nil {
		h.respondError(c, core.ErrNotFound)
		return
	}

	entry, err := h.Tracker.ClockOut(c.Request.Context(), emp, time.Now())
	if err != nil {
		if err == core.ErrNotOnDuty {
			observability.RecordClockRejection("not_on_duty")
		}
		h.respondError(c, err)
		return
	}

	observability.RecordClockOut()
	h.Log.Infow("clock-out", "employee", emp.ID, "entry", entry.ID, "hours", *entry.HoursWorked)
	c.JSON(http.StatusOK, common.NewSuccessResponse(entry))
}

// MyEntries lists the logged-in employee's entries for a date range.
// Without parameters it covers today; ?range=week|month selects the current
// week (Monday start) or calendar month instead.
func (h *Handler) MyEntries(c *gin.Context) {
	claims := middlewares.SessionFrom(c)

	now := time.Now()
	var start, end time.Time
	switch c.Query("range") {
	case "week":
		start, end = utils.WeekRange(now, h.Loc)
	case "month":
		start, end = utils.MonthRange(now, h.Loc)
	default:
		start, end = utils.DayRange(now, h.Loc)
	}

	if s := c.Query("start"); s != "" {
		t, err := utils.ParseISOTime(s, h.Loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
			return
		}
		start = utils.DayStart(*t, h.Loc)
	}
	if s := c.Query("end"); s != "" {
		t, err := utils.ParseISOTime(s, h.Loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
			return
		}
		end = utils.DayStart(*t, h.Loc).AddDate(0, 0, 1)
	}

	entries, err := h.Store.EntriesInRange(c.Request.Context(), start, end, claims.Subject)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSearchResponse(entries, int64(len(entries))))
}
