package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timbrapp.com/timbrapp/attendance/core"
	"timbrapp.com/timbrapp/utils"
	"timbrapp.com/timbrapp/web/common"
)

type EntryCreateDTO struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	EntryTime  string `json:"entryTime" binding:"required"`
	ExitTime   string `json:"exitTime,omitempty"`
	Notes      string `json:"notes,omitempty" binding:"max=500"`
}

// CreateEntry is the administrative manual-entry path. The entry may be
// created already closed; an open one is subject to the one-open-entry
// invariant like any clock-in.
func (h *Handler) CreateEntry(c *gin.Context) {
	var body EntryCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	entryTime, err := utils.ParseISOTime(body.EntryTime, h.Loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}
	var exitTime *time.Time
	if body.ExitTime != "" {
		exitTime, err = utils.ParseISOTime(body.ExitTime, h.Loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
			return
		}
	}

	entry, err := h.Tracker.CreateManualEntry(c.Request.Context(), body.EmployeeID, *entryTime, exitTime, body.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Log.Infow("manual entry created", "employee", body.EmployeeID, "entry", entry.ID)
	c.JSON(http.StatusOK, common.NewSuccessResponse(entry))
}

type EntryUpdateDTO struct {
	EntryTime *string `json:"entryTime,omitempty"`
	ExitTime  *string `json:"exitTime,omitempty"`
	// ClearExit reopens the entry; mutually exclusive with exitTime.
	ClearExit bool    `json:"clearExit,omitempty"`
	Notes     *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (h *Handler) UpdateEntry(c *gin.Context) {
	id := c.Param("id")

	var body EntryUpdateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if body.ClearExit && body.ExitTime != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("clearExit and exitTime are mutually exclusive"))
		return
	}

	fields := core.EntryFields{ClearExit: body.ClearExit, Notes: body.Notes}
	if body.EntryTime != nil {
		t, err := utils.ParseISOTime(*body.EntryTime, h.Loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
			return
		}
		fields.EntryTime = t
	}
	if body.ExitTime != nil {
		t, err := utils.ParseISOTime(*body.ExitTime, h.Loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
			return
		}
		fields.ExitTime = t
	}

	entry, err := h.Tracker.EditEntry(c.Request.Context(), id, fields)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(entry))
}

func (h *Handler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")

	if err := h.Tracker.DeleteEntry(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	h.Log.Infow("entry deleted", "entry", id)
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}
