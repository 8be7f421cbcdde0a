package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timbrapp.com/timbrapp/attendance/auth"
	"timbrapp.com/timbrapp/attendance/core"
	"timbrapp.com/timbrapp/config"
	"timbrapp.com/timbrapp/web/common"
)

// Handler bundles what every endpoint needs. Routes are registered in
// web/main.go.
type Handler struct {
	Store   core.RecordStore
	Tracker *core.Tracker
	Auth    *auth.Service
	Secret  []byte
	Loc     *time.Location
	Cfg     config.Config
	Log     *zap.SugaredLogger
}

// respondError maps the core error kinds onto HTTP statuses. Anything
// unrecognized is a 500 and gets logged; the typed kinds are expected
// outcomes and are not.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrAlreadyOnDuty), errors.Is(err, core.ErrNotOnDuty):
		c.JSON(http.StatusConflict, common.NewErrorResponse(err.Error()))
	case errors.Is(err, core.ErrInactiveEmployee):
		c.JSON(http.StatusForbidden, common.NewErrorResponse(err.Error()))
	case errors.Is(err, core.ErrInvalidEdit):
		c.JSON(http.StatusUnprocessableEntity, common.NewErrorResponse(err.Error()))
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, common.NewErrorResponse(err.Error()))
	case errors.Is(err, core.ErrAuthFailure), errors.Is(err, core.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse(err.Error()))
	default:
		h.Log.Errorw("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
	}
}
