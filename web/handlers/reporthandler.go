package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timbrapp.com/timbrapp/attendance/core"
	"timbrapp.com/timbrapp/attendance/export"
	"timbrapp.com/timbrapp/infrastructure/filesystem"
	"timbrapp.com/timbrapp/observability"
	"timbrapp.com/timbrapp/web/common"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportSearchDTO struct {
	StartDate  *common.DateOnly `json:"startDate" binding:"required"`
	EndDate    *common.DateOnly `json:"endDate" binding:"required"`
	EmployeeID string           `json:"employeeId,omitempty"`
}

// SearchReport aggregates the entries in [startDate, endDate] (end day
// inclusive) into per-employee summaries.
func (h *Handler) SearchReport(c *gin.Context) {
	var body ReportSearchDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	reports, total, err := h.buildReport(c.Request.Context(), body.StartDate.In(h.Loc), body.EndDate.In(h.Loc), body.EmployeeID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSearchResponse(reports, total))
}

// ExportReport streams the report as an XLSX download and, when an export
// bucket is configured, archives a copy there.
func (h *Handler) ExportReport(c *gin.Context) {
	start, err := time.ParseInLocation("2006-01-02", c.Query("start"), h.Loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid start date"))
		return
	}
	end, err := time.ParseInLocation("2006-01-02", c.Query("end"), h.Loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid end date"))
		return
	}

	reports, _, err := h.buildReport(c.Request.Context(), start, end, c.Query("employeeId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	buf, err := export.ReportWorkbook(reports, start, end, h.Loc)
	if err != nil {
		h.respondError(c, err)
		return
	}
	observability.RecordExport()

	filename := fmt.Sprintf("report_ore_%s_%s.xlsx", start.Format("2006-01-02"), end.Format("2006-01-02"))

	if h.Cfg.ExportBucket != "" {
		archive := make([]byte, buf.Len())
		copy(archive, buf.Bytes())
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := filesystem.WriteFile(h.Cfg.ExportBucket, filename, ctx, bytes.NewReader(archive), xlsxContentType); err != nil {
				h.Log.Warnw("export archive failed", "bucket", h.Cfg.ExportBucket, "key", filename, "error", err)
			}
		}()
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) buildReport(ctx context.Context, start, end time.Time, employeeID string) ([]core.EmployeeReport, int64, error) {
	// End day is inclusive: query strictly before end + 1 day.
	entries, err := h.Store.EntriesInRange(ctx, start, end.AddDate(0, 0, 1), employeeID)
	if err != nil {
		return nil, 0, err
	}
	return core.BuildReport(entries), int64(len(entries)), nil
}
