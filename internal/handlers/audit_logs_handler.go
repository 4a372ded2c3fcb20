package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/httpresp"
)

type AuditLogsHandler struct {
	logger *audit.Logger
	loc    *time.Location
}

func NewAuditLogsHandler(logger *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger, loc: loc}
}

// List supports ?action=&entity=&from=YYYY-MM-DD&to=YYYY-MM-DD&page=&limit=.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.ListFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if from := c.Query("from"); from != "" {
		if t, err := time.ParseInLocation("2006-01-02", from, h.loc); err == nil {
			f.From = t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.ParseInLocation("2006-01-02", to, h.loc); err == nil {
			f.To = t.AddDate(0, 0, 1)
		}
	}
	f.Normalize()

	logs, total, err := h.logger.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, logs, f.Page, f.Limit, total)
}
