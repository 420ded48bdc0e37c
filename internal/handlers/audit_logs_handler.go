package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/customer-service/internal/audit"
	"github.com/BruksfildServices01/customer-service/internal/httpresp"
	"github.com/BruksfildServices01/customer-service/internal/middleware"
)

const dateLayout = "2006-01-02"

type AuditLogsHandler struct {
	audit  *audit.Logger
	logger *zap.Logger
}

func NewAuditLogsHandler(audit *audit.Logger, logger *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{audit: audit, logger: logger}
}

type AuditLogsQuery struct {
	Action string `form:"action"`
	Entity string `form:"entity"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=50" binding:"min=1,max=200"`
}

// List returns the audit trail of the authenticated customer's own actions.
func (h *AuditLogsHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var q AuditLogsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationError(c, err)
		return
	}

	f := audit.Filter{
		CustomerID: user.Customer.ID,
		Action:     q.Action,
		Entity:     q.Entity,
		From:       parseDate(q.From),
		To:         parseDate(q.To),
		Page:       q.Page,
		Limit:      q.Limit,
	}

	logs, total, err := h.audit.List(c.Request.Context(), f)
	if err != nil {
		internalError(c, h.logger, "error listing audit logs", err)
		return
	}

	httpresp.OK(c, gin.H{
		"page":  q.Page,
		"limit": q.Limit,
		"total": total,
		"logs":  logs,
	})
}

// parseDate expects a value already validated by the binding.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
