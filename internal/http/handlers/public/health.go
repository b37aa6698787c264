package public

import (
	"github.com/cerealshop/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// HealthCheck 健康检查
func (h *Handler) HealthCheck(c *gin.Context) {
	if h.HealthChecker == nil {
		response.Success(c, gin.H{"status": "OK"})
		return
	}
	report := h.HealthChecker.Measure(c.Request.Context())
	if !report.Healthy() {
		response.ErrorWithData(c, response.CodeInternal, "unavailable", gin.H{"health": report})
		return
	}
	response.Success(c, report)
}
