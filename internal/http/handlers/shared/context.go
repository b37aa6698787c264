package shared

import (
	"strconv"
	"strings"

	"github.com/cerealshop/storefront/internal/constants"
	"github.com/cerealshop/storefront/internal/http/response"
	"github.com/cerealshop/storefront/internal/models"

	"github.com/gin-gonic/gin"
)

// GetSessionID 读取会话中间件写入的购物车会话标识。
func GetSessionID(c *gin.Context) (models.SessionID, bool) {
	value, exists := c.Get(constants.SessionContextKey)
	if !exists {
		RespondError(c, response.CodeBadRequest, "error.session_missing", nil)
		return "", false
	}
	switch v := value.(type) {
	case models.SessionID:
		if v != "" {
			return v, true
		}
	case string:
		if v != "" {
			return models.SessionID(v), true
		}
	}
	RespondError(c, response.CodeBadRequest, "error.session_missing", nil)
	return "", false
}

// ParseUintParam 解析路径中的正整数 ID，失败时直接响应。
func ParseUintParam(c *gin.Context, name, invalidKey string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		RespondError(c, response.CodeBadRequest, invalidKey, nil)
		return 0, false
	}
	return uint(id), true
}
