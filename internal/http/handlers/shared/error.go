package shared

import (
	"github.com/cerealshop/storefront/internal/http/response"
	"github.com/cerealshop/storefront/internal/i18n"
	"github.com/cerealshop/storefront/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	RespondErrorWithData(c, code, key, nil, err)
}

// RespondErrorWithData 返回带数据的国际化错误响应（字段错误、跳转提示等）。
func RespondErrorWithData(c *gin.Context, code int, key string, data gin.H, err error) {
	msg := i18n.T(i18n.ResolveLocale(c), key)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", code,
			"message", msg,
			"error", err,
		)
	}
	if data == nil {
		response.Error(c, code, msg)
		return
	}
	response.ErrorWithData(c, code, msg, data)
}

// RespondSuccessKey 返回带国际化提示语的成功响应。
func RespondSuccessKey(c *gin.Context, key string, data interface{}) {
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), key), data)
}
