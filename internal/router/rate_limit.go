package router

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cerealshop/storefront/internal/http/response"
	"github.com/cerealshop/storefront/internal/i18n"
	"github.com/cerealshop/storefront/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc 生成限流 key 的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 限流规则
// BlockSeconds > 0 时，首次超限会把窗口延长为封禁时长
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	BlockSeconds  int
	MessageKey    string
}

var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
if tonumber(ARGV[3]) > 0 and current == tonumber(ARGV[2]) + 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[3])
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RateLimitMiddleware Redis 频率限制中间件
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || rule.WindowSeconds <= 0 || rule.MaxRequests <= 0 {
			c.Next()
			return
		}

		key := ""
		if keyFunc != nil {
			key = strings.TrimSpace(keyFunc(c))
		}
		if key == "" {
			key = c.ClientIP()
		}
		if rule.Prefix != "" {
			key = fmt.Sprintf("%s:%s", rule.Prefix, key)
		}

		result, err := rateLimitScript.Run(c.Request.Context(), client, []string{key}, rule.WindowSeconds, rule.MaxRequests, rule.BlockSeconds).Result()
		if err != nil {
			logger.Warnw("rate_limit_script_failed", "key", key, "error", err)
			abortRateLimitUnavailable(c)
			return
		}
		count, ttlSeconds, ok := parseRateLimitResult(result)
		if !ok {
			abortRateLimitUnavailable(c)
			return
		}

		remaining := int64(rule.MaxRequests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rule.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(rule.MaxRequests) {
			waitSeconds := int(ttlSeconds)
			if waitSeconds < 1 {
				waitSeconds = rule.WindowSeconds
			}
			if waitSeconds < 1 {
				waitSeconds = 1
			}
			msgKey := strings.TrimSpace(rule.MessageKey)
			if msgKey == "" {
				msgKey = "error.rate_limited"
			}
			c.Header("Retry-After", strconv.Itoa(waitSeconds))
			response.Error(c, response.CodeTooManyRequests, i18n.Sprintf(i18n.ResolveLocale(c), msgKey, waitSeconds))
			c.Abort()
			return
		}

		c.Next()
	}
}

// abortRateLimitUnavailable Redis 异常时拒绝请求，不放行
func abortRateLimitUnavailable(c *gin.Context) {
	response.Error(c, response.CodeInternal, i18n.T(i18n.ResolveLocale(c), "error.rate_limit_unavailable"))
	c.Abort()
}

// parseRateLimitResult 解析脚本返回的 {count, ttl}
func parseRateLimitResult(result interface{}) (int64, int64, bool) {
	values, ok := result.([]interface{})
	if !ok || len(values) < 2 {
		return 0, 0, false
	}
	count, ok := toInt64(values[0])
	if !ok {
		return 0, 0, false
	}
	ttl, _ := toInt64(values[1])
	return count, ttl, true
}

// KeyByIP 使用 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyBySessionAndIP 使用购物车会话 + IP 作为限流 key
func KeyBySessionAndIP(c *gin.Context) string {
	sessionID := getSessionID(c)
	if sessionID == "" {
		return c.ClientIP()
	}
	return fmt.Sprintf("%s|%s", sessionID, c.ClientIP())
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	case float64:
		return int64(v), true
	case float32:
		return int64(v), true
	default:
		return 0, false
	}
}
