package shared

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParsePage 读取 page 查询参数，缺失或非法时为 1。
func ParsePage(c *gin.Context) int {
	page, err := strconv.Atoi(strings.TrimSpace(c.Query("page")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ParseLimit 读取 limit 查询参数，缺失或非法时为 0，由业务层取默认值。
func ParseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
