package public

import "github.com/cerealshop/storefront/internal/provider"

// Handler 前台接口处理器入口
// 说明：目录、购物车、结账均为匿名会话访问，不涉及用户登录。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
