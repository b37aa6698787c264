package i18n

var catalog = map[string]map[string]string{
	LocaleEnUS: {
		"error.bad_request":            "Invalid request",
		"error.validation_failed":      "The given data was invalid",
		"error.not_found":              "Resource not found",
		"error.internal_error":         "Internal server error",
		"error.rate_limited":           "Too many requests, please retry in %d seconds",
		"error.checkout_too_many":      "Too many checkout attempts, please retry in %d seconds",
		"error.rate_limit_unavailable": "Rate limiter is unavailable",
		"error.session_missing":        "Session not found",
		"error.cereal_id_invalid":      "Invalid cereal id",
		"error.cereal_not_found":       "Cereal not found",
		"error.cart_item_id_invalid":   "Invalid cart item id",
		"error.cart_item_not_found":    "Cart item not found",
		"error.cart_item_forbidden":    "Unauthorized action.",
		"error.cart_empty":             "Your cart is empty",
		"cart.item_added":              "Item added to cart!",
		"cart.updated":                 "Cart updated!",
		"cart.item_removed":            "Item removed from cart!",
		"checkout.order_placed":        "Order placed successfully! You will receive a confirmation email shortly.",
	},
	LocaleZhCN: {
		"error.bad_request":            "请求参数错误",
		"error.validation_failed":      "提交的数据无效",
		"error.not_found":              "资源不存在",
		"error.internal_error":         "服务器内部错误",
		"error.rate_limited":           "请求过于频繁，请 %d 秒后重试",
		"error.checkout_too_many":      "提交过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable": "限流服务不可用",
		"error.session_missing":        "会话不存在",
		"error.cereal_id_invalid":      "麦片 ID 无效",
		"error.cereal_not_found":       "麦片不存在",
		"error.cart_item_id_invalid":   "购物车项 ID 无效",
		"error.cart_item_not_found":    "购物车项不存在",
		"error.cart_item_forbidden":    "无权操作该购物车项",
		"error.cart_empty":             "购物车为空",
		"cart.item_added":              "已加入购物车！",
		"cart.updated":                 "购物车已更新！",
		"cart.item_removed":            "已从购物车移除！",
		"checkout.order_placed":        "下单成功！确认邮件将稍后发送。",
	},
}
