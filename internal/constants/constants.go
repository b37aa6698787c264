package constants

// 商品目录常量
const (
	CatalogPageSize        = 12
	FeaturedDefaultLimit   = 3
	FeaturedMaxLimit       = 12
	FeaturedCacheKeyPrefix = "catalog:featured"
)

// 目录排序字段与方向
const (
	SortFieldName   = "name"
	SortFieldPrice  = "price"
	SortFieldFlavor = "flavor"

	SortDirectionAsc  = "asc"
	SortDirectionDesc = "desc"
)

// 购物车数量边界（单次添加/修改）
const (
	CartQuantityMin = 1
	CartQuantityMax = 10
)

// 配送选项
const (
	DeliveryOptionBase     = "base"
	DeliveryOptionExtended = "extended"

	// DeliveryRateBase 3km 内基础配送费
	DeliveryRateBase = "4.99"
	// DeliveryRateExtended 远距离配送费
	DeliveryRateExtended = "8.99"
)

// 联系信息长度上限
const (
	ContactNameMaxLength    = 255
	ContactEmailMaxLength   = 255
	ContactPhoneMaxLength   = 20
	ContactAddressMaxLength = 500
)

// 会话常量
const (
	SessionContextKey = "session_id"
	SessionCookieName = "cereal_session"
	SessionHeaderName = "X-Session-ID"
)

// 前端跳转路径
const (
	RedirectCart = "/cart"
	RedirectHome = "/"
)

// 队列与任务
const (
	QueueDefault          = "default"
	TaskCheckoutCompleted = "checkout:completed"
)
