package repository

import "github.com/shopspring/decimal"

// CerealListFilter 查询麦片列表的过滤条件
// MinPrice/MaxPrice 为 nil 表示不限制
type CerealListFilter struct {
	Page          int
	PageSize      int
	Flavor        string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	SortField     string
	SortDirection string
}
