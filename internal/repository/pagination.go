package repository

import "gorm.io/gorm"

// applyPagination 应用分页参数，统一处理非法页码与偏移量。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return query.Limit(pageSize).Offset(offset)
}

// TotalPages 根据总数与每页大小计算总页数
func TotalPages(total int64, pageSize int) int64 {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return (total + size - 1) / size
}
