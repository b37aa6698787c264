package models

import "time"

// SessionID 购物车归属的会话标识，是购物车唯一的租户键
type SessionID string

// String 返回原始字符串
func (s SessionID) String() string {
	return string(s)
}

// CartItem 购物车项
// 同一 (session_id, cereal_id) 至多一行，由唯一索引保证
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                                 // 主键
	SessionID SessionID `gorm:"type:varchar(255);not null;index;uniqueIndex:idx_cart_session_cereal" json:"session_id"` // 会话ID
	CerealID  uint      `gorm:"not null;uniqueIndex:idx_cart_session_cereal" json:"cereal_id"`                          // 麦片ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                                             // 数量
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                                              // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                                           // 更新时间

	Cereal *Cereal `gorm:"foreignKey:CerealID;constraint:OnDelete:CASCADE" json:"cereal,omitempty"` // 关联麦片
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}

// LineTotal 行小计 = 数量 × 单价
func (i *CartItem) LineTotal() Money {
	if i == nil || i.Cereal == nil {
		return ZeroMoney()
	}
	return i.Cereal.Price.MulQuantity(i.Quantity)
}
