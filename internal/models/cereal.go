package models

import "time"

// Cereal 麦片商品表
type Cereal struct {
	ID             uint        `gorm:"primarykey" json:"id"`                                      // 主键
	Name           string      `gorm:"type:varchar(255);not null;index" json:"name"`              // 名称
	Description    string      `gorm:"type:text;not null" json:"description"`                     // 描述
	Price          Money       `gorm:"type:decimal(8,2);not null;default:0;index" json:"price"`   // 价格
	Flavor         *string     `gorm:"type:varchar(255);index" json:"flavor"`                     // 口味
	HealthBenefits StringArray `gorm:"type:json" json:"health_benefits"`                          // 健康功效
	Ingredients    StringArray `gorm:"type:json;not null" json:"ingredients"`                     // 配料
	Recipes        RecipeList  `gorm:"type:json" json:"recipes"`                                  // 推荐食谱
	ImageURL       *string     `gorm:"type:varchar(500)" json:"image_url"`                        // 图片地址
	IsFeatured     bool        `gorm:"not null;default:false;index" json:"is_featured"`           // 是否精选
	StockQuantity  int         `gorm:"not null;default:0" json:"stock_quantity"`                  // 库存数量
	CreatedAt      time.Time   `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt      time.Time   `json:"updated_at"`                                                // 更新时间
}

// TableName 指定表名
func (Cereal) TableName() string {
	return "cereals"
}

// FlavorValue 返回口味，未设置时为空串
func (c *Cereal) FlavorValue() string {
	if c == nil || c.Flavor == nil {
		return ""
	}
	return *c.Flavor
}
