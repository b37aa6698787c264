package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray 字符串数组类型，用于存储 ingredients、health_benefits 等
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, err := jsonColumnBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, s)
}

// Recipe 食谱推荐
type Recipe struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RecipeList 食谱列表，JSON 存储
type RecipeList []Recipe

// Value 实现 driver.Valuer 接口
func (r RecipeList) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

// Scan 实现 sql.Scanner 接口
func (r *RecipeList) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	bytes, err := jsonColumnBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, r)
}

// sqlite 驱动可能以 string 返回 json 列
func jsonColumnBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported json column type %T", value)
	}
}
