package model

import "time"

// SettingModel has no primary key of its own; rows are addressed by key.
type SettingModel struct {
	Key       string    `gorm:"column:key;type:varchar(100);not null;index" json:"key"`
	Value     *string   `gorm:"column:value;type:text" json:"value"`
	Category  string    `gorm:"type:varchar(50)" json:"category"`
	DataType  string    `gorm:"column:data_type;type:varchar(20)" json:"data_type"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SettingModel) TableName() string {
	return "settings"
}
