package model

import "time"

type AuthorModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Bio         *string   `gorm:"type:text" json:"bio"`
	AvatarURL   *string   `gorm:"type:text" json:"avatar_url"`
	TwitterURL  *string   `gorm:"type:varchar(500)" json:"twitter_url"`
	LinkedinURL *string   `gorm:"type:varchar(500)" json:"linkedin_url"`
	FacebookURL *string   `gorm:"type:varchar(500)" json:"facebook_url"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (AuthorModel) TableName() string {
	return "authors"
}
