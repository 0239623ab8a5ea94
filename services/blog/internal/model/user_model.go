package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID          string     `gorm:"type:uuid;primary_key" json:"id"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName    *string    `gorm:"type:varchar(255)" json:"full_name"`
	AvatarURL   *string    `gorm:"type:text" json:"avatar_url"`
	Role        string     `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	IsVerified  bool       `gorm:"not null;default:false" json:"is_verified"`
	LastLoginAt *time.Time `json:"last_login_at"`
	LoginCount  int        `gorm:"not null;default:0" json:"login_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
