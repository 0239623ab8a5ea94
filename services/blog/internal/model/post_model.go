package model

import (
	"time"

	"github.com/lib/pq"
)

type PostModel struct {
	ID             int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string         `gorm:"type:varchar(255);not null" json:"title"`
	Slug           string         `gorm:"type:varchar(255);not null;index" json:"slug"`
	Excerpt        string         `gorm:"type:text" json:"excerpt"`
	Content        string         `gorm:"type:text" json:"content"`
	Author         *string        `gorm:"type:varchar(255);index" json:"author"`
	Status         string         `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	Published      bool           `gorm:"not null;default:false;index" json:"published"`
	PublishedDate  *time.Time     `json:"published_date"`
	ReadTime       *string        `gorm:"type:varchar(50)" json:"read_time"`
	SeoTitle       *string        `gorm:"type:varchar(255)" json:"seo_title"`
	SeoDescription *string        `gorm:"type:text" json:"seo_description"`
	SeoSchema      *string        `gorm:"type:text" json:"seo_schema"`
	BlogImage      *string        `gorm:"type:text" json:"blog_image"`
	Tags           pq.StringArray `gorm:"type:text[]" json:"tags"`
	Views          int64          `gorm:"not null;default:0" json:"views"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (PostModel) TableName() string {
	return "blog_posts"
}
