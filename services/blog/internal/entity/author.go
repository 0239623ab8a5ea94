package entity

import "time"

type Author struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Bio         *string   `json:"bio"`
	AvatarURL   *string   `json:"avatar_url"`
	TwitterURL  *string   `json:"twitter_url"`
	LinkedinURL *string   `json:"linkedin_url"`
	FacebookURL *string   `json:"facebook_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateAuthorInput struct {
	Name        string  `json:"name"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	TwitterURL  *string `json:"twitter_url"`
	LinkedinURL *string `json:"linkedin_url"`
	FacebookURL *string `json:"facebook_url"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateAuthorInput struct {
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	TwitterURL  *string `json:"twitter_url"`
	LinkedinURL *string `json:"linkedin_url"`
	FacebookURL *string `json:"facebook_url"`
	IsActive    *bool   `json:"is_active"`
}
