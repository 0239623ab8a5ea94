package entity

import (
	"bytes"
	"encoding/json"
	"time"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

func (s PostStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

type Post struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Excerpt        string     `json:"excerpt"`
	Content        string     `json:"content"`
	Author         string     `json:"author"`
	Status         PostStatus `json:"status"`
	Published      bool       `json:"published"`
	PublishedDate  *time.Time `json:"published_date"`
	ReadTime       *string    `json:"read_time"`
	SeoTitle       string     `json:"seo_title"`
	SeoDescription string     `json:"seo_description"`
	SeoSchema      JSONLD     `json:"seo_schema"`
	BlogImage      *string    `json:"blog_image"`
	Tags           []string   `json:"tags"`
	Views          int64      `json:"views"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CreatePostInput struct {
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Excerpt        string     `json:"excerpt"`
	Content        string     `json:"content"`
	Author         string     `json:"author"`
	Status         PostStatus `json:"status"`
	PublishedDate  *time.Time `json:"published_date"`
	ReadTime       *string    `json:"read_time"`
	SeoTitle       string     `json:"seo_title"`
	SeoDescription string     `json:"seo_description"`
	SeoSchema      JSONLD     `json:"seo_schema"`
	BlogImage      *string    `json:"blog_image"`
	Tags           []string   `json:"tags"`
}

// UpdatePostInput is a partial update; nil fields are left untouched.
type UpdatePostInput struct {
	Title          *string     `json:"title"`
	Slug           *string     `json:"slug"`
	Excerpt        *string     `json:"excerpt"`
	Content        *string     `json:"content"`
	Author         *string     `json:"author"`
	Status         *PostStatus `json:"status"`
	PublishedDate  *time.Time  `json:"published_date"`
	ReadTime       *string     `json:"read_time"`
	SeoTitle       *string     `json:"seo_title"`
	SeoDescription *string     `json:"seo_description"`
	SeoSchema      *JSONLD     `json:"seo_schema"`
	BlogImage      *string     `json:"blog_image"`
	Tags           *[]string   `json:"tags"`
}

type DashboardStats struct {
	TotalPosts     int64 `json:"totalPosts"`
	PublishedPosts int64 `json:"publishedPosts"`
	DraftPosts     int64 `json:"draftPosts"`
	TotalViews     int64 `json:"totalViews"`
	UniqueAuthors  int64 `json:"uniqueAuthors"`
}

// JSONLD holds raw structured-data text. Clients send either a JSON string
// containing the document or the document itself; both decode to the same text.
type JSONLD string

func (j *JSONLD) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*j = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*j = JSONLD(s)
		return nil
	}
	*j = JSONLD(trimmed)
	return nil
}

func (j JSONLD) MarshalJSON() ([]byte, error) {
	if j == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(j))
}
