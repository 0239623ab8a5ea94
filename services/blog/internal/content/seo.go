package content

import (
	"encoding/json"
	"path"
	"strings"
	"time"

	"makemodelyear/services/blog/internal/entity"
)

type OpenGraph struct {
	Type          string     `json:"type"`
	SiteName      string     `json:"siteName"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	URL           string     `json:"url"`
	Images        []string   `json:"images"`
	PublishedTime *time.Time `json:"publishedTime,omitempty"`
	ModifiedTime  time.Time  `json:"modifiedTime"`
	Authors       []string   `json:"authors,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
}

type TwitterCard struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
}

type PostMeta struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Canonical   string      `json:"canonical"`
	OpenGraph   OpenGraph   `json:"openGraph"`
	Twitter     TwitterCard `json:"twitter"`
}

// BuildURL joins path segments onto base without a trailing slash.
func BuildURL(base string, segments ...string) string {
	base = strings.TrimRight(base, "/")
	if len(segments) == 0 {
		return base + "/"
	}
	return base + path.Join(append([]string{"/"}, segments...)...)
}

func BuildPostMeta(post *entity.Post, settings entity.SiteSettings) PostMeta {
	metaTitle := strings.TrimSpace(post.SeoTitle)
	if metaTitle == "" {
		metaTitle = post.Title
	}
	description := strings.TrimSpace(post.SeoDescription)
	if description == "" {
		description = post.Excerpt
	}
	title := metaTitle + " | " + settings.SiteName + " Blog"

	images := []string{}
	if post.BlogImage != nil && isHTTPURL(*post.BlogImage) {
		images = append(images, *post.BlogImage)
	} else if settings.DefaultOgImage != "" {
		images = append(images, settings.DefaultOgImage)
	}

	og := OpenGraph{
		Type:          "article",
		SiteName:      settings.SiteName,
		Title:         title,
		Description:   description,
		URL:           BuildURL(settings.SiteURL, "blog", post.Slug),
		Images:        images,
		PublishedTime: post.PublishedDate,
		ModifiedTime:  post.UpdatedAt,
		Tags:          post.Tags,
	}
	if post.Author != "" {
		og.Authors = []string{post.Author}
	}

	return PostMeta{
		Title:       title,
		Description: description,
		Canonical:   "/blog/" + post.Slug,
		OpenGraph:   og,
		Twitter: TwitterCard{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Images:      images,
		},
	}
}

// ParseSchema decodes stored JSON-LD. A single object becomes a one-element
// list; array entries that are not objects and invalid JSON are dropped.
func ParseSchema(raw entity.JSONLD) []map[string]interface{} {
	out := []map[string]interface{}{}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return out
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return out
	}
	// A schema stored as a JSON string holding JSON.
	if s, ok := parsed.(string); ok {
		if err := json.Unmarshal([]byte(s), &parsed); err != nil {
			return out
		}
	}

	switch v := parsed.(type) {
	case map[string]interface{}:
		out = append(out, v)
	case []interface{}:
		for _, item := range v {
			if obj, ok := item.(map[string]interface{}); ok {
				out = append(out, obj)
			}
		}
	}
	return out
}

// PostSchema returns the stored structured data, or a generated BlogPosting.
func PostSchema(post *entity.Post, settings entity.SiteSettings) []map[string]interface{} {
	if parsed := ParseSchema(post.SeoSchema); len(parsed) > 0 {
		return parsed
	}
	return []map[string]interface{}{BlogPostingSchema(post, settings)}
}

func BlogPostingSchema(post *entity.Post, settings entity.SiteSettings) map[string]interface{} {
	postURL := BuildURL(settings.SiteURL, "blog", post.Slug)
	published := post.CreatedAt
	if post.PublishedDate != nil {
		published = *post.PublishedDate
	}

	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Excerpt,
		"datePublished": published.UTC().Format(time.RFC3339),
		"dateModified":  post.UpdatedAt.UTC().Format(time.RFC3339),
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  settings.SiteName,
		},
	}
	if post.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  post.Author,
		}
	}
	if post.BlogImage != nil && isHTTPURL(*post.BlogImage) {
		data["image"] = *post.BlogImage
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	return data
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}
