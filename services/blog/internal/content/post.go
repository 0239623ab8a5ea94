package content

import (
	"strings"
	"time"

	"makemodelyear/services/blog/internal/entity"
)

// NewPost builds the record a backend persists for a create call. ID is left
// for the backend; Slug still needs a uniqueness pass.
func NewPost(in entity.CreatePostInput, now time.Time) *entity.Post {
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	slug := Slugify(in.Slug)
	if slug == "" {
		slug = Slugify(in.Title)
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Post{
		Title:          in.Title,
		Slug:           slug,
		Excerpt:        in.Excerpt,
		Content:        in.Content,
		Author:         in.Author,
		Status:         status,
		Published:      status == entity.StatusPublished,
		PublishedDate:  in.PublishedDate,
		ReadTime:       in.ReadTime,
		SeoTitle:       in.SeoTitle,
		SeoDescription: in.SeoDescription,
		SeoSchema:      in.SeoSchema,
		BlogImage:      in.BlogImage,
		Tags:           tags,
		Views:          0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ApplyPostUpdate merges a partial update into p. It reports whether the slug
// was recomputed and needs a uniqueness pass.
func ApplyPostUpdate(p *entity.Post, in entity.UpdatePostInput, now time.Time) bool {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Excerpt != nil {
		p.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Author != nil {
		p.Author = *in.Author
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.PublishedDate != nil {
		p.PublishedDate = in.PublishedDate
	}
	if in.ReadTime != nil {
		p.ReadTime = in.ReadTime
	}
	if in.SeoTitle != nil {
		p.SeoTitle = *in.SeoTitle
	}
	if in.SeoDescription != nil {
		p.SeoDescription = *in.SeoDescription
	}
	if in.SeoSchema != nil {
		p.SeoSchema = *in.SeoSchema
	}
	if in.BlogImage != nil {
		p.BlogImage = in.BlogImage
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}

	reslug := false
	if in.Slug != nil && Slugify(*in.Slug) != "" {
		p.Slug = Slugify(*in.Slug)
		reslug = true
	} else if in.Title != nil && Slugify(*in.Title) != "" {
		p.Slug = Slugify(*in.Title)
		reslug = true
	}

	p.Published = p.Status == entity.StatusPublished
	p.UpdatedAt = now
	return reslug
}

// PostMatches is the search predicate: title, excerpt or content contains
// query, ignoring case.
func PostMatches(p *entity.Post, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Excerpt), q) ||
		strings.Contains(strings.ToLower(p.Content), q)
}
