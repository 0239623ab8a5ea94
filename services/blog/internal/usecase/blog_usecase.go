package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/content"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/repo"
)

const viewTimeout = 5 * time.Second

// PostDetail is everything a post page renders.
type PostDetail struct {
	Post    *entity.Post             `json:"post"`
	Related []*entity.Post           `json:"related"`
	Meta    content.PostMeta         `json:"meta"`
	Schema  []map[string]interface{} `json:"schema"`
}

type BlogUseCase interface {
	// ListPublished returns published posts, filtered by query when it is not blank.
	ListPublished(ctx context.Context, query string) ([]*entity.Post, error)
	ListByTag(ctx context.Context, tag string) ([]*entity.Post, error)
	// GetPostDetail resolves a published post and records one view in the background.
	GetPostDetail(ctx context.Context, slug string) (*PostDetail, error)

	ListPosts(ctx context.Context) ([]*entity.Post, error)
	GetPost(ctx context.Context, id int64) (*entity.Post, error)
	CreatePost(ctx context.Context, input entity.CreatePostInput) (*entity.Post, error)
	UpdatePost(ctx context.Context, id int64, input entity.UpdatePostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, id int64) error
	DashboardStats(ctx context.Context) (*entity.DashboardStats, error)

	Sitemap(ctx context.Context) (content.SitemapURLSet, error)
	Feed(ctx context.Context) (content.RSS, error)

	// Wait blocks until pending view increments finish.
	Wait()
}

type blogUseCase struct {
	posts    repo.PostStore
	settings SettingsUseCase
	siteURL  string
	logger   *logger.Logger
	views    sync.WaitGroup
	now      func() time.Time
}

func NewBlogUseCase(posts repo.PostStore, settings SettingsUseCase, siteURL string, logger *logger.Logger) BlogUseCase {
	return &blogUseCase{
		posts:    posts,
		settings: settings,
		siteURL:  siteURL,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *blogUseCase) ListPublished(ctx context.Context, query string) ([]*entity.Post, error) {
	if strings.TrimSpace(query) == "" {
		return uc.posts.GetPublished(ctx)
	}
	return uc.posts.Search(ctx, query)
}

func (uc *blogUseCase) ListByTag(ctx context.Context, tag string) ([]*entity.Post, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, invalid("tag", "is required")
	}
	return uc.posts.GetByTag(ctx, tag)
}

func (uc *blogUseCase) GetPostDetail(ctx context.Context, slug string) (*PostDetail, error) {
	post, err := uc.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	uc.recordView(post.ID)

	related, err := uc.posts.GetRelated(ctx, post.ID, content.DefaultRelatedLimit)
	if err != nil {
		return nil, err
	}

	settings := uc.siteSettings(ctx)
	return &PostDetail{
		Post:    post,
		Related: related,
		Meta:    content.BuildPostMeta(post, settings),
		Schema:  content.PostSchema(post, settings),
	}, nil
}

// recordView increments the counter without holding up the caller.
func (uc *blogUseCase) recordView(id int64) {
	uc.views.Add(1)
	go func() {
		defer uc.views.Done()

		ctx, cancel := context.WithTimeout(context.Background(), viewTimeout)
		defer cancel()
		if err := uc.posts.IncrementViews(ctx, id); err != nil {
			uc.logger.Error("[VIEWS] failed to increment views for post %d: %v", id, err)
		}
	}()
}

func (uc *blogUseCase) Wait() {
	uc.views.Wait()
}

func (uc *blogUseCase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	return uc.posts.GetAll(ctx)
}

func (uc *blogUseCase) GetPost(ctx context.Context, id int64) (*entity.Post, error) {
	post, err := uc.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

func (uc *blogUseCase) CreatePost(ctx context.Context, input entity.CreatePostInput) (*entity.Post, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, invalid("title", "is required")
	}
	if content.Slugify(input.Slug) == "" && content.Slugify(input.Title) == "" {
		return nil, invalid("title", "must contain at least one letter or digit")
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, invalid("status", "must be draft or published")
	}
	input.Author = strings.TrimSpace(input.Author)
	input.Content = content.SanitizeHTML(input.Content)

	post, err := uc.posts.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	uc.logger.Info("post %s created with ID %d", post.Slug, post.ID)
	return post, nil
}

func (uc *blogUseCase) UpdatePost(ctx context.Context, id int64, input entity.UpdatePostInput) (*entity.Post, error) {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, invalid("title", "cannot be empty")
		}
		input.Title = &title
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, invalid("status", "must be draft or published")
	}
	if input.Author != nil {
		author := strings.TrimSpace(*input.Author)
		input.Author = &author
	}
	if input.Content != nil {
		sanitized := content.SanitizeHTML(*input.Content)
		input.Content = &sanitized
	}

	post, err := uc.posts.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

func (uc *blogUseCase) DeletePost(ctx context.Context, id int64) error {
	deleted, err := uc.posts.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	uc.logger.Info("post %d deleted", id)
	return nil
}

func (uc *blogUseCase) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	return uc.posts.DashboardStats(ctx)
}

func (uc *blogUseCase) Sitemap(ctx context.Context) (content.SitemapURLSet, error) {
	posts, err := uc.posts.GetPublished(ctx)
	if err != nil {
		return content.SitemapURLSet{}, err
	}
	return content.BuildSitemap(uc.siteSettings(ctx).SiteURL, posts, uc.now()), nil
}

func (uc *blogUseCase) Feed(ctx context.Context) (content.RSS, error) {
	posts, err := uc.posts.GetPublished(ctx)
	if err != nil {
		return content.RSS{}, err
	}
	return content.BuildFeed(uc.siteSettings(ctx), posts), nil
}

// siteSettings loads the stored settings; the configured site URL wins over
// the stored one.
func (uc *blogUseCase) siteSettings(ctx context.Context) entity.SiteSettings {
	settings := uc.settings.LoadOrDefault(ctx)
	if uc.siteURL != "" {
		settings.SiteURL = uc.siteURL
	}
	return settings
}
