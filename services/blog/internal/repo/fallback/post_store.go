package fallback

import (
	"context"
	"time"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/repo"
)

type postStore struct {
	remote repo.PostStore
	local  repo.PostStore
	o      orchestrator
}

// NewPostStore wraps remote with local. A nil remote sends every call
// straight to local; local must not be nil.
func NewPostStore(remote, local repo.PostStore, timeout time.Duration, log *logger.Logger) repo.PostStore {
	return &postStore{remote: remote, local: local, o: newOrchestrator(timeout, log)}
}

func (s *postStore) GetAll(ctx context.Context) ([]*entity.Post, error) {
	return read(ctx, s.o, "get_all", nil, []*entity.Post{},
		viaRemote(s.remote != nil, func(ctx context.Context) ([]*entity.Post, error) { return s.remote.GetAll(ctx) }),
		s.local.GetAll)
}

func (s *postStore) GetPublished(ctx context.Context) ([]*entity.Post, error) {
	return read(ctx, s.o, "get_published", nil, []*entity.Post{},
		viaRemote(s.remote != nil, func(ctx context.Context) ([]*entity.Post, error) { return s.remote.GetPublished(ctx) }),
		s.local.GetPublished)
}

func (s *postStore) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	return read(ctx, s.o, "get_by_id", kv("id", id), (*entity.Post)(nil),
		viaRemote(s.remote != nil, func(ctx context.Context) (*entity.Post, error) { return s.remote.GetByID(ctx, id) }),
		func(ctx context.Context) (*entity.Post, error) { return s.local.GetByID(ctx, id) })
}

func (s *postStore) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return read(ctx, s.o, "get_by_slug", kv("slug", slug), (*entity.Post)(nil),
		viaRemote(s.remote != nil, func(ctx context.Context) (*entity.Post, error) { return s.remote.GetBySlug(ctx, slug) }),
		func(ctx context.Context) (*entity.Post, error) { return s.local.GetBySlug(ctx, slug) })
}

func (s *postStore) Search(ctx context.Context, query string) ([]*entity.Post, error) {
	return read(ctx, s.o, "search", kv("query", query), []*entity.Post{},
		viaRemote(s.remote != nil, func(ctx context.Context) ([]*entity.Post, error) { return s.remote.Search(ctx, query) }),
		func(ctx context.Context) ([]*entity.Post, error) { return s.local.Search(ctx, query) })
}

func (s *postStore) GetByTag(ctx context.Context, tag string) ([]*entity.Post, error) {
	return read(ctx, s.o, "get_by_tag", kv("tag", tag), []*entity.Post{},
		viaRemote(s.remote != nil, func(ctx context.Context) ([]*entity.Post, error) { return s.remote.GetByTag(ctx, tag) }),
		func(ctx context.Context) ([]*entity.Post, error) { return s.local.GetByTag(ctx, tag) })
}

func (s *postStore) GetRelated(ctx context.Context, postID int64, limit int) ([]*entity.Post, error) {
	return read(ctx, s.o, "get_related", kv("id", postID), []*entity.Post{},
		viaRemote(s.remote != nil, func(ctx context.Context) ([]*entity.Post, error) { return s.remote.GetRelated(ctx, postID, limit) }),
		func(ctx context.Context) ([]*entity.Post, error) { return s.local.GetRelated(ctx, postID, limit) })
}

// CountByAuthor guards author deletion, so an unknown count is an error
// rather than zero.
func (s *postStore) CountByAuthor(ctx context.Context, author string) (int64, error) {
	return write(ctx, s.o, "count_by_author", kv("author", author),
		viaRemote(s.remote != nil, func(ctx context.Context) (int64, error) { return s.remote.CountByAuthor(ctx, author) }),
		func(ctx context.Context) (int64, error) { return s.local.CountByAuthor(ctx, author) })
}

func (s *postStore) Create(ctx context.Context, input entity.CreatePostInput) (*entity.Post, error) {
	return write(ctx, s.o, "create", kv("title", input.Title),
		viaRemote(s.remote != nil, func(ctx context.Context) (*entity.Post, error) { return s.remote.Create(ctx, input) }),
		func(ctx context.Context) (*entity.Post, error) { return s.local.Create(ctx, input) })
}

func (s *postStore) Update(ctx context.Context, id int64, input entity.UpdatePostInput) (*entity.Post, error) {
	return write(ctx, s.o, "update", kv("id", id),
		viaRemote(s.remote != nil, func(ctx context.Context) (*entity.Post, error) { return s.remote.Update(ctx, id, input) }),
		func(ctx context.Context) (*entity.Post, error) { return s.local.Update(ctx, id, input) })
}

func (s *postStore) Delete(ctx context.Context, id int64) (bool, error) {
	return write(ctx, s.o, "delete", kv("id", id),
		viaRemote(s.remote != nil, func(ctx context.Context) (bool, error) { return s.remote.Delete(ctx, id) }),
		func(ctx context.Context) (bool, error) { return s.local.Delete(ctx, id) })
}

func (s *postStore) IncrementViews(ctx context.Context, id int64) error {
	_, err := remoteOnly(ctx, s.o, "increment_views", kv("id", id),
		viaRemote(s.remote != nil, func(ctx context.Context) (struct{}, error) { return struct{}{}, s.remote.IncrementViews(ctx, id) }),
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.local.IncrementViews(ctx, id) })
	return err
}

func (s *postStore) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	return read(ctx, s.o, "dashboard_stats", nil, &entity.DashboardStats{},
		viaRemote(s.remote != nil, func(ctx context.Context) (*entity.DashboardStats, error) { return s.remote.DashboardStats(ctx) }),
		s.local.DashboardStats)
}
