package fallback

import (
	"context"
	"time"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/repo"
)

type authorStore struct {
	remote repo.AuthorStore
	local  repo.AuthorStore
	o      orchestrator
}

func NewAuthorStore(remote, local repo.AuthorStore, timeout time.Duration, log *logger.Logger) repo.AuthorStore {
	return &authorStore{remote: remote, local: local, o: newOrchestrator(timeout, log)}
}

func (s *authorStore) List(ctx context.Context, activeOnly bool) ([]*entity.Author, error) {
	return read(ctx, s.o, "list_authors", kv("active_only", activeOnly), []*entity.Author{},
		viaRemote(s.remote != nil, func(ctx context.Context) ([]*entity.Author, error) { return s.remote.List(ctx, activeOnly) }),
		func(ctx context.Context) ([]*entity.Author, error) { return s.local.List(ctx, activeOnly) })
}

func (s *authorStore) GetByID(ctx context.Context, id int64) (*entity.Author, error) {
	return read(ctx, s.o, "get_author", kv("id", id), (*entity.Author)(nil),
		viaRemote(s.remote != nil, func(ctx context.Context) (*entity.Author, error) { return s.remote.GetByID(ctx, id) }),
		func(ctx context.Context) (*entity.Author, error) { return s.local.GetByID(ctx, id) })
}

func (s *authorStore) GetByName(ctx context.Context, name string) (*entity.Author, error) {
	return read(ctx, s.o, "get_author_by_name", kv("name", name), (*entity.Author)(nil),
		viaRemote(s.remote != nil, func(ctx context.Context) (*entity.Author, error) { return s.remote.GetByName(ctx, name) }),
		func(ctx context.Context) (*entity.Author, error) { return s.local.GetByName(ctx, name) })
}

func (s *authorStore) Create(ctx context.Context, input entity.CreateAuthorInput) (*entity.Author, error) {
	return write(ctx, s.o, "create_author", kv("name", input.Name),
		viaRemote(s.remote != nil, func(ctx context.Context) (*entity.Author, error) { return s.remote.Create(ctx, input) }),
		func(ctx context.Context) (*entity.Author, error) { return s.local.Create(ctx, input) })
}

func (s *authorStore) Update(ctx context.Context, id int64, input entity.UpdateAuthorInput) (*entity.Author, error) {
	return write(ctx, s.o, "update_author", kv("id", id),
		viaRemote(s.remote != nil, func(ctx context.Context) (*entity.Author, error) { return s.remote.Update(ctx, id, input) }),
		func(ctx context.Context) (*entity.Author, error) { return s.local.Update(ctx, id, input) })
}

func (s *authorStore) SetActive(ctx context.Context, id int64, active bool) (*entity.Author, error) {
	return write(ctx, s.o, "set_author_active", kv("id", id, "active", active),
		viaRemote(s.remote != nil, func(ctx context.Context) (*entity.Author, error) { return s.remote.SetActive(ctx, id, active) }),
		func(ctx context.Context) (*entity.Author, error) { return s.local.SetActive(ctx, id, active) })
}

func (s *authorStore) Delete(ctx context.Context, id int64) (bool, error) {
	return write(ctx, s.o, "delete_author", kv("id", id),
		viaRemote(s.remote != nil, func(ctx context.Context) (bool, error) { return s.remote.Delete(ctx, id) }),
		func(ctx context.Context) (bool, error) { return s.local.Delete(ctx, id) })
}
