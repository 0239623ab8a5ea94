package repo

import (
	"context"
	"errors"
	"fmt"

	"makemodelyear/services/blog/internal/entity"
)

// PostStore is implemented by the remote store, the local store and the
// fallback decorator. Not-found is (nil, nil) or false, never an error.
type PostStore interface {
	GetAll(ctx context.Context) ([]*entity.Post, error)
	GetPublished(ctx context.Context) ([]*entity.Post, error)
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Post, error)
	Search(ctx context.Context, query string) ([]*entity.Post, error)
	GetByTag(ctx context.Context, tag string) ([]*entity.Post, error)
	GetRelated(ctx context.Context, postID int64, limit int) ([]*entity.Post, error)
	CountByAuthor(ctx context.Context, author string) (int64, error)
	Create(ctx context.Context, input entity.CreatePostInput) (*entity.Post, error)
	Update(ctx context.Context, id int64, input entity.UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, id int64) (bool, error)
	IncrementViews(ctx context.Context, id int64) error
	DashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}

type AuthorStore interface {
	List(ctx context.Context, activeOnly bool) ([]*entity.Author, error)
	GetByID(ctx context.Context, id int64) (*entity.Author, error)
	GetByName(ctx context.Context, name string) (*entity.Author, error)
	Create(ctx context.Context, input entity.CreateAuthorInput) (*entity.Author, error)
	Update(ctx context.Context, id int64, input entity.UpdateAuthorInput) (*entity.Author, error)
	SetActive(ctx context.Context, id int64, active bool) (*entity.Author, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SettingStore is remote only.
type SettingStore interface {
	List(ctx context.Context) ([]entity.SettingRow, error)
	UpdateByKey(ctx context.Context, row entity.SettingRow) (int64, error)
	Insert(ctx context.Context, row entity.SettingRow) error
}

// UserStore is remote only.
type UserStore interface {
	List(ctx context.Context) ([]*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, id string, updates entity.UserUpdate) (*entity.User, error)
}

const (
	BackendRemote = "remote"
	BackendLocal  = "local"
)

var ErrLocalUnavailable = errors.New("local store is not configured")

// BackendError is a failed call against one backend.
type BackendError struct {
	Backend string
	Op      string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s store: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func RemoteError(op string, err error) error {
	return &BackendError{Backend: BackendRemote, Op: op, Err: err}
}

func LocalError(op string, err error) error {
	return &BackendError{Backend: BackendLocal, Op: op, Err: err}
}
