package fallback

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/repo"
	"makemodelyear/services/blog/internal/repo/local"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var errRemoteDown = errors.New("connection refused")

// downPostStore fails every call, like a remote store with no network.
type downPostStore struct{}

func (downPostStore) GetAll(context.Context) ([]*entity.Post, error) { return nil, errRemoteDown }
func (downPostStore) GetPublished(context.Context) ([]*entity.Post, error) {
	return nil, errRemoteDown
}
func (downPostStore) GetByID(context.Context, int64) (*entity.Post, error) { return nil, errRemoteDown }
func (downPostStore) GetBySlug(context.Context, string) (*entity.Post, error) {
	return nil, errRemoteDown
}
func (downPostStore) Search(context.Context, string) ([]*entity.Post, error) {
	return nil, errRemoteDown
}
func (downPostStore) GetByTag(context.Context, string) ([]*entity.Post, error) {
	return nil, errRemoteDown
}
func (downPostStore) GetRelated(context.Context, int64, int) ([]*entity.Post, error) {
	return nil, errRemoteDown
}
func (downPostStore) CountByAuthor(context.Context, string) (int64, error) { return 0, errRemoteDown }
func (downPostStore) Create(context.Context, entity.CreatePostInput) (*entity.Post, error) {
	return nil, errRemoteDown
}
func (downPostStore) Update(context.Context, int64, entity.UpdatePostInput) (*entity.Post, error) {
	return nil, errRemoteDown
}
func (downPostStore) Delete(context.Context, int64) (bool, error)  { return false, errRemoteDown }
func (downPostStore) IncrementViews(context.Context, int64) error { return errRemoteDown }
func (downPostStore) DashboardStats(context.Context) (*entity.DashboardStats, error) {
	return nil, errRemoteDown
}

type downAuthorStore struct{}

func (downAuthorStore) List(context.Context, bool) ([]*entity.Author, error) {
	return nil, errRemoteDown
}
func (downAuthorStore) GetByID(context.Context, int64) (*entity.Author, error) {
	return nil, errRemoteDown
}
func (downAuthorStore) GetByName(context.Context, string) (*entity.Author, error) {
	return nil, errRemoteDown
}
func (downAuthorStore) Create(context.Context, entity.CreateAuthorInput) (*entity.Author, error) {
	return nil, errRemoteDown
}
func (downAuthorStore) Update(context.Context, int64, entity.UpdateAuthorInput) (*entity.Author, error) {
	return nil, errRemoteDown
}
func (downAuthorStore) SetActive(context.Context, int64, bool) (*entity.Author, error) {
	return nil, errRemoteDown
}
func (downAuthorStore) Delete(context.Context, int64) (bool, error) { return false, errRemoteDown }

// slowPostStore blocks until the call's context is done.
type slowPostStore struct {
	downPostStore
}

func (slowPostStore) GetAll(ctx context.Context) ([]*entity.Post, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

var (
	_ repo.PostStore   = downPostStore{}
	_ repo.AuthorStore = downAuthorStore{}
)

func newLocalBackend(t *testing.T) local.Backend {
	t.Helper()
	backend, err := local.NewSQLiteBackend(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return backend
}

func newObservedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return logger.FromZap(zap.New(core)), logs
}

func TestPostStore_RemoteDownServesLocal(t *testing.T) {
	log, logs := newObservedLogger()
	store := NewPostStore(downPostStore{}, local.NewPostStore(newLocalBackend(t)), time.Second, log)
	ctx := context.Background()

	created, err := store.Create(ctx, entity.CreatePostInput{
		Title:   "Hello World",
		Content: "cabriolet",
		Status:  entity.StatusPublished,
		Tags:    []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "hello-world", created.Slug)

	second, err := store.Create(ctx, entity.CreatePostInput{Title: "Second", Status: entity.StatusPublished, Tags: []string{"b"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	published, err := store.GetPublished(ctx)
	require.NoError(t, err)
	assert.Len(t, published, 2)

	bySlug, err := store.GetBySlug(ctx, "hello-world")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, created.ID, bySlug.ID)

	results, err := store.Search(ctx, "Cabriolet")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	related, err := store.GetRelated(ctx, created.ID, 3)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, second.ID, related[0].ID)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.NotEmpty(t, warnings)
	assert.Equal(t, "[FALLBACK] remote create failed, falling back to local store: connection refused", warnings[0].Message)
	assert.Equal(t, "Hello World", warnings[0].ContextMap()["title"])
	assert.Empty(t, logs.FilterLevelExact(zapcore.ErrorLevel).All())
}

func TestPostStore_RemoteSuccessSkipsLocal(t *testing.T) {
	remote := local.NewPostStore(newLocalBackend(t))
	localStore := local.NewPostStore(newLocalBackend(t))
	store := NewPostStore(remote, localStore, time.Second, nil)
	ctx := context.Background()

	_, err := store.Create(ctx, entity.CreatePostInput{Title: "Remote Only"})
	require.NoError(t, err)

	inLocal, err := localStore.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, inLocal)

	inRemote, err := remote.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, inRemote, 1)
}

func TestPostStore_NilRemoteGoesStraightToLocal(t *testing.T) {
	log, logs := newObservedLogger()
	store := NewPostStore(nil, local.NewPostStore(newLocalBackend(t)), time.Second, log)

	_, err := store.Create(context.Background(), entity.CreatePostInput{Title: "Offline"})
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}

func TestPostStore_BothDown(t *testing.T) {
	log, logs := newObservedLogger()
	store := NewPostStore(downPostStore{}, local.NewPostStore(nil), time.Second, log)
	ctx := context.Background()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	post, err := store.GetBySlug(ctx, "anything")
	require.NoError(t, err)
	assert.Nil(t, post)

	stats, err := store.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{}, stats)

	_, err = store.Create(ctx, entity.CreatePostInput{Title: "Lost"})
	assert.True(t, errors.Is(err, repo.ErrLocalUnavailable))

	_, err = store.Delete(ctx, 1)
	assert.Error(t, err)

	_, err = store.CountByAuthor(ctx, "Jane")
	assert.Error(t, err)

	errorsLogged := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.NotEmpty(t, errorsLogged)
	assert.Contains(t, errorsLogged[0].Message, "[FALLBACK] local fallback get_all failed")
}

func TestPostStore_RemoteTimeout(t *testing.T) {
	backend := newLocalBackend(t)
	localStore := local.NewPostStore(backend)
	_, err := localStore.Create(context.Background(), entity.CreatePostInput{Title: "Cached"})
	require.NoError(t, err)

	store := NewPostStore(slowPostStore{}, localStore, 20*time.Millisecond, nil)

	start := time.Now()
	all, err := store.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestPostStore_IncrementViewsStaysRemote(t *testing.T) {
	ctx := context.Background()
	localStore := local.NewPostStore(newLocalBackend(t))
	offline, err := localStore.Create(ctx, entity.CreatePostInput{Title: "Offline draft"})
	require.NoError(t, err)

	log, logs := newObservedLogger()
	store := NewPostStore(downPostStore{}, localStore, time.Second, log)

	err = store.IncrementViews(ctx, offline.ID)
	assert.ErrorIs(t, err, errRemoteDown)

	got, err := localStore.GetByID(ctx, offline.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Zero(t, got.Views)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "[FALLBACK] remote increment_views failed, not retrying locally: connection refused", warnings[0].Message)
	assert.Equal(t, offline.ID, warnings[0].ContextMap()["id"])
}

func TestPostStore_IncrementViewsWithoutRemote(t *testing.T) {
	ctx := context.Background()
	localStore := local.NewPostStore(newLocalBackend(t))
	created, err := localStore.Create(ctx, entity.CreatePostInput{Title: "Local only"})
	require.NoError(t, err)

	store := NewPostStore(nil, localStore, time.Second, nil)
	require.NoError(t, store.IncrementViews(ctx, created.ID))

	got, err := localStore.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.Views)
}

func TestAuthorStore_RemoteDownServesLocal(t *testing.T) {
	store := NewAuthorStore(downAuthorStore{}, local.NewAuthorStore(newLocalBackend(t)), time.Second, nil)
	ctx := context.Background()

	created, err := store.Create(ctx, entity.CreateAuthorInput{Name: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	list, err := store.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	byName, err := store.GetByName(ctx, "JANE")
	require.NoError(t, err)
	require.NotNil(t, byName)

	toggled, err := store.SetActive(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	deleted, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestAuthorStore_BothDown(t *testing.T) {
	store := NewAuthorStore(downAuthorStore{}, local.NewAuthorStore(nil), time.Second, nil)
	ctx := context.Background()

	list, err := store.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = store.Create(ctx, entity.CreateAuthorInput{Name: "Jane"})
	assert.Error(t, err)
}
