package http

import (
	"context"

	"makemodelyear/services/blog/internal/content"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockBlogUseCase is a mock implementation of BlogUseCase
type MockBlogUseCase struct {
	mock.Mock
}

func (m *MockBlogUseCase) postList(args mock.Arguments) ([]*entity.Post, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockBlogUseCase) post(args mock.Arguments) (*entity.Post, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockBlogUseCase) ListPublished(ctx context.Context, query string) ([]*entity.Post, error) {
	return m.postList(m.Called(ctx, query))
}

func (m *MockBlogUseCase) ListByTag(ctx context.Context, tag string) ([]*entity.Post, error) {
	return m.postList(m.Called(ctx, tag))
}

func (m *MockBlogUseCase) GetPostDetail(ctx context.Context, slug string) (*usecase.PostDetail, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PostDetail), args.Error(1)
}

func (m *MockBlogUseCase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	return m.postList(m.Called(ctx))
}

func (m *MockBlogUseCase) GetPost(ctx context.Context, id int64) (*entity.Post, error) {
	return m.post(m.Called(ctx, id))
}

func (m *MockBlogUseCase) CreatePost(ctx context.Context, input entity.CreatePostInput) (*entity.Post, error) {
	return m.post(m.Called(ctx, input))
}

func (m *MockBlogUseCase) UpdatePost(ctx context.Context, id int64, input entity.UpdatePostInput) (*entity.Post, error) {
	return m.post(m.Called(ctx, id, input))
}

func (m *MockBlogUseCase) DeletePost(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBlogUseCase) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DashboardStats), args.Error(1)
}

func (m *MockBlogUseCase) Sitemap(ctx context.Context) (content.SitemapURLSet, error) {
	args := m.Called(ctx)
	return args.Get(0).(content.SitemapURLSet), args.Error(1)
}

func (m *MockBlogUseCase) Feed(ctx context.Context) (content.RSS, error) {
	args := m.Called(ctx)
	return args.Get(0).(content.RSS), args.Error(1)
}

func (m *MockBlogUseCase) Wait() {}

// MockAuthorUseCase is a mock implementation of AuthorUseCase
type MockAuthorUseCase struct {
	mock.Mock
}

func (m *MockAuthorUseCase) author(args mock.Arguments) (*entity.Author, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Author), args.Error(1)
}

func (m *MockAuthorUseCase) ListAuthors(ctx context.Context, activeOnly bool) ([]*entity.Author, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Author), args.Error(1)
}

func (m *MockAuthorUseCase) CreateAuthor(ctx context.Context, input entity.CreateAuthorInput) (*entity.Author, error) {
	return m.author(m.Called(ctx, input))
}

func (m *MockAuthorUseCase) UpdateAuthor(ctx context.Context, id int64, input entity.UpdateAuthorInput) (*entity.Author, error) {
	return m.author(m.Called(ctx, id, input))
}

func (m *MockAuthorUseCase) SetAuthorActive(ctx context.Context, id int64, active bool) (*entity.Author, error) {
	return m.author(m.Called(ctx, id, active))
}

func (m *MockAuthorUseCase) DeleteAuthor(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockSettingsUseCase is a mock implementation of SettingsUseCase
type MockSettingsUseCase struct {
	mock.Mock
}

func (m *MockSettingsUseCase) Load(ctx context.Context) (entity.SiteSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.SiteSettings), args.Error(1)
}

func (m *MockSettingsUseCase) LoadOrDefault(ctx context.Context) entity.SiteSettings {
	return m.Called(ctx).Get(0).(entity.SiteSettings)
}

func (m *MockSettingsUseCase) Save(ctx context.Context, settings entity.SiteSettings) error {
	return m.Called(ctx, settings).Error(0)
}

// MockUserUseCase is a mock implementation of UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateUser(ctx context.Context, id string, updates entity.UserUpdate) (*entity.User, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) Role(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

// MockMediaUseCase is a mock implementation of MediaUseCase
type MockMediaUseCase struct {
	mock.Mock
}

func (m *MockMediaUseCase) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*usecase.UploadResult, error) {
	args := m.Called(ctx, folder, filename, contentType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.UploadResult), args.Error(1)
}

func (m *MockMediaUseCase) Delete(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

// MockContactUseCase is a mock implementation of ContactUseCase
type MockContactUseCase struct {
	mock.Mock
}

func (m *MockContactUseCase) Submit(ctx context.Context, msg usecase.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

var (
	_ usecase.BlogUseCase     = (*MockBlogUseCase)(nil)
	_ usecase.AuthorUseCase   = (*MockAuthorUseCase)(nil)
	_ usecase.SettingsUseCase = (*MockSettingsUseCase)(nil)
	_ usecase.UserUseCase     = (*MockUserUseCase)(nil)
	_ usecase.MediaUseCase    = (*MockMediaUseCase)(nil)
	_ usecase.ContactUseCase  = (*MockContactUseCase)(nil)
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
