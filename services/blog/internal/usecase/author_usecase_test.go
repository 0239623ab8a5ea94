package usecase

import (
	"context"
	"errors"
	"testing"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteAuthor_InUse(t *testing.T) {
	authors := new(MockAuthorStore)
	posts := new(MockPostStore)
	uc := NewAuthorUseCase(authors, posts, logger.NewNop())

	authors.On("GetByID", mock.Anything, int64(3)).Return(&entity.Author{ID: 3, Name: "Jane Doe"}, nil)
	posts.On("CountByAuthor", mock.Anything, "Jane Doe").Return(int64(2), nil)

	err := uc.DeleteAuthor(context.Background(), 3)
	assert.ErrorIs(t, err, ErrAuthorInUse)
	assert.Equal(t, "cannot delete author: author is being used in blog posts", err.Error())
	authors.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteAuthor_Unreferenced(t *testing.T) {
	authors := new(MockAuthorStore)
	posts := new(MockPostStore)
	uc := NewAuthorUseCase(authors, posts, logger.NewNop())

	authors.On("GetByID", mock.Anything, int64(3)).Return(&entity.Author{ID: 3, Name: "Jane Doe"}, nil)
	posts.On("CountByAuthor", mock.Anything, "Jane Doe").Return(int64(0), nil)
	authors.On("Delete", mock.Anything, int64(3)).Return(true, nil)

	require.NoError(t, uc.DeleteAuthor(context.Background(), 3))
	authors.AssertExpectations(t)
}

func TestDeleteAuthor_CountFailureBlocksDelete(t *testing.T) {
	authors := new(MockAuthorStore)
	posts := new(MockPostStore)
	uc := NewAuthorUseCase(authors, posts, logger.NewNop())

	authors.On("GetByID", mock.Anything, int64(3)).Return(&entity.Author{ID: 3, Name: "Jane Doe"}, nil)
	posts.On("CountByAuthor", mock.Anything, "Jane Doe").Return(int64(0), errors.New("both stores down"))

	err := uc.DeleteAuthor(context.Background(), 3)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAuthorInUse)
	authors.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteAuthor_NotFound(t *testing.T) {
	authors := new(MockAuthorStore)
	uc := NewAuthorUseCase(authors, new(MockPostStore), logger.NewNop())

	authors.On("GetByID", mock.Anything, int64(9)).Return(nil, nil)

	assert.ErrorIs(t, uc.DeleteAuthor(context.Background(), 9), ErrNotFound)
}

func TestCreateAuthor(t *testing.T) {
	authors := new(MockAuthorStore)
	uc := NewAuthorUseCase(authors, new(MockPostStore), logger.NewNop())

	_, err := uc.CreateAuthor(context.Background(), entity.CreateAuthorInput{Name: "  "})
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "name", validationErr.Field)

	authors.On("Create", mock.Anything, entity.CreateAuthorInput{Name: "Jane"}).Return(&entity.Author{ID: 1, Name: "Jane", IsActive: true}, nil)

	author, err := uc.CreateAuthor(context.Background(), entity.CreateAuthorInput{Name: " Jane "})
	require.NoError(t, err)
	assert.True(t, author.IsActive)
}

func TestSetAuthorActive_NotFound(t *testing.T) {
	authors := new(MockAuthorStore)
	uc := NewAuthorUseCase(authors, new(MockPostStore), logger.NewNop())

	authors.On("SetActive", mock.Anything, int64(4), false).Return(nil, nil)

	_, err := uc.SetAuthorActive(context.Background(), 4, false)
	assert.ErrorIs(t, err, ErrNotFound)
}
