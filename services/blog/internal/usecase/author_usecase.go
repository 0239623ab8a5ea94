package usecase

import (
	"context"
	"fmt"
	"strings"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/repo"
)

type AuthorUseCase interface {
	ListAuthors(ctx context.Context, activeOnly bool) ([]*entity.Author, error)
	CreateAuthor(ctx context.Context, input entity.CreateAuthorInput) (*entity.Author, error)
	UpdateAuthor(ctx context.Context, id int64, input entity.UpdateAuthorInput) (*entity.Author, error)
	SetAuthorActive(ctx context.Context, id int64, active bool) (*entity.Author, error)
	// DeleteAuthor refuses with ErrAuthorInUse while any post names the author.
	DeleteAuthor(ctx context.Context, id int64) error
}

type authorUseCase struct {
	authors repo.AuthorStore
	posts   repo.PostStore
	logger  *logger.Logger
}

func NewAuthorUseCase(authors repo.AuthorStore, posts repo.PostStore, logger *logger.Logger) AuthorUseCase {
	return &authorUseCase{authors: authors, posts: posts, logger: logger}
}

func (uc *authorUseCase) ListAuthors(ctx context.Context, activeOnly bool) ([]*entity.Author, error) {
	return uc.authors.List(ctx, activeOnly)
}

func (uc *authorUseCase) CreateAuthor(ctx context.Context, input entity.CreateAuthorInput) (*entity.Author, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, invalid("name", "is required")
	}

	author, err := uc.authors.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}

func (uc *authorUseCase) UpdateAuthor(ctx context.Context, id int64, input entity.UpdateAuthorInput) (*entity.Author, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, invalid("name", "cannot be empty")
		}
		input.Name = &name
	}

	author, err := uc.authors.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	if author == nil {
		return nil, ErrNotFound
	}
	return author, nil
}

func (uc *authorUseCase) SetAuthorActive(ctx context.Context, id int64, active bool) (*entity.Author, error) {
	author, err := uc.authors.SetActive(ctx, id, active)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	if author == nil {
		return nil, ErrNotFound
	}
	return author, nil
}

func (uc *authorUseCase) DeleteAuthor(ctx context.Context, id int64) error {
	author, err := uc.authors.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if author == nil {
		return ErrNotFound
	}

	count, err := uc.posts.CountByAuthor(ctx, author.Name)
	if err != nil {
		return fmt.Errorf("failed to check author usage: %w", err)
	}
	if count > 0 {
		return ErrAuthorInUse
	}

	deleted, err := uc.authors.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	uc.logger.Info("author %d (%s) deleted", id, author.Name)
	return nil
}
