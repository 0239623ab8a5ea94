package persistent

import (
	"context"
	"errors"
	"strings"
	"time"

	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/model"
	"makemodelyear/services/blog/internal/repo"

	"gorm.io/gorm"
)

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) repo.AuthorStore {
	return &authorRepository{db: db}
}

func (r *authorRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Author, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var authorModels []model.AuthorModel
	if err := query.Find(&authorModels).Error; err != nil {
		return nil, repo.RemoteError("list_authors", err)
	}

	authors := make([]*entity.Author, len(authorModels))
	for i := range authorModels {
		authors[i] = ToAuthorEntity(&authorModels[i])
	}
	return authors, nil
}

func (r *authorRepository) GetByID(ctx context.Context, id int64) (*entity.Author, error) {
	return r.first(ctx, "get_author", r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *authorRepository) GetByName(ctx context.Context, name string) (*entity.Author, error) {
	return r.first(ctx, "get_author_by_name", r.db.WithContext(ctx).Where("lower(name) = lower(?)", strings.TrimSpace(name)))
}

func (r *authorRepository) Create(ctx context.Context, input entity.CreateAuthorInput) (*entity.Author, error) {
	now := time.Now().UTC()
	author := &entity.Author{
		Name:        strings.TrimSpace(input.Name),
		Bio:         input.Bio,
		AvatarURL:   input.AvatarURL,
		TwitterURL:  input.TwitterURL,
		LinkedinURL: input.LinkedinURL,
		FacebookURL: input.FacebookURL,
		IsActive:    input.IsActive == nil || *input.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	authorModel := ToAuthorModel(author)
	// is_active defaults to true in the schema, so a false value must be written explicitly.
	if err := r.db.WithContext(ctx).Select("*").Omit("id").Create(authorModel).Error; err != nil {
		return nil, repo.RemoteError("create_author", err)
	}
	return ToAuthorEntity(authorModel), nil
}

func (r *authorRepository) Update(ctx context.Context, id int64, input entity.UpdateAuthorInput) (*entity.Author, error) {
	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if input.Name != nil {
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.AvatarURL != nil {
		updates["avatar_url"] = *input.AvatarURL
	}
	if input.TwitterURL != nil {
		updates["twitter_url"] = *input.TwitterURL
	}
	if input.LinkedinURL != nil {
		updates["linkedin_url"] = *input.LinkedinURL
	}
	if input.FacebookURL != nil {
		updates["facebook_url"] = *input.FacebookURL
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	return r.update(ctx, "update_author", id, updates)
}

func (r *authorRepository) SetActive(ctx context.Context, id int64, active bool) (*entity.Author, error) {
	return r.update(ctx, "set_author_active", id, map[string]interface{}{
		"is_active":  active,
		"updated_at": time.Now().UTC(),
	})
}

func (r *authorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.AuthorModel{}, id)
	if result.Error != nil {
		return false, repo.RemoteError("delete_author", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *authorRepository) update(ctx context.Context, op string, id int64, updates map[string]interface{}) (*entity.Author, error) {
	result := r.db.WithContext(ctx).Model(&model.AuthorModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, repo.RemoteError(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *authorRepository) first(ctx context.Context, op string, query *gorm.DB) (*entity.Author, error) {
	var authorModel model.AuthorModel
	err := query.First(&authorModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, repo.RemoteError(op, err)
	}
	return ToAuthorEntity(&authorModel), nil
}
