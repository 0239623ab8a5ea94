package persistent

import (
	"context"
	"errors"
	"time"

	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/model"
	"makemodelyear/services/blog/internal/repo"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repo.UserStore {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, repo.RemoteError("list_users", err)
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, repo.RemoteError("get_user", err)
	}
	return ToUserEntity(&userModel), nil
}

// Update writes only whitelisted columns; updated_at is always refreshed.
func (r *userRepository) Update(ctx context.Context, id string, updates entity.UserUpdate) (*entity.User, error) {
	columns := map[string]interface{}{"updated_at": time.Now().UTC()}
	if updates.FullName != nil {
		columns["full_name"] = *updates.FullName
	}
	if updates.AvatarURL != nil {
		columns["avatar_url"] = *updates.AvatarURL
	}
	if updates.Role != nil {
		columns["role"] = string(*updates.Role)
	}
	if updates.IsActive != nil {
		columns["is_active"] = *updates.IsActive
	}

	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return nil, repo.RemoteError("update_user", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}
