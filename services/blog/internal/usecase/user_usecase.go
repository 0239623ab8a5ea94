package usecase

import (
	"context"
	"fmt"

	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/repo"
)

type UserUseCase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUser(ctx context.Context, id string, updates entity.UserUpdate) (*entity.User, error)
	// Role is the role of an active user, or "" for unknown and inactive users.
	Role(ctx context.Context, userID string) (string, error)
}

type userUseCase struct {
	users repo.UserStore
}

// NewUserUseCase accepts a nil store when no database is configured.
func NewUserUseCase(users repo.UserStore) UserUseCase {
	return &userUseCase{users: users}
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	if uc.users == nil {
		return nil, ErrUnavailable
	}
	return uc.users.List(ctx)
}

func (uc *userUseCase) UpdateUser(ctx context.Context, id string, updates entity.UserUpdate) (*entity.User, error) {
	if id == "" {
		return nil, invalid("id", "is required")
	}
	if updates.Role != nil && !updates.Role.Valid() {
		return nil, invalid("role", "must be user, admin or moderator")
	}
	if uc.users == nil {
		return nil, ErrUnavailable
	}

	user, err := uc.users.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (uc *userUseCase) Role(ctx context.Context, userID string) (string, error) {
	if uc.users == nil {
		return "", ErrUnavailable
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil || !user.IsActive {
		return "", nil
	}
	return string(user.Role), nil
}
