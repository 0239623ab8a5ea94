package usecase

import (
	"context"
	"fmt"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/content"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/repo"
)

type SettingsUseCase interface {
	Load(ctx context.Context) (entity.SiteSettings, error)
	// LoadOrDefault never fails; a store error yields the defaults.
	LoadOrDefault(ctx context.Context) entity.SiteSettings
	Save(ctx context.Context, settings entity.SiteSettings) error
}

type settingsUseCase struct {
	store  repo.SettingStore
	logger *logger.Logger
}

// NewSettingsUseCase accepts a nil store when no database is configured.
func NewSettingsUseCase(store repo.SettingStore, logger *logger.Logger) SettingsUseCase {
	return &settingsUseCase{store: store, logger: logger}
}

func (uc *settingsUseCase) Load(ctx context.Context) (entity.SiteSettings, error) {
	if uc.store == nil {
		return entity.SiteSettings{}, fmt.Errorf("failed to load settings: %w", ErrUnavailable)
	}
	rows, err := uc.store.List(ctx)
	if err != nil {
		return entity.SiteSettings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return content.SettingsFromRows(rows), nil
}

func (uc *settingsUseCase) LoadOrDefault(ctx context.Context) entity.SiteSettings {
	settings, err := uc.Load(ctx)
	if err != nil {
		uc.logger.Warn("[SETTINGS] using defaults: %v", err)
		return entity.DefaultSiteSettings()
	}
	return settings
}

// Save writes every known key: update by key, insert when no row matched.
// It stops at the first failure; rows already written stay written.
func (uc *settingsUseCase) Save(ctx context.Context, settings entity.SiteSettings) error {
	if uc.store == nil {
		return fmt.Errorf("failed to save settings: %w", ErrUnavailable)
	}

	for _, row := range content.SettingsToRows(settings) {
		affected, err := uc.store.UpdateByKey(ctx, row)
		if err != nil {
			return fmt.Errorf("failed to save setting %s: %w", row.Key, err)
		}
		if affected > 0 {
			continue
		}
		if err := uc.store.Insert(ctx, row); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", row.Key, err)
		}
	}
	uc.logger.Info("[SETTINGS] saved %d settings", len(content.SettingKeys()))
	return nil
}
