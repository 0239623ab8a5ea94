package persistent

import (
	"context"
	"time"

	"makemodelyear/services/blog/internal/content"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/model"
	"makemodelyear/services/blog/internal/repo"

	"gorm.io/gorm"
)

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) repo.SettingStore {
	return &settingRepository{db: db}
}

func (r *settingRepository) List(ctx context.Context) ([]entity.SettingRow, error) {
	var settingModels []model.SettingModel
	if err := r.db.WithContext(ctx).Order("key ASC").Find(&settingModels).Error; err != nil {
		return nil, repo.RemoteError("list_settings", err)
	}

	rows := make([]entity.SettingRow, len(settingModels))
	for i := range settingModels {
		rows[i] = ToSettingRow(&settingModels[i], content.SettingDataType(settingModels[i].Key))
	}
	return rows, nil
}

// UpdateByKey rewrites every row carrying row.Key and reports how many matched.
func (r *settingRepository) UpdateByKey(ctx context.Context, row entity.SettingRow) (int64, error) {
	settingModel := ToSettingModel(row)
	result := r.db.WithContext(ctx).Model(&model.SettingModel{}).
		Where("key = ?", row.Key).
		Updates(map[string]interface{}{
			"value":      settingModel.Value,
			"category":   settingModel.Category,
			"data_type":  settingModel.DataType,
			"is_active":  true,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, repo.RemoteError("update_setting", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *settingRepository) Insert(ctx context.Context, row entity.SettingRow) error {
	now := time.Now().UTC()
	row.IsActive = true
	row.CreatedAt = now
	row.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(ToSettingModel(row)).Error; err != nil {
		return repo.RemoteError("insert_setting", err)
	}
	return nil
}
