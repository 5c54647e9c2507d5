package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get retrieves the settings singleton.
func (repo *settingsRepository) Get(ctx context.Context) (*entity.StoreSettings, error) {
	var settingsM model.StoreSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", model.SettingsSingletonID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find store settings")
	}

	var settings entity.StoreSettings
	if err := json.Unmarshal(settingsM.Data, &settings); err != nil {
		return nil, errors.Wrap(err, "failed to decode store settings")
	}

	return &settings, nil
}

// Replace overwrites the settings singleton wholesale.
func (repo *settingsRepository) Replace(ctx context.Context, settings *entity.StoreSettings) (*entity.StoreSettings, error) {
	data, err := json.Marshal(settings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode store settings")
	}

	settingsM := &model.StoreSettingsModel{
		ID:   model.SettingsSingletonID,
		Data: data,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(settingsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to replace store settings")
	}

	return settings, nil
}
