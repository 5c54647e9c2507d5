package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSettingsNotFound is returned when the settings singleton has never been stored.
var ErrSettingsNotFound = errors.New("store settings not found")

// SettingsRepository persists the StoreSettings singleton.
type SettingsRepository interface {
	// Get retrieves the settings singleton.
	Get(ctx context.Context) (*entity.StoreSettings, error)

	// Replace overwrites the settings singleton wholesale and returns the
	// stored value. Partial updates are not supported on purpose; admin
	// saves are full replacements.
	Replace(ctx context.Context, settings *entity.StoreSettings) (*entity.StoreSettings, error)
}
