package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSnapshotNotFound is returned when no catalog snapshot has been saved yet.
var ErrSnapshotNotFound = errors.New("catalog snapshot not found")

// CatalogSnapshot is the last-known-good copy of the catalog, kept so the
// store can come up read-only when the database is unreachable.
type CatalogSnapshot struct {
	Products []entity.Product     `json:"products"`
	Settings entity.StoreSettings `json:"settings"`
	SavedAt  time.Time            `json:"savedAt"`
}

// PreferenceStore is a small key-value store for client-scoped state: the
// catalog fallback snapshot and per-session admin flags. The admin flag is a
// trust-nothing UI gate, not an authentication mechanism.
type PreferenceStore interface {
	// SaveSnapshot overwrites the stored catalog snapshot.
	SaveSnapshot(ctx context.Context, snapshot *CatalogSnapshot) error

	// LoadSnapshot retrieves the stored catalog snapshot, if any.
	LoadSnapshot(ctx context.Context) (*CatalogSnapshot, error)

	// SetAdminSession sets or clears the admin flag for a session.
	SetAdminSession(ctx context.Context, sessionID string, isAdmin bool) error

	// AdminSession reports whether the session carries the admin flag.
	AdminSession(ctx context.Context, sessionID string) (bool, error)
}
