package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// AdminUsecase gates and performs catalog mutations. Authentication is a
// static credential pair from configuration; a successful login only flips a
// per-session boolean in the preference store.
type AdminUsecase interface {
	// Login verifies the credential pair and marks the session as admin.
	Login(ctx context.Context, sessionID, username, password string) error

	// Logout clears the session's admin flag.
	Logout(ctx context.Context, sessionID string) error

	// IsAdmin reports whether the session carries the admin flag.
	IsAdmin(ctx context.Context, sessionID string) (bool, error)

	// CreateProduct persists a new product. The category must belong to the
	// configured category set.
	CreateProduct(ctx context.Context, draft *entity.ProductDraft) (*entity.Product, error)

	// CreateProducts persists a batch of drafts in one bulk call.
	CreateProducts(ctx context.Context, drafts []entity.ProductDraft) ([]entity.Product, error)

	// BulkImport parses newline-delimited "name, price, category, quantity,
	// description" records and creates them in one bulk call. The batch is
	// all-or-nothing: the first malformed line rejects every record.
	BulkImport(ctx context.Context, text string) ([]entity.Product, error)

	// UpdateProduct applies a partial update and stamps UpdatedAt.
	UpdateProduct(ctx context.Context, id string, patch repository.ProductPatch) (*entity.Product, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id string) error

	// UpdateSettings replaces the settings singleton wholesale. Removing a
	// category does not cascade to products already assigned to it.
	UpdateSettings(ctx context.Context, settings *entity.StoreSettings) (*entity.StoreSettings, error)

	// ListOrders retrieves all order inquiries for the admin panel.
	ListOrders(ctx context.Context) ([]entity.Order, error)
}
