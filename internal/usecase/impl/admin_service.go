package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
)

// bulkImportFields is the minimum field count of one import line:
// name, price, category, quantity, description.
const bulkImportFields = 5

type adminService struct {
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	prefStore    repository.PreferenceStore
	hasher       service.PasswordHasher
	catalog      usecase.CatalogUsecase
	cfg          *config.Config
	logger       *slog.Logger
}

// NewAdminService creates the admin catalog editor.
func NewAdminService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
	prefStore repository.PreferenceStore,
	hasher service.PasswordHasher,
	catalog usecase.CatalogUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		prefStore:    prefStore,
		hasher:       hasher,
		catalog:      catalog,
		cfg:          cfg,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Login compares the supplied pair against the configured static credentials
// and, on success, flips the session's admin flag in the preference store.
// The flag is a UI gate; there is no token and no real security boundary.
func (s *adminService) Login(ctx context.Context, sessionID, username, password string) error {
	if username != s.cfg.Admin.Username || !s.hasher.Check(password, s.cfg.Admin.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	if err := s.prefStore.SetAdminSession(ctx, sessionID, true); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save admin session")
	}

	s.log(ctx).Info("Admin logged in", slog.String("sessionID", sessionID))

	return nil
}

func (s *adminService) Logout(ctx context.Context, sessionID string) error {
	if err := s.prefStore.SetAdminSession(ctx, sessionID, false); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear admin session")
	}

	return nil
}

func (s *adminService) IsAdmin(ctx context.Context, sessionID string) (bool, error) {
	isAdmin, err := s.prefStore.AdminSession(ctx, sessionID)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to read admin session")
	}

	return isAdmin, nil
}

func (s *adminService) CreateProduct(ctx context.Context, draft *entity.ProductDraft) (*entity.Product, error) {
	settings := s.catalog.Settings()
	if !settings.HasCategory(draft.Category) {
		return nil, domainerrors.ErrUnknownCategory.WithDetails(draft.Category)
	}

	product := &entity.Product{
		Name:        draft.Name,
		Price:       draft.Price,
		Category:    draft.Category,
		Quantity:    draft.Quantity,
		Image:       draft.Image,
		Description: draft.Description,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	if err := s.catalog.RefreshProducts(ctx); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *adminService) CreateProducts(ctx context.Context, drafts []entity.ProductDraft) ([]entity.Product, error) {
	created, err := s.productRepo.CreateBulk(ctx, drafts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create products in bulk")
	}

	if err := s.catalog.RefreshProducts(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// BulkImport parses newline-delimited, comma-separated records of the form
// "name, price, category, quantity, description". The description may itself
// contain commas and is re-joined from the remaining fields. The batch is
// all-or-nothing: the first malformed line rejects every record and reports
// its line number.
func (s *adminService) BulkImport(ctx context.Context, text string) ([]entity.Product, error) {
	drafts, err := s.parseBulkImport(text)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, domainerrors.ErrBulkImportInvalid.WithDetails("no product lines found")
	}

	created, err := s.CreateProducts(ctx, drafts)
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Bulk import completed", slog.Int("products", len(created)))

	return created, nil
}

func (s *adminService) parseBulkImport(text string) ([]entity.ProductDraft, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	drafts := make([]entity.ProductDraft, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, ",")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if len(parts) < bulkImportFields {
			return nil, domainerrors.ErrBulkImportInvalid.WithDetails(fmt.Sprintf(
				"line %d: expected \"Name, Price, Category, Quantity, Description\", got %d fields", i+1, len(parts)))
		}

		price, err := decimal.NewFromString(parts[1])
		if err != nil {
			return nil, domainerrors.ErrBulkImportInvalid.WithDetails(fmt.Sprintf(
				"line %d: invalid price %q", i+1, parts[1]))
		}

		quantity, err := strconv.Atoi(parts[3])
		if err != nil {
			return nil, domainerrors.ErrBulkImportInvalid.WithDetails(fmt.Sprintf(
				"line %d: invalid quantity %q", i+1, parts[3]))
		}

		drafts = append(drafts, entity.ProductDraft{
			Name:        parts[0],
			Price:       price,
			Category:    strings.ToLower(parts[2]),
			Quantity:    quantity,
			Image:       s.cfg.Store.DefaultProductImage,
			Description: strings.Join(parts[4:], ", "),
		})
	}

	return drafts, nil
}

func (s *adminService) UpdateProduct(ctx context.Context, id string, patch repository.ProductPatch) (*entity.Product, error) {
	if patch.Category != nil {
		settings := s.catalog.Settings()
		if !settings.HasCategory(*patch.Category) {
			return nil, domainerrors.ErrUnknownCategory.WithDetails(*patch.Category)
		}
	}

	product, err := s.productRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(id)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	if err := s.catalog.RefreshProducts(ctx); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *adminService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WithDetails(id)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return s.catalog.RefreshProducts(ctx)
}

// UpdateSettings replaces the settings singleton wholesale. Removing a
// category from the set does NOT touch products already assigned to it; that
// gap is preserved deliberately.
func (s *adminService) UpdateSettings(ctx context.Context, settings *entity.StoreSettings) (*entity.StoreSettings, error) {
	updated, err := s.settingsRepo.Replace(ctx, settings)
	if err != nil {
		return nil, domainerrors.ErrSettingsUpdateFailed.WithDetails(err.Error())
	}

	if err := s.catalog.RefreshSettings(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *adminService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return orders, nil
}
