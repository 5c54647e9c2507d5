// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindAll retrieves every product, oldest first so the shopper-facing
// order is stable across reloads.
func (repo *productRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	products := make([]entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, *toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product, assigning its identifier and timestamps.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	product.ID = uuid.NewString()

	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProduct
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// CreateBulk persists a batch of drafts in a single call and returns the
// created products with generated identifiers and timestamps.
func (repo *productRepository) CreateBulk(ctx context.Context, drafts []entity.ProductDraft) ([]entity.Product, error) {
	productModels := make([]*model.ProductModel, 0, len(drafts))
	for i := range drafts {
		productModels = append(productModels, &model.ProductModel{
			ID:          uuid.NewString(),
			Name:        drafts[i].Name,
			Price:       drafts[i].Price,
			Category:    drafts[i].Category,
			Quantity:    drafts[i].Quantity,
			Image:       drafts[i].Image,
			Description: drafts[i].Description,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create products in bulk")
	}

	products := make([]entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, *toProductDomain(productM))
	}

	return products, nil
}

// Update applies a partial update, stamping UpdatedAt, and returns the
// updated product.
func (repo *productRepository) Update(ctx context.Context, id string, patch repository.ProductPatch) (*entity.Product, error) {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Quantity != nil {
		updates["quantity"] = *patch.Quantity
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a product by its ID.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Category:    data.Category,
		Quantity:    data.Quantity,
		Image:       data.Image,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Category:    data.Category,
		Quantity:    data.Quantity,
		Image:       data.Image,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
