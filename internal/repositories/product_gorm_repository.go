package repositories

import (
	"errors"
	"fmt"

	"emporium/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func (r *GORMProductRepository) withSubtree() *gorm.DB {
	return r.db.
		Preload("Brand").
		Preload("Category").
		Preload("Variations.Attributes")
}

// FindAll retrieves all products with their full subtrees.
func (r *GORMProductRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.withSubtree().Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a single product by its ID with its full subtree.
func (r *GORMProductRepository) FindByID(id int64) (*models.Product, error) {
	var product models.Product
	if err := r.withSubtree().First(&product, "products.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// FindAllByBrandID retrieves all products referencing the given brand.
func (r *GORMProductRepository) FindAllByBrandID(brandID int64) ([]models.Product, error) {
	var products []models.Product
	if err := r.withSubtree().Where("brand_id = ?", brandID).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by brand ID %d: %w", brandID, err)
	}
	return products, nil
}

// FindAllByCategoryID retrieves all products referencing the given category.
func (r *GORMProductRepository) FindAllByCategoryID(categoryID int64) ([]models.Product, error) {
	var products []models.Product
	if err := r.withSubtree().Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by category ID %d: %w", categoryID, err)
	}
	return products, nil
}

// Create inserts a product with its variations and attributes. GORM wraps the
// nested insert in a single transaction, so a partial graph is never durable.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists the product's own columns. Associations are deliberately
// omitted: variations are only mutable through the variation repository.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Omit(clause.Associations).Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the product and cascades to its variations and their
// attributes inside one transaction, leaving no orphans behind.
func (r *GORMProductRepository) Delete(product *models.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		variationIDs := tx.Model(&models.ProductVariation{}).
			Select("id").
			Where("product_id = ?", product.ID)
		if err := tx.Where("variation_id IN (?)", variationIDs).
			Delete(&models.ProductVariationAttribute{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).
			Delete(&models.ProductVariation{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, "id = ?", product.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete product %d: %w", product.ID, err)
	}
	return nil
}
