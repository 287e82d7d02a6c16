package repositories

import (
	"errors"
	"fmt"

	"emporium/internal/models"

	"gorm.io/gorm"
)

// GORMProductVariationRepository is a GORM implementation of
// ProductVariationRepository.
type GORMProductVariationRepository struct {
	db *gorm.DB
}

// NewGORMProductVariationRepository creates a new instance of
// GORMProductVariationRepository.
func NewGORMProductVariationRepository(db *gorm.DB) *GORMProductVariationRepository {
	return &GORMProductVariationRepository{
		db: db,
	}
}

// FindByID retrieves a variation with its attributes.
func (r *GORMProductVariationRepository) FindByID(id int64) (*models.ProductVariation, error) {
	var variation models.ProductVariation
	if err := r.db.Preload("Attributes").First(&variation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get variation by ID %d: %w", id, err)
	}
	return &variation, nil
}

// Create inserts a variation together with its attributes.
func (r *GORMProductVariationRepository) Create(variation *models.ProductVariation) error {
	if err := r.db.Create(variation).Error; err != nil {
		return fmt.Errorf("failed to create variation: %w", err)
	}
	return nil
}

// Update saves the variation and wholesale-replaces its attribute rows: the
// old rows are deleted and the supplied set inserted fresh. Attribute
// identity is not preserved across updates.
func (r *GORMProductVariationRepository) Update(variation *models.ProductVariation) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("variation_id = ?", variation.ID).
			Delete(&models.ProductVariationAttribute{}).Error; err != nil {
			return err
		}
		return tx.Save(variation).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update variation %d: %w", variation.ID, err)
	}
	return nil
}

// Delete removes the variation and its attributes in one transaction.
func (r *GORMProductVariationRepository) Delete(variation *models.ProductVariation) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("variation_id = ?", variation.ID).
			Delete(&models.ProductVariationAttribute{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.ProductVariation{}, "id = ?", variation.ID)
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
		return fmt.Errorf("failed to delete variation %d: %w", variation.ID, err)
	}
	return nil
}

// DecrementStock issues the single conditional update that keeps concurrent
// purchases from driving stock negative. The storage engine evaluates the
// predicate and the assignment atomically; no application lock is held.
func (r *GORMProductVariationRepository) DecrementStock(id int64, quantity int) (int64, error) {
	res := r.db.Model(&models.ProductVariation{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to decrement stock for variation %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// UpdateStockByID overwrites the stock level keyed by id.
func (r *GORMProductVariationRepository) UpdateStockByID(id int64, stock int) (int64, error) {
	res := r.db.Model(&models.ProductVariation{}).
		Where("id = ?", id).
		UpdateColumn("stock", stock)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update stock for variation %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// UpdatePriceByID overwrites the price keyed by id.
func (r *GORMProductVariationRepository) UpdatePriceByID(id int64, price float64) (int64, error) {
	res := r.db.Model(&models.ProductVariation{}).
		Where("id = ?", id).
		UpdateColumn("price", price)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update price for variation %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
