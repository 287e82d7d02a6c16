package repositories

import (
	"errors"
	"fmt"

	"emporium/internal/models"

	"gorm.io/gorm"
)

// GORMBrandRepository is a GORM implementation of BrandRepository.
type GORMBrandRepository struct {
	db *gorm.DB
}

// NewGORMBrandRepository creates a new instance of GORMBrandRepository.
func NewGORMBrandRepository(db *gorm.DB) *GORMBrandRepository {
	return &GORMBrandRepository{
		db: db,
	}
}

// FindAll retrieves all brands from the database.
func (r *GORMBrandRepository) FindAll() ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to get all brands: %w", err)
	}
	return brands, nil
}

// FindByID retrieves a single brand by its ID.
func (r *GORMBrandRepository) FindByID(id int64) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get brand by ID %d: %w", id, err)
	}
	return &brand, nil
}

// FindByName retrieves brands matching the exact name. Zero matches is not an
// error; callers use the result for uniqueness checks.
func (r *GORMBrandRepository) FindByName(name string) ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.Where("name = ?", name).Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to get brands by name %q: %w", name, err)
	}
	return brands, nil
}

// Create inserts a new brand.
func (r *GORMBrandRepository) Create(brand *models.Brand) error {
	if err := r.db.Create(brand).Error; err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

// Update persists changes to an existing brand.
func (r *GORMBrandRepository) Update(brand *models.Brand) error {
	res := r.db.Save(brand)
	if res.Error != nil {
		return fmt.Errorf("failed to update brand: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a brand row. A brand still referenced by products fails at
// the storage layer; no referential pre-check is made here.
func (r *GORMBrandRepository) Delete(brand *models.Brand) error {
	res := r.db.Delete(brand)
	if res.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
