package repositories

import (
	"errors"
	"fmt"

	"emporium/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// FindAll retrieves all categories from the database.
func (r *GORMCategoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// FindByID retrieves a single category by its ID.
func (r *GORMCategoryRepository) FindByID(id int64) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return &category, nil
}

// FindByName retrieves categories matching the exact name.
func (r *GORMCategoryRepository) FindByName(name string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("name = ?", name).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories by name %q: %w", name, err)
	}
	return categories, nil
}

// Create inserts a new category.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update persists changes to an existing category.
func (r *GORMCategoryRepository) Update(category *models.Category) error {
	res := r.db.Save(category)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a category row. Referential failures surface from storage.
func (r *GORMCategoryRepository) Delete(category *models.Category) error {
	res := r.db.Delete(category)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
