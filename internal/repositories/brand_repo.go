package repositories

import (
	"emporium/internal/models"
)

// BrandRepository defines the interface for brand data access.
type BrandRepository interface {
	FindAll() ([]models.Brand, error)
	FindByID(id int64) (*models.Brand, error)
	FindByName(name string) ([]models.Brand, error)
	Create(brand *models.Brand) error
	Update(brand *models.Brand) error
	Delete(brand *models.Brand) error
}
