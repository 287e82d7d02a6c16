package repositories

import (
	"emporium/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	FindAll() ([]models.Category, error)
	FindByID(id int64) (*models.Category, error)
	FindByName(name string) ([]models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(category *models.Category) error
}
