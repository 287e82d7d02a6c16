package repositories

import (
	"emporium/internal/models"
)

// ProductRepository defines the interface for product aggregate data access.
// Point lookups return the full subtree (brand, category, variations with
// attributes); Create persists the whole graph in one transaction; Delete
// cascades to variations and attributes.
type ProductRepository interface {
	FindAll() ([]models.Product, error)
	FindByID(id int64) (*models.Product, error)
	FindAllByBrandID(brandID int64) ([]models.Product, error)
	FindAllByCategoryID(categoryID int64) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(product *models.Product) error
}
