package repositories

import (
	"emporium/internal/models"
)

// ProductVariationRepository defines the interface for variation data access.
// DecrementStock, UpdateStockByID and UpdatePriceByID are single conditional
// or keyed updates; they report the affected row count so callers can tell a
// no-op from a hit without a prior read.
type ProductVariationRepository interface {
	FindByID(id int64) (*models.ProductVariation, error)
	Create(variation *models.ProductVariation) error
	Update(variation *models.ProductVariation) error
	Delete(variation *models.ProductVariation) error

	// DecrementStock atomically runs
	//   stock = stock - quantity WHERE id = ? AND stock >= quantity
	// and returns the number of rows affected. The predicate folds "id
	// missing" and "stock short" into the same zero result.
	DecrementStock(id int64, quantity int) (int64, error)
	UpdateStockByID(id int64, stock int) (int64, error)
	UpdatePriceByID(id int64, price float64) (int64, error)
}
