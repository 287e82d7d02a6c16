package repositories

import (
	"strings"
	"sync"

	"emporium/internal/models"
)

// MockProductVariationRepository is an in-memory implementation of
// ProductVariationRepository. Its conditional updates run under a single
// mutex, mirroring the row-level atomicity a real storage engine provides,
// which makes it suitable for exercising concurrent purchase behavior.
type MockProductVariationRepository struct {
	variations map[int64]models.ProductVariation
	nextID     int64
	mu         sync.RWMutex
}

// NewMockProductVariationRepository creates a new instance of
// MockProductVariationRepository.
func NewMockProductVariationRepository() *MockProductVariationRepository {
	return &MockProductVariationRepository{
		variations: make(map[int64]models.ProductVariation),
		nextID:     1,
	}
}

// FindByID returns a variation by its ID.
func (r *MockProductVariationRepository) FindByID(id int64) (*models.ProductVariation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variation, ok := r.variations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &variation, nil
}

// Create adds a new variation, assigning an id if absent.
func (r *MockProductVariationRepository) Create(variation *models.ProductVariation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if variation.ID == 0 {
		variation.ID = r.nextID
		r.nextID++
	}
	r.variations[variation.ID] = *variation
	return nil
}

// Update replaces a stored variation wholesale, attributes included.
func (r *MockProductVariationRepository) Update(variation *models.ProductVariation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.variations[variation.ID]; !ok {
		return ErrNotFound
	}
	r.variations[variation.ID] = *variation
	return nil
}

// Delete removes a variation.
func (r *MockProductVariationRepository) Delete(variation *models.ProductVariation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.variations[variation.ID]; !ok {
		return ErrNotFound
	}
	delete(r.variations, variation.ID)
	return nil
}

// DecrementStock applies the decrement-if-sufficient predicate atomically
// under the repository mutex.
func (r *MockProductVariationRepository) DecrementStock(id int64, quantity int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	variation, ok := r.variations[id]
	if !ok || variation.Stock < quantity {
		return 0, nil
	}
	variation.Stock -= quantity
	r.variations[id] = variation
	return 1, nil
}

// UpdateStockByID overwrites the stock level.
func (r *MockProductVariationRepository) UpdateStockByID(id int64, stock int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	variation, ok := r.variations[id]
	if !ok {
		return 0, nil
	}
	variation.Stock = stock
	r.variations[id] = variation
	return 1, nil
}

// UpdatePriceByID overwrites the price.
func (r *MockProductVariationRepository) UpdatePriceByID(id int64, price float64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	variation, ok := r.variations[id]
	if !ok {
		return 0, nil
	}
	variation.Price = price
	r.variations[id] = variation
	return 1, nil
}

// FindBySku returns variations whose SKU matches case-insensitively, a
// convenience for tests asserting uniqueness behavior.
func (r *MockProductVariationRepository) FindBySku(sku string) []models.ProductVariation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.ProductVariation
	for _, v := range r.variations {
		if strings.EqualFold(v.Sku, sku) {
			matches = append(matches, v)
		}
	}
	return matches
}
