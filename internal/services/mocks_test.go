package services_test

import (
	"emporium/internal/audit"
	"emporium/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockBrandRepository is a mock implementation of repositories.BrandRepository.
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) FindAll() ([]models.Brand, error) {
	args := m.Called()
	return args.Get(0).([]models.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindByID(id int64) (*models.Brand, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindByName(name string) ([]models.Brand, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Brand), args.Error(1)
}

func (m *MockBrandRepository) Create(brand *models.Brand) error {
	args := m.Called(brand)
	return args.Error(0)
}

func (m *MockBrandRepository) Update(brand *models.Brand) error {
	args := m.Called(brand)
	return args.Error(0)
}

func (m *MockBrandRepository) Delete(brand *models.Brand) error {
	args := m.Called(brand)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of
// repositories.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(id int64) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(name string) ([]models.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of
// repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(id int64) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllByBrandID(brandID int64) ([]models.Product, error) {
	args := m.Called(brandID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllByCategoryID(categoryID int64) ([]models.Product, error) {
	args := m.Called(categoryID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

// MockVariationRepository is a mock implementation of
// repositories.ProductVariationRepository.
type MockVariationRepository struct {
	mock.Mock
}

func (m *MockVariationRepository) FindByID(id int64) (*models.ProductVariation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductVariation), args.Error(1)
}

func (m *MockVariationRepository) Create(variation *models.ProductVariation) error {
	args := m.Called(variation)
	return args.Error(0)
}

func (m *MockVariationRepository) Update(variation *models.ProductVariation) error {
	args := m.Called(variation)
	return args.Error(0)
}

func (m *MockVariationRepository) Delete(variation *models.ProductVariation) error {
	args := m.Called(variation)
	return args.Error(0)
}

func (m *MockVariationRepository) DecrementStock(id int64, quantity int) (int64, error) {
	args := m.Called(id, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVariationRepository) UpdateStockByID(id int64, stock int) (int64, error) {
	args := m.Called(id, stock)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVariationRepository) UpdatePriceByID(id int64, price float64) (int64, error) {
	args := m.Called(id, price)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditRecorder is a mock implementation of audit.Recorder.
type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Record(event audit.Event) error {
	args := m.Called(event)
	return args.Error(0)
}
