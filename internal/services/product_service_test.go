package services_test

import (
	"fmt"
	"testing"

	"emporium/internal/apperrors"
	"emporium/internal/audit"
	"emporium/internal/models"
	"emporium/internal/repositories"
	"emporium/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func int64Ptr(v int64) *int64 { return &v }

func newProductService(productRepo *MockProductRepository, brandRepo *MockBrandRepository, categoryRepo *MockCategoryRepository, recorder *MockAuditRecorder) *services.ProductService {
	if recorder == nil {
		return services.NewProductService(productRepo, brandRepo, categoryRepo, nil)
	}
	return services.NewProductService(productRepo, brandRepo, categoryRepo, recorder)
}

func validProductRequest() *models.ProductRequest {
	return &models.ProductRequest{
		Name:        "Widget",
		Description: "desc",
		BrandID:     int64Ptr(1),
		CategoryID:  int64Ptr(2),
		Variations: []models.ProductVariationRequest{
			{Sku: "W-1", Price: 9.99, Stock: 10, Attributes: []models.ProductVariationAttributeDTO{}},
		},
	}
}

func TestProductService_CreateProduct_ValidationFailures(t *testing.T) {
	productRepo := new(MockProductRepository)
	brandRepo := new(MockBrandRepository)
	categoryRepo := new(MockCategoryRepository)
	service := newProductService(productRepo, brandRepo, categoryRepo, nil)

	cases := []struct {
		name   string
		mutate func(req *models.ProductRequest)
	}{
		{"blank name", func(req *models.ProductRequest) { req.Name = " " }},
		{"blank description", func(req *models.ProductRequest) { req.Description = "" }},
		{"nil brand id", func(req *models.ProductRequest) { req.BrandID = nil }},
		{"negative brand id", func(req *models.ProductRequest) { req.BrandID = int64Ptr(-1) }},
		{"nil category id", func(req *models.ProductRequest) { req.CategoryID = nil }},
		{"negative category id", func(req *models.ProductRequest) { req.CategoryID = int64Ptr(-3) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validProductRequest()
			tc.mutate(req)
			_, err := service.CreateProduct(audit.Context{}, req)
			assert.Error(t, err)
			assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
		})
	}

	_, err := service.CreateProduct(audit.Context{}, nil)
	assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))

	productRepo.AssertNotCalled(t, "Create", mock.Anything)
	brandRepo.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestProductService_CreateProduct_UnknownBrandOrCategory(t *testing.T) {
	productRepo := new(MockProductRepository)
	brandRepo := new(MockBrandRepository)
	categoryRepo := new(MockCategoryRepository)
	service := newProductService(productRepo, brandRepo, categoryRepo, nil)

	brandRepo.On("FindByID", int64(1)).Return(nil, repositories.ErrNotFound).Once()
	_, err := service.CreateProduct(audit.Context{}, validProductRequest())
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "brand")

	brandRepo.On("FindByID", int64(1)).Return(&models.Brand{ID: 1, Name: "Acme"}, nil).Once()
	categoryRepo.On("FindByID", int64(2)).Return(nil, repositories.ErrNotFound).Once()
	_, err = service.CreateProduct(audit.Context{}, validProductRequest())
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "category")

	productRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_CreateProduct_NilVariationsRejected(t *testing.T) {
	productRepo := new(MockProductRepository)
	brandRepo := new(MockBrandRepository)
	categoryRepo := new(MockCategoryRepository)
	service := newProductService(productRepo, brandRepo, categoryRepo, nil)

	brandRepo.On("FindByID", int64(1)).Return(&models.Brand{ID: 1, Name: "Acme"}, nil).Once()
	categoryRepo.On("FindByID", int64(2)).Return(&models.Category{ID: 2, Name: "Gadgets"}, nil).Once()

	req := validProductRequest()
	req.Variations = nil
	_, err := service.CreateProduct(audit.Context{}, req)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
	productRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_CreateProduct_NilAttributesAbortsBeforePersistence(t *testing.T) {
	productRepo := new(MockProductRepository)
	brandRepo := new(MockBrandRepository)
	categoryRepo := new(MockCategoryRepository)
	service := newProductService(productRepo, brandRepo, categoryRepo, nil)

	brandRepo.On("FindByID", int64(1)).Return(&models.Brand{ID: 1, Name: "Acme"}, nil).Once()
	categoryRepo.On("FindByID", int64(2)).Return(&models.Category{ID: 2, Name: "Gadgets"}, nil).Once()

	req := validProductRequest()
	req.Variations = append(req.Variations, models.ProductVariationRequest{Sku: "W-2", Price: 1, Stock: 1, Attributes: nil})
	_, err := service.CreateProduct(audit.Context{}, req)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
	// The malformed nested variation aborts the whole create with no write.
	productRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	productRepo := new(MockProductRepository)
	brandRepo := new(MockBrandRepository)
	categoryRepo := new(MockCategoryRepository)
	recorder := new(MockAuditRecorder)
	service := newProductService(productRepo, brandRepo, categoryRepo, recorder)

	brandRepo.On("FindByID", int64(1)).Return(&models.Brand{ID: 1, Name: "Acme"}, nil).Once()
	categoryRepo.On("FindByID", int64(2)).Return(&models.Category{ID: 2, Name: "Gadgets"}, nil).Once()
	productRepo.On("Create", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		product := args.Get(0).(*models.Product)
		product.ID = 10
		product.Variations[0].ID = 100
	}).Return(nil).Once()
	recorder.On("Record", mock.MatchedBy(func(event audit.Event) bool {
		return event.OperationType == audit.OperationCreate && event.Entity == "Product" && event.EntityID == 10
	})).Return(nil).Once()

	result, err := service.CreateProduct(audit.Context{Username: "admin"}, validProductRequest())
	assert.NoError(t, err)
	assert.True(t, result.IsSuccess())

	view := result.Data.(models.ProductResponse)
	assert.Equal(t, int64(10), view.ID)
	assert.Equal(t, "Acme", view.BrandName)
	assert.Equal(t, "Gadgets", view.CategoryName)
	assert.Len(t, view.Variations, 1)
	assert.Equal(t, "W-1", view.Variations[0].Sku)
	assert.Equal(t, int64(100), view.Variations[0].ID)
	productRepo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestProductService_CreateProduct_PersistenceFailureGoesToResult(t *testing.T) {
	productRepo := new(MockProductRepository)
	brandRepo := new(MockBrandRepository)
	categoryRepo := new(MockCategoryRepository)
	service := newProductService(productRepo, brandRepo, categoryRepo, nil)

	brandRepo.On("FindByID", int64(1)).Return(&models.Brand{ID: 1, Name: "Acme"}, nil).Once()
	categoryRepo.On("FindByID", int64(2)).Return(&models.Category{ID: 2, Name: "Gadgets"}, nil).Once()
	productRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(fmt.Errorf("constraint violated")).Once()

	result, err := service.CreateProduct(audit.Context{}, validProductRequest())
	assert.NoError(t, err)
	assert.False(t, result.IsSuccess())
	assert.Contains(t, result.ErrorMessages()[0], "constraint violated")
}

func TestProductService_UpdateProduct_RejectsVariations(t *testing.T) {
	productRepo := new(MockProductRepository)
	brandRepo := new(MockBrandRepository)
	categoryRepo := new(MockCategoryRepository)
	service := newProductService(productRepo, brandRepo, categoryRepo, nil)

	// Any supplied variation list is rejected, even an empty one.
	req := validProductRequest()
	req.Variations = []models.ProductVariationRequest{}
	_, err := service.UpdateProduct(audit.Context{}, 10, req)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))

	req = validProductRequest()
	_, err = service.UpdateProduct(audit.Context{}, 10, req)
	assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))

	productRepo.AssertNotCalled(t, "FindByID", mock.Anything)
	productRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	productRepo := new(MockProductRepository)
	brandRepo := new(MockBrandRepository)
	categoryRepo := new(MockCategoryRepository)
	service := newProductService(productRepo, brandRepo, categoryRepo, nil)

	productRepo.On("FindByID", int64(10)).Return(nil, repositories.ErrNotFound).Once()

	req := validProductRequest()
	req.Variations = nil
	_, err := service.UpdateProduct(audit.Context{}, 10, req)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	productRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_SkipsLookupWhenReferencesUnchanged(t *testing.T) {
	productRepo := new(MockProductRepository)
	brandRepo := new(MockBrandRepository)
	categoryRepo := new(MockCategoryRepository)
	service := newProductService(productRepo, brandRepo, categoryRepo, nil)

	existing := &models.Product{
		ID:          10,
		Name:        "Widget",
		Description: "desc",
		BrandID:     1,
		Brand:       models.Brand{ID: 1, Name: "Acme"},
		CategoryID:  2,
		Category:    models.Category{ID: 2, Name: "Gadgets"},
	}
	productRepo.On("FindByID", int64(10)).Return(existing, nil).Once()
	productRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	req := validProductRequest()
	req.Variations = nil
	req.Name = "Widget v2"

	result, err := service.UpdateProduct(audit.Context{}, 10, req)
	assert.NoError(t, err)
	assert.True(t, result.IsSuccess())
	assert.Equal(t, "Widget v2", result.Data.(models.ProductResponse).Name)

	// Brand and category ids are unchanged, so neither lookup runs.
	brandRepo.AssertNotCalled(t, "FindByID", mock.Anything)
	categoryRepo.AssertNotCalled(t, "FindByID", mock.Anything)
	productRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_ResolvesChangedBrand(t *testing.T) {
	productRepo := new(MockProductRepository)
	brandRepo := new(MockBrandRepository)
	categoryRepo := new(MockCategoryRepository)
	service := newProductService(productRepo, brandRepo, categoryRepo, nil)

	existing := &models.Product{
		ID:         10,
		BrandID:    1,
		Brand:      models.Brand{ID: 1, Name: "Acme"},
		CategoryID: 2,
		Category:   models.Category{ID: 2, Name: "Gadgets"},
	}
	productRepo.On("FindByID", int64(10)).Return(existing, nil).Once()
	brandRepo.On("FindByID", int64(7)).Return(&models.Brand{ID: 7, Name: "Globex"}, nil).Once()
	productRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	req := validProductRequest()
	req.Variations = nil
	req.BrandID = int64Ptr(7)

	result, err := service.UpdateProduct(audit.Context{}, 10, req)
	assert.NoError(t, err)
	assert.Equal(t, "Globex", result.Data.(models.ProductResponse).BrandName)
	brandRepo.AssertExpectations(t)
	categoryRepo.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	productRepo := new(MockProductRepository)
	brandRepo := new(MockBrandRepository)
	categoryRepo := new(MockCategoryRepository)
	recorder := new(MockAuditRecorder)
	service := newProductService(productRepo, brandRepo, categoryRepo, recorder)

	_, err := service.DeleteProduct(audit.Context{}, -5)
	assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))

	productRepo.On("FindByID", int64(99)).Return(nil, repositories.ErrNotFound).Once()
	_, err = service.DeleteProduct(audit.Context{}, 99)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	product := &models.Product{ID: 10, Brand: models.Brand{Name: "Acme"}, Category: models.Category{Name: "Gadgets"}}
	productRepo.On("FindByID", int64(10)).Return(product, nil).Once()
	productRepo.On("Delete", product).Return(nil).Once()
	recorder.On("Record", mock.MatchedBy(func(event audit.Event) bool {
		return event.OperationType == audit.OperationDelete && event.Entity == "Product"
	})).Return(nil).Once()

	ok, err := service.DeleteProduct(audit.Context{Username: "admin"}, 10)
	assert.NoError(t, err)
	assert.True(t, ok)
	productRepo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}
