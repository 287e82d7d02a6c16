package services

import (
	"errors"

	"emporium/internal/apperrors"
	"emporium/internal/audit"
	"emporium/internal/models"
	"emporium/internal/repositories"
)

// ProductService orchestrates product aggregate CRUD: brand/category
// resolution, nested variation graph construction on create, and the
// read projections.
type ProductService struct {
	productRepo  repositories.ProductRepository
	brandRepo    repositories.BrandRepository
	categoryRepo repositories.CategoryRepository
	recorder     audit.Recorder
}

// NewProductService creates a new ProductService.
func NewProductService(
	productRepo repositories.ProductRepository,
	brandRepo repositories.BrandRepository,
	categoryRepo repositories.CategoryRepository,
	recorder audit.Recorder,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		recorder:     recorder,
	}
}

// FindAll retrieves all products as read projections.
func (s *ProductService) FindAll() ([]models.ProductResponse, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// FindAllByBrandID retrieves projections of products referencing the brand.
func (s *ProductService) FindAllByBrandID(brandID int64) ([]models.ProductResponse, error) {
	products, err := s.productRepo.FindAllByBrandID(brandID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// FindAllByCategoryID retrieves projections of products referencing the
// category.
func (s *ProductService) FindAllByCategoryID(categoryID int64) ([]models.ProductResponse, error) {
	products, err := s.productRepo.FindAllByCategoryID(categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// FindByID retrieves a product projection, or nil when it does not exist.
func (s *ProductService) FindByID(id int64) (*models.ProductResponse, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// CreateProduct validates the request, resolves brand and category, builds
// the full variation/attribute graph in memory and persists it as one unit.
// A malformed nested variation aborts the whole create before any
// persistence call; persistence failures are reported through the Result.
func (s *ProductService) CreateProduct(ctx audit.Context, req *models.ProductRequest) (*Result, error) {
	if err := validateProductRequest(0, req); err != nil {
		return nil, err
	}

	brand, err := s.brandRepo.FindByID(*req.BrandID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product brand not found.")
		}
		return nil, err
	}
	category, err := s.categoryRepo.FindByID(*req.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product category not found.")
		}
		return nil, err
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		BrandID:     brand.ID,
		Brand:       *brand,
		CategoryID:  category.ID,
		Category:    *category,
	}

	if req.Variations == nil {
		return nil, apperrors.Invalid("Product variation cannot be null.")
	}
	for _, variationReq := range req.Variations {
		if variationReq.Attributes == nil {
			return nil, apperrors.Invalid("Product variation attribute cannot be null.")
		}
		variation := models.ProductVariation{
			Sku:      variationReq.Sku,
			Price:    variationReq.Price,
			Stock:    variationReq.Stock,
			ImageURL: variationReq.ImageURL,
		}
		for _, attrReq := range variationReq.Attributes {
			variation.Attributes = append(variation.Attributes, models.ProductVariationAttribute{
				AttributeName:  attrReq.AttributeName,
				AttributeValue: attrReq.AttributeValue,
			})
		}
		product.Variations = append(product.Variations, variation)
	}

	result := NewResult()
	if err := s.productRepo.Create(product); err != nil {
		result.AddErrorMessage(err.Error(), ResultInvalid)
		return result, nil
	}

	recordAudit(s.recorder, ctx, audit.OperationCreate, "Product", product.ID)
	result.Data = toProductResponse(product)
	return result, nil
}

// UpdateProduct applies name/description/brand/category changes. Variations
// are only mutable through the variation operations, so any supplied
// variation list is rejected outright. Brand and category are re-resolved
// only when the supplied id differs from the currently linked one.
func (s *ProductService) UpdateProduct(ctx audit.Context, productID int64, req *models.ProductRequest) (*Result, error) {
	if err := validateProductRequest(productID, req); err != nil {
		return nil, err
	}

	if req.Variations != nil {
		return nil, apperrors.Invalid("Product variations cannot be set for updating.")
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product %d not found.", productID)
		}
		return nil, err
	}

	brand, err := s.brandIfChanged(product, *req.BrandID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryIfChanged(product, *req.CategoryID)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.BrandID = brand.ID
	product.Brand = *brand
	product.CategoryID = category.ID
	product.Category = *category

	result := NewResult()
	if err := s.productRepo.Update(product); err != nil {
		result.AddErrorMessage(err.Error(), ResultInvalid)
		return result, nil
	}

	recordAudit(s.recorder, ctx, audit.OperationUpdate, "Product", product.ID)
	result.Data = toProductResponse(product)
	return result, nil
}

// DeleteProduct removes a product and, with it, every variation and
// attribute it owns.
func (s *ProductService) DeleteProduct(ctx audit.Context, productID int64) (bool, error) {
	if productID < 0 {
		return false, apperrors.Invalid("Product id cannot be negative.")
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, apperrors.NotFound("Product id %d not found.", productID)
		}
		return false, err
	}

	if err := s.productRepo.Delete(product); err != nil {
		return false, err
	}

	recordAudit(s.recorder, ctx, audit.OperationDelete, "Product", product.ID)
	return true, nil
}

// brandIfChanged skips the lookup when the linked brand already matches, so
// an unchanged id never triggers a spurious not-found.
func (s *ProductService) brandIfChanged(product *models.Product, newBrandID int64) (*models.Brand, error) {
	if product.BrandID == newBrandID {
		return &product.Brand, nil
	}
	brand, err := s.brandRepo.FindByID(newBrandID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product brand %d not found.", newBrandID)
		}
		return nil, err
	}
	return brand, nil
}

func (s *ProductService) categoryIfChanged(product *models.Product, newCategoryID int64) (*models.Category, error) {
	if product.CategoryID == newCategoryID {
		return &product.Category, nil
	}
	category, err := s.categoryRepo.FindByID(newCategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product category %d not found.", newCategoryID)
		}
		return nil, err
	}
	return category, nil
}

func toProductResponses(products []models.Product) []models.ProductResponse {
	responses := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toProductResponse(&products[i]))
	}
	return responses
}

// toProductResponse denormalizes brand/category names and nests variation
// views with their attributes.
func toProductResponse(product *models.Product) models.ProductResponse {
	variations := make([]models.ProductVariationResponse, 0, len(product.Variations))
	for _, variation := range product.Variations {
		attributes := make([]models.ProductVariationAttributeDTO, 0, len(variation.Attributes))
		for _, attr := range variation.Attributes {
			attributes = append(attributes, models.ProductVariationAttributeDTO{
				AttributeName:  attr.AttributeName,
				AttributeValue: attr.AttributeValue,
			})
		}
		variations = append(variations, models.ProductVariationResponse{
			ID:         variation.ID,
			Sku:        variation.Sku,
			Price:      variation.Price,
			Stock:      variation.Stock,
			ImageURL:   variation.ImageURL,
			Attributes: attributes,
		})
	}
	return models.ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		BrandName:    product.Brand.Name,
		CategoryName: product.Category.Name,
		Variations:   variations,
	}
}
