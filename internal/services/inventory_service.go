package services

import (
	"errors"
	"strings"

	"emporium/internal/apperrors"
	"emporium/internal/audit"
	"emporium/internal/models"
	"emporium/internal/repositories"
)

// InventoryService owns the stock, price and SKU mutations: atomic purchase
// decrements, point updates, and variation create/update/delete with
// SKU-uniqueness enforcement within the owning product.
type InventoryService struct {
	variationRepo repositories.ProductVariationRepository
	productRepo   repositories.ProductRepository
	recorder      audit.Recorder
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(
	variationRepo repositories.ProductVariationRepository,
	productRepo repositories.ProductRepository,
	recorder audit.Recorder,
) *InventoryService {
	return &InventoryService{
		variationRepo: variationRepo,
		productRepo:   productRepo,
		recorder:      recorder,
	}
}

// Purchase decrements a variation's stock by quantity through a single
// conditional update evaluated atomically by the storage layer. There is no
// read-modify-write window, so concurrent purchases can never drive stock
// negative. Zero rows affected means insufficient stock or a missing id; the
// predicate folds both into one signal.
func (s *InventoryService) Purchase(variationID int64, quantity *int) error {
	if variationID < 0 {
		return apperrors.Invalid("Variation id cannot be negative.")
	}
	if quantity == nil || *quantity <= 0 {
		return apperrors.Invalid("Quantity must be positive and non-null.")
	}

	updated, err := s.variationRepo.DecrementStock(variationID, *quantity)
	if err != nil {
		return err
	}
	if updated == 0 {
		return apperrors.InsufficientStock("Not enough stock available or product not found.")
	}
	return nil
}

// UpdateVariationStock overwrites a variation's stock level. This is an
// administrative correction keyed by id, not a contended decrement.
func (s *InventoryService) UpdateVariationStock(variationID int64, stock *int) error {
	if variationID < 0 {
		return apperrors.Invalid("Variation id cannot be negative.")
	}
	if stock == nil || *stock < 0 {
		return apperrors.Invalid("Stock must be positive and non-null.")
	}

	updated, err := s.variationRepo.UpdateStockByID(variationID, *stock)
	if err != nil {
		return err
	}
	if updated == 0 {
		return apperrors.NotFound("Variation %d not found.", variationID)
	}
	return nil
}

// UpdateVariationPrice overwrites a variation's price.
func (s *InventoryService) UpdateVariationPrice(variationID int64, price *float64) error {
	if variationID < 0 {
		return apperrors.Invalid("Variation id cannot be negative.")
	}
	if price == nil || *price < 0 {
		return apperrors.Invalid("Price must be positive and non-null.")
	}

	updated, err := s.variationRepo.UpdatePriceByID(variationID, *price)
	if err != nil {
		return err
	}
	if updated == 0 {
		return apperrors.NotFound("Variation %d not found.", variationID)
	}
	return nil
}

// CreateVariation adds a variation to an existing product, enforcing
// case-insensitive SKU uniqueness within that product's variation set. On
// success the Result carries the full updated product projection.
func (s *InventoryService) CreateVariation(ctx audit.Context, productID int64, req *models.ProductVariationRequest) (*Result, error) {
	if err := validateVariationRequest(productID, req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product id %d not found.", productID)
		}
		return nil, err
	}

	for _, sibling := range product.Variations {
		if strings.EqualFold(sibling.Sku, req.Sku) {
			return nil, apperrors.Conflict("Product variation SKU %s already exists in database.", req.Sku)
		}
	}

	variation := &models.ProductVariation{
		Sku:       req.Sku,
		Price:     req.Price,
		Stock:     req.Stock,
		ImageURL:  req.ImageURL,
		ProductID: product.ID,
	}
	for _, attrReq := range req.Attributes {
		variation.Attributes = append(variation.Attributes, models.ProductVariationAttribute{
			AttributeName:  attrReq.AttributeName,
			AttributeValue: attrReq.AttributeValue,
		})
	}

	result := NewResult()
	if err := s.variationRepo.Create(variation); err != nil {
		result.AddErrorMessage(err.Error(), ResultInvalid)
		return result, nil
	}
	product.Variations = append(product.Variations, *variation)

	recordAudit(s.recorder, ctx, audit.OperationCreate, "ProductVariation", variation.ID)
	result.Data = toProductResponse(product)
	return result, nil
}

// UpdateVariation replaces a variation's sku/price/stock/imageUrl and
// wholesale-replaces its attribute collection. The SKU uniqueness check runs
// against the sibling set excluding the variation itself, so an update that
// keeps the SKU never conflicts with its own row.
func (s *InventoryService) UpdateVariation(ctx audit.Context, variationID int64, req *models.ProductVariationRequest) (*Result, error) {
	if variationID < 0 {
		return nil, apperrors.Invalid("Variation id cannot be negative.")
	}
	if req == nil {
		return nil, apperrors.Invalid("Variation information cannot be null.")
	}

	variation, err := s.variationRepo.FindByID(variationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Variation id %d not found.", variationID)
		}
		return nil, err
	}

	// A variation without a resolvable owner is a data-integrity fault.
	product, err := s.productRepo.FindByID(variation.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product for variation id %d not found.", variationID)
		}
		return nil, err
	}

	for _, sibling := range product.Variations {
		if strings.EqualFold(sibling.Sku, req.Sku) && sibling.ID != variationID {
			return nil, apperrors.Conflict("Product variation SKU %s already exists in database.", req.Sku)
		}
	}

	variation.Sku = req.Sku
	variation.Price = req.Price
	variation.Stock = req.Stock
	variation.ImageURL = req.ImageURL

	variation.Attributes = variation.Attributes[:0]
	for _, attrReq := range req.Attributes {
		variation.Attributes = append(variation.Attributes, models.ProductVariationAttribute{
			AttributeName:  attrReq.AttributeName,
			AttributeValue: attrReq.AttributeValue,
			VariationID:    variation.ID,
		})
	}

	result := NewResult()
	if err := s.variationRepo.Update(variation); err != nil {
		result.AddErrorMessage(err.Error(), ResultInvalid)
		return result, nil
	}

	for i := range product.Variations {
		if product.Variations[i].ID == variation.ID {
			product.Variations[i] = *variation
			break
		}
	}

	recordAudit(s.recorder, ctx, audit.OperationUpdate, "ProductVariation", variation.ID)
	result.Data = toProductResponse(product)
	return result, nil
}

// DeleteVariation removes a variation; its attributes cascade with it.
func (s *InventoryService) DeleteVariation(ctx audit.Context, variationID int64) (bool, error) {
	if variationID < 0 {
		return false, apperrors.Invalid("Variation id cannot be negative.")
	}

	variation, err := s.variationRepo.FindByID(variationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, apperrors.NotFound("Variation id %d not found.", variationID)
		}
		return false, err
	}

	if err := s.variationRepo.Delete(variation); err != nil {
		return false, err
	}

	recordAudit(s.recorder, ctx, audit.OperationDelete, "ProductVariation", variation.ID)
	return true, nil
}
