package services

import (
	"strings"

	"emporium/internal/apperrors"
	"emporium/internal/models"
)

// Request validation is fail-fast: the first violated rule aborts the write
// before any persistence is touched. The checks here need distinctions the
// tag DSL cannot express (nil versus empty collections), so they are plain
// functions; wire-shape tag validation still happens in the handlers.

func validateProductRequest(productID int64, req *models.ProductRequest) error {
	if productID < 0 {
		return apperrors.Invalid("Product id cannot be negative.")
	}
	if req == nil {
		return apperrors.Invalid("Product information must not be null.")
	}
	if isBlank(req.Name) {
		return apperrors.Invalid("Product name cannot be empty or null.")
	}
	if isBlank(req.Description) {
		return apperrors.Invalid("Product description cannot be empty or null.")
	}
	if req.BrandID == nil || *req.BrandID < 0 {
		return apperrors.Invalid("Product brand id cannot be null or negative.")
	}
	if req.CategoryID == nil || *req.CategoryID < 0 {
		return apperrors.Invalid("Product category id cannot be null or negative.")
	}
	return nil
}

func validateVariationRequest(id int64, req *models.ProductVariationRequest) error {
	if id < 0 {
		return apperrors.Invalid("Product id cannot be negative.")
	}
	if req == nil {
		return apperrors.Invalid("Variation information cannot be null.")
	}
	if isBlank(req.Sku) {
		return apperrors.Invalid("Variation SKU cannot be null or empty.")
	}
	if req.Price < 0 {
		return apperrors.Invalid("Variation price cannot be less than 0.")
	}
	if req.Stock < 0 {
		return apperrors.Invalid("Variation stock cannot be less than 0.")
	}
	if req.Attributes == nil {
		return apperrors.Invalid("Variation attribute cannot be null.")
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
