package services

import (
	"errors"

	"emporium/internal/apperrors"
	"emporium/internal/audit"
	"emporium/internal/models"
	"emporium/internal/repositories"
)

// BrandService handles business logic for brands: name-unique CRUD with
// audit tagging on every mutation.
type BrandService struct {
	repo     repositories.BrandRepository
	recorder audit.Recorder
}

// NewBrandService creates a new BrandService.
func NewBrandService(repo repositories.BrandRepository, recorder audit.Recorder) *BrandService {
	return &BrandService{
		repo:     repo,
		recorder: recorder,
	}
}

// FindAll retrieves all brands.
func (s *BrandService) FindAll() ([]models.Brand, error) {
	return s.repo.FindAll()
}

// FindByID retrieves a brand by id, or nil when it does not exist.
func (s *BrandService) FindByID(id int64) (*models.Brand, error) {
	brand, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return brand, nil
}

// CreateBrand validates the request, enforces global name uniqueness and
// persists the brand. Persistence failures are reported through the Result
// channel; everything before persistence fails fast with typed errors.
func (s *BrandService) CreateBrand(ctx audit.Context, req *models.BrandRequest) (*Result, error) {
	if req == nil {
		return nil, apperrors.Invalid("Brand cannot be null.")
	}
	if isBlank(req.Name) {
		return nil, apperrors.Invalid("Brand name cannot be null or empty.")
	}

	existing, err := s.repo.FindByName(req.Name)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.Conflict("Brand name already exists.")
	}

	brand := &models.Brand{Name: req.Name}

	result := NewResult()
	if err := s.repo.Create(brand); err != nil {
		result.AddErrorMessage(err.Error(), ResultInvalid)
		return result, nil
	}

	recordAudit(s.recorder, ctx, audit.OperationCreate, "Brand", brand.ID)
	result.Data = brand
	return result, nil
}

// UpdateBrand renames an existing brand. The uniqueness check runs against
// the whole table, so renaming a brand to its current name conflicts with
// itself; that matches the established behavior.
func (s *BrandService) UpdateBrand(ctx audit.Context, brandID int64, req *models.BrandRequest) (*Result, error) {
	if brandID < 0 {
		return nil, apperrors.Invalid("Brand id cannot be negative.")
	}

	brand, err := s.repo.FindByID(brandID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Brand id %d does not exist.", brandID)
		}
		return nil, err
	}

	if req == nil || isBlank(req.Name) {
		return nil, apperrors.Invalid("Brand name cannot be null or empty.")
	}

	existing, err := s.repo.FindByName(req.Name)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.Conflict("Brand name already exists.")
	}

	brand.Name = req.Name

	result := NewResult()
	if err := s.repo.Update(brand); err != nil {
		result.AddErrorMessage(err.Error(), ResultInvalid)
		return result, nil
	}

	recordAudit(s.recorder, ctx, audit.OperationUpdate, "Brand", brand.ID)
	result.Data = brand
	return result, nil
}

// DeleteBrand removes a brand. No referencing-product pre-check is made; a
// brand still in use fails at the storage layer.
func (s *BrandService) DeleteBrand(ctx audit.Context, brandID int64) (bool, error) {
	if brandID < 0 {
		return false, apperrors.Invalid("Brand id cannot be negative.")
	}

	brand, err := s.repo.FindByID(brandID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, apperrors.NotFound("Brand id %d not found.", brandID)
		}
		return false, err
	}

	if err := s.repo.Delete(brand); err != nil {
		return false, err
	}

	recordAudit(s.recorder, ctx, audit.OperationDelete, "Brand", brand.ID)
	return true, nil
}
