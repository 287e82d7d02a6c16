package services

import (
	"errors"

	"emporium/internal/apperrors"
	"emporium/internal/audit"
	"emporium/internal/models"
	"emporium/internal/repositories"
)

// CategoryService mirrors BrandService over the category uniqueness domain.
type CategoryService struct {
	repo     repositories.CategoryRepository
	recorder audit.Recorder
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository, recorder audit.Recorder) *CategoryService {
	return &CategoryService{
		repo:     repo,
		recorder: recorder,
	}
}

// FindAll retrieves all categories.
func (s *CategoryService) FindAll() ([]models.Category, error) {
	return s.repo.FindAll()
}

// FindByID retrieves a category by id, or nil when it does not exist.
func (s *CategoryService) FindByID(id int64) (*models.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

// CreateCategory validates the request, enforces name uniqueness and
// persists the category, reporting persistence failures via the Result.
func (s *CategoryService) CreateCategory(ctx audit.Context, req *models.CategoryRequest) (*Result, error) {
	if req == nil {
		return nil, apperrors.Invalid("Category cannot be null.")
	}
	if isBlank(req.Name) {
		return nil, apperrors.Invalid("Category name cannot be null or empty.")
	}

	existing, err := s.repo.FindByName(req.Name)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.Conflict("Category name already exists.")
	}

	category := &models.Category{Name: req.Name}

	result := NewResult()
	if err := s.repo.Create(category); err != nil {
		result.AddErrorMessage(err.Error(), ResultInvalid)
		return result, nil
	}

	recordAudit(s.recorder, ctx, audit.OperationCreate, "Category", category.ID)
	result.Data = category
	return result, nil
}

// UpdateCategory renames an existing category, with the same whole-table
// uniqueness semantics as brands.
func (s *CategoryService) UpdateCategory(ctx audit.Context, categoryID int64, req *models.CategoryRequest) (*Result, error) {
	if categoryID < 0 {
		return nil, apperrors.Invalid("Category id cannot be negative.")
	}

	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Category id %d does not exist.", categoryID)
		}
		return nil, err
	}

	if req == nil || isBlank(req.Name) {
		return nil, apperrors.Invalid("Category name cannot be null or empty.")
	}

	existing, err := s.repo.FindByName(req.Name)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.Conflict("Category name already exists.")
	}

	category.Name = req.Name

	result := NewResult()
	if err := s.repo.Update(category); err != nil {
		result.AddErrorMessage(err.Error(), ResultInvalid)
		return result, nil
	}

	recordAudit(s.recorder, ctx, audit.OperationUpdate, "Category", category.ID)
	result.Data = category
	return result, nil
}

// DeleteCategory removes a category; referential failures surface from the
// storage layer.
func (s *CategoryService) DeleteCategory(ctx audit.Context, categoryID int64) (bool, error) {
	if categoryID < 0 {
		return false, apperrors.Invalid("Category id cannot be negative.")
	}

	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, apperrors.NotFound("Category id %d not found.", categoryID)
		}
		return false, err
	}

	if err := s.repo.Delete(category); err != nil {
		return false, err
	}

	recordAudit(s.recorder, ctx, audit.OperationDelete, "Category", category.ID)
	return true, nil
}
