package handlers

import (
	"fmt"

	"emporium/internal/apperrors"
	"emporium/internal/middleware"
	"emporium/internal/models"
	"emporium/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:categoryId", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", auth, middleware.RequireWrite(middleware.CategoryWrite), h.HandleCreateCategory)
	categoryRoutes.Put("/:categoryId", auth, middleware.RequireWrite(middleware.CategoryWrite), h.HandleUpdateCategory)
	categoryRoutes.Delete("/:categoryId", auth, middleware.RequireWrite(middleware.CategoryWrite), h.HandleDeleteCategory)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single category by its ID.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		return err
	}
	category, err := h.service.FindByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperrors.NotFound("Category id %d not found.", categoryID)
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req models.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.service.CreateCategory(auditContext(c), &req)
	if err != nil {
		return err
	}
	return resultResponse(c, result, fiber.StatusCreated)
}

// HandleUpdateCategory renames an existing category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		return err
	}

	var req models.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}

	result, err := h.service.UpdateCategory(auditContext(c), categoryID, &req)
	if err != nil {
		return err
	}
	return resultResponse(c, result, fiber.StatusOK)
}

// HandleDeleteCategory deletes a category.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		return err
	}

	if _, err := h.service.DeleteCategory(auditContext(c), categoryID); err != nil {
		return err
	}
	return c.Status(fiber.StatusNoContent).SendString(fmt.Sprintf("Category %d successfully deleted.", categoryID))
}
