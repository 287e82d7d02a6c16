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

// BrandHandler handles HTTP requests for brands.
type BrandHandler struct {
	service  *services.BrandService
	validate *validator.Validate
}

// NewBrandHandler creates a new BrandHandler.
func NewBrandHandler(service *services.BrandService) *BrandHandler {
	return &BrandHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the brand routes. Reads are public; writes run
// behind the auth middleware and the brand write permission.
func (h *BrandHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	brandRoutes := router.Group("/brands")
	brandRoutes.Get("/", h.HandleGetBrands)
	brandRoutes.Get("/:brandId", h.HandleGetBrandByID)
	brandRoutes.Post("/", auth, middleware.RequireWrite(middleware.BrandWrite), h.HandleCreateBrand)
	brandRoutes.Put("/:brandId", auth, middleware.RequireWrite(middleware.BrandWrite), h.HandleUpdateBrand)
	brandRoutes.Delete("/:brandId", auth, middleware.RequireWrite(middleware.BrandWrite), h.HandleDeleteBrand)
}

// HandleGetBrands retrieves all brands.
func (h *BrandHandler) HandleGetBrands(c *fiber.Ctx) error {
	brands, err := h.service.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(brands)
}

// HandleGetBrandByID retrieves a single brand by its ID.
func (h *BrandHandler) HandleGetBrandByID(c *fiber.Ctx) error {
	brandID, err := paramID(c, "brandId")
	if err != nil {
		return err
	}
	brand, err := h.service.FindByID(brandID)
	if err != nil {
		return err
	}
	if brand == nil {
		return apperrors.NotFound("Brand id %d not found.", brandID)
	}
	return c.JSON(brand)
}

// HandleCreateBrand creates a new brand.
func (h *BrandHandler) HandleCreateBrand(c *fiber.Ctx) error {
	var req models.BrandRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.service.CreateBrand(auditContext(c), &req)
	if err != nil {
		return err
	}
	return resultResponse(c, result, fiber.StatusCreated)
}

// HandleUpdateBrand renames an existing brand.
func (h *BrandHandler) HandleUpdateBrand(c *fiber.Ctx) error {
	brandID, err := paramID(c, "brandId")
	if err != nil {
		return err
	}

	var req models.BrandRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}

	result, err := h.service.UpdateBrand(auditContext(c), brandID, &req)
	if err != nil {
		return err
	}
	return resultResponse(c, result, fiber.StatusOK)
}

// HandleDeleteBrand deletes a brand.
func (h *BrandHandler) HandleDeleteBrand(c *fiber.Ctx) error {
	brandID, err := paramID(c, "brandId")
	if err != nil {
		return err
	}

	if _, err := h.service.DeleteBrand(auditContext(c), brandID); err != nil {
		return err
	}
	return c.Status(fiber.StatusNoContent).SendString(fmt.Sprintf("Brand %d successfully deleted.", brandID))
}
