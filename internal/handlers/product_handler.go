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

// ProductHandler handles HTTP requests for products, their variations, and
// the stock/price/purchase point operations.
type ProductHandler struct {
	products  *services.ProductService
	inventory *services.InventoryService
	validate  *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products *services.ProductService, inventory *services.InventoryService) *ProductHandler {
	return &ProductHandler{
		products:  products,
		inventory: inventory,
		validate:  validator.New(),
	}
}

// RegisterRoutes registers product and variation routes. Reads are public;
// each write resolves to its own write action for the permission check.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/brand/:brandId", h.HandleGetProductsByBrand)
	productRoutes.Get("/category/:categoryId", h.HandleGetProductsByCategory)
	productRoutes.Post("/", auth, middleware.RequireWrite(middleware.ProductWrite), h.HandleCreateProduct)

	// Variation routes are nested under /products but carry their own write
	// actions. They are registered before the /:productId routes so the
	// literal segment wins the match.
	productRoutes.Post("/:productId/variations", auth, middleware.RequireWrite(middleware.VariationWrite), h.HandleCreateVariation)
	productRoutes.Put("/variations/:variationId", auth, middleware.RequireWrite(middleware.VariationWrite), h.HandleUpdateVariation)
	productRoutes.Delete("/variations/:variationId", auth, middleware.RequireWrite(middleware.VariationWrite), h.HandleDeleteVariation)
	productRoutes.Patch("/variations/:variationId/stock", auth, middleware.RequireWrite(middleware.StockWrite), h.HandleUpdateVariationStock)
	productRoutes.Patch("/variations/:variationId/price", auth, middleware.RequireWrite(middleware.PriceWrite), h.HandleUpdateVariationPrice)
	productRoutes.Post("/variations/:variationId/purchase", auth, h.HandlePurchase)

	productRoutes.Get("/:productId", h.HandleGetProductByID)
	productRoutes.Put("/:productId", auth, middleware.RequireWrite(middleware.ProductWrite), h.HandleUpdateProduct)
	productRoutes.Delete("/:productId", auth, middleware.RequireWrite(middleware.ProductWrite), h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.products.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID, err := paramID(c, "productId")
	if err != nil {
		return err
	}
	product, err := h.products.FindByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperrors.NotFound("Product id %d not found.", productID)
	}
	return c.JSON(product)
}

// HandleGetProductsByBrand retrieves products filtered by brand.
func (h *ProductHandler) HandleGetProductsByBrand(c *fiber.Ctx) error {
	brandID, err := paramID(c, "brandId")
	if err != nil {
		return err
	}
	products, err := h.products.FindAllByBrandID(brandID)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProductsByCategory retrieves products filtered by category.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		return err
	}
	products, err := h.products.FindAllByCategoryID(categoryID)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleCreateProduct creates a product with its nested variation graph.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.products.CreateProduct(auditContext(c), &req)
	if err != nil {
		return err
	}
	return resultResponse(c, result, fiber.StatusCreated)
}

// HandleUpdateProduct updates a product's own fields.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID, err := paramID(c, "productId")
	if err != nil {
		return err
	}

	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}

	result, err := h.products.UpdateProduct(auditContext(c), productID, &req)
	if err != nil {
		return err
	}
	return resultResponse(c, result, fiber.StatusOK)
}

// HandleDeleteProduct deletes a product and its variations.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID, err := paramID(c, "productId")
	if err != nil {
		return err
	}

	if _, err := h.products.DeleteProduct(auditContext(c), productID); err != nil {
		return err
	}
	return c.Status(fiber.StatusNoContent).SendString(fmt.Sprintf("Product %d successfully deleted.", productID))
}

// HandleCreateVariation adds a variation to a product.
func (h *ProductHandler) HandleCreateVariation(c *fiber.Ctx) error {
	productID, err := paramID(c, "productId")
	if err != nil {
		return err
	}

	var req models.ProductVariationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.inventory.CreateVariation(auditContext(c), productID, &req)
	if err != nil {
		return err
	}
	return resultResponse(c, result, fiber.StatusCreated)
}

// HandleUpdateVariation replaces a variation's fields and attributes.
func (h *ProductHandler) HandleUpdateVariation(c *fiber.Ctx) error {
	variationID, err := paramID(c, "variationId")
	if err != nil {
		return err
	}

	var req models.ProductVariationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}

	result, err := h.inventory.UpdateVariation(auditContext(c), variationID, &req)
	if err != nil {
		return err
	}
	return resultResponse(c, result, fiber.StatusOK)
}

// HandleDeleteVariation deletes a variation.
func (h *ProductHandler) HandleDeleteVariation(c *fiber.Ctx) error {
	variationID, err := paramID(c, "variationId")
	if err != nil {
		return err
	}

	if _, err := h.inventory.DeleteVariation(auditContext(c), variationID); err != nil {
		return err
	}
	return c.Status(fiber.StatusNoContent).SendString(fmt.Sprintf("Variation %d successfully deleted.", variationID))
}

// HandleUpdateVariationStock sets a variation's stock level.
func (h *ProductHandler) HandleUpdateVariationStock(c *fiber.Ctx) error {
	variationID, err := paramID(c, "variationId")
	if err != nil {
		return err
	}

	var req models.StockUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}

	if err := h.inventory.UpdateVariationStock(variationID, req.Stock); err != nil {
		return err
	}
	return c.SendString(fmt.Sprintf("Stock updated for variation %d.", variationID))
}

// HandleUpdateVariationPrice sets a variation's price.
func (h *ProductHandler) HandleUpdateVariationPrice(c *fiber.Ctx) error {
	variationID, err := paramID(c, "variationId")
	if err != nil {
		return err
	}

	var req models.PriceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}

	if err := h.inventory.UpdateVariationPrice(variationID, req.Price); err != nil {
		return err
	}
	return c.SendString(fmt.Sprintf("Price updated for variation %d.", variationID))
}

// HandlePurchase atomically decrements a variation's stock. Any
// authenticated caller may purchase; no write permission is required.
func (h *ProductHandler) HandlePurchase(c *fiber.Ctx) error {
	variationID, err := paramID(c, "variationId")
	if err != nil {
		return err
	}

	var req models.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Invalid("Invalid request body.")
	}

	if err := h.inventory.Purchase(variationID, req.Quantity); err != nil {
		return err
	}
	return c.SendString(fmt.Sprintf("Purchase completed for variation %d.", variationID))
}
