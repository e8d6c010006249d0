package handlers

import (
	"github.com/husseinfaraj7/odv-sub000/internal/models"
	"github.com/husseinfaraj7/odv-sub000/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes. Reading is public; catalog
// mutations require the admin middleware.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, adminOnly fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetAll)
	productRoutes.Get("/:id", h.HandleGetByID)
	productRoutes.Post("/", adminOnly, h.HandleCreate)
	productRoutes.Put("/:id", adminOnly, h.HandleUpdate)
	productRoutes.Delete("/:id", adminOnly, h.HandleDelete)
}

// HandleGetAll returns the catalog, optionally filtered by ?category=.
func (h *ProductHandler) HandleGetAll(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.Query("category"))
	if err != nil {
		return err
	}
	return c.JSON(models.OK("", products))
}

// HandleGetByID returns a single product.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(models.OK("", product))
}

// HandleCreate adds a product to the catalog.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(product); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(models.OK("Prodotto creato.", product))
}

// HandleUpdate replaces an existing product. The path ID wins over any ID in
// the body.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, err)
	}
	product.ID = c.Params("id")
	if err := h.validate.Struct(product); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.UpdateProduct(&product); err != nil {
		return err
	}
	return c.JSON(models.OK("Prodotto aggiornato.", product))
}

// HandleDelete removes a product from the catalog.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(models.OK("Prodotto eliminato.", nil))
}
