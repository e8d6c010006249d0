package handlers

import (
	"github.com/husseinfaraj7/odv-sub000/internal/models"
	"github.com/husseinfaraj7/odv-sub000/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes. Placing an order and checking it
// by ID are public; listing and status updates require the admin middleware.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, adminOnly fiber.Handler) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreate)
	orderRoutes.Get("/", adminOnly, h.HandleGetAll)
	orderRoutes.Get("/:id", h.HandleGetByID)
	orderRoutes.Patch("/:id/status", adminOnly, h.HandleUpdateStatus)
}

// HandleCreate places a new order.
func (h *OrderHandler) HandleCreate(c *fiber.Ctx) error {
	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(order); err != nil {
		return validationFailed(c, err)
	}

	created, err := h.service.CreateOrder(c.UserContext(), &order)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(models.OK("Ordine ricevuto! Riceverai una email di conferma.", created))
}

// HandleGetAll returns all orders, or only those in ?status= when given.
func (h *OrderHandler) HandleGetAll(c *fiber.Ctx) error {
	var (
		orders []models.Order
		err    error
	)
	if status := c.Query("status"); status != "" {
		orders, err = h.service.GetOrdersByStatus(status)
	} else {
		orders, err = h.service.GetAllOrders()
	}
	if err != nil {
		return err
	}
	return c.JSON(models.OK("", orders))
}

// HandleGetByID returns a single order with its line items.
func (h *OrderHandler) HandleGetByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(models.OK("", order))
}

// HandleUpdateStatus moves an order to a new status.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}
	if body.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("Lo stato è obbligatorio.", nil))
	}

	order, err := h.service.UpdateOrderStatus(c.UserContext(), c.Params("id"), body.Status)
	if err != nil {
		return err
	}
	return c.JSON(models.OK("Stato dell'ordine aggiornato.", order))
}
