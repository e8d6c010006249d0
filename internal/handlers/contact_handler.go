package handlers

import (
	"strconv"

	"github.com/husseinfaraj7/odv-sub000/internal/models"
	"github.com/husseinfaraj7/odv-sub000/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles HTTP requests for contact form messages.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the contact routes. Submission is public; reading
// and status updates require the admin middleware.
func (h *ContactHandler) RegisterRoutes(router fiber.Router, adminOnly fiber.Handler) {
	contactRoutes := router.Group("/contact")
	contactRoutes.Post("/", h.HandleSubmit)
	contactRoutes.Get("/", adminOnly, h.HandleList)
	contactRoutes.Get("/unread-count", adminOnly, h.HandleUnreadCount)
	contactRoutes.Get("/:id", adminOnly, h.HandleGetByID)
	contactRoutes.Patch("/:id/status", adminOnly, h.HandleUpdateStatus)
}

// HandleSubmit stores a new message from the website contact form.
func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(msg); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.SubmitMessage(c.UserContext(), &msg); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(models.OK("Grazie per averci contattato! Ti risponderemo al più presto.", msg))
}

// HandleList returns contact messages, optionally filtered by ?status= and
// paginated with ?limit= and ?offset=.
func (h *ContactHandler) HandleList(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("Il parametro 'limit' deve essere un numero non negativo.", err))
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.Fail("Il parametro 'offset' deve essere un numero non negativo.", err))
	}

	messages, err := h.service.ListMessages(models.ContactListOptions{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(models.OK("", messages))
}

// HandleUnreadCount returns the number of unread messages.
func (h *ContactHandler) HandleUnreadCount(c *fiber.Ctx) error {
	count, err := h.service.CountUnread()
	if err != nil {
		return err
	}
	return c.JSON(models.OK("", fiber.Map{"unread": count}))
}

// HandleGetByID returns a single contact message.
func (h *ContactHandler) HandleGetByID(c *fiber.Ctx) error {
	msg, err := h.service.GetMessage(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(models.OK("", msg))
}

// HandleUpdateStatus marks a message as read or unread.
func (h *ContactHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, err)
	}

	if err := h.service.UpdateMessageStatus(c.Params("id"), body.Status); err != nil {
		return err
	}
	return c.JSON(models.OK("Stato del messaggio aggiornato.", nil))
}
