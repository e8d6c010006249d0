package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// DBPinger checks database connectivity. Satisfied by *sql.DB.
type DBPinger interface {
	Ping() error
}

// HealthHandler reports service health for uptime monitors.
type HealthHandler struct {
	db        DBPinger
	mqEnabled bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db DBPinger, mqEnabled bool) *HealthHandler {
	return &HealthHandler{
		db:        db,
		mqEnabled: mqEnabled,
	}
}

// RegisterRoutes registers the health route on the app root.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.Handle)
}

// Handle reports 200 "healthy" only when the database answers a ping;
// otherwise 503 "unhealthy", so monitors can alert on the status code alone.
func (h *HealthHandler) Handle(c *fiber.Ctx) error {
	status := "healthy"
	code := fiber.StatusOK
	dbStatus := "up"
	if err := h.db.Ping(); err != nil {
		status = "unhealthy"
		code = fiber.StatusServiceUnavailable
		dbStatus = "down"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"time":     time.Now().Format(time.RFC3339),
		"database": dbStatus,
		"rabbitmq": h.mqEnabled,
	})
}
