package handlers

import (
	"errors"

	"github.com/husseinfaraj7/odv-sub000/internal/models"
	"github.com/husseinfaraj7/odv-sub000/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the application-wide Fiber error handler. It translates
// domain errors from the service layer into HTTP status codes with
// Italian-language user messages.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Si è verificato un errore interno. Riprova più tardi."

	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		status = fiber.StatusNotFound
		message = "Ordine non trovato."
	case errors.Is(err, services.ErrProductNotFound):
		status = fiber.StatusNotFound
		message = "Prodotto non trovato."
	case errors.Is(err, services.ErrContactNotFound):
		status = fiber.StatusNotFound
		message = "Messaggio non trovato."
	case errors.Is(err, services.ErrInvalidOrder):
		status = fiber.StatusBadRequest
		message = "L'ordine non è valido."
	case errors.Is(err, services.ErrInvalidStatus):
		status = fiber.StatusBadRequest
		message = "Lo stato richiesto non è valido."
	case errors.Is(err, services.ErrStatusTerminal):
		status = fiber.StatusConflict
		message = "Il cambio di stato richiesto non è consentito."
	case errors.Is(err, services.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
		message = "Credenziali non valide."
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailRegistered):
		status = fiber.StatusConflict
		message = "Registrazione non riuscita: utente già esistente."
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			message = fiberErr.Message
		}
	}

	return c.Status(status).JSON(models.Fail(message, err))
}
