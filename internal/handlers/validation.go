package handlers

import (
	"fmt"

	"github.com/husseinfaraj7/odv-sub000/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validationFailed builds the 400 response for a validator.Struct error,
// listing the field that failed and the constraint it violated.
func validationFailed(c *fiber.Ctx, err error) error {
	fieldErrors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			fieldErrors[e.Field()] = fmt.Sprintf("il campo '%s' non rispetta il vincolo '%s'", e.Field(), e.Tag())
		}
	}
	resp := models.Fail("I dati inviati non sono validi.", err)
	resp.Data = fieldErrors
	return c.Status(fiber.StatusBadRequest).JSON(resp)
}

// badRequest builds the 400 response for an unparseable request body.
func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.Fail("Il corpo della richiesta non è valido.", err))
}
