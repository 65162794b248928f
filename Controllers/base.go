package Controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"CarWash/Models"
)

// errJSON maps the error taxonomy to an HTTP response: validation errors
// are 400 and nothing was mutated, missing entities are 404, anything else
// is a failed remote persist reported as 502 (the in-memory state may be
// ahead of the store, a reload recovers).
func errJSON(ctx *fiber.Ctx, err error) error {
	if Models.IsValidation(err) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errors.Is(err, Models.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
}
