package apperror

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the Fiber app-level error handler. It maps AppError
// kinds to HTTP statuses and translates everything else into a generic
// 500 so internal details stay out of responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if fiberErr, ok := err.(*fiber.Error); ok {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	appErr := From(err)
	if appErr.kind == KindInternal {
		log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(appErr.StatusCode()).JSON(fiber.Map{"message": appErr.Message()})
}
