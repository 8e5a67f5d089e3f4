package errors

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleError maps an application error onto an HTTP status and a
// {error, message} JSON body. The wrapped cause is logged, never sent
// to the client.
func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Err != nil {
			log.Printf("App error [%s]: %v", ae.Code, ae.Err)
		}

		var status int
		switch ae.Code {
		case "not_found":
			status = fiber.StatusNotFound
		case "missing_field", "invalid_chunk", "invalid_file_type", "invalid_answer":
			status = fiber.StatusBadRequest
		case "range_not_satisfiable":
			status = fiber.StatusRequestedRangeNotSatisfiable
		default:
			status = fiber.StatusInternalServerError
		}

		return c.Status(status).JSON(fiber.Map{
			"error":   ae.Code,
			"message": ae.Message,
		})
	}

	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "Internal server error",
	})
}
