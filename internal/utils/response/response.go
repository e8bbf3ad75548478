package response

import (
	"errors"
	"log"

	domain "mentormatch/internal/errors"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

// statusByCode maps the domain error taxonomy to HTTP statuses.
var statusByCode = map[string]int{
	"VALIDATION_ERROR":     fiber.StatusBadRequest,
	"INVALID_AMOUNT":       fiber.StatusBadRequest,
	"PRICE_NOT_SET":        fiber.StatusBadRequest,
	"INVALID_TRANSITION":   fiber.StatusBadRequest,
	"SCHEDULE_NOT_FOUND":   fiber.StatusNotFound,
	"PROPOSAL_NOT_FOUND":   fiber.StatusNotFound,
	"WALLET_NOT_FOUND":     fiber.StatusNotFound,
	"NOT_PARTICIPANT":      fiber.StatusForbidden,
	"ALREADY_CONFIRMED":    fiber.StatusConflict,
	"PROPOSAL_CLOSED":      fiber.StatusConflict,
	"INSUFFICIENT_BALANCE": fiber.StatusPaymentRequired,
}

// DomainError renders a typed business failure with its mapped status, and
// falls back to a 500 for anything outside the taxonomy.
func DomainError(c *fiber.Ctx, err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		status, ok := statusByCode[de.Code]
		if !ok {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": de.Message,
			"code":  de.Code,
		})
	}

	log.Printf("unhandled error: %v", err)
	return ServerError(c, "internal server error")
}
