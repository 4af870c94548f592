package api

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mietwerk/hauskasse/internal/services"
)

// respondServiceError maps service-layer failures onto the JSON error
// contract. Anything unrecognized is logged and reported as a 500 so
// internals never leak to the client.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return apiFieldError(c, validationErr.Field)
	}

	var conflictErr *services.StandardRentConflictError
	if errors.As(err, &conflictErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":         translateMessage(currentMessages(c), "errors.standard_rent_conflict"),
			"affectedRentals": conflictErr.Affected,
		})
	}

	if isUniquenessViolation(err) {
		return apiError(c, fiber.StatusBadRequest, "errors.already_exists")
	}

	log.Printf("api: unhandled service error: %v", err)
	return apiError(c, fiber.StatusInternalServerError, "errors.internal")
}

func isUniquenessViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
