package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mietwerk/hauskasse/internal/services"
)

func (handler *Handler) YearlyOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	unitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	year := time.Now().In(handler.location).Year()
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return apiFieldError(c, "year")
		}
		year = parsed
	}

	unit, overview, err := handler.ledger.YearlyOverview(user.ID, unitID, year)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"unit":           unit,
		"year":           year,
		"yearlyOverview": overview,
	})
}

func (handler *Handler) UpsertMonthEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	unitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	var payload monthEntryPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	rental, created, err := handler.ledger.UpsertMonthEntry(user.ID, unitID, services.UpsertMonthInput{
		Month:           payload.Month,
		Year:            payload.Year,
		IsPaid:          payload.IsPaid,
		Notes:           payload.Notes,
		RentAmount:      payload.RentAmount,
		UtilitiesAmount: payload.UtilitiesAmount,
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	messageKey := "messages.rental_updated"
	status := fiber.StatusOK
	if created {
		messageKey = "messages.rental_created"
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"message": translateMessage(currentMessages(c), messageKey),
		"rental":  rental,
	})
}

func (handler *Handler) UpdateStandardRent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	unitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	var payload standardRentPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	unit, err := handler.standardRent.UpdateStandardRent(user.ID, unitID, services.StandardRentInput{
		MonthlyRent:        payload.MonthlyRent,
		MonthlyUtilities:   payload.MonthlyUtilities,
		EffectiveFromMonth: payload.EffectiveFromMonth,
		EffectiveFromYear:  payload.EffectiveFromYear,
		ForceUpdate:        payload.ForceUpdate,
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": translateMessage(currentMessages(c), "messages.standard_rent_updated"),
		"unit":    unit,
	})
}
