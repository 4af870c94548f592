package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/mietwerk/hauskasse/internal/models"
	"github.com/mietwerk/hauskasse/internal/services"
)

func (handler *Handler) ListUnits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	_, found, err := handler.repos.Properties.FindOwned(user.ID, propertyID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	units, err := handler.repos.Units.ListByProperty(propertyID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(units)
}

func (handler *Handler) CreateUnit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	_, found, err := handler.repos.Properties.FindOwned(user.ID, propertyID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	var payload unitPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	input := services.UnitInput{
		Name:             payload.Name,
		UnitType:         payload.UnitType,
		MonthlyRent:      payload.MonthlyRent,
		MonthlyUtilities: payload.MonthlyUtilities,
		Size:             payload.Size,
		IsActive:         payload.IsActive,
	}
	if err := input.Validate(); err != nil {
		return handler.respondServiceError(c, err)
	}

	unit := models.Unit{
		PropertyID:  propertyID,
		Name:        payload.Name,
		UnitType:    payload.UnitType,
		MonthlyRent: payload.MonthlyRent,
		Size:        payload.Size,
		IsActive:    true,
	}
	if payload.MonthlyUtilities != nil {
		unit.MonthlyUtilities = decimal.NullDecimal{Decimal: *payload.MonthlyUtilities, Valid: true}
	}
	if payload.IsActive != nil {
		unit.IsActive = *payload.IsActive
	}
	if err := handler.repos.Units.Create(&unit); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(unit)
}

func (handler *Handler) GetUnit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	unitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	unit, found, err := handler.repos.Units.FindOwned(user.ID, unitID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	response := fiber.Map{"unit": unit}
	if perArea, ok := services.RentPerArea(unit); ok {
		response["rentPerArea"] = perArea
	}
	return c.JSON(response)
}

func (handler *Handler) UpdateUnit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	unitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	unit, found, err := handler.repos.Units.FindOwned(user.ID, unitID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	var payload unitPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	input := services.UnitInput{
		Name:             payload.Name,
		UnitType:         payload.UnitType,
		MonthlyRent:      payload.MonthlyRent,
		MonthlyUtilities: payload.MonthlyUtilities,
		Size:             payload.Size,
		IsActive:         payload.IsActive,
	}
	if err := input.Validate(); err != nil {
		return handler.respondServiceError(c, err)
	}

	unit.Name = payload.Name
	unit.UnitType = payload.UnitType
	unit.MonthlyRent = payload.MonthlyRent
	unit.Size = payload.Size
	if payload.MonthlyUtilities != nil {
		unit.MonthlyUtilities = decimal.NullDecimal{Decimal: *payload.MonthlyUtilities, Valid: true}
	} else {
		unit.MonthlyUtilities = decimal.NullDecimal{}
	}
	if payload.IsActive != nil {
		unit.IsActive = *payload.IsActive
	}
	if err := handler.repos.Units.Save(&unit); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(unit)
}

func (handler *Handler) DeleteUnit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	unitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	_, found, err := handler.repos.Units.FindOwned(user.ID, unitID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	if err := handler.repos.Units.Delete(unitID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": translateMessage(currentMessages(c), "messages.unit_deleted")})
}
