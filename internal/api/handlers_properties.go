package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mietwerk/hauskasse/internal/models"
	"github.com/mietwerk/hauskasse/internal/services"
)

func (handler *Handler) ListProperties(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	properties, err := handler.repos.Properties.ListByUser(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(properties)
}

func (handler *Handler) GetProperty(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	property, found, err := handler.repos.Properties.FindOwnedWithUnits(user.ID, propertyID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}
	return c.JSON(property)
}

func (handler *Handler) CreateProperty(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	var payload propertyPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	input := services.PropertyInput{
		Name:        payload.Name,
		Address:     payload.Address,
		Description: payload.Description,
		IsActive:    payload.IsActive,
	}
	if err := input.Validate(); err != nil {
		return handler.respondServiceError(c, err)
	}

	property := models.Property{
		UserID:      user.ID,
		Name:        payload.Name,
		Address:     payload.Address,
		Description: payload.Description,
		IsActive:    true,
	}
	if payload.IsActive != nil {
		property.IsActive = *payload.IsActive
	}
	if err := handler.repos.Properties.Create(&property); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

func (handler *Handler) UpdateProperty(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	property, found, err := handler.repos.Properties.FindOwned(user.ID, propertyID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	var payload propertyPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	input := services.PropertyInput{
		Name:        payload.Name,
		Address:     payload.Address,
		Description: payload.Description,
		IsActive:    payload.IsActive,
	}
	if err := input.Validate(); err != nil {
		return handler.respondServiceError(c, err)
	}

	property.Name = payload.Name
	property.Address = payload.Address
	property.Description = payload.Description
	if payload.IsActive != nil {
		property.IsActive = *payload.IsActive
	}
	if err := handler.repos.Properties.Save(&property); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(property)
}

func (handler *Handler) DeleteProperty(c *fiber.Ctx) error {
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

	if err := handler.repos.Properties.Delete(propertyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": translateMessage(currentMessages(c), "messages.property_deleted")})
}
