package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListPropertyPersons(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	if err := handler.requireOwnedProperty(user.ID, propertyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	assignments, err := handler.repos.Assignments.ListActiveByProperty(propertyID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(assignments)
}

func (handler *Handler) AssignPropertyPerson(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	var payload assignmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	if err := handler.requireOwnedProperty(user.ID, propertyID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.requireOwnedPerson(user.ID, payload.PersonID); err != nil {
		return handler.respondServiceError(c, err)
	}

	assignment, err := handler.assignments.AssignToProperty(propertyID, payload.PersonID, payload.Role)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func (handler *Handler) RemovePropertyPerson(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	propertyID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	if err := handler.requireOwnedProperty(user.ID, propertyID); err != nil {
		return handler.respondServiceError(c, err)
	}

	if err := handler.assignments.RemoveFromProperty(propertyID, personID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": translateMessage(currentMessages(c), "messages.assignment_removed")})
}

func (handler *Handler) ListUnitPersons(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	unitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	if err := handler.requireOwnedUnit(user.ID, unitID); err != nil {
		return handler.respondServiceError(c, err)
	}

	assignments, err := handler.repos.Assignments.ListActiveByUnit(unitID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(assignments)
}

func (handler *Handler) AssignUnitPerson(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	unitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	var payload assignmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	if err := handler.requireOwnedUnit(user.ID, unitID); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.requireOwnedPerson(user.ID, payload.PersonID); err != nil {
		return handler.respondServiceError(c, err)
	}

	assignment, err := handler.assignments.AssignToUnit(unitID, payload.PersonID, payload.Role)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func (handler *Handler) RemoveUnitPerson(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	unitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	if err := handler.requireOwnedUnit(user.ID, unitID); err != nil {
		return handler.respondServiceError(c, err)
	}

	if err := handler.assignments.RemoveFromUnit(unitID, personID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": translateMessage(currentMessages(c), "messages.assignment_removed")})
}
