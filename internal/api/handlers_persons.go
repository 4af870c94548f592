package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mietwerk/hauskasse/internal/models"
	"github.com/mietwerk/hauskasse/internal/services"
)

func (handler *Handler) ListPersons(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	persons, err := handler.repos.Persons.ListByUser(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(persons)
}

func (handler *Handler) GetPerson(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	personID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	person, found, err := handler.repos.Persons.FindOwned(user.ID, personID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}
	return c.JSON(person)
}

func (handler *Handler) CreatePerson(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	var payload personPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	input := services.PersonInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Notes:     payload.Notes,
		IsActive:  payload.IsActive,
	}
	if err := input.Validate(); err != nil {
		return handler.respondServiceError(c, err)
	}

	person := models.Person{
		UserID:    user.ID,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Notes:     payload.Notes,
		IsActive:  true,
	}
	if payload.IsActive != nil {
		person.IsActive = *payload.IsActive
	}
	if err := handler.repos.Persons.Create(&person); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(person)
}

func (handler *Handler) UpdatePerson(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	personID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	person, found, err := handler.repos.Persons.FindOwned(user.ID, personID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	var payload personPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	input := services.PersonInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Notes:     payload.Notes,
		IsActive:  payload.IsActive,
	}
	if err := input.Validate(); err != nil {
		return handler.respondServiceError(c, err)
	}

	person.FirstName = payload.FirstName
	person.LastName = payload.LastName
	person.Email = payload.Email
	person.Phone = payload.Phone
	person.Notes = payload.Notes
	if payload.IsActive != nil {
		person.IsActive = *payload.IsActive
	}
	if err := handler.repos.Persons.Save(&person); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(person)
}

// DeletePerson deactivates the person instead of removing the row so that
// historical assignments keep pointing at a real record.
func (handler *Handler) DeletePerson(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	personID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	person, found, err := handler.repos.Persons.FindOwned(user.ID, personID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	person.IsActive = false
	if err := handler.repos.Persons.Save(&person); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": translateMessage(currentMessages(c), "messages.person_deactivated")})
}
