package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/mietwerk/hauskasse/internal/models"
	"github.com/mietwerk/hauskasse/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_credentials")
	}
	if input.ConfirmPassword != "" && input.ConfirmPassword != input.Password {
		return apiError(c, fiber.StatusBadRequest, "errors.password_mismatch")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.weak_password")
	}

	exists, err := handler.repos.Users.ExistsByNormalizedEmail(email)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if exists {
		return apiError(c, fiber.StatusBadRequest, "errors.email_exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	user := models.User{Email: email, PasswordHash: string(hash)}
	if err := handler.repos.Users.Create(&user); err != nil {
		return handler.respondServiceError(c, err)
	}

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, time.Now(), loginFailureLimit, loginFailureWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "errors.too_many_attempts")
	}

	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, time.Now(), loginFailureWindow)
		return apiError(c, fiber.StatusUnauthorized, "errors.invalid_credentials")
	}

	user, found, err := handler.repos.Users.FindByNormalizedEmail(email)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if !found || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		handler.loginLimiter.addFailure(limiterKey, time.Now(), loginFailureWindow)
		return apiError(c, fiber.StatusUnauthorized, "errors.invalid_credentials")
	}

	handler.loginLimiter.reset(limiterKey)
	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(user)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "errors.unauthorized")
	}

	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "errors.invalid_input")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "errors.invalid_credentials")
	}
	if input.NewPassword != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "errors.password_mismatch")
	}
	if err := services.ValidatePasswordStrength(input.NewPassword); err != nil {
		if errors.Is(err, services.ErrWeakPassword) {
			return apiError(c, fiber.StatusBadRequest, "errors.weak_password")
		}
		return handler.respondServiceError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.repos.Users.UpdatePassword(user.ID, string(hash)); err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": translateMessage(currentMessages(c), "messages.password_changed")})
}
