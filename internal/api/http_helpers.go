package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, messageKey string) error {
	return c.Status(status).JSON(fiber.Map{"error": translateMessage(currentMessages(c), messageKey)})
}

func apiFieldError(c *fiber.Ctx, field string) error {
	message := fmt.Sprintf(translateMessage(currentMessages(c), "errors.invalid_field"), field)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func translateMessage(messages map[string]string, key string) string {
	if messages == nil {
		return key
	}
	if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return key
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, _ := c.Locals(contextMessagesKey).(map[string]string)
	return messages
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, fmt.Errorf("invalid id parameter %q", raw)
	}
	return uint(value), nil
}
