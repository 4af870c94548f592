package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mietwerk/hauskasse/internal/models"
)

const (
	authCookieName     = "hauskasse_auth"
	languageCookieName = "hauskasse_lang"
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
