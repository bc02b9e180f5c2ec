package handler

import (
	"errors"
	"strings"

	"github.com/AnthoniusHendriyanto/todo-service/internal/auth/domain"
	autherror "github.com/AnthoniusHendriyanto/todo-service/internal/errors"
	"github.com/gofiber/fiber/v2"
)

const (
	localUserKey  = "currentUser"
	localTokenKey = "authToken"
)

// RequireAuth is the session guard every protected route sits behind. It
// rejects the request unless the Authorization header carries a bearer token
// that is not revoked, verifies and has not expired, and still maps to an
// existing user. The resolved user and the raw token string are attached to
// the request so downstream handlers can scope their work and logout can
// revoke the exact credential presented. Each request is evaluated
// independently; identity is never cached across requests.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing bearer token",
		})
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	if h.tokenService.IsRevoked(tokenString) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": autherror.ErrTokenRevoked.Error(),
		})
	}

	userID, err := h.tokenService.Resolve(tokenString)
	if err != nil {
		msg := autherror.ErrTokenInvalid.Error()
		if errors.Is(err, autherror.ErrTokenExpired) {
			msg = autherror.ErrTokenExpired.Error()
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": msg,
		})
	}

	// A valid token can outlive a deleted account.
	user, err := h.userService.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal error",
		})
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": autherror.ErrUserNotFound.Error(),
		})
	}

	c.Locals(localUserKey, user)
	c.Locals(localTokenKey, tokenString)

	return c.Next()
}

// CurrentUser returns the identity the guard attached to this request.
// Only valid on routes behind RequireAuth.
func CurrentUser(c *fiber.Ctx) *domain.User {
	return c.Locals(localUserKey).(*domain.User)
}

// AuthToken returns the raw bearer token the guard attached to this request.
func AuthToken(c *fiber.Ctx) string {
	return c.Locals(localTokenKey).(string)
}
