package handler

import (
	"github.com/AnthoniusHendriyanto/todo-service/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/todo-service/internal/auth/service"
	autherror "github.com/AnthoniusHendriyanto/todo-service/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, token, err := h.userService.Register(input)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthOutput{
		User:  dto.ToUserOutput(user),
		Token: token,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, token, err := h.userService.Login(input)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.AuthOutput{
		User:  dto.ToUserOutput(user),
		Token: token,
	})
}

// Logout revokes the exact credential the guard extracted for this request.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.userService.Logout(AuthToken(c))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "logged out",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.ToUserOutput(CurrentUser(c)))
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var input dto.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, err := h.userService.UpdateProfile(CurrentUser(c).ID, input)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToUserOutput(user))
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	var input dto.DeleteAccountInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.userService.DeleteAccount(CurrentUser(c).ID, input); err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "account deleted",
	})
}
