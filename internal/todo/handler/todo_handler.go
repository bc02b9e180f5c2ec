package handler

import (
	authhandler "github.com/AnthoniusHendriyanto/todo-service/internal/auth/handler"
	autherror "github.com/AnthoniusHendriyanto/todo-service/internal/errors"
	"github.com/AnthoniusHendriyanto/todo-service/internal/todo/domain"
	"github.com/AnthoniusHendriyanto/todo-service/internal/todo/dto"
	"github.com/AnthoniusHendriyanto/todo-service/internal/todo/service"
	"github.com/gofiber/fiber/v2"
)

type TodoHandler struct {
	todoService *service.TodoService
}

func NewTodoHandler(todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) List(c *fiber.Ctx) error {
	filter := domain.Filter{
		Status:   domain.Status(c.Query("status")),
		Priority: domain.Priority(c.Query("priority")),
	}
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 0)

	todos, pagination, err := h.todoService.List(authhandler.CurrentUser(c).ID, filter, page, limit)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ListTodosOutput{
		Todos: dto.ToTodoOutputs(todos),
		Pagination: dto.PaginationOutput{
			CurrentPage:  pagination.CurrentPage,
			TotalPages:   pagination.TotalPages,
			TotalItems:   pagination.TotalItems,
			ItemsPerPage: pagination.ItemsPerPage,
		},
	})
}

func (h *TodoHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateTodoInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	todo, err := h.todoService.Create(authhandler.CurrentUser(c).ID, input)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToTodoOutput(todo))
}

func (h *TodoHandler) Get(c *fiber.Ctx) error {
	todo, err := h.todoService.Get(authhandler.CurrentUser(c).ID, c.Params("id"))
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToTodoOutput(todo))
}

func (h *TodoHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateTodoInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	todo, err := h.todoService.Update(authhandler.CurrentUser(c).ID, c.Params("id"), input)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToTodoOutput(todo))
}

func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	if err := h.todoService.Delete(authhandler.CurrentUser(c).ID, c.Params("id")); err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "todo deleted",
	})
}
