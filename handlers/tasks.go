package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tasklab/go-tasks/models"
	"github.com/tasklab/go-tasks/service"
)

// TaskHandler serves the token-guarded task endpoints. The owning user id
// always comes from the verified token, never from the request body.
type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type createTaskRequest struct {
	Title       string                  `json:"title"`
	Description *string                 `json:"description"`
	Status      models.Optional[string] `json:"status"`
}

type updateTaskRequest struct {
	Title       models.Optional[string]  `json:"title"`
	Description models.Optional[*string] `json:"description"`
	Status      models.Optional[string]  `json:"status"`
}

// taskID parses the :id path parameter. A non-numeric id cannot name any
// task, so it reports not found rather than bad request.
func taskID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Create adds a new task for the authenticated user
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req createTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	task, err := h.tasks.Create(c.Context(), currentUserID(c), service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(task)
}

// List returns one page of the authenticated user's tasks, newest first
func (h *TaskHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 3)

	tasks, pagination, err := h.tasks.List(c.Context(), currentUserID(c), page, perPage)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(200).JSON(fiber.Map{
		"tasks":      tasks,
		"pagination": pagination,
	})
}

// Get returns a single task owned by the authenticated user
func (h *TaskHandler) Get(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"message": "Task not found"})
	}

	task, err := h.tasks.Get(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(200).JSON(task)
}

// Update overwrites the provided fields of an owned task
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"message": "Task not found"})
	}

	var req updateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	err := h.tasks.Update(c.Context(), currentUserID(c), id, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(200).JSON(fiber.Map{"message": "Task updated successfully"})
}

// Delete permanently removes an owned task
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"message": "Task not found"})
	}

	if err := h.tasks.Delete(c.Context(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}

	return c.Status(200).JSON(fiber.Map{"message": "Task deleted successfully"})
}
