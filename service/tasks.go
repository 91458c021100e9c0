package service

import (
	"context"
	"errors"
	"time"

	"github.com/tasklab/go-tasks/models"
	"github.com/tasklab/go-tasks/repository"
)

const (
	defaultPage    = 1
	defaultPerPage = 3
	maxPerPage     = 100
)

// TaskService enforces the business rules on task CRUD: required fields, the
// status enum, and owner isolation.
type TaskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// CreateTaskInput carries the fields of a new task. Status distinguishes
// "omitted" (defaults to To Do) from a provided value, which must be valid.
type CreateTaskInput struct {
	Title       string
	Description *string
	Status      models.Optional[string]
}

// UpdateTaskInput carries a partial update. Only fields present in the
// request body are overwritten.
type UpdateTaskInput struct {
	Title       models.Optional[string]
	Description models.Optional[*string]
	Status      models.Optional[string]
}

// Create validates and persists a new task for ownerID, returning the full
// stored record. Both timestamps are stamped with the same instant.
func (s *TaskService) Create(ctx context.Context, ownerID int64, in CreateTaskInput) (*models.Task, error) {
	if in.Title == "" {
		return nil, newError(ErrInvalidInput, "MUST contain TITLE")
	}
	status := models.StatusToDo
	if in.Status.Set {
		status = in.Status.Value
	}
	if !models.ValidStatus(status) {
		return nil, newError(ErrInvalidInput, "Invalid STATUS value")
	}

	now := time.Now().UTC()
	task := &models.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// List returns one page of the owner's tasks, newest first, plus pagination
// metadata. Pages beyond the end are not an error; they come back empty with
// the metadata still accurate.
func (s *TaskService) List(ctx context.Context, ownerID int64, page, perPage int) ([]models.Task, models.Pagination, error) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	total, err := s.tasks.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	totalPages := (total + perPage - 1) / perPage

	tasks := []models.Task{}
	if offset := (page - 1) * perPage; offset < total {
		tasks, err = s.tasks.ListByOwner(ctx, ownerID, perPage, offset)
		if err != nil {
			return nil, models.Pagination{}, err
		}
	}

	pagination := models.Pagination{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PerPage:     perPage,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
	return tasks, pagination, nil
}

// Get returns the task only when it exists and belongs to ownerID. A task
// owned by someone else fails exactly like a missing one.
func (s *TaskService) Get(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
	task, err := s.tasks.GetByIDAndOwner(ctx, taskID, ownerID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return nil, newError(ErrNotFound, "Task not found")
	} else if err != nil {
		return nil, err
	}
	return task, nil
}

// Update overwrites the provided fields of an owned task. Validation happens
// before anything is written; a request with no recognized fields still
// requires the task to exist but leaves the row untouched.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID int64, in UpdateTaskInput) error {
	task, err := s.tasks.GetByIDAndOwner(ctx, taskID, ownerID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return newError(ErrNotFound, "Task not found")
	} else if err != nil {
		return err
	}

	if in.Status.Set && !models.ValidStatus(in.Status.Value) {
		return newError(ErrInvalidInput, "Invalid STATUS value")
	}
	if !in.Title.Set && !in.Description.Set && !in.Status.Set {
		return nil
	}

	if in.Title.Set {
		task.Title = in.Title.Value
	}
	if in.Description.Set {
		task.Description = in.Description.Value
	}
	if in.Status.Set {
		task.Status = in.Status.Value
	}
	task.UpdatedAt = time.Now().UTC()

	err = s.tasks.Update(ctx, task)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return newError(ErrNotFound, "Task not found")
	}
	return err
}

// Delete permanently removes an owned task.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	err := s.tasks.DeleteByIDAndOwner(ctx, taskID, ownerID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return newError(ErrNotFound, "Task not found")
	}
	return err
}
