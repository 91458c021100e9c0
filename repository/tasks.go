package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tasklab/go-tasks/models"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository persists tasks. Every read and write carries the owner id in
// its WHERE clause, so a task owned by someone else is indistinguishable from
// a task that does not exist.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.Task, error)
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]models.Task, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	Update(ctx context.Context, task *models.Task) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error
}

// PostgresTaskRepository stores tasks in the tasks table.
type PostgresTaskRepository struct {
	db *sql.DB
}

func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

// Create inserts the task and fills in its assigned id.
func (r *PostgresTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO tasks (title, description, status, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		task.Title, task.Description, task.Status, task.UserID, task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID)
}

func (r *PostgresTaskRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.Task, error) {
	var task models.Task
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, status, user_id, created_at, updated_at
		 FROM tasks WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	).Scan(&task.ID, &task.Title, &task.Description, &task.Status,
		&task.UserID, &task.CreatedAt, &task.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	} else if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOwner returns one page of the owner's tasks, newest first. The id
// tiebreak keeps the order stable for tasks created in the same instant.
func (r *PostgresTaskRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, status, user_id, created_at, updated_at
		 FROM tasks WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		ownerID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Status,
			&task.UserID, &task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *PostgresTaskRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tasks WHERE user_id = $1", ownerID,
	).Scan(&count)
	return count, err
}

// Update overwrites the task row identified by id and owner.
func (r *PostgresTaskRepository) Update(ctx context.Context, task *models.Task) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = $1, description = $2, status = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6`,
		task.Title, task.Description, task.Status, task.UpdatedAt, task.ID, task.UserID,
	)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *PostgresTaskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, ownerID,
	)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrTaskNotFound
	}
	return nil
}
