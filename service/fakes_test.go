package service

import (
	"context"
	"sort"

	"github.com/tasklab/go-tasks/models"
	"github.com/tasklab/go-tasks/repository"
)

// In-memory repositories backing the service tests. They enforce the same
// contracts as the Postgres implementations: unique usernames and owner
// filtering on every task access.

type fakeUserRepo struct {
	users  map[string]models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return repository.ErrUsernameTaken
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = *user
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type fakeTaskRepo struct {
	tasks  map[int64]models.Task
	nextID int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[int64]models.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	r.nextID++
	task.ID = r.nextID
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) GetByIDAndOwner(_ context.Context, id, ownerID int64) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok || task.UserID != ownerID {
		return nil, repository.ErrTaskNotFound
	}
	return &task, nil
}

func (r *fakeTaskRepo) ListByOwner(_ context.Context, ownerID int64, limit, offset int) ([]models.Task, error) {
	owned := r.ownedBy(ownerID)
	if offset >= len(owned) {
		return []models.Task{}, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

func (r *fakeTaskRepo) CountByOwner(_ context.Context, ownerID int64) (int, error) {
	return len(r.ownedBy(ownerID)), nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return repository.ErrTaskNotFound
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) DeleteByIDAndOwner(_ context.Context, id, ownerID int64) error {
	task, ok := r.tasks[id]
	if !ok || task.UserID != ownerID {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

// ownedBy returns the owner's tasks newest first with an id tiebreak, the
// same order the SQL query produces.
func (r *fakeTaskRepo) ownedBy(ownerID int64) []models.Task {
	owned := []models.Task{}
	for _, task := range r.tasks {
		if task.UserID == ownerID {
			owned = append(owned, task)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].CreatedAt.After(owned[j].CreatedAt)
		}
		return owned[i].ID > owned[j].ID
	})
	return owned
}
