package service

import (
	"context"
	"errors"
	"time"

	"github.com/tasklab/go-tasks/auth"
	"github.com/tasklab/go-tasks/models"
	"github.com/tasklab/go-tasks/repository"
)

// dummyHash is compared against when the username does not exist, so both
// login failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService handles registration and login. Auth is stateless: every login
// issues a fresh token and nothing is tracked server-side.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account with a hashed password. It does not log the
// user in; the caller logs in separately.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return newError(ErrInvalidInput, "Missing data...")
	}

	// Fast path only; the unique constraint decides races.
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return newError(ErrConflict, "User already exists")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return newError(ErrConflict, "User already exists")
		}
		return err
	}
	return nil
}

// Login verifies the credentials and returns a fresh bearer token. Unknown
// usernames and wrong passwords fail with the same error so the response
// never reveals which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		auth.CheckPassword(dummyHash, password)
		return "", newError(ErrUnauthenticated, "Invalid Credentials...")
	} else if err != nil {
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", newError(ErrUnauthenticated, "Invalid Credentials...")
	}
	return s.tokens.Issue(user.ID)
}
