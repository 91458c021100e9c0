package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tasklab/go-tasks/auth"
)

func newAuthService() (*AuthService, *fakeUserRepo, *auth.TokenService) {
	users := newFakeUserRepo()
	tokens := auth.NewTokenService([]byte("test-secret"), 0)
	return NewAuthService(users, tokens), users, tokens
}

func TestRegisterThenLogin(t *testing.T) {
	svc, users, tokens := newAuthService()
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "pw123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.Login(ctx, "alice", "pw123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	stored, err := users.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("lookup registered user: %v", err)
	}
	if userID != stored.ID {
		t.Fatalf("token identity %d does not resolve to user %d", userID, stored.ID)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, users, _ := newAuthService()
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "pw123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	stored, err := users.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("lookup user: %v", err)
	}
	if stored.PasswordHash == "pw123" {
		t.Fatal("password stored in plaintext")
	}
	if !auth.CheckPassword(stored.PasswordHash, "pw123") {
		t.Fatal("stored hash does not verify the original password")
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	for _, tc := range []struct{ username, password string }{
		{"", "pw123"},
		{"alice", ""},
		{"", ""},
	} {
		err := svc.Register(ctx, tc.username, tc.password)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("register(%q, %q): expected ErrInvalidInput, got %v", tc.username, tc.password, err)
		}
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "pw123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Same username conflicts no matter the password.
	err := svc.Register(ctx, "alice", "different")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "pw123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, "alice", "wrong")
	_, unknownUser := svc.Login(ctx, "nobody", "pw123")

	if !errors.Is(wrongPassword, ErrUnauthenticated) {
		t.Fatalf("wrong password: expected ErrUnauthenticated, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, ErrUnauthenticated) {
		t.Fatalf("unknown user: expected ErrUnauthenticated, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPassword.Error(), unknownUser.Error())
	}
}

func TestLoginIssuesFreshTokens(t *testing.T) {
	users := newFakeUserRepo()
	tokens := auth.NewTokenService([]byte("test-secret"), 0)
	svc := NewAuthService(users, tokens)
	ctx := context.Background()

	if err := svc.Register(ctx, "alice", "pw123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	first, err := svc.Login(ctx, "alice", "pw123")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.Login(ctx, "alice", "pw123")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	for _, token := range []string{first, second} {
		if _, err := tokens.Verify(token); err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
	}
}
