package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/authgate/session-service/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.users[user.Username] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, session *domain.Session) error {
	clone := *session
	s.sessions[session.Token] = &clone
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, token string) (*domain.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	if _, ok := s.sessions[token]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionStore(), time.Hour)

	user, err := svc.Register(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionStore(), time.Hour)

	if _, err := svc.Register(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionStore(), time.Hour)

	_, _ = svc.Register(context.Background(), "bob", "pass")
	if _, err := svc.Register(context.Background(), "bob", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionStore(), time.Hour)

	if _, err := svc.Register(context.Background(), "carol", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionStore(), time.Hour)

	user, _ := svc.Register(context.Background(), "dave", "goodpass")

	// A prior successful login must not weaken password verification.
	if _, err := svc.Login(context.Background(), user); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownUsername(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionStore(), time.Hour)

	// Unknown users and wrong passwords must be indistinguishable.
	if _, err := svc.Authenticate(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_DistinctTokens(t *testing.T) {
	store := newStubSessionStore()
	svc := NewAuthService(newStubUserRepo(), store, time.Hour)

	user, err := svc.Register(context.Background(), "erin", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		session, err := svc.Login(context.Background(), user)
		if err != nil {
			t.Fatalf("login %d failed: %v", i, err)
		}
		if session.Token == "" {
			t.Fatalf("login %d returned empty token", i)
		}
		if _, dup := seen[session.Token]; dup {
			t.Fatalf("login %d returned a previously issued token", i)
		}
		seen[session.Token] = struct{}{}
		if session.UserID != user.ID || session.Username != "erin" {
			t.Fatalf("unexpected session identity: %+v", session)
		}
		if !session.ExpiresAt.After(session.CreatedAt) {
			t.Fatalf("session expires before creation: %+v", session)
		}
	}
	if len(store.sessions) != 10 {
		t.Fatalf("expected 10 concurrent sessions, got %d", len(store.sessions))
	}
}

func TestAuthService_Logout(t *testing.T) {
	store := newStubSessionStore()
	svc := NewAuthService(newStubUserRepo(), store, time.Hour)

	user, _ := svc.Register(context.Background(), "frank", "pass")
	session, err := svc.Login(context.Background(), user)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if err := svc.Logout(context.Background(), session.Token); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound on second logout, got %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound for empty token, got %v", err)
	}
}
