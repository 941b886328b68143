package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

func seedAccount(t *testing.T, repo *stubAccountRepo, email, password, role string) domain.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	account := domain.Account{
		ID:           "acc-" + email,
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}
	repo.accounts = append(repo.accounts, account)
	return account
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &stubAccountRepo{}
	sessions := newStubSessionStore()
	recorder := &stubRecorder{}
	seedAccount(t, repo, "admin@crm.com", "123456", domain.RoleOwner)

	svc := NewAuthService(repo, sessions, recorder, "secret")

	token, identity, err := svc.Login(context.Background(), "admin@crm.com", "123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty")
	}
	if identity == nil || identity.Role != domain.RoleOwner {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleOwner {
		t.Fatalf("expected role %s, got %v", domain.RoleOwner, claims["role"])
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		t.Fatal("token missing session id")
	}
	if _, hasExp := claims["exp"]; hasExp {
		t.Fatal("sessions must not expire: no exp claim")
	}

	active, err := sessions.Active(context.Background(), sid)
	if err != nil || !active {
		t.Fatalf("session %s should be registered, active=%v err=%v", sid, active, err)
	}

	if len(recorder.events) != 1 || recorder.events[0].Type != domain.ActivityLogin {
		t.Fatalf("expected one login activity, got %+v", recorder.events)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &stubAccountRepo{}
	seedAccount(t, repo, "admin@crm.com", "123456", domain.RoleOwner)
	svc := NewAuthService(repo, newStubSessionStore(), &stubRecorder{}, "secret")

	if _, _, err := svc.Login(context.Background(), "admin@crm.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	svc := NewAuthService(&stubAccountRepo{}, newStubSessionStore(), &stubRecorder{}, "secret")

	if _, _, err := svc.Login(context.Background(), "ghost@crm.com", "123456"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc := NewAuthService(&stubAccountRepo{}, newStubSessionStore(), &stubRecorder{}, "secret")

	if _, _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "admin@crm.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	repo := &stubAccountRepo{}
	sessions := newStubSessionStore()
	seedAccount(t, repo, "admin@crm.com", "123456", domain.RoleOwner)
	svc := NewAuthService(repo, sessions, &stubRecorder{}, "secret")

	token, _, err := svc.Login(context.Background(), "admin@crm.com", "123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	sid := claims["sid"].(string)

	if err := svc.Logout(context.Background(), sid); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	active, _ := sessions.Active(context.Background(), sid)
	if active {
		t.Fatal("session should be revoked after logout")
	}
}
