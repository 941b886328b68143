package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
)

// AuthService implements login and logout against the account repository.
type AuthService struct {
	accounts  ports.AccountRepository
	sessions  ports.SessionStore
	recorder  ports.ActivityRecorder
	jwtSecret string
}

func NewAuthService(accounts ports.AccountRepository, sessions ports.SessionStore, recorder ports.ActivityRecorder, jwtSecret string) *AuthService {
	return &AuthService{
		accounts:  accounts,
		sessions:  sessions,
		recorder:  recorder,
		jwtSecret: jwtSecret,
	}
}

// Login verifies the credentials and opens a session. Unknown email and wrong
// password both return ErrInvalidCredentials so callers cannot enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Identity, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	identity := account.Identity()
	sessionID := uuid.NewString()
	if err := s.sessions.Register(ctx, sessionID); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(identity, sessionID)
	if err != nil {
		return "", nil, err
	}

	s.recorder.Enqueue(ports.ActivityInput{
		Type:        domain.ActivityLogin,
		ActorName:   identity.DisplayName,
		Description: identity.DisplayName + " signed in",
		Timestamp:   time.Now().UTC(),
	})

	return token, &identity, nil
}

// Logout revokes the session id embedded in the caller's token.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, sessionID)
}

// generateToken signs the session claims. No exp claim: sessions live until
// logout, matching the source system's no-expiry behavior.
func (s *AuthService) generateToken(identity domain.Identity, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid":   sessionID,
		"sub":   identity.ID,
		"name":  identity.DisplayName,
		"email": identity.Email,
		"role":  identity.Role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
