package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// AccountService implements user-account management with role-target rules.
type AccountService struct {
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, logger: logger}
}

// ListAccounts returns the accounts the actor may see, optionally narrowed by
// a search over first name, last name, email and document id.
func (s *AccountService) ListAccounts(ctx context.Context, actor domain.Identity, search string) ([]domain.Account, error) {
	if !domain.CanManageAccounts(actor.Role) {
		return nil, domain.ErrForbidden
	}

	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return accounts, nil
	}

	q := strings.ToLower(search)
	out := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		haystack := strings.ToLower(a.FirstName + " " + a.LastName + " " + a.Email + " " + a.DocumentID)
		if strings.Contains(haystack, q) {
			out = append(out, a)
		}
	}
	return out, nil
}

// CreateAccount validates the form, hashes the password, and writes the
// account as one document. Nothing is saved when any field fails.
func (s *AccountService) CreateAccount(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	if !domain.CanManageAccounts(input.Actor.Role) || !domain.CanManageTarget(input.Actor.Role, input.Role) {
		return nil, domain.ErrForbidden
	}

	fieldErrs := s.validateProfile(input.FirstName, input.LastName, input.DocumentID, input.Phone, input.Email, input.Role)
	if input.Password == "" {
		fieldErrs["password"] = "password is required"
	} else if len(input.Password) < 6 {
		fieldErrs["password"] = "password must be at least 6 characters"
	}
	if input.Password != input.ConfirmPassword {
		fieldErrs["confirm_password"] = "passwords do not match"
	}
	if fieldErrs["email"] == "" {
		if _, err := s.accounts.FindByEmail(ctx, input.Email); err == nil {
			fieldErrs["email"] = "email already registered"
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &domain.Account{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		DocumentID:   input.DocumentID,
		Phone:        input.Phone,
		Email:        input.Email,
		Role:         input.Role,
		PasswordHash: string(hash),
		CreatedDate:  now.Format("2006-01-02"),
		Seq:          now.UnixNano(),
	}

	if err := s.accounts.Insert(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.FieldErrors{"email": "email already registered"}
		}
		return nil, err
	}

	s.logger.Info().Str("account_id", account.ID).Str("role", account.Role).Msg("account created")
	return account, nil
}

// UpdateAccount edits profile fields and role. The credential travels with
// the document, so an email change keeps the password attached.
func (s *AccountService) UpdateAccount(ctx context.Context, input ports.UpdateAccountInput) (*domain.Account, error) {
	if !domain.CanManageAccounts(input.Actor.Role) {
		return nil, domain.ErrForbidden
	}

	account, err := s.accounts.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	// Both the current and the requested role must be within the actor's reach.
	if !domain.CanManageTarget(input.Actor.Role, account.Role) || !domain.CanManageTarget(input.Actor.Role, input.Role) {
		return nil, domain.ErrForbidden
	}

	fieldErrs := s.validateProfile(input.FirstName, input.LastName, input.DocumentID, input.Phone, input.Email, input.Role)
	if fieldErrs["email"] == "" && !strings.EqualFold(input.Email, account.Email) {
		if _, err := s.accounts.FindByEmail(ctx, input.Email); err == nil {
			fieldErrs["email"] = "email already registered"
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	account.FirstName = input.FirstName
	account.LastName = input.LastName
	account.DocumentID = input.DocumentID
	account.Phone = input.Phone
	account.Email = input.Email
	account.Role = input.Role

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", account.ID).Msg("account updated")
	return account, nil
}

// DeleteAccount removes an account. The actor's own account is untouchable
// regardless of role or confirmation.
func (s *AccountService) DeleteAccount(ctx context.Context, actor domain.Identity, id string) error {
	if !domain.CanManageAccounts(actor.Role) {
		return domain.ErrForbidden
	}
	if actor.ID == id {
		return domain.ErrSelfDelete
	}

	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanManageTarget(actor.Role, account.Role) {
		return domain.ErrForbidden
	}

	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", id).Str("email", account.Email).Msg("account deleted")
	return nil
}

func (s *AccountService) validateProfile(firstName, lastName, documentID, phone, email, role string) domain.FieldErrors {
	fieldErrs := domain.FieldErrors{}
	if firstName == "" {
		fieldErrs["first_name"] = "first name is required"
	}
	if lastName == "" {
		fieldErrs["last_name"] = "last name is required"
	}
	if documentID == "" {
		fieldErrs["document_id"] = "document id is required"
	}
	if phone == "" {
		fieldErrs["phone"] = "phone is required"
	}
	if email == "" {
		fieldErrs["email"] = "email is required"
	} else if !emailPattern.MatchString(email) {
		fieldErrs["email"] = "invalid email format"
	}
	if !domain.ValidRole(role) {
		fieldErrs["role"] = "unknown role"
	}
	return fieldErrs
}
