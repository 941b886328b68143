package ports

import (
	"context"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

// CreateAccountInput carries the new-account form, password included.
type CreateAccountInput struct {
	Actor           domain.Identity
	FirstName       string
	LastName        string
	DocumentID      string
	Phone           string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// UpdateAccountInput carries an account edit. The password is not editable
// through this path.
type UpdateAccountInput struct {
	Actor      domain.Identity
	ID         string
	FirstName  string
	LastName   string
	DocumentID string
	Phone      string
	Email      string
	Role       string
}

// AccountService defines the user-management use-cases. Role-target rules
// apply throughout: owners manage any account, supervisors only advisors.
type AccountService interface {
	ListAccounts(ctx context.Context, actor domain.Identity, search string) ([]domain.Account, error)
	CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	UpdateAccount(ctx context.Context, input UpdateAccountInput) (*domain.Account, error)
	// DeleteAccount removes an account. Deleting the actor's own account is
	// refused unconditionally.
	DeleteAccount(ctx context.Context, actor domain.Identity, id string) error
}
