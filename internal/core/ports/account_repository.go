package ports

import (
	"context"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

// AccountRepository persists user accounts. Writes are keyed by account id;
// the email index is unique.
type AccountRepository interface {
	List(ctx context.Context) ([]domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Insert(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id string) error
}
