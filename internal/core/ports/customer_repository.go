package ports

import (
	"context"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

// CustomerRepository persists customer records. List returns records in
// insertion order; visibility filtering happens above this layer.
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Insert(ctx context.Context, customer *domain.Customer) error
	InsertMany(ctx context.Context, customers []domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
}
