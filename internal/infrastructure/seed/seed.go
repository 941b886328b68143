// Package seed bootstraps the demo data the source system shipped with, so a
// fresh deployment is immediately usable. Seeding only touches empty
// collections.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
)

const demoPassword = "123456"

type demoAccount struct {
	firstName, lastName, documentID, phone, email, role, created string
}

var demoAccounts = []demoAccount{
	{"Juan", "Pérez", "12345678A", "+34 600 123 456", "admin@crm.com", domain.RoleOwner, "2024-01-01"},
	{"María", "García", "87654321B", "+34 600 654 321", "supervisor@crm.com", domain.RoleSupervisor, "2024-01-05"},
	{"Carlos", "López", "11223344C", "+34 600 789 012", "asesor@crm.com", domain.RoleAdvisor, "2024-01-10"},
}

var demoCustomers = []domain.Customer{
	{
		Name:                "Ana García",
		PhoneNumber:         "+34 123 456 789",
		Notes:               "Cliente interesado en servicios premium. Requiere seguimiento personalizado.",
		StatusTag:           domain.TagCallBack,
		LifecycleState:      domain.LifecycleCustomer,
		LastContactDate:     "2024-01-20",
		LastContactTime:     "14:30",
		AssignedAdvisorName: "Carlos López",
	},
	{
		Name:                "Roberto Martínez",
		PhoneNumber:         "+34 987 654 321",
		Notes:               "Prospecto con alto potencial. Interesado en paquete empresarial.",
		StatusTag:           domain.TagProcessing,
		LifecycleState:      domain.LifecycleProspect,
		LastContactDate:     "2024-01-19",
		LastContactTime:     "10:15",
		AssignedAdvisorName: "María García",
	},
	{
		Name:                "Laura Fernández",
		PhoneNumber:         "+34 555 123 456",
		Notes:               "No contestó últimas 3 llamadas. Intentar por email.",
		StatusTag:           domain.TagCancelled,
		LifecycleState:      domain.LifecycleInactive,
		LastContactDate:     "2024-01-12",
		LastContactTime:     "16:45",
		AssignedAdvisorName: "Carlos López",
	},
	{
		Name:                "Carlos Ruiz",
		PhoneNumber:         "+34 666 777 888",
		Notes:               "Cliente pagó parcialmente. Pendiente segundo pago.",
		StatusTag:           domain.TagWaitingForPayment,
		LifecycleState:      domain.LifecycleCustomer,
		LastContactDate:     "2024-01-18",
		LastContactTime:     "11:20",
		AssignedAdvisorName: "Ana Martín",
	},
	{
		Name:                "María López",
		PhoneNumber:         "+34 777 888 999",
		Notes:               "Pago completado. Cliente satisfecho con el servicio.",
		StatusTag:           domain.TagPaid,
		LifecycleState:      domain.LifecycleCustomer,
		LastContactDate:     "2024-01-21",
		LastContactTime:     "09:30",
		AssignedAdvisorName: "Carlos López",
	},
}

// Run inserts the demo accounts and customers when the respective
// collections are empty.
func Run(ctx context.Context, accounts ports.AccountRepository, customers ports.CustomerRepository, log zerolog.Logger) error {
	existing, err := accounts.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		for i, da := range demoAccounts {
			account := &domain.Account{
				ID:           uuid.NewString(),
				FirstName:    da.firstName,
				LastName:     da.lastName,
				DocumentID:   da.documentID,
				Phone:        da.phone,
				Email:        da.email,
				Role:         da.role,
				PasswordHash: string(hash),
				CreatedDate:  da.created,
				Seq:          time.Now().UnixNano() + int64(i),
			}
			if err := accounts.Insert(ctx, account); err != nil {
				return err
			}
		}
		log.Info().Int("accounts", len(demoAccounts)).Msg("seeded demo accounts")
	}

	existingCustomers, err := customers.List(ctx)
	if err != nil {
		return err
	}
	if len(existingCustomers) == 0 {
		batch := make([]domain.Customer, len(demoCustomers))
		copy(batch, demoCustomers)
		for i := range batch {
			batch[i].ID = uuid.NewString()
			batch[i].Seq = time.Now().UnixNano() + int64(i)
		}
		if err := customers.InsertMany(ctx, batch); err != nil {
			return err
		}
		log.Info().Int("customers", len(batch)).Msg("seeded demo customers")
	}

	return nil
}
