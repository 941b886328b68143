package service

import (
	"context"
	"strings"
	"sync"

	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
)

type stubAccountRepo struct {
	accounts []domain.Account
}

func (r *stubAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			clone := a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if strings.EqualFold(a.Email, email) {
			clone := a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Insert(_ context.Context, account *domain.Account) error {
	for _, a := range r.accounts {
		if strings.EqualFold(a.Email, account.Email) {
			return domain.ErrDuplicateEmail
		}
	}
	r.accounts = append(r.accounts, *account)
	return nil
}

func (r *stubAccountRepo) Update(_ context.Context, account *domain.Account) error {
	for i, a := range r.accounts {
		if a.ID == account.ID {
			r.accounts[i] = *account
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

type stubCustomerRepo struct {
	customers []domain.Customer
}

func (r *stubCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) Insert(_ context.Context, customer *domain.Customer) error {
	r.customers = append(r.customers, *customer)
	return nil
}

func (r *stubCustomerRepo) InsertMany(_ context.Context, customers []domain.Customer) error {
	r.customers = append(r.customers, customers...)
	return nil
}

func (r *stubCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	for i, c := range r.customers {
		if c.ID == customer.ID {
			r.customers[i] = *customer
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}

type stubFilterStore struct {
	filters map[string]domain.Filter
}

func newStubFilterStore() *stubFilterStore {
	return &stubFilterStore{filters: make(map[string]domain.Filter)}
}

func (s *stubFilterStore) Get(_ context.Context, userID string) (domain.Filter, error) {
	f, ok := s.filters[userID]
	if !ok {
		return domain.DefaultFilter(), nil
	}
	return f, nil
}

func (s *stubFilterStore) Save(_ context.Context, userID string, f domain.Filter) error {
	s.filters[userID] = f
	return nil
}

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]bool
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]bool)}
}

func (s *stubSessionStore) Register(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = true
	return nil
}

func (s *stubSessionStore) Revoke(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *stubSessionStore) Active(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[sessionID], nil
}

type stubRecorder struct {
	events []ports.ActivityInput
}

func (r *stubRecorder) Enqueue(event ports.ActivityInput) {
	r.events = append(r.events, event)
}

type stubReader struct {
	rows []ports.ImportRow
	err  error
}

func (r *stubReader) Read(_ string) ([]ports.ImportRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}
