package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
)

func validCreateInput(actor domain.Identity) ports.CreateAccountInput {
	return ports.CreateAccountInput{
		Actor:           actor,
		FirstName:       "Lucía",
		LastName:        "Moreno",
		DocumentID:      "55667788D",
		Phone:           "+34 600 222 333",
		Email:           "lucia@crm.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Role:            domain.RoleAdvisor,
	}
}

func TestCreateAccount_Success(t *testing.T) {
	repo := &stubAccountRepo{}
	svc := NewAccountService(repo, zerolog.Nop())

	account, err := svc.CreateAccount(context.Background(), validCreateInput(ownerIdentity()))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if account.PasswordHash == "secret1" {
		t.Fatal("password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if account.CreatedDate == "" {
		t.Fatal("created date must be stamped")
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("expected one stored account, got %d", len(repo.accounts))
	}
}

func TestCreateAccount_DuplicateEmailBlocks(t *testing.T) {
	repo := &stubAccountRepo{accounts: []domain.Account{{
		ID: "a1", Email: "lucia@crm.com", Role: domain.RoleAdvisor,
	}}}
	svc := NewAccountService(repo, zerolog.Nop())

	_, err := svc.CreateAccount(context.Background(), validCreateInput(ownerIdentity()))
	fieldErrs, ok := err.(domain.FieldErrors)
	if !ok || fieldErrs["email"] == "" {
		t.Fatalf("expected email field error, got %v", err)
	}
	if len(repo.accounts) != 1 {
		t.Fatal("nothing may be saved on a duplicate email")
	}
}

func TestCreateAccount_PasswordRules(t *testing.T) {
	svc := NewAccountService(&stubAccountRepo{}, zerolog.Nop())

	short := validCreateInput(ownerIdentity())
	short.Password = "abc"
	short.ConfirmPassword = "abc"
	if _, err := svc.CreateAccount(context.Background(), short); err == nil {
		t.Fatal("short password must be rejected")
	}

	mismatch := validCreateInput(ownerIdentity())
	mismatch.ConfirmPassword = "different"
	_, err := svc.CreateAccount(context.Background(), mismatch)
	fieldErrs, ok := err.(domain.FieldErrors)
	if !ok || fieldErrs["confirm_password"] == "" {
		t.Fatalf("expected confirm_password error, got %v", err)
	}
}

func TestCreateAccount_SupervisorOnlyCreatesAdvisors(t *testing.T) {
	svc := NewAccountService(&stubAccountRepo{}, zerolog.Nop())
	supervisor := domain.Identity{ID: "sup-1", DisplayName: "María García", Role: domain.RoleSupervisor}

	advisorInput := validCreateInput(supervisor)
	if _, err := svc.CreateAccount(context.Background(), advisorInput); err != nil {
		t.Fatalf("supervisor should create advisors: %v", err)
	}

	peerInput := validCreateInput(supervisor)
	peerInput.Email = "otra@crm.com"
	peerInput.Role = domain.RoleSupervisor
	if _, err := svc.CreateAccount(context.Background(), peerInput); err != domain.ErrForbidden {
		t.Fatalf("supervisor must not create supervisors, got %v", err)
	}
}

func TestCreateAccount_AdvisorForbidden(t *testing.T) {
	svc := NewAccountService(&stubAccountRepo{}, zerolog.Nop())

	if _, err := svc.CreateAccount(context.Background(), validCreateInput(advisorIdentity())); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUpdateAccount_EmailChangeChecksDuplicates(t *testing.T) {
	repo := &stubAccountRepo{accounts: []domain.Account{
		{ID: "a1", FirstName: "Lucía", LastName: "Moreno", DocumentID: "1", Phone: "1", Email: "lucia@crm.com", Role: domain.RoleAdvisor},
		{ID: "a2", FirstName: "Pablo", LastName: "Santos", DocumentID: "2", Phone: "2", Email: "pablo@crm.com", Role: domain.RoleAdvisor},
	}}
	svc := NewAccountService(repo, zerolog.Nop())

	_, err := svc.UpdateAccount(context.Background(), ports.UpdateAccountInput{
		Actor:      ownerIdentity(),
		ID:         "a1",
		FirstName:  "Lucía",
		LastName:   "Moreno",
		DocumentID: "1",
		Phone:      "1",
		Email:      "pablo@crm.com",
		Role:       domain.RoleAdvisor,
	})
	fieldErrs, ok := err.(domain.FieldErrors)
	if !ok || fieldErrs["email"] == "" {
		t.Fatalf("expected email duplicate error, got %v", err)
	}
}

func TestUpdateAccount_SupervisorCannotTouchOwner(t *testing.T) {
	repo := &stubAccountRepo{accounts: []domain.Account{
		{ID: "a1", FirstName: "Juan", LastName: "Pérez", DocumentID: "1", Phone: "1", Email: "admin@crm.com", Role: domain.RoleOwner},
	}}
	svc := NewAccountService(repo, zerolog.Nop())
	supervisor := domain.Identity{ID: "sup-1", Role: domain.RoleSupervisor}

	_, err := svc.UpdateAccount(context.Background(), ports.UpdateAccountInput{
		Actor: supervisor, ID: "a1",
		FirstName: "Juan", LastName: "Pérez", DocumentID: "1", Phone: "1",
		Email: "admin@crm.com", Role: domain.RoleAdvisor,
	})
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDeleteAccount_SelfDeleteRefused(t *testing.T) {
	repo := &stubAccountRepo{accounts: []domain.Account{
		{ID: "own-1", Email: "admin@crm.com", Role: domain.RoleOwner},
	}}
	svc := NewAccountService(repo, zerolog.Nop())

	if err := svc.DeleteAccount(context.Background(), ownerIdentity(), "own-1"); err != domain.ErrSelfDelete {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
	if len(repo.accounts) != 1 {
		t.Fatal("own account must remain")
	}
}

func TestDeleteAccount_SupervisorScopedToAdvisors(t *testing.T) {
	repo := &stubAccountRepo{accounts: []domain.Account{
		{ID: "a1", Email: "asesor@crm.com", Role: domain.RoleAdvisor},
		{ID: "a2", Email: "admin@crm.com", Role: domain.RoleOwner},
	}}
	svc := NewAccountService(repo, zerolog.Nop())
	supervisor := domain.Identity{ID: "sup-1", Role: domain.RoleSupervisor}

	if err := svc.DeleteAccount(context.Background(), supervisor, "a2"); err != domain.ErrForbidden {
		t.Fatalf("supervisor must not delete an owner, got %v", err)
	}
	if err := svc.DeleteAccount(context.Background(), supervisor, "a1"); err != nil {
		t.Fatalf("supervisor should delete an advisor: %v", err)
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("expected one remaining account, got %d", len(repo.accounts))
	}
}

func TestListAccounts_SearchNarrows(t *testing.T) {
	repo := &stubAccountRepo{accounts: []domain.Account{
		{ID: "a1", FirstName: "Juan", LastName: "Pérez", Email: "admin@crm.com", DocumentID: "12345678A", Role: domain.RoleOwner},
		{ID: "a2", FirstName: "María", LastName: "García", Email: "supervisor@crm.com", DocumentID: "87654321B", Role: domain.RoleSupervisor},
	}}
	svc := NewAccountService(repo, zerolog.Nop())

	out, err := svc.ListAccounts(context.Background(), ownerIdentity(), "garcía")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a2" {
		t.Fatalf("unexpected search result: %+v", out)
	}

	if _, err := svc.ListAccounts(context.Background(), advisorIdentity(), ""); err != domain.ErrForbidden {
		t.Fatalf("advisor must not list accounts, got %v", err)
	}
}
