//go:build integration

// Requires a running MongoDB; point MONGO_TEST_URI at it or use the default
// local instance. Run with: go test -tags integration ./internal/infrastructure/db/mongo
package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

func testRepository(t *testing.T) *CustomerRepository {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := Connect(ctx, Config{
		URI:      uri,
		Database: fmt.Sprintf("crm_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("mongodb unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	repo := NewCustomerRepository(db)
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return repo
}

func TestCustomerRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()
	base := time.Now().UnixNano()

	first := &domain.Customer{
		ID:             "c-1",
		Name:           "Ana García",
		StatusTag:      domain.TagCallBack,
		LifecycleState: domain.LifecycleProspect,
		Seq:            base,
	}
	if err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("insert: %v", err)
	}

	batch := []domain.Customer{
		{ID: "c-2", Name: "Roberto Martínez", StatusTag: domain.TagProcessing, LifecycleState: domain.LifecycleProspect, Seq: base + 1},
		{ID: "c-3", Name: "Laura Fernández", StatusTag: domain.TagProcessing, LifecycleState: domain.LifecycleProspect, Seq: base + 2},
	}
	if err := repo.InsertMany(ctx, batch); err != nil {
		t.Fatalf("insert many: %v", err)
	}

	last := &domain.Customer{
		ID:             "c-4",
		Name:           "María López",
		StatusTag:      domain.TagPaid,
		LifecycleState: domain.LifecycleCustomer,
		Seq:            base + 3,
	}
	if err := repo.Insert(ctx, last); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 records, got %d", len(got))
	}
	for i, want := range []string{"c-1", "c-2", "c-3", "c-4"} {
		if got[i].ID != want {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestCustomerRepository_UpdateKeepsPosition(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()
	base := time.Now().UnixNano()

	records := []domain.Customer{
		{ID: "c-1", Name: "Ana García", StatusTag: domain.TagCallBack, LifecycleState: domain.LifecycleProspect, Seq: base},
		{ID: "c-2", Name: "Roberto Martínez", StatusTag: domain.TagCallBack, LifecycleState: domain.LifecycleProspect, Seq: base + 1},
		{ID: "c-3", Name: "Laura Fernández", StatusTag: domain.TagCallBack, LifecycleState: domain.LifecycleProspect, Seq: base + 2},
	}
	if err := repo.InsertMany(ctx, records); err != nil {
		t.Fatalf("insert many: %v", err)
	}

	middle := records[1]
	middle.StatusTag = domain.TagPaid
	middle.Notes = "pago confirmado"
	if err := repo.Update(ctx, &middle); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, want := range []string{"c-1", "c-2", "c-3"} {
		if got[i].ID != want {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, want)
		}
	}
	if got[1].StatusTag != domain.TagPaid || got[1].Notes != "pago confirmado" {
		t.Fatalf("update not applied: %+v", got[1])
	}
}

func TestCustomerRepository_UpdateUnknownID(t *testing.T) {
	repo := testRepository(t)

	err := repo.Update(context.Background(), &domain.Customer{ID: "ghost"})
	if err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
