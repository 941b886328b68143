package ports

import (
	"context"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

// FilterOverride carries optional filter changes from the list endpoint.
// A nil field leaves the user's persisted value untouched.
type FilterOverride struct {
	Search    *string
	Lifecycle *string
	Status    *string
}

// ListCustomersInput carries the parameters for the list view.
type ListCustomersInput struct {
	Viewer   domain.Identity
	Override FilterOverride
}

// ListCustomersResult is the complete list-view state: the visible records,
// the filter that produced them, the tags the viewer may assign, and per-tag
// counts over the viewer's role-visible population (the stats strip).
type ListCustomersResult struct {
	Items         []domain.Customer
	Filter        domain.Filter
	AvailableTags []domain.StatusTag
	TagCounts     map[domain.StatusTag]int
	Total         int
}

// CreateCustomerInput carries the new-record form. StatusTag and
// LifecycleState are ignored for advisors, whose records are always created
// as prospect / "Call Back".
type CreateCustomerInput struct {
	Viewer         domain.Identity
	Name           string
	PhoneNumber    string
	Notes          string
	StatusTag      domain.StatusTag
	LifecycleState domain.LifecycleState
}

// EditCustomerInput carries an edit of the free-text fields.
type EditCustomerInput struct {
	Viewer domain.Identity
	ID     string
	Name   string
	Notes  string
}

// ChangeStatusInput carries a status-tag change.
type ChangeStatusInput struct {
	Viewer    domain.Identity
	ID        string
	StatusTag domain.StatusTag
}

// ChangeLifecycleInput carries a lifecycle-state change.
type ChangeLifecycleInput struct {
	Viewer         domain.Identity
	ID             string
	LifecycleState domain.LifecycleState
}

// ImportCustomersInput identifies the uploaded file. Only the name is ever
// inspected; the ingest is simulated.
type ImportCustomersInput struct {
	Viewer   domain.Identity
	Filename string
}

// ImportResult reports how many records an import appended.
type ImportResult struct {
	Imported int
}

// ExportResult is a rendered CSV file ready to stream to the caller.
type ExportResult struct {
	Filename string
	Data     []byte
	Count    int
}

// CustomerService defines the customer/lead use-cases.
type CustomerService interface {
	ListCustomers(ctx context.Context, input ListCustomersInput) (*ListCustomersResult, error)
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	EditCustomer(ctx context.Context, input EditCustomerInput) (*domain.Customer, error)
	ChangeStatus(ctx context.Context, input ChangeStatusInput) (*domain.Customer, error)
	ChangeLifecycle(ctx context.Context, input ChangeLifecycleInput) (*domain.Customer, error)
	ImportCustomers(ctx context.Context, input ImportCustomersInput) (*ImportResult, error)
	ExportCustomers(ctx context.Context, viewer domain.Identity) (*ExportResult, error)
}

// ImportRow is one row produced by the spreadsheet reader.
type ImportRow struct {
	Name        string
	PhoneNumber string
	Notes       string
}

// SpreadsheetReader turns an uploaded file into import rows. The shipped
// implementation validates the extension and returns a fixed sample set; the
// file content is never parsed.
type SpreadsheetReader interface {
	Read(filename string) ([]ImportRow, error)
}
