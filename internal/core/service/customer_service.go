package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/leadcrm/crm-system/internal/api/metrics"
	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
)

// CustomerService implements the customer/lead use-cases: the filtered list
// view, record creation and edits, the status-tag protocol, the simulated
// bulk import and the CSV export.
type CustomerService struct {
	customers ports.CustomerRepository
	filters   ports.FilterStore
	reader    ports.SpreadsheetReader
	recorder  ports.ActivityRecorder
	logger    zerolog.Logger
}

func NewCustomerService(
	customers ports.CustomerRepository,
	filters ports.FilterStore,
	reader ports.SpreadsheetReader,
	recorder ports.ActivityRecorder,
	logger zerolog.Logger,
) *CustomerService {
	return &CustomerService{
		customers: customers,
		filters:   filters,
		reader:    reader,
		recorder:  recorder,
		logger:    logger,
	}
}

// ListCustomers resolves the viewer's persisted filter state, applies any
// overrides from the request, and returns the visible record set along with
// the tag counts for the stats strip.
func (s *CustomerService) ListCustomers(ctx context.Context, input ports.ListCustomersInput) (*ports.ListCustomersResult, error) {
	filter, err := s.resolveFilter(ctx, input.Viewer, input.Override)
	if err != nil {
		return nil, err
	}

	all, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := domain.VisibleCustomers(all, filter, input.Viewer)

	// Tag counts run over the role-visible population ignoring the active
	// filters, so the strip shows where records would land, not just what is
	// currently on screen.
	counts := make(map[domain.StatusTag]int, len(domain.StatusTags))
	rolePopulation := domain.VisibleCustomers(all, domain.DefaultFilter(), input.Viewer)
	for _, c := range rolePopulation {
		counts[c.StatusTag]++
	}

	return &ports.ListCustomersResult{
		Items:         visible,
		Filter:        filter,
		AvailableTags: domain.AvailableStatusTags(input.Viewer.Role),
		TagCounts:     counts,
		Total:         len(visible),
	}, nil
}

// CreateCustomer adds a record. Advisors get the restricted form: lifecycle
// forced to prospect and tag forced to "Call Back" regardless of input.
func (s *CustomerService) CreateCustomer(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	fieldErrs := domain.FieldErrors{}
	if input.Name == "" {
		fieldErrs["name"] = "name is required"
	}
	if input.PhoneNumber == "" {
		fieldErrs["phone_number"] = "phone number is required"
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	tag := input.StatusTag
	lifecycle := input.LifecycleState
	if input.Viewer.Role == domain.RoleAdvisor {
		tag = domain.TagCallBack
		lifecycle = domain.LifecycleProspect
	} else {
		if tag == "" {
			tag = domain.TagCallBack
		}
		if lifecycle == "" {
			lifecycle = domain.LifecycleProspect
		}
	}
	if !domain.ValidStatusTag(tag) || !domain.CanSelectTag(input.Viewer.Role, tag) {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidLifecycleState(lifecycle) {
		return nil, domain.FieldErrors{"lifecycle_state": "unknown lifecycle state"}
	}

	now := time.Now()
	customer := &domain.Customer{
		ID:                  uuid.NewString(),
		Name:                input.Name,
		PhoneNumber:         input.PhoneNumber,
		Notes:               input.Notes,
		StatusTag:           tag,
		LifecycleState:      lifecycle,
		AssignedAdvisorName: assignedName(input.Viewer),
		Seq:                 now.UnixNano(),
	}
	customer.StampContact(now)

	if err := s.customers.Insert(ctx, customer); err != nil {
		s.logger.Error().Err(err).Msg("failed to create customer")
		return nil, err
	}

	// Classification follows the "show me what I just did" policy: the
	// creator's status filter jumps to the new record's tag.
	if input.Viewer.Role == domain.RoleAdvisor || input.StatusTag != "" {
		s.forceStatusFilter(ctx, input.Viewer, tag)
	}

	metrics.CustomersCreatedTotal.WithLabelValues(input.Viewer.Role).Inc()
	s.recorder.Enqueue(ports.ActivityInput{
		Type:        domain.ActivityCustomerCreated,
		ActorName:   input.Viewer.DisplayName,
		CustomerID:  customer.ID,
		Description: fmt.Sprintf("%s created %q", input.Viewer.DisplayName, customer.Name),
		Timestamp:   now.UTC(),
	})
	s.logger.Info().Str("customer_id", customer.ID).Str("tag", string(tag)).Msg("customer created")

	return customer, nil
}

// EditCustomer updates the free-text fields and stamps the contact.
func (s *CustomerService) EditCustomer(ctx context.Context, input ports.EditCustomerInput) (*domain.Customer, error) {
	if input.Name == "" {
		return nil, domain.FieldErrors{"name": "name is required"}
	}

	customer, err := s.visibleByID(ctx, input.Viewer, input.ID)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.Notes = input.Notes
	customer.StampContact(time.Now())

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.recorder.Enqueue(ports.ActivityInput{
		Type:        domain.ActivityCustomerEdited,
		ActorName:   input.Viewer.DisplayName,
		CustomerID:  customer.ID,
		Description: fmt.Sprintf("%s edited %q", input.Viewer.DisplayName, customer.Name),
		Timestamp:   time.Now().UTC(),
	})
	return customer, nil
}

// ChangeStatus re-tags a record, stamps the contact, and forces the viewer's
// status filter to the new tag so the list re-filters onto the record's new
// bucket.
func (s *CustomerService) ChangeStatus(ctx context.Context, input ports.ChangeStatusInput) (*domain.Customer, error) {
	if !domain.ValidStatusTag(input.StatusTag) {
		return nil, domain.FieldErrors{"status_tag": "unknown status tag"}
	}
	if !domain.CanSelectTag(input.Viewer.Role, input.StatusTag) {
		return nil, domain.ErrForbidden
	}

	customer, err := s.visibleByID(ctx, input.Viewer, input.ID)
	if err != nil {
		return nil, err
	}

	customer.StatusTag = input.StatusTag
	customer.StampContact(time.Now())

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.forceStatusFilter(ctx, input.Viewer, input.StatusTag)

	metrics.StatusChangesTotal.WithLabelValues(string(input.StatusTag)).Inc()
	s.recorder.Enqueue(ports.ActivityInput{
		Type:        domain.ActivityStatusChanged,
		ActorName:   input.Viewer.DisplayName,
		CustomerID:  customer.ID,
		Description: fmt.Sprintf("%s tagged %q as %s", input.Viewer.DisplayName, customer.Name, input.StatusTag),
		Timestamp:   time.Now().UTC(),
	})
	return customer, nil
}

// ChangeLifecycle moves a record between customer, prospect and inactive.
func (s *CustomerService) ChangeLifecycle(ctx context.Context, input ports.ChangeLifecycleInput) (*domain.Customer, error) {
	if !domain.ValidLifecycleState(input.LifecycleState) {
		return nil, domain.FieldErrors{"lifecycle_state": "unknown lifecycle state"}
	}

	customer, err := s.visibleByID(ctx, input.Viewer, input.ID)
	if err != nil {
		return nil, err
	}

	customer.LifecycleState = input.LifecycleState
	customer.StampContact(time.Now())

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.recorder.Enqueue(ports.ActivityInput{
		Type:        domain.ActivityLifecycleChanged,
		ActorName:   input.Viewer.DisplayName,
		CustomerID:  customer.ID,
		Description: fmt.Sprintf("%s moved %q to %s", input.Viewer.DisplayName, customer.Name, input.LifecycleState),
		Timestamp:   time.Now().UTC(),
	})
	return customer, nil
}

// ImportCustomers appends the rows produced by the spreadsheet reader. Every
// imported record lands in "Processing" as a prospect, assigned to the
// importer, and the importer's status filter is forced to "Processing" so the
// batch is immediately on screen.
func (s *CustomerService) ImportCustomers(ctx context.Context, input ports.ImportCustomersInput) (*ports.ImportResult, error) {
	if !domain.CanImportCustomers(input.Viewer.Role) {
		return nil, domain.ErrForbidden
	}

	rows, err := s.reader.Read(input.Filename)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	customers := make([]domain.Customer, 0, len(rows))
	for i, row := range rows {
		c := domain.Customer{
			ID:                  uuid.NewString(),
			Name:                row.Name,
			PhoneNumber:         row.PhoneNumber,
			Notes:               row.Notes,
			StatusTag:           domain.TagProcessing,
			LifecycleState:      domain.LifecycleProspect,
			AssignedAdvisorName: assignedName(input.Viewer),
			Seq:                 now.UnixNano() + int64(i),
		}
		c.StampContact(now)
		customers = append(customers, c)
	}

	if err := s.customers.InsertMany(ctx, customers); err != nil {
		s.logger.Error().Err(err).Str("file", input.Filename).Msg("import failed")
		return nil, err
	}

	s.forceStatusFilter(ctx, input.Viewer, domain.TagProcessing)

	metrics.CustomersImportedTotal.Add(float64(len(customers)))
	s.recorder.Enqueue(ports.ActivityInput{
		Type:        domain.ActivityImport,
		ActorName:   input.Viewer.DisplayName,
		Description: fmt.Sprintf("%s imported %d records from %s", input.Viewer.DisplayName, len(customers), input.Filename),
		Timestamp:   now.UTC(),
	})
	s.logger.Info().Int("imported", len(customers)).Str("file", input.Filename).Msg("customers imported")

	return &ports.ImportResult{Imported: len(customers)}, nil
}

// ExportCustomers renders the viewer's current visible set as CSV. An empty
// set produces no file.
func (s *CustomerService) ExportCustomers(ctx context.Context, viewer domain.Identity) (*ports.ExportResult, error) {
	filter, err := s.filters.Get(ctx, viewer.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", viewer.ID).Msg("filter state unreadable, using defaults")
		filter = domain.DefaultFilter()
	}
	filter = filter.Normalize()

	all, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := domain.VisibleCustomers(all, filter, viewer)
	if len(visible) == 0 {
		return nil, domain.ErrNoExportRows
	}

	now := time.Now()
	result := &ports.ExportResult{
		Filename: exportFilename(filter, now),
		Data:     renderCustomersCSV(visible),
		Count:    len(visible),
	}

	metrics.ExportsTotal.Inc()
	s.recorder.Enqueue(ports.ActivityInput{
		Type:        domain.ActivityExport,
		ActorName:   viewer.DisplayName,
		Description: fmt.Sprintf("%s exported %d records", viewer.DisplayName, len(visible)),
		Timestamp:   now.UTC(),
	})
	return result, nil
}

// resolveFilter loads the viewer's persisted filter state, applies overrides,
// and persists the result when anything changed.
func (s *CustomerService) resolveFilter(ctx context.Context, viewer domain.Identity, override ports.FilterOverride) (domain.Filter, error) {
	filter, err := s.filters.Get(ctx, viewer.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", viewer.ID).Msg("filter state unreadable, using defaults")
		filter = domain.DefaultFilter()
	}
	filter = filter.Normalize()

	changed := false
	if override.Search != nil && *override.Search != filter.Search {
		filter.Search = *override.Search
		changed = true
	}
	if override.Lifecycle != nil && *override.Lifecycle != filter.Lifecycle {
		filter.Lifecycle = *override.Lifecycle
		changed = true
	}
	if override.Status != nil && *override.Status != filter.Status {
		filter.Status = *override.Status
		changed = true
	}
	filter = filter.Normalize()

	if changed {
		if err := s.filters.Save(ctx, viewer.ID, filter); err != nil {
			return domain.Filter{}, err
		}
	}
	return filter, nil
}

// visibleByID loads a record and enforces the visibility predicate minus the
// list filters: advisors can only touch their own, non-Processing records.
func (s *CustomerService) visibleByID(ctx context.Context, viewer domain.Identity, id string) (*domain.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.Visible(*customer, domain.DefaultFilter(), viewer) {
		return nil, domain.ErrForbidden
	}
	return customer, nil
}

func (s *CustomerService) forceStatusFilter(ctx context.Context, viewer domain.Identity, tag domain.StatusTag) {
	filter, err := s.filters.Get(ctx, viewer.ID)
	if err != nil {
		filter = domain.DefaultFilter()
	}
	filter = filter.Normalize()
	filter.Status = string(tag)
	if err := s.filters.Save(ctx, viewer.ID, filter); err != nil {
		s.logger.Warn().Err(err).Str("user_id", viewer.ID).Msg("failed to persist forced status filter")
	}
}

func assignedName(viewer domain.Identity) string {
	if viewer.DisplayName == "" {
		return domain.UnassignedAdvisor
	}
	return viewer.DisplayName
}
