package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Fields is present only on form-validation failures.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// --- Request types ---

// createCustomerRequest is the new-record form. Field presence is validated
// by the customer service so errors come back per field; status_tag and
// lifecycle_state are ignored for advisors.
type createCustomerRequest struct {
	Name           string `json:"name"`
	PhoneNumber    string `json:"phone_number"`
	Notes          string `json:"notes"`
	StatusTag      string `json:"status_tag"`
	LifecycleState string `json:"lifecycle_state"`
}

type editCustomerRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

type changeStatusRequest struct {
	StatusTag string `json:"status_tag" validate:"required"`
}

type changeLifecycleRequest struct {
	LifecycleState string `json:"lifecycle_state" validate:"required,oneof=customer prospect inactive"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type customerResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	PhoneNumber         string `json:"phone_number"`
	Notes               string `json:"notes"`
	StatusTag           string `json:"status_tag"`
	LifecycleState      string `json:"lifecycle_state"`
	LastContactDate     string `json:"last_contact_date"`
	LastContactTime     string `json:"last_contact_time"`
	AssignedAdvisorName string `json:"assigned_advisor_name"`
}

type filterResponse struct {
	Search    string `json:"search"`
	Lifecycle string `json:"lifecycle"`
	Status    string `json:"status"`
}

type listCustomersResponse struct {
	Data          []customerResponse `json:"data"`
	Filter        filterResponse     `json:"filter"`
	AvailableTags []string           `json:"available_tags"`
	TagCounts     map[string]int     `json:"tag_counts"`
	Total         int                `json:"total"`
}

type importResponse struct {
	Imported  int    `json:"imported"`
	StatusTag string `json:"status_tag"`
}
