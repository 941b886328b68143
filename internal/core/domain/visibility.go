package domain

import "strings"

// FilterAll is the wildcard value for the lifecycle and status filters.
const FilterAll = "all"

// Filter is the list-view criteria a user has active. It is persisted per
// user so the view survives across sessions.
type Filter struct {
	Search    string `json:"search"`
	Lifecycle string `json:"lifecycle"`
	Status    string `json:"status"`
}

// DefaultFilter is the state a user starts with: no search, everything shown.
func DefaultFilter() Filter {
	return Filter{Search: "", Lifecycle: FilterAll, Status: FilterAll}
}

// Normalize maps empty lifecycle/status values to the wildcard.
func (f Filter) Normalize() Filter {
	if f.Lifecycle == "" {
		f.Lifecycle = FilterAll
	}
	if f.Status == "" {
		f.Status = FilterAll
	}
	return f
}

// Visible reports whether viewer sees customer c under filter f.
//
// All clauses must hold: the search term matches name, phone or notes
// (case-insensitive substring); the lifecycle and status filters match or are
// the wildcard; advisors never see records still in "Processing"; advisors
// only see records assigned to them.
func Visible(c Customer, f Filter, viewer Identity) bool {
	f = f.Normalize()

	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.PhoneNumber), q) &&
			!strings.Contains(strings.ToLower(c.Notes), q) {
			return false
		}
	}
	if f.Lifecycle != FilterAll && string(c.LifecycleState) != f.Lifecycle {
		return false
	}
	if f.Status != FilterAll && string(c.StatusTag) != f.Status {
		return false
	}
	if viewer.Role == RoleAdvisor && c.StatusTag == TagProcessing {
		return false
	}
	if viewer.Role == RoleAdvisor && c.AssignedAdvisorName != viewer.DisplayName {
		return false
	}
	return true
}

// VisibleCustomers filters list for viewer, preserving input order. It is a
// pure filter, never a sort.
func VisibleCustomers(list []Customer, f Filter, viewer Identity) []Customer {
	out := make([]Customer, 0, len(list))
	for _, c := range list {
		if Visible(c, f, viewer) {
			out = append(out, c)
		}
	}
	return out
}

// AvailableStatusTags returns the tags a role may assign. Advisors are never
// offered "Processing"; they can only encounter it, not select it.
func AvailableStatusTags(role string) []StatusTag {
	if role != RoleAdvisor {
		return StatusTags
	}
	tags := make([]StatusTag, 0, len(StatusTags)-1)
	for _, t := range StatusTags {
		if t != TagProcessing {
			tags = append(tags, t)
		}
	}
	return tags
}

// CanSelectTag reports whether role may assign tag to a record.
func CanSelectTag(role string, tag StatusTag) bool {
	return !(role == RoleAdvisor && tag == TagProcessing)
}

// CanImportCustomers reports whether role may bulk-import records.
func CanImportCustomers(role string) bool {
	return role == RoleOwner || role == RoleSupervisor
}

// CanViewDashboard reports whether role may open the dashboard.
func CanViewDashboard(role string) bool {
	return role == RoleOwner || role == RoleSupervisor
}

// CanManageAccounts reports whether role may enter account management at all.
func CanManageAccounts(role string) bool {
	return role == RoleOwner || role == RoleSupervisor
}

// CanManageTarget reports whether actorRole may create, edit or delete an
// account with targetRole. Owners manage any role; supervisors only advisors.
func CanManageTarget(actorRole, targetRole string) bool {
	switch actorRole {
	case RoleOwner:
		return true
	case RoleSupervisor:
		return targetRole == RoleAdvisor
	}
	return false
}
