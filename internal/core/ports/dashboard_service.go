package ports

import (
	"context"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

// DashboardResult aggregates the figures shown on the dashboard.
type DashboardResult struct {
	TotalCustomers   int
	ByLifecycle      map[domain.LifecycleState]int
	ByStatusTag      map[domain.StatusTag]int
	TotalAccounts    int
	RecentActivities []domain.Activity
}

// DashboardService computes dashboard aggregates. Access is restricted to
// owner and supervisor at the transport layer.
type DashboardService interface {
	Overview(ctx context.Context, viewer domain.Identity) (*DashboardResult, error)
}
