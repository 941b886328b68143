package service

import (
	"context"

	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
)

const recentActivityLimit = 10

// DashboardService aggregates the figures for the owner/supervisor overview.
type DashboardService struct {
	customers  ports.CustomerRepository
	accounts   ports.AccountRepository
	activities ports.ActivityRepository
}

func NewDashboardService(customers ports.CustomerRepository, accounts ports.AccountRepository, activities ports.ActivityRepository) *DashboardService {
	return &DashboardService{customers: customers, accounts: accounts, activities: activities}
}

// Overview computes totals by lifecycle and tag plus the recent contact trail.
func (s *DashboardService) Overview(ctx context.Context, viewer domain.Identity) (*ports.DashboardResult, error) {
	if !domain.CanViewDashboard(viewer.Role) {
		return nil, domain.ErrForbidden
	}

	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.activities.FindRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	byLifecycle := make(map[domain.LifecycleState]int)
	byTag := make(map[domain.StatusTag]int)
	for _, c := range customers {
		byLifecycle[c.LifecycleState]++
		byTag[c.StatusTag]++
	}

	return &ports.DashboardResult{
		TotalCustomers:   len(customers),
		ByLifecycle:      byLifecycle,
		ByStatusTag:      byTag,
		TotalAccounts:    len(accounts),
		RecentActivities: recent,
	}, nil
}
