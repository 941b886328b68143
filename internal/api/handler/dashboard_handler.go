package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
)

type dashboardResponse struct {
	TotalCustomers   int                           `json:"total_customers"`
	ByLifecycle      map[domain.LifecycleState]int `json:"by_lifecycle"`
	ByStatusTag      map[domain.StatusTag]int      `json:"by_status_tag"`
	TotalAccounts    int                           `json:"total_accounts"`
	RecentActivities []domain.Activity             `json:"recent_activities"`
}

// DashboardHandler serves the aggregate overview for owners and supervisors.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Overview handles GET /v1/dashboard.
//
// @Summary      Dashboard aggregates and recent activity
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	viewer, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.Overview(c.Request().Context(), viewer)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		TotalCustomers:   result.TotalCustomers,
		ByLifecycle:      result.ByLifecycle,
		ByStatusTag:      result.ByStatusTag,
		TotalAccounts:    result.TotalAccounts,
		RecentActivities: result.RecentActivities,
	})
}
