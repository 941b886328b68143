package handler

import (
	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
)

func toCustomerResponse(c domain.Customer) customerResponse {
	return customerResponse{
		ID:                  c.ID,
		Name:                c.Name,
		PhoneNumber:         c.PhoneNumber,
		Notes:               c.Notes,
		StatusTag:           string(c.StatusTag),
		LifecycleState:      string(c.LifecycleState),
		LastContactDate:     c.LastContactDate,
		LastContactTime:     c.LastContactTime,
		AssignedAdvisorName: c.AssignedAdvisorName,
	}
}

func toListResponse(result *ports.ListCustomersResult) listCustomersResponse {
	data := make([]customerResponse, 0, len(result.Items))
	for _, c := range result.Items {
		data = append(data, toCustomerResponse(c))
	}

	tags := make([]string, 0, len(result.AvailableTags))
	for _, t := range result.AvailableTags {
		tags = append(tags, string(t))
	}

	counts := make(map[string]int, len(result.TagCounts))
	for tag, n := range result.TagCounts {
		counts[string(tag)] = n
	}

	return listCustomersResponse{
		Data: data,
		Filter: filterResponse{
			Search:    result.Filter.Search,
			Lifecycle: result.Filter.Lifecycle,
			Status:    result.Filter.Status,
		},
		AvailableTags: tags,
		TagCounts:     counts,
		Total:         result.Total,
	}
}
