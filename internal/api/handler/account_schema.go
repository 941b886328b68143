package handler

import "github.com/leadcrm/crm-system/internal/core/domain"

type createAccountRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	DocumentID      string `json:"document_id"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
}

type updateAccountRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	DocumentID string `json:"document_id"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

type accountResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DocumentID  string `json:"document_id"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CreatedDate string `json:"created_date"`
}

type listAccountsResponse struct {
	Data  []accountResponse `json:"data"`
	Total int               `json:"total"`
}

func toAccountResponse(a domain.Account) accountResponse {
	return accountResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		DocumentID:  a.DocumentID,
		Phone:       a.Phone,
		Email:       a.Email,
		Role:        string(a.Role),
		CreatedDate: a.CreatedDate,
	}
}
