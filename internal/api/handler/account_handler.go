package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadcrm/crm-system/internal/core/ports"
)

// AccountHandler handles user-account management requests.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// List handles GET /v1/users.
//
// @Summary      List manageable user accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Search over name, email and document id"
// @Success      200     {object}  listAccountsResponse
// @Failure      403     {object}  errorResponse
// @Router       /v1/users [get]
func (h *AccountHandler) List(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	accounts, err := h.service.ListAccounts(c.Request().Context(), actor, c.QueryParam("search"))
	if err != nil {
		return err
	}

	resp := listAccountsResponse{Data: make([]accountResponse, 0, len(accounts)), Total: len(accounts)}
	for _, a := range accounts {
		resp.Data = append(resp.Data, toAccountResponse(a))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /v1/users.
//
// @Summary      Create a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAccountRequest  true  "New account"
// @Success      201   {object}  accountResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users [post]
func (h *AccountHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	account, err := h.service.CreateAccount(c.Request().Context(), ports.CreateAccountInput{
		Actor:           actor,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		DocumentID:      req.DocumentID,
		Phone:           req.Phone,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAccountResponse(*account))
}

// Update handles PUT /v1/users/:id.
//
// @Summary      Update a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Account id"
// @Param        body  body      updateAccountRequest  true  "Edited fields"
// @Success      200   {object}  accountResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	account, err := h.service.UpdateAccount(c.Request().Context(), ports.UpdateAccountInput{
		Actor:      actor,
		ID:         c.Param("id"),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		DocumentID: req.DocumentID,
		Phone:      req.Phone,
		Email:      req.Email,
		Role:       req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAccountResponse(*account))
}

// Delete handles DELETE /v1/users/:id. Deleting your own account is refused.
//
// @Summary      Delete a user account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAccount(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
