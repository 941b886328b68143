package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer/lead operations.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /v1/customers. The search, lifecycle and status query
// params update the caller's persisted filter state before the visible set is
// computed; absent params leave the stored state untouched.
//
// @Summary      List visible customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        search     query     string  false  "Search term over name, phone and notes"
// @Param        lifecycle  query     string  false  "Lifecycle filter (customer, prospect, inactive, all)"
// @Param        status     query     string  false  "Status-tag filter, or all"
// @Success      200        {object}  listCustomersResponse
// @Failure      401        {object}  errorResponse
// @Router       /v1/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	viewer, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListCustomers(c.Request().Context(), ports.ListCustomersInput{
		Viewer:   viewer,
		Override: filterOverrideFromQuery(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Create handles POST /v1/customers.
//
// @Summary      Create a customer/lead
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "New record"
// @Success      201   {object}  customerResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	viewer, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	customer, err := h.service.CreateCustomer(c.Request().Context(), ports.CreateCustomerInput{
		Viewer:         viewer,
		Name:           req.Name,
		PhoneNumber:    req.PhoneNumber,
		Notes:          req.Notes,
		StatusTag:      domain.StatusTag(req.StatusTag),
		LifecycleState: domain.LifecycleState(req.LifecycleState),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCustomerResponse(*customer))
}

// Edit handles PUT /v1/customers/:id — name and notes only.
//
// @Summary      Edit a customer's name and notes
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Customer id"
// @Param        body  body      editCustomerRequest  true  "Edited fields"
// @Success      200   {object}  customerResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/customers/{id} [put]
func (h *CustomerHandler) Edit(c echo.Context) error {
	viewer, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req editCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	customer, err := h.service.EditCustomer(c.Request().Context(), ports.EditCustomerInput{
		Viewer: viewer,
		ID:     c.Param("id"),
		Name:   req.Name,
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCustomerResponse(*customer))
}

// ChangeStatus handles PUT /v1/customers/:id/status.
//
// @Summary      Change a customer's status tag
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Customer id"
// @Param        body  body      changeStatusRequest  true  "New status tag"
// @Success      200   {object}  customerResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/customers/{id}/status [put]
func (h *CustomerHandler) ChangeStatus(c echo.Context) error {
	viewer, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	customer, err := h.service.ChangeStatus(c.Request().Context(), ports.ChangeStatusInput{
		Viewer:    viewer,
		ID:        c.Param("id"),
		StatusTag: domain.StatusTag(req.StatusTag),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCustomerResponse(*customer))
}

// ChangeLifecycle handles PUT /v1/customers/:id/lifecycle.
//
// @Summary      Change a customer's lifecycle state
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Customer id"
// @Param        body  body      changeLifecycleRequest  true  "New lifecycle state"
// @Success      200   {object}  customerResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/customers/{id}/lifecycle [put]
func (h *CustomerHandler) ChangeLifecycle(c echo.Context) error {
	viewer, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changeLifecycleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	customer, err := h.service.ChangeLifecycle(c.Request().Context(), ports.ChangeLifecycleInput{
		Viewer:         viewer,
		ID:             c.Param("id"),
		LifecycleState: domain.LifecycleState(req.LifecycleState),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCustomerResponse(*customer))
}

// Delete handles DELETE /v1/customers/:id. The source system renders a
// delete action that is wired to nothing; whether hard deletion was intended
// is unresolved, so the operation is explicitly not implemented.
//
// @Summary      Delete a customer (not supported)
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Customer id"
// @Failure      501  {object}  errorResponse
// @Router       /v1/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	return domain.ErrDeleteNotSupported
}

// Import handles POST /v1/customers/import — multipart upload, simulated
// ingest.
//
// @Summary      Bulk-import customers from a spreadsheet upload
// @Tags         customers
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Spreadsheet (.xlsx, .xls or .csv)"
// @Success      201   {object}  importResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/customers/import [post]
func (h *CustomerHandler) Import(c echo.Context) error {
	viewer, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file upload")
	}

	result, err := h.service.ImportCustomers(c.Request().Context(), ports.ImportCustomersInput{
		Viewer:   viewer,
		Filename: file.Filename,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, importResponse{
		Imported:  result.Imported,
		StatusTag: string(domain.TagProcessing),
	})
}

// Export handles GET /v1/customers/export — streams the visible set as CSV.
//
// @Summary      Export the visible customers as CSV
// @Tags         customers
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string  "CSV file"
// @Failure      404  {object}  errorResponse
// @Router       /v1/customers/export [get]
func (h *CustomerHandler) Export(c echo.Context) error {
	viewer, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.ExportCustomers(c.Request().Context(), viewer)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", result.Data)
}

// filterOverrideFromQuery maps present query params to override pointers.
func filterOverrideFromQuery(c echo.Context) ports.FilterOverride {
	var o ports.FilterOverride
	params := c.QueryParams()
	if params.Has("search") {
		v := params.Get("search")
		o.Search = &v
	}
	if params.Has("lifecycle") {
		v := params.Get("lifecycle")
		o.Lifecycle = &v
	}
	if params.Has("status") {
		v := params.Get("status")
		o.Status = &v
	}
	return o
}
