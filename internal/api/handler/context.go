package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty role
// proves the middleware ran.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get("user_id").(string)
	name, _ := c.Get("display_name").(string)
	email, _ := c.Get("email").(string)

	return domain.Identity{
		ID:          id,
		DisplayName: name,
		Email:       email,
		Role:        role,
	}, nil
}

// ctxSessionID extracts the session id injected by the Auth middleware.
func ctxSessionID(c echo.Context) string {
	sid, _ := c.Get("session_id").(string)
	return sid
}
