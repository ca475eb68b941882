package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func invokeRBAC(role interface{}, allowedRoles ...string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	handler := RequireRole(allowedRoles...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	if err := invokeRBAC("admin", "admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireRole_ForbidsOtherRole(t *testing.T) {
	err := invokeRBAC("user", "admin")
	assertHTTPError(t, err, http.StatusForbidden, "Forbidden")
}

func TestRequireRole_ForbidsMissingRole(t *testing.T) {
	err := invokeRBAC(nil, "admin")
	assertHTTPError(t, err, http.StatusForbidden, "Forbidden")
}

func TestRequireRole_MultipleAllowed(t *testing.T) {
	if err := invokeRBAC("user", "admin", "user"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
