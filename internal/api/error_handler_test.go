package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shuvo-art/Sheba-Task/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_WrappedDomainErrorKeepsPrefix(t *testing.T) {
	err := fmt.Errorf("Failed to create booking: %w", domain.ErrServiceNotFound)

	code, resp := renderError(t, err)
	if code != http.StatusNotFound {
		t.Fatalf("code: got %d, want 404", code)
	}
	if resp.Message != "Failed to create booking: Service not found" {
		t.Errorf("message: got %q", resp.Message)
	}
	if resp.Success {
		t.Error("error envelope must carry success=false")
	}
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"booking not found", domain.ErrBookingNotFound, http.StatusNotFound},
		{"schedule in past", domain.ErrScheduleNotFuture, http.StatusBadRequest},
		{"bad phone", domain.ErrInvalidPhoneNumber, http.StatusBadRequest},
		{"duplicate email", domain.ErrUserExists, http.StatusConflict},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"email config missing", domain.ErrEmailConfigMissing, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, resp := renderError(t, tc.err)
			if code != tc.code {
				t.Errorf("code: got %d, want %d", code, tc.code)
			}
			if resp.Message != tc.err.Error() {
				t.Errorf("message: got %q, want %q", resp.Message, tc.err.Error())
			}
		})
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	code, resp := renderError(t, echo.NewHTTPError(http.StatusForbidden, "Forbidden"))
	if code != http.StatusForbidden {
		t.Fatalf("code: got %d, want 403", code)
	}
	if resp.Message != "Forbidden" {
		t.Errorf("message: got %q", resp.Message)
	}
}

func TestErrorHandler_UnknownErrorIsMasked(t *testing.T) {
	code, resp := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code: got %d, want 500", code)
	}
	if resp.Message != "Internal Server Error" {
		t.Errorf("internal detail leaked: %q", resp.Message)
	}
}
