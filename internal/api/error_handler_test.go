package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kazimashinani/jobboard/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", domain.NewValidationError("phone is required"), http.StatusBadRequest, "phone is required"},
		{"duplicate", domain.ErrDuplicateIdentity, http.StatusBadRequest, "User already exists with this phone number or email"},
		{"credentials", domain.ErrInvalidCredentials, http.StatusBadRequest, "Invalid phone number or password"},
		{"already applied", domain.ErrAlreadyApplied, http.StatusBadRequest, "You have already applied for this job"},
		{"no token", domain.ErrNoToken, http.StatusUnauthorized, "Token is not valid"},
		{"expired", fmt.Errorf("%w: %w", domain.ErrInvalidToken, domain.ErrTokenExpired), http.StatusUnauthorized, "Token is not valid"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Not authorized"},
		{"job missing", domain.ErrJobNotFound, http.StatusNotFound, "Job not found"},
		{"application missing", domain.ErrApplicationNotFound, http.StatusNotFound, "Application not found"},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"unexpected", errors.New("socket closed"), http.StatusInternalServerError, "Internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Success || body.Message != tc.message {
				t.Fatalf("unexpected body: %+v", body)
			}
		})
	}
}

func TestHTTPErrorHandler_InternalDetailsNotLeaked(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(fmt.Errorf("find identity: %w", errors.New("mongo: connection refused 10.0.0.5")), c)

	if got := rec.Body.String(); strings.Contains(got, "10.0.0.5") || strings.Contains(got, "mongo") {
		t.Fatalf("internal detail leaked: %s", got)
	}
}
