package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kazimashinani/jobboard/internal/core/auth"
	"github.com/kazimashinani/jobboard/internal/core/domain"
)

// currentIdentity returns the identity attached by the Auth middleware.
// A route wired without Auth fails closed with ErrNoToken.
func currentIdentity(c echo.Context) (*domain.Identity, error) {
	identity, ok := auth.IdentityFrom(c.Request().Context())
	if !ok {
		return nil, domain.ErrNoToken
	}
	return identity, nil
}

// bindAndValidate decodes the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	return c.Validate(req)
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
