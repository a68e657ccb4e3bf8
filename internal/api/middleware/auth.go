package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kazimashinani/jobboard/internal/api/metrics"
	"github.com/kazimashinani/jobboard/internal/core/auth"
	"github.com/kazimashinani/jobboard/internal/core/domain"
)

// Authenticator is satisfied by auth.Gate.
type Authenticator interface {
	Authenticate(ctx context.Context, header string) (*domain.Identity, error)
}

// Auth resolves the bearer token into an identity and attaches it to the
// request context. Rejected requests never reach next; the precise cause is
// logged and counted while the client only sees the generic 401.
func Auth(gate Authenticator, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			identity, err := gate.Authenticate(req.Context(), req.Header.Get(echo.HeaderAuthorization))
			if err != nil {
				if reason := auth.RejectionReason(err); reason != "" {
					metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
					log.Warn().
						Str("reason", reason).
						Str("path", c.Path()).
						Str("remote_ip", c.RealIP()).
						Msg("token rejected")
				}
				return err
			}

			c.SetRequest(req.WithContext(auth.WithIdentity(req.Context(), identity)))
			return next(c)
		}
	}
}

// Identity returns the identity attached by Auth.
func Identity(c echo.Context) (*domain.Identity, bool) {
	return auth.IdentityFrom(c.Request().Context())
}
