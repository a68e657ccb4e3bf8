package domain

import "errors"

var (
	ErrValidation = errors.New("validation failed")

	ErrDuplicateIdentity  = errors.New("user already exists with this phone number or email")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrIdentityNotFound   = errors.New("user not found")

	// ErrNoToken and ErrInvalidToken are the only token failures callers see.
	ErrNoToken      = errors.New("no token provided")
	ErrInvalidToken = errors.New("token is not valid")

	// Token verification causes, kept apart for audit logging.
	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token has expired")

	ErrCrypto = errors.New("credential hashing failed")

	ErrForbidden = errors.New("not authorized to modify this resource")

	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("you have already applied for this job")
)

// ValidationError describes a rejected input. It matches ErrValidation.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
