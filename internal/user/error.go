package user

import "errors"

var (
	// -- Validation & Input --
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrInvalidEmail        = errors.New("email must contain '@'")
	ErrInvalidRole         = errors.New("role must be CUSTOMER or ADMIN")

	// -- Tokens --
	ErrSecretMissing = errors.New("JWT secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)
