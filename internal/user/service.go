package user

import (
	"context"
	"strings"

	"nebula-eats-be/internal/logger"

	"go.uber.org/zap"
)

// placeholderEmail stands in for the address a real identity provider
// would return on login.
const placeholderEmail = "user@example.com"

// Service asserts identities and mints session tokens. There is no
// password verification and no account store: any credentials are
// accepted, matching the demo's mock auth.
type Service interface {
	Login(ctx context.Context, username, password string) (User, string, error)
	Signup(ctx context.Context, params SignupParams) (User, string, error)
}

type service struct {
	secret string
}

// NewService creates a new identity service signing tokens with secret.
func NewService(secret string) Service {
	return &service{secret: secret}
}

// Login accepts any non-empty credentials and returns a CUSTOMER
// identity for the given username.
func (s *service) Login(ctx context.Context, username, password string) (User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return User{}, "", ErrCredentialsRequired
	}

	u := User{
		Username: username,
		Email:    placeholderEmail,
		Role:     RoleCustomer,
	}

	token, err := GenerateToken(s.secret, u)
	if err != nil {
		return User{}, "", err
	}

	logger.FromCtx(ctx).Info("login accepted",
		zap.String("username", u.Username),
		zap.String("role", string(u.Role)),
	)
	return u, token, nil
}

// Signup registers nothing; it validates the form and asserts the
// chosen identity, including the requested role.
func (s *service) Signup(ctx context.Context, params SignupParams) (User, string, error) {
	username := strings.TrimSpace(params.Username)
	if username == "" || strings.TrimSpace(params.Password) == "" {
		return User{}, "", ErrCredentialsRequired
	}
	if !strings.Contains(params.Email, "@") {
		return User{}, "", ErrInvalidEmail
	}

	role := params.Role
	if role == "" {
		role = RoleCustomer
	}
	if !role.Valid() {
		return User{}, "", ErrInvalidRole
	}

	u := User{
		Username: username,
		Email:    params.Email,
		Role:     role,
	}

	token, err := GenerateToken(s.secret, u)
	if err != nil {
		return User{}, "", err
	}

	logger.FromCtx(ctx).Info("signup accepted",
		zap.String("username", u.Username),
		zap.String("role", string(u.Role)),
	)
	return u, token, nil
}
