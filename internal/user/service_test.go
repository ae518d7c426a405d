package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testSecret)

	t.Run("Any credentials are accepted", func(t *testing.T) {
		u, token, err := svc.Login(ctx, "zoe", "whatever")

		require.NoError(t, err)
		assert.Equal(t, "zoe", u.Username)
		assert.Equal(t, RoleCustomer, u.Role)
		assert.NotEmpty(t, token)
	})

	t.Run("Token round-trips", func(t *testing.T) {
		_, token, err := svc.Login(ctx, "zoe", "pw")
		require.NoError(t, err)

		claims, err := ParseToken(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, "zoe", claims.Username)
		assert.Equal(t, string(RoleCustomer), claims.Role)
	})

	t.Run("Empty fields rejected", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "", "pw")
		assert.ErrorIs(t, err, ErrCredentialsRequired)

		_, _, err = svc.Login(ctx, "zoe", "  ")
		assert.ErrorIs(t, err, ErrCredentialsRequired)
	})
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	svc := NewService(testSecret)

	t.Run("Role is honored", func(t *testing.T) {
		u, token, err := svc.Signup(ctx, SignupParams{
			Username: "chef",
			Email:    "chef@nebula.eats",
			Password: "pw",
			Role:     RoleAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, u.Role)

		claims, err := ParseToken(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, string(RoleAdmin), claims.Role)
	})

	t.Run("Role defaults to customer", func(t *testing.T) {
		u, _, err := svc.Signup(ctx, SignupParams{
			Username: "zoe",
			Email:    "zoe@example.com",
			Password: "pw",
		})

		require.NoError(t, err)
		assert.Equal(t, RoleCustomer, u.Role)
	})

	t.Run("Email must contain at sign", func(t *testing.T) {
		_, _, err := svc.Signup(ctx, SignupParams{
			Username: "zoe",
			Email:    "not-an-email",
			Password: "pw",
		})

		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		_, _, err := svc.Signup(ctx, SignupParams{
			Username: "zoe",
			Email:    "zoe@example.com",
			Password: "pw",
			Role:     Role("SUPERUSER"),
		})

		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestParseToken(t *testing.T) {
	t.Run("Wrong secret rejected", func(t *testing.T) {
		token, err := GenerateToken(testSecret, User{Username: "zoe", Role: RoleCustomer})
		require.NoError(t, err)

		_, err = ParseToken("other-secret", token)
		assert.Error(t, err)
	})

	t.Run("Garbage rejected", func(t *testing.T) {
		_, err := ParseToken(testSecret, "not.a.token")
		assert.Error(t, err)
	})

	t.Run("Missing secret", func(t *testing.T) {
		_, err := GenerateToken("", User{Username: "zoe"})
		assert.ErrorIs(t, err, ErrSecretMissing)

		_, err = ParseToken("", "whatever")
		assert.ErrorIs(t, err, ErrSecretMissing)
	})
}
