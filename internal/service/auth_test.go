package service_test

import (
	"context"
	"strings"
	"testing"

	"gigflow/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	registered, err := env.services.Auth.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "Alice", registered.User.Name)
	assert.Equal(t, "alice@example.com", registered.User.Email)
	assert.NotEmpty(t, registered.Token)

	loggedIn, err := env.services.Auth.Login(context.Background(), "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.User.Id, loggedIn.User.Id)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"name too short", "A", "a@example.com", "hunter22"},
		{"name too long", strings.Repeat("a", 51), "a@example.com", "hunter22"},
		{"invalid email", "Alice", "not-an-email", "hunter22"},
		{"password too short", "Alice", "a@example.com", "short"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := env.services.Auth.Register(context.Background(), tc.userName, tc.email, tc.password)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	_, err := env.services.Auth.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = env.services.Auth.Register(context.Background(), "Other Alice", "alice@example.com", "different1")
	assert.ErrorIs(t, err, service.ErrEmailAlreadyTaken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	_, err := env.services.Auth.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = env.services.Auth.Login(context.Background(), "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	// unknown email yields the same error, not a not-found leak
	_, err = env.services.Auth.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRegister_TokenCarriesUserId(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	registered, err := env.services.Auth.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(registered.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.Id, claims.Subject)
}
