package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appinventory/dto"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	svc := NewAuthService()

	registered, err := svc.Register(dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "USER", registered.User.Role)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(dto.RegisterRequest{
			Username: "alice",
			Email:    "other@example.com",
			Password: "s3cret-pw",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "username")
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(dto.RegisterRequest{
			Username: "alice2",
			Email:    "alice@example.com",
			Password: "s3cret-pw",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("login with wrong password", func(t *testing.T) {
		_, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "wrong"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid username or password")
	})

	t.Run("login with unknown user", func(t *testing.T) {
		_, err := svc.Login(dto.LoginRequest{Username: "nobody", Password: "wrong"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid username or password")
	})

	t.Run("login and validate token", func(t *testing.T) {
		response, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "s3cret-pw"})
		require.NoError(t, err)

		claims, err := svc.ValidateToken(response.Token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, response.User.ID, claims.UserID)
		assert.Equal(t, "USER", claims.Role)
	})

	t.Run("validate garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.Error(t, err)
	})
}

func TestGetCurrentUser(t *testing.T) {
	setupTestDB(t)
	svc := NewAuthService()

	registered, err := svc.Register(dto.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)

	user, err := svc.GetCurrentUser(registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	_, err = svc.GetCurrentUser("missing")
	require.Error(t, err)
}
