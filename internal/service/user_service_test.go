package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	users := newFakeUsers()
	auth := newTestAuthService(users, time.Hour)
	svc := NewUserService(users)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)

	t.Run("returns the caller's record", func(t *testing.T) {
		u, err := svc.GetProfile(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", u.Email)
	})

	t.Run("hash never serializes", func(t *testing.T) {
		u, err := svc.GetProfile(ctx, 1)
		require.NoError(t, err)
		require.NotEmpty(t, u.PasswordHash)

		body, err := json.Marshal(u)
		require.NoError(t, err)
		assert.False(t, strings.Contains(string(body), u.PasswordHash))
		assert.NotContains(t, string(body), "password")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetProfile(ctx, 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	users := newFakeUsers()
	auth := newTestAuthService(users, time.Hour)
	svc := NewUserService(users)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	_, err = auth.SignUp(ctx, "b@x.com", "pw123456")
	require.NoError(t, err)

	t.Run("partial merge", func(t *testing.T) {
		first := "Ada"
		u, err := svc.UpdateProfile(ctx, 1, ProfileUpdate{FirstName: &first})
		require.NoError(t, err)
		require.NotNil(t, u.FirstName)
		assert.Equal(t, "Ada", *u.FirstName)
		assert.Equal(t, "a@x.com", u.Email) // untouched
	})

	t.Run("email clash", func(t *testing.T) {
		taken := "b@x.com"
		_, err := svc.UpdateProfile(ctx, 1, ProfileUpdate{Email: &taken})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("unknown id", func(t *testing.T) {
		first := "Ghost"
		_, err := svc.UpdateProfile(ctx, 99, ProfileUpdate{FirstName: &first})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
