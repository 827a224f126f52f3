package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/service"
)

func TestUserService_CreateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("creates a member and hashes the password", func(t *testing.T) {
		created, err := env.users.CreateUser(ctx, domain.User{
			Username:    "sofie",
			DisplayName: "Sofie Willems",
			Password:    "geheim123",
			Role:        domain.RoleMember,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.NotEqual(t, "geheim123", created.Password)

		_, err = env.auth.Login(ctx, "sofie", "geheim123")
		assert.NoError(t, err)
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		_, err := env.users.CreateUser(ctx, domain.User{
			Username:    "jan",
			DisplayName: "Another Jan",
			Password:    "geheim123",
			Role:        domain.RoleMember,
		})
		assert.ErrorIs(t, err, service.ErrUsernameExists)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("patches only the given fields", func(t *testing.T) {
		displayName := "Jan J."
		updated, err := env.users.UpdateUser(ctx, "2", domain.UserUpdate{DisplayName: &displayName})
		require.NoError(t, err)
		assert.Equal(t, "Jan J.", updated.DisplayName)
		assert.Equal(t, "jan", updated.Username)
		assert.Equal(t, domain.RoleMember, updated.Role)
	})

	t.Run("promotes a member to admin", func(t *testing.T) {
		role := domain.RoleAdmin
		updated, err := env.users.UpdateUser(ctx, "3", domain.UserUpdate{Role: &role})
		require.NoError(t, err)
		assert.True(t, updated.IsAdmin())
	})

	t.Run("rejects renaming onto a taken username", func(t *testing.T) {
		username := "marie"
		_, err := env.users.UpdateUser(ctx, "2", domain.UserUpdate{Username: &username})
		assert.ErrorIs(t, err, service.ErrUsernameExists)
	})

	t.Run("unknown user", func(t *testing.T) {
		displayName := "Ghost"
		_, err := env.users.UpdateUser(ctx, "404", domain.UserUpdate{DisplayName: &displayName})
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("removes the user and their assignments", func(t *testing.T) {
		require.NoError(t, env.users.DeleteUser(ctx, "2"))

		_, err := env.users.GetUser(ctx, "2")
		assert.ErrorIs(t, err, service.ErrUserNotFound)

		_, err = env.assignments.GetAssignment(ctx, "1")
		assert.ErrorIs(t, err, service.ErrAssignmentNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := env.users.DeleteUser(ctx, "404")
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}
