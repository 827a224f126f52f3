package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/service"
)

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		user, err := env.auth.Login(ctx, "admin", "admin")
		require.NoError(t, err)
		assert.Equal(t, "1", user.ID)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.auth.Login(ctx, "admin", "nope")
		assert.ErrorIs(t, err, service.ErrWrongPassword)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := env.auth.Login(ctx, "nobody", "test")
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}
