package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/service"
)

func TestBundleService_CRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("lists the fixture bundles by price", func(t *testing.T) {
		bundles, err := env.bundles.ListBundles(ctx)
		require.NoError(t, err)
		require.Len(t, bundles, 4)
		assert.Equal(t, "Brons", bundles[0].Name)
		assert.Equal(t, "Platina", bundles[3].Name)
	})

	t.Run("create and update", func(t *testing.T) {
		created, err := env.bundles.CreateBundle(ctx, domain.Bundle{
			Name:        "Diamant",
			Description: "Alles inbegrepen",
			Price:       5000,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		price := 4500.0
		updated, err := env.bundles.UpdateBundle(ctx, created.ID, domain.BundleUpdate{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, 4500.0, updated.Price)
		assert.Equal(t, "Diamant", updated.Name)
	})

	t.Run("unknown bundle", func(t *testing.T) {
		_, err := env.bundles.GetBundle(ctx, "404")
		assert.ErrorIs(t, err, service.ErrBundleNotFound)
	})
}

// Assignments reference bundles by name, so deleting a bundle leaves the
// recorded names on historical assignments intact.
func TestBundleService_DeleteKeepsRecordedNames(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.assignments.Complete(ctx, "2", service.CompleteParams{
		AmountPledged: 900,
		BundleNames:   []string{"Goud"},
	})
	require.NoError(t, err)

	require.NoError(t, env.bundles.DeleteBundle(ctx, "3"))

	assignment, err := env.assignments.GetAssignment(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Goud"}, assignment.BundleNames)

	sponsors, err := env.sponsors.ListSponsors(ctx, service.SponsorFilter{Bundle: "Goud"})
	require.NoError(t, err)
	require.Len(t, sponsors, 1)
	assert.Equal(t, "2", sponsors[0].ID)
}
