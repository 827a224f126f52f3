package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
)

func TestStatsService_Overview(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("fixture totals", func(t *testing.T) {
		overview, err := env.stats.Overview(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.OverviewStats{
			TotalSponsors:      5,
			AssignedSponsors:   4,
			CompletedSponsors:  2,
			InProgressSponsors: 1,
			UnassignedSponsors: 1,
			TotalTargetAmount:  3750,
			TotalRaisedAmount:  1250,
		}, overview)
	})

	t.Run("unassigning releases a sponsor", func(t *testing.T) {
		_, err := env.assignments.Unassign(ctx, "2")
		require.NoError(t, err)

		overview, err := env.stats.Overview(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, overview.AssignedSponsors)
		assert.Equal(t, 2, overview.UnassignedSponsors)
		assert.Equal(t, 0, overview.InProgressSponsors)
	})
}

func TestStatsService_PerUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	stats, err := env.stats.PerUser(ctx)
	require.NoError(t, err)

	t.Run("members only, sorted by completed count", func(t *testing.T) {
		require.Len(t, stats, 5)
		for _, row := range stats {
			assert.Equal(t, domain.RoleMember, row.User.Role)
		}

		assert.Equal(t, "jan", stats[0].User.Username)
		assert.Equal(t, "tom", stats[1].User.Username)
	})

	t.Run("completed member", func(t *testing.T) {
		jan := stats[0]
		assert.Equal(t, 1, jan.TotalAssigned)
		assert.Equal(t, 1, jan.CompletedCount)
		assert.Equal(t, 0, jan.InProgressCount)
		assert.Equal(t, 500.0, jan.TotalRaised)
		assert.Equal(t, 100, jan.CompletionRate)
	})

	t.Run("member still working", func(t *testing.T) {
		var marie domain.UserStats
		for _, row := range stats {
			if row.User.Username == "marie" {
				marie = row
			}
		}
		assert.Equal(t, 1, marie.TotalAssigned)
		assert.Equal(t, 1, marie.InProgressCount)
		assert.Equal(t, 0, marie.CompletedCount)
		assert.Equal(t, 0, marie.CompletionRate)
	})

	t.Run("member without assignments has a zero rate", func(t *testing.T) {
		var piet domain.UserStats
		for _, row := range stats {
			if row.User.Username == "piet" {
				piet = row
			}
		}
		assert.Zero(t, piet.TotalAssigned)
		assert.Zero(t, piet.CompletionRate)
	})
}

func TestStatsService_PerUserIgnoresRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.assignments.Unassign(ctx, "2")
	require.NoError(t, err)

	stats, err := env.stats.PerUser(ctx)
	require.NoError(t, err)

	for _, row := range stats {
		if row.User.Username == "marie" {
			assert.Zero(t, row.TotalAssigned)
			assert.Zero(t, row.InProgressCount)
		}
	}
}
