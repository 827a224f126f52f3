package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/service"
)

func TestAssignmentService_Assign(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("assigns a free sponsor", func(t *testing.T) {
		created, err := env.assignments.Assign(ctx, "5", "6", service.AssignParams{
			AmountPledged: 1200,
			Notes:         "Eerste contact gelegd",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, domain.StatusAssigned, created.Status)
		assert.Equal(t, "6", created.UserID)
		assert.Equal(t, 1200.0, created.AmountPledged)
		assert.False(t, created.AssignedAt.IsZero())

		active, err := env.assignments.ActiveForSponsor(ctx, "5")
		require.NoError(t, err)
		assert.Equal(t, created.ID, active.ID)
	})

	t.Run("refuses a sponsor with an active assignment", func(t *testing.T) {
		_, err := env.assignments.Assign(ctx, "1", "6", service.AssignParams{})
		assert.ErrorIs(t, err, service.ErrSponsorAlreadyAssigned)
	})

	t.Run("unknown sponsor", func(t *testing.T) {
		_, err := env.assignments.Assign(ctx, "404", "6", service.AssignParams{})
		assert.ErrorIs(t, err, service.ErrSponsorNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := env.assignments.Assign(ctx, "5", "404", service.AssignParams{})
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestAssignmentService_ActiveForSponsor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("sponsor without assignments", func(t *testing.T) {
		_, err := env.assignments.ActiveForSponsor(ctx, "5")
		assert.ErrorIs(t, err, service.ErrNoActiveAssignment)
	})

	t.Run("unknown sponsor", func(t *testing.T) {
		_, err := env.assignments.ActiveForSponsor(ctx, "404")
		assert.ErrorIs(t, err, service.ErrSponsorNotFound)
	})
}

func TestAssignmentService_Start(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("assigned moves to in_progress", func(t *testing.T) {
		started, err := env.assignments.Start(ctx, "4")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInProgress, started.Status)
	})

	t.Run("completed cannot be started", func(t *testing.T) {
		_, err := env.assignments.Start(ctx, "1")
		assert.ErrorIs(t, err, service.ErrInvalidStatusTransition)
	})

	t.Run("in_progress cannot be started twice", func(t *testing.T) {
		_, err := env.assignments.Start(ctx, "4")
		assert.ErrorIs(t, err, service.ErrInvalidStatusTransition)
	})
}

func TestAssignmentService_Complete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("stamps now when no timestamp is given", func(t *testing.T) {
		completed, err := env.assignments.Complete(ctx, "2", service.CompleteParams{
			AmountPledged: 900,
			BundleNames:   []string{"Goud"},
			LogoReady:     true,
			Notes:         "Banner hangt",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, completed.Status)
		assert.Equal(t, 900.0, completed.AmountPledged)
		assert.Equal(t, []string{"Goud"}, completed.BundleNames)
		assert.True(t, completed.LogoReady)
		require.NotNil(t, completed.CompletedAt)
		assert.WithinDuration(t, time.Now(), *completed.CompletedAt, 5*time.Second)
	})

	t.Run("honors an explicit timestamp", func(t *testing.T) {
		when := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
		completed, err := env.assignments.Complete(ctx, "4", service.CompleteParams{
			AmountPledged: 300,
			CompletedAt:   &when,
		})
		require.NoError(t, err)
		require.NotNil(t, completed.CompletedAt)
		assert.True(t, when.Equal(*completed.CompletedAt))
	})

	t.Run("rejected cannot be completed", func(t *testing.T) {
		created, err := env.assignments.Assign(ctx, "5", "6", service.AssignParams{})
		require.NoError(t, err)

		rejected, err := env.assignments.Unassign(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusRejected, rejected.Status)

		_, err = env.assignments.Complete(ctx, created.ID, service.CompleteParams{})
		assert.ErrorIs(t, err, service.ErrInvalidStatusTransition)
	})
}

func TestAssignmentService_Unassign(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("rejects the row and clears the work fields", func(t *testing.T) {
		rejected, err := env.assignments.Unassign(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, "2", rejected.ID)
		assert.Equal(t, domain.StatusRejected, rejected.Status)
		assert.Empty(t, rejected.UserID)
		assert.Zero(t, rejected.AmountPledged)
		assert.Nil(t, rejected.AmountActual)
		assert.Empty(t, rejected.BundleNames)
		assert.False(t, rejected.LogoReady)
		assert.Empty(t, rejected.Notes)
	})

	t.Run("frees the sponsor for a new assignment", func(t *testing.T) {
		created, err := env.assignments.Assign(ctx, "2", "6", service.AssignParams{})
		require.NoError(t, err)
		assert.NotEqual(t, "2", created.ID)
	})

	t.Run("completed cannot be unassigned", func(t *testing.T) {
		_, err := env.assignments.Unassign(ctx, "1")
		assert.ErrorIs(t, err, service.ErrInvalidStatusTransition)
	})
}

func TestAssignmentService_UpdateAssignment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("merge-patch keeps absent fields", func(t *testing.T) {
		notes := "Factuur verstuurd"
		updated, err := env.assignments.UpdateAssignment(ctx, "1", domain.AssignmentUpdate{Notes: &notes})
		require.NoError(t, err)
		assert.Equal(t, "Factuur verstuurd", updated.Notes)
		assert.Equal(t, domain.StatusCompleted, updated.Status)
		assert.Equal(t, 500.0, updated.AmountPledged)
	})

	t.Run("bundle names are stored and read back", func(t *testing.T) {
		names := []string{"Goud", "Zilver"}
		updated, err := env.assignments.UpdateAssignment(ctx, "2", domain.AssignmentUpdate{BundleNames: &names})
		require.NoError(t, err)
		assert.Equal(t, []string{"Goud", "Zilver"}, updated.BundleNames)

		reread, err := env.assignments.GetAssignment(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, []string{"Goud", "Zilver"}, reread.BundleNames)
	})

	t.Run("invalid status", func(t *testing.T) {
		status := domain.AssignmentStatus("paused")
		_, err := env.assignments.UpdateAssignment(ctx, "1", domain.AssignmentUpdate{Status: &status})
		assert.ErrorIs(t, err, service.ErrInvalidStatus)
	})

	t.Run("unknown assignment", func(t *testing.T) {
		notes := "niks"
		_, err := env.assignments.UpdateAssignment(ctx, "404", domain.AssignmentUpdate{Notes: &notes})
		assert.ErrorIs(t, err, service.ErrAssignmentNotFound)
	})
}

func TestAssignmentService_ResetAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("resets in_progress and completed rows", func(t *testing.T) {
		count, err := env.assignments.ResetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		for _, id := range []string{"1", "2", "3", "4"} {
			a, err := env.assignments.GetAssignment(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusAssigned, a.Status)
			assert.Zero(t, a.AmountPledged)
			assert.Nil(t, a.AmountActual)
			assert.Nil(t, a.CompletedAt)
			assert.Empty(t, a.BundleNames)
		}
	})

	t.Run("second reset touches nothing", func(t *testing.T) {
		count, err := env.assignments.ResetAll(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
