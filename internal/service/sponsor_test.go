package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/service"
)

func sponsorIDs(sponsors []domain.Sponsor) []string {
	ids := make([]string, 0, len(sponsors))
	for _, s := range sponsors {
		ids = append(ids, s.ID)
	}

	return ids
}

func TestSponsorService_CRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("get fixture sponsor", func(t *testing.T) {
		sponsor, err := env.sponsors.GetSponsor(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Bakkerij Jansen", sponsor.Name)
		assert.Equal(t, 500.0, sponsor.TargetAmount)
	})

	t.Run("create assigns an id and a timestamp", func(t *testing.T) {
		created, err := env.sponsors.CreateSponsor(ctx, domain.Sponsor{
			Name:          "Slagerij Peeters",
			ContactPerson: "Dirk Peeters",
			Email:         "dirk@slagerijpeeters.be",
			TargetAmount:  400,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("update patches only the given fields", func(t *testing.T) {
		phone := "06-00000000"
		updated, err := env.sponsors.UpdateSponsor(ctx, "1", domain.SponsorUpdate{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, "06-00000000", updated.Phone)
		assert.Equal(t, "Bakkerij Jansen", updated.Name)
		assert.Equal(t, "Henk Jansen", updated.ContactPerson)
	})

	t.Run("unknown sponsor", func(t *testing.T) {
		_, err := env.sponsors.GetSponsor(ctx, "404")
		assert.ErrorIs(t, err, service.ErrSponsorNotFound)
	})

	t.Run("delete removes the sponsor and its assignments", func(t *testing.T) {
		require.NoError(t, env.sponsors.DeleteSponsor(ctx, "1"))

		_, err := env.sponsors.GetSponsor(ctx, "1")
		assert.ErrorIs(t, err, service.ErrSponsorNotFound)

		_, err = env.assignments.GetAssignment(ctx, "1")
		assert.ErrorIs(t, err, service.ErrAssignmentNotFound)
	})
}

func TestSponsorService_ListSponsors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("no filter returns everything", func(t *testing.T) {
		sponsors, err := env.sponsors.ListSponsors(ctx, service.SponsorFilter{})
		require.NoError(t, err)
		assert.Len(t, sponsors, 5)
	})

	t.Run("status completed", func(t *testing.T) {
		sponsors, err := env.sponsors.ListSponsors(ctx, service.SponsorFilter{Status: service.FilterStatusCompleted})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "3"}, sponsorIDs(sponsors))
	})

	t.Run("status unassigned", func(t *testing.T) {
		sponsors, err := env.sponsors.ListSponsors(ctx, service.SponsorFilter{Status: service.FilterStatusUnassigned})
		require.NoError(t, err)
		assert.Equal(t, []string{"5"}, sponsorIDs(sponsors))
	})

	t.Run("status uncompleted", func(t *testing.T) {
		sponsors, err := env.sponsors.ListSponsors(ctx, service.SponsorFilter{Status: service.FilterStatusUncompleted})
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "4"}, sponsorIDs(sponsors))
	})

	t.Run("owning user", func(t *testing.T) {
		sponsors, err := env.sponsors.ListSponsors(ctx, service.SponsorFilter{UserID: "3"})
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, sponsorIDs(sponsors))
	})

	t.Run("search is case-insensitive over name, contact and email", func(t *testing.T) {
		sponsors, err := env.sponsors.ListSponsors(ctx, service.SponsorFilter{Search: "BAKKERIJ"})
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, sponsorIDs(sponsors))

		sponsors, err = env.sponsors.ListSponsors(ctx, service.SponsorFilter{Search: "sandra@"})
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, sponsorIDs(sponsors))
	})

	t.Run("filters combine conjunctively", func(t *testing.T) {
		sponsors, err := env.sponsors.ListSponsors(ctx, service.SponsorFilter{
			Status: service.FilterStatusUncompleted,
			UserID: "3",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, sponsorIDs(sponsors))

		sponsors, err = env.sponsors.ListSponsors(ctx, service.SponsorFilter{
			Status: service.FilterStatusCompleted,
			Search: "garage",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"3"}, sponsorIDs(sponsors))
	})

	t.Run("bundle filter matches recorded bundle names", func(t *testing.T) {
		_, err := env.assignments.Complete(ctx, "2", service.CompleteParams{
			AmountPledged: 900,
			BundleNames:   []string{"Goud"},
		})
		require.NoError(t, err)

		sponsors, err := env.sponsors.ListSponsors(ctx, service.SponsorFilter{Bundle: "Goud"})
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, sponsorIDs(sponsors))

		sponsors, err = env.sponsors.ListSponsors(ctx, service.SponsorFilter{Bundle: "Platina"})
		require.NoError(t, err)
		assert.Empty(t, sponsors)
	})
}
