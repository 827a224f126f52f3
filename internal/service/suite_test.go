package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/db"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository/dao"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/service"
)

// testEnv wires the full service stack on a fresh in-memory database
// loaded with the demo fixture.
type testEnv struct {
	auth        *service.AuthService
	users       *service.UserService
	sponsors    *service.SponsorService
	bundles     *service.BundleService
	assignments *service.AssignmentService
	stats       *service.StatsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := db.OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(gdb))
	require.NoError(t, dao.Seed(gdb))

	userRepo := repository.NewUserRepository(dao.NewUserDAO(gdb))
	sponsorRepo := repository.NewSponsorRepository(dao.NewSponsorDAO(gdb))
	bundleRepo := repository.NewBundleRepository(dao.NewBundleDAO(gdb))
	assignmentRepo := repository.NewAssignmentRepository(dao.NewAssignmentDAO(gdb))

	return &testEnv{
		auth:        service.NewAuthService(userRepo),
		users:       service.NewUserService(userRepo),
		sponsors:    service.NewSponsorService(sponsorRepo, assignmentRepo),
		bundles:     service.NewBundleService(bundleRepo),
		assignments: service.NewAssignmentService(assignmentRepo, sponsorRepo, userRepo),
		stats:       service.NewStatsService(userRepo, sponsorRepo, assignmentRepo),
	}
}
