package service

import (
	"context"
	"fmt"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
)

// StatsService recomputes the dashboard numbers from the live collections
// on every call; nothing is cached.
type StatsService struct {
	userRepo       UserRepository
	sponsorRepo    SponsorRepository
	assignmentRepo AssignmentRepository
}

func NewStatsService(userRepo UserRepository, sponsorRepo SponsorRepository, assignmentRepo AssignmentRepository) *StatsService {
	return &StatsService{
		userRepo:       userRepo,
		sponsorRepo:    sponsorRepo,
		assignmentRepo: assignmentRepo,
	}
}

func (s *StatsService) Overview(ctx context.Context) (domain.OverviewStats, error) {
	sponsors, err := s.sponsorRepo.FindAll(ctx)
	if err != nil {
		return domain.OverviewStats{}, fmt.Errorf("s.sponsorRepo.FindAll -> %w", err)
	}

	assignments, err := s.assignmentRepo.FindAll(ctx)
	if err != nil {
		return domain.OverviewStats{}, fmt.Errorf("s.assignmentRepo.FindAll -> %w", err)
	}

	return computeOverview(sponsors, assignments), nil
}

// PerUser reports per-member performance, sorted by completed count
// descending.
func (s *StatsService) PerUser(ctx context.Context) ([]domain.UserStats, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.userRepo.FindAll -> %w", err)
	}

	assignments, err := s.assignmentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.assignmentRepo.FindAll -> %w", err)
	}

	return computeUserStats(users, assignments), nil
}
