package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository"
)

var ErrSponsorNotFound = repository.ErrSponsorNotFound

type SponsorRepository interface {
	Create(ctx context.Context, sponsor domain.Sponsor) (domain.Sponsor, error)
	FindByID(ctx context.Context, id string) (domain.Sponsor, error)
	FindAll(ctx context.Context) ([]domain.Sponsor, error)
	Update(ctx context.Context, id string, patch domain.SponsorUpdate) error
	Delete(ctx context.Context, id string) error
}

type SponsorService struct {
	repo           SponsorRepository
	assignmentRepo AssignmentRepository
}

func NewSponsorService(repo SponsorRepository, assignmentRepo AssignmentRepository) *SponsorService {
	return &SponsorService{
		repo:           repo,
		assignmentRepo: assignmentRepo,
	}
}

func (s *SponsorService) CreateSponsor(ctx context.Context, sponsor domain.Sponsor) (domain.Sponsor, error) {
	created, err := s.repo.Create(ctx, sponsor)
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SponsorService) GetSponsor(ctx context.Context, id string) (domain.Sponsor, error) {
	sponsor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return sponsor, nil
}

// ListSponsors returns the sponsors matching the filter. All criteria are
// AND-combined; the filtering itself is a pure computation over the
// current collections.
func (s *SponsorService) ListSponsors(ctx context.Context, filter SponsorFilter) ([]domain.Sponsor, error) {
	sponsors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	assignments, err := s.assignmentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.assignmentRepo.FindAll -> %w", err)
	}

	return filterSponsors(sponsors, assignments, filter), nil
}

func (s *SponsorService) UpdateSponsor(ctx context.Context, id string, patch domain.SponsorUpdate) (domain.Sponsor, error) {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrSponsorNotFound) {
			return domain.Sponsor{}, ErrSponsorNotFound
		}

		return domain.Sponsor{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return s.GetSponsor(ctx, id)
}

// DeleteSponsor removes the sponsor and cascades into its assignments.
func (s *SponsorService) DeleteSponsor(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSponsorNotFound) {
			return ErrSponsorNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
