package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository"
)

var (
	ErrAssignmentNotFound      = repository.ErrAssignmentNotFound
	ErrSponsorAlreadyAssigned  = errors.New("sponsor already has an active assignment")
	ErrInvalidStatus           = errors.New("invalid assignment status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrNoActiveAssignment      = errors.New("sponsor has no active assignment")
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment domain.Assignment) (domain.Assignment, error)
	FindByID(ctx context.Context, id string) (domain.Assignment, error)
	FindAll(ctx context.Context) ([]domain.Assignment, error)
	FindBySponsorID(ctx context.Context, sponsorID string) ([]domain.Assignment, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Assignment, error)
	Update(ctx context.Context, id string, patch domain.AssignmentUpdate) error
	Unassign(ctx context.Context, id string) error
	ResetProgress(ctx context.Context, id string) error
}

// AssignParams are the optional details recorded when a sponsor is handed
// to a user.
type AssignParams struct {
	AmountPledged float64
	AmountActual  *float64
	LogoReady     bool
	CashReady     bool
	TicketsReady  bool
	Notes         string
}

// CompleteParams carry the final state of a finished sponsorship.
type CompleteParams struct {
	AmountPledged float64
	BundleNames   []string
	LogoReady     bool
	CashReady     bool
	TicketsReady  bool
	Notes         string
	CompletedAt   *time.Time
}

type AssignmentService struct {
	repo        AssignmentRepository
	sponsorRepo SponsorRepository
	userRepo    UserRepository
}

func NewAssignmentService(repo AssignmentRepository, sponsorRepo SponsorRepository, userRepo UserRepository) *AssignmentService {
	return &AssignmentService{
		repo:        repo,
		sponsorRepo: sponsorRepo,
		userRepo:    userRepo,
	}
}

// Assign creates a fresh assignment for the sponsor. A sponsor can hold at
// most one active (non-rejected) assignment at a time.
func (s *AssignmentService) Assign(ctx context.Context, sponsorID, userID string, params AssignParams) (domain.Assignment, error) {
	if _, err := s.sponsorRepo.FindByID(ctx, sponsorID); err != nil {
		if errors.Is(err, repository.ErrSponsorNotFound) {
			return domain.Assignment{}, ErrSponsorNotFound
		}

		return domain.Assignment{}, fmt.Errorf("s.sponsorRepo.FindByID -> %w", err)
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.Assignment{}, ErrUserNotFound
		}

		return domain.Assignment{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	existing, err := s.repo.FindBySponsorID(ctx, sponsorID)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("s.repo.FindBySponsorID -> %w", err)
	}
	for _, a := range existing {
		if a.IsActive() {
			return domain.Assignment{}, ErrSponsorAlreadyAssigned
		}
	}

	created, err := s.repo.Create(ctx, domain.Assignment{
		SponsorID:     sponsorID,
		UserID:        userID,
		Status:        domain.StatusAssigned,
		AssignedAt:    time.Now(),
		AmountPledged: params.AmountPledged,
		AmountActual:  params.AmountActual,
		LogoReady:     params.LogoReady,
		CashReady:     params.CashReady,
		TicketsReady:  params.TicketsReady,
		Notes:         params.Notes,
	})
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AssignmentService) GetAssignment(ctx context.Context, id string) (domain.Assignment, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return assignment, nil
}

func (s *AssignmentService) ListAssignments(ctx context.Context) ([]domain.Assignment, error) {
	assignments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return assignments, nil
}

func (s *AssignmentService) ListAssignmentsForUser(ctx context.Context, userID string) ([]domain.Assignment, error) {
	assignments, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return assignments, nil
}

// ActiveForSponsor returns the sponsor's first non-rejected assignment.
func (s *AssignmentService) ActiveForSponsor(ctx context.Context, sponsorID string) (domain.Assignment, error) {
	if _, err := s.sponsorRepo.FindByID(ctx, sponsorID); err != nil {
		if errors.Is(err, repository.ErrSponsorNotFound) {
			return domain.Assignment{}, ErrSponsorNotFound
		}

		return domain.Assignment{}, fmt.Errorf("s.sponsorRepo.FindByID -> %w", err)
	}

	assignments, err := s.repo.FindBySponsorID(ctx, sponsorID)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("s.repo.FindBySponsorID -> %w", err)
	}

	if active, ok := activeAssignmentFor(assignments, sponsorID); ok {
		return active, nil
	}

	return domain.Assignment{}, ErrNoActiveAssignment
}

// UpdateAssignment applies a generic merge-patch.
func (s *AssignmentService) UpdateAssignment(ctx context.Context, id string, patch domain.AssignmentUpdate) (domain.Assignment, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Assignment{}, ErrInvalidStatus
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return domain.Assignment{}, ErrAssignmentNotFound
		}

		return domain.Assignment{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return s.GetAssignment(ctx, id)
}

// Start moves a freshly assigned sponsor to in_progress.
func (s *AssignmentService) Start(ctx context.Context, id string) (domain.Assignment, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if assignment.Status != domain.StatusAssigned {
		return domain.Assignment{}, ErrInvalidStatusTransition
	}

	status := domain.StatusInProgress
	return s.UpdateAssignment(ctx, id, domain.AssignmentUpdate{Status: &status})
}

// Complete marks the assignment finished and records the final details.
// The completion timestamp defaults to now when the caller supplies none.
func (s *AssignmentService) Complete(ctx context.Context, id string, params CompleteParams) (domain.Assignment, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if assignment.Status == domain.StatusRejected {
		return domain.Assignment{}, ErrInvalidStatusTransition
	}

	completedAt := time.Now()
	if params.CompletedAt != nil {
		completedAt = *params.CompletedAt
	}

	status := domain.StatusCompleted
	bundleNames := params.BundleNames
	return s.UpdateAssignment(ctx, id, domain.AssignmentUpdate{
		Status:        &status,
		AmountPledged: &params.AmountPledged,
		BundleNames:   &bundleNames,
		LogoReady:     &params.LogoReady,
		CashReady:     &params.CashReady,
		TicketsReady:  &params.TicketsReady,
		Notes:         &params.Notes,
		CompletedAt:   &completedAt,
	})
}

// Unassign soft-rejects the assignment: the row survives with cleared
// fields. Completed assignments cannot be unassigned.
func (s *AssignmentService) Unassign(ctx context.Context, id string) (domain.Assignment, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if assignment.Status == domain.StatusCompleted {
		return domain.Assignment{}, ErrInvalidStatusTransition
	}

	if err := s.repo.Unassign(ctx, id); err != nil {
		return domain.Assignment{}, fmt.Errorf("s.repo.Unassign -> %w", err)
	}

	return s.GetAssignment(ctx, id)
}

// ResetAll puts every in_progress or completed assignment back to
// assigned and wipes its progress fields. Assigned and rejected rows are
// untouched. Returns how many rows were reset.
func (s *AssignmentService) ResetAll(ctx context.Context) (int, error) {
	assignments, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	reset := 0
	for _, a := range assignments {
		if a.Status != domain.StatusInProgress && a.Status != domain.StatusCompleted {
			continue
		}

		if err := s.repo.ResetProgress(ctx, a.ID); err != nil {
			return reset, fmt.Errorf("s.repo.ResetProgress -> %w", err)
		}
		reset++
	}

	return reset, nil
}
