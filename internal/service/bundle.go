package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository"
)

var ErrBundleNotFound = repository.ErrBundleNotFound

type BundleRepository interface {
	Create(ctx context.Context, bundle domain.Bundle) (domain.Bundle, error)
	FindByID(ctx context.Context, id string) (domain.Bundle, error)
	FindAll(ctx context.Context) ([]domain.Bundle, error)
	Update(ctx context.Context, id string, patch domain.BundleUpdate) error
	Delete(ctx context.Context, id string) error
}

type BundleService struct {
	repo BundleRepository
}

func NewBundleService(repo BundleRepository) *BundleService {
	return &BundleService{
		repo: repo,
	}
}

func (s *BundleService) CreateBundle(ctx context.Context, bundle domain.Bundle) (domain.Bundle, error) {
	created, err := s.repo.Create(ctx, bundle)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *BundleService) GetBundle(ctx context.Context, id string) (domain.Bundle, error) {
	bundle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return bundle, nil
}

func (s *BundleService) ListBundles(ctx context.Context) ([]domain.Bundle, error) {
	bundles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return bundles, nil
}

func (s *BundleService) UpdateBundle(ctx context.Context, id string, patch domain.BundleUpdate) (domain.Bundle, error) {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrBundleNotFound) {
			return domain.Bundle{}, ErrBundleNotFound
		}

		return domain.Bundle{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return s.GetBundle(ctx, id)
}

// DeleteBundle removes the bundle only. Assignments that recorded its
// name keep that name; bundle references are by name, so there is
// nothing to cascade into.
func (s *BundleService) DeleteBundle(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBundleNotFound) {
			return ErrBundleNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
