package repository

import (
	"context"
	"fmt"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository/dao"
)

var ErrBundleNotFound = dao.ErrBundleNotFound

type BundleDAO interface {
	Insert(ctx context.Context, bundle dao.Bundle) (dao.Bundle, error)
	FindByID(ctx context.Context, id string) (dao.Bundle, error)
	FindAll(ctx context.Context) ([]dao.Bundle, error)
	Update(ctx context.Context, id string, changes map[string]any) error
	Delete(ctx context.Context, id string) error
}

type BundleRepository struct {
	dao BundleDAO
}

func NewBundleRepository(dao BundleDAO) *BundleRepository {
	return &BundleRepository{
		dao: dao,
	}
}

func (r *BundleRepository) Create(ctx context.Context, bundle domain.Bundle) (domain.Bundle, error) {
	created, err := r.dao.Insert(ctx, dao.Bundle{
		Name:        bundle.Name,
		Description: bundle.Description,
		Price:       bundle.Price,
	})
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *BundleRepository) FindByID(ctx context.Context, id string) (domain.Bundle, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *BundleRepository) FindAll(ctx context.Context) ([]domain.Bundle, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	bundles := make([]domain.Bundle, 0, len(found))
	for _, b := range found {
		bundles = append(bundles, r.daoToDomain(b))
	}

	return bundles, nil
}

func (r *BundleRepository) Update(ctx context.Context, id string, patch domain.BundleUpdate) error {
	changes := map[string]any{}
	if patch.Name != nil {
		changes["name"] = *patch.Name
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.Price != nil {
		changes["price"] = *patch.Price
	}

	if len(changes) == 0 {
		_, err := r.dao.FindByID(ctx, id)
		return err
	}

	if err := r.dao.Update(ctx, id, changes); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *BundleRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *BundleRepository) daoToDomain(b dao.Bundle) domain.Bundle {
	return domain.Bundle{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		CreatedAt:   b.CreatedAt,
	}
}
