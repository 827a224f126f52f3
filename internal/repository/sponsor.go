package repository

import (
	"context"
	"fmt"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository/dao"
)

var ErrSponsorNotFound = dao.ErrSponsorNotFound

type SponsorDAO interface {
	Insert(ctx context.Context, sponsor dao.Sponsor) (dao.Sponsor, error)
	FindByID(ctx context.Context, id string) (dao.Sponsor, error)
	FindAll(ctx context.Context) ([]dao.Sponsor, error)
	Update(ctx context.Context, id string, changes map[string]any) error
	DeleteWithAssignments(ctx context.Context, id string) error
}

type SponsorRepository struct {
	dao SponsorDAO
}

func NewSponsorRepository(dao SponsorDAO) *SponsorRepository {
	return &SponsorRepository{
		dao: dao,
	}
}

func (r *SponsorRepository) Create(ctx context.Context, sponsor domain.Sponsor) (domain.Sponsor, error) {
	created, err := r.dao.Insert(ctx, dao.Sponsor{
		Name:          sponsor.Name,
		ContactPerson: sponsor.ContactPerson,
		Email:         sponsor.Email,
		Phone:         sponsor.Phone,
		Address:       sponsor.Address,
		Description:   sponsor.Description,
		TargetAmount:  sponsor.TargetAmount,
	})
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SponsorRepository) FindByID(ctx context.Context, id string) (domain.Sponsor, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Sponsor{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SponsorRepository) FindAll(ctx context.Context) ([]domain.Sponsor, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	sponsors := make([]domain.Sponsor, 0, len(found))
	for _, s := range found {
		sponsors = append(sponsors, r.daoToDomain(s))
	}

	return sponsors, nil
}

func (r *SponsorRepository) Update(ctx context.Context, id string, patch domain.SponsorUpdate) error {
	changes := map[string]any{}
	if patch.Name != nil {
		changes["name"] = *patch.Name
	}
	if patch.ContactPerson != nil {
		changes["contact_person"] = *patch.ContactPerson
	}
	if patch.Email != nil {
		changes["email"] = *patch.Email
	}
	if patch.Phone != nil {
		changes["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		changes["address"] = *patch.Address
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.TargetAmount != nil {
		changes["target_amount"] = *patch.TargetAmount
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

func (r *SponsorRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.DeleteWithAssignments(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteWithAssignments -> %w", err)
	}

	return nil
}

func (r *SponsorRepository) daoToDomain(s dao.Sponsor) domain.Sponsor {
	return domain.Sponsor{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		Description:   s.Description,
		TargetAmount:  s.TargetAmount,
		CreatedAt:     s.CreatedAt,
	}
}
