package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository/dao"
)

var ErrAssignmentNotFound = dao.ErrAssignmentNotFound

type AssignmentDAO interface {
	Insert(ctx context.Context, assignment dao.Assignment) (dao.Assignment, error)
	FindByID(ctx context.Context, id string) (dao.Assignment, error)
	FindAll(ctx context.Context) ([]dao.Assignment, error)
	FindBySponsorID(ctx context.Context, sponsorID string) ([]dao.Assignment, error)
	FindByUserID(ctx context.Context, userID string) ([]dao.Assignment, error)
	Update(ctx context.Context, id string, changes map[string]any) error
}

type AssignmentRepository struct {
	dao AssignmentDAO
}

func NewAssignmentRepository(dao AssignmentDAO) *AssignmentRepository {
	return &AssignmentRepository{
		dao: dao,
	}
}

func (r *AssignmentRepository) Create(ctx context.Context, assignment domain.Assignment) (domain.Assignment, error) {
	created, err := r.dao.Insert(ctx, dao.Assignment{
		SponsorID:     assignment.SponsorID,
		UserID:        assignment.UserID,
		Status:        string(assignment.Status),
		AssignedAt:    assignment.AssignedAt,
		AmountPledged: assignment.AmountPledged,
		AmountActual:  assignment.AmountActual,
		BundleNames:   assignment.BundleNames,
		LogoReady:     assignment.LogoReady,
		CashReady:     assignment.CashReady,
		TicketsReady:  assignment.TicketsReady,
		Notes:         assignment.Notes,
		CompletedAt:   assignment.CompletedAt,
	})
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (domain.Assignment, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AssignmentRepository) FindAll(ctx context.Context) ([]domain.Assignment, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *AssignmentRepository) FindBySponsorID(ctx context.Context, sponsorID string) ([]domain.Assignment, error) {
	found, err := r.dao.FindBySponsorID(ctx, sponsorID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySponsorID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *AssignmentRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Assignment, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

// Update applies a merge-patch: present fields overwrite, absent fields
// are preserved.
func (r *AssignmentRepository) Update(ctx context.Context, id string, patch domain.AssignmentUpdate) error {
	changes := map[string]any{}
	if patch.UserID != nil {
		changes["user_id"] = *patch.UserID
	}
	if patch.Status != nil {
		changes["status"] = string(*patch.Status)
	}
	if patch.AmountPledged != nil {
		changes["amount_pledged"] = *patch.AmountPledged
	}
	if patch.AmountActual != nil {
		changes["amount_actual"] = *patch.AmountActual
	}
	if patch.BundleNames != nil {
		// Map-based updates bypass the column serializer, so store the
		// JSON text the serializer would have written.
		encoded, err := json.Marshal(*patch.BundleNames)
		if err != nil {
			return fmt.Errorf("json.Marshal -> %w", err)
		}
		changes["bundle_names"] = string(encoded)
	}
	if patch.LogoReady != nil {
		changes["logo_ready"] = *patch.LogoReady
	}
	if patch.CashReady != nil {
		changes["cash_ready"] = *patch.CashReady
	}
	if patch.TicketsReady != nil {
		changes["tickets_ready"] = *patch.TicketsReady
	}
	if patch.Notes != nil {
		changes["notes"] = *patch.Notes
	}
	if patch.CompletedAt != nil {
		changes["completed_at"] = *patch.CompletedAt
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

// Unassign keeps the row but rejects it and wipes the work fields, the
// same soft-delete the admin dashboard always did.
func (r *AssignmentRepository) Unassign(ctx context.Context, id string) error {
	err := r.dao.Update(ctx, id, map[string]any{
		"status":         string(domain.StatusRejected),
		"user_id":        "",
		"amount_pledged": float64(0),
		"amount_actual":  nil,
		"bundle_names":   nil,
		"logo_ready":     false,
		"cash_ready":     false,
		"tickets_ready":  false,
		"notes":          "",
	})
	if err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

// ResetProgress puts the assignment back to freshly-assigned: progress
// fields cleared, completion timestamp dropped.
func (r *AssignmentRepository) ResetProgress(ctx context.Context, id string) error {
	err := r.dao.Update(ctx, id, map[string]any{
		"status":         string(domain.StatusAssigned),
		"amount_pledged": float64(0),
		"amount_actual":  nil,
		"bundle_names":   nil,
		"logo_ready":     false,
		"cash_ready":     false,
		"tickets_ready":  false,
		"notes":          "",
		"completed_at":   nil,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *AssignmentRepository) daoToDomain(a dao.Assignment) domain.Assignment {
	return domain.Assignment{
		ID:            a.ID,
		SponsorID:     a.SponsorID,
		UserID:        a.UserID,
		Status:        domain.AssignmentStatus(a.Status),
		AssignedAt:    a.AssignedAt,
		AmountPledged: a.AmountPledged,
		AmountActual:  a.AmountActual,
		BundleNames:   a.BundleNames,
		LogoReady:     a.LogoReady,
		CashReady:     a.CashReady,
		TicketsReady:  a.TicketsReady,
		Notes:         a.Notes,
		CompletedAt:   a.CompletedAt,
	}
}

func (r *AssignmentRepository) daosToDomain(found []dao.Assignment) []domain.Assignment {
	assignments := make([]domain.Assignment, 0, len(found))
	for _, a := range found {
		assignments = append(assignments, r.daoToDomain(a))
	}

	return assignments
}
