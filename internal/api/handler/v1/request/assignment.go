package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/service"
)

type AssignSponsorRequest struct {
	UserID        string   `json:"user_id"`
	AmountPledged float64  `json:"amount_pledged"`
	AmountActual  *float64 `json:"amount_actual"`
	LogoReady     bool     `json:"logo_ready"`
	CashReady     bool     `json:"cash_ready"`
	TicketsReady  bool     `json:"tickets_ready"`
	Notes         string   `json:"notes"`
}

func (req *AssignSponsorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.AmountPledged, validation.Min(0.0)),
		validation.Field(&req.AmountActual, validation.Min(0.0)),
		validation.Field(&req.Notes, validation.Length(0, 500)),
	)
}

func (req *AssignSponsorRequest) ToParams() service.AssignParams {
	return service.AssignParams{
		AmountPledged: req.AmountPledged,
		AmountActual:  req.AmountActual,
		LogoReady:     req.LogoReady,
		CashReady:     req.CashReady,
		TicketsReady:  req.TicketsReady,
		Notes:         req.Notes,
	}
}

type UpdateAssignmentRequest struct {
	UserID        *string    `json:"user_id"`
	Status        *string    `json:"status"`
	AmountPledged *float64   `json:"amount_pledged"`
	AmountActual  *float64   `json:"amount_actual"`
	BundleNames   *[]string  `json:"bundle_names"`
	LogoReady     *bool      `json:"logo_ready"`
	CashReady     *bool      `json:"cash_ready"`
	TicketsReady  *bool      `json:"tickets_ready"`
	Notes         *string    `json:"notes"`
	CompletedAt   *time.Time `json:"completed_at"`
}

func (req *UpdateAssignmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.In(
			string(domain.StatusAssigned),
			string(domain.StatusInProgress),
			string(domain.StatusCompleted),
			string(domain.StatusRejected),
		)),
		validation.Field(&req.AmountPledged, validation.Min(0.0)),
		validation.Field(&req.AmountActual, validation.Min(0.0)),
		validation.Field(&req.Notes, validation.Length(0, 500)),
	)
}

func (req *UpdateAssignmentRequest) ToUpdate() domain.AssignmentUpdate {
	patch := domain.AssignmentUpdate{
		UserID:        req.UserID,
		AmountPledged: req.AmountPledged,
		AmountActual:  req.AmountActual,
		BundleNames:   req.BundleNames,
		LogoReady:     req.LogoReady,
		CashReady:     req.CashReady,
		TicketsReady:  req.TicketsReady,
		Notes:         req.Notes,
		CompletedAt:   req.CompletedAt,
	}
	if req.Status != nil {
		status := domain.AssignmentStatus(*req.Status)
		patch.Status = &status
	}

	return patch
}

type CompleteAssignmentRequest struct {
	AmountPledged float64    `json:"amount_pledged"`
	BundleNames   []string   `json:"bundle_names"`
	LogoReady     bool       `json:"logo_ready"`
	CashReady     bool       `json:"cash_ready"`
	TicketsReady  bool       `json:"tickets_ready"`
	Notes         string     `json:"notes"`
	CompletedAt   *time.Time `json:"completed_at"`
}

func (req *CompleteAssignmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AmountPledged, validation.Min(0.0)),
		validation.Field(&req.Notes, validation.Length(0, 500)),
	)
}

func (req *CompleteAssignmentRequest) ToParams() service.CompleteParams {
	return service.CompleteParams{
		AmountPledged: req.AmountPledged,
		BundleNames:   req.BundleNames,
		LogoReady:     req.LogoReady,
		CashReady:     req.CashReady,
		TicketsReady:  req.TicketsReady,
		Notes:         req.Notes,
		CompletedAt:   req.CompletedAt,
	}
}
