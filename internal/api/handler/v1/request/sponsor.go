package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
)

type CreateSponsorRequest struct {
	Name          string  `json:"name"`
	ContactPerson string  `json:"contact_person"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Description   string  `json:"description"`
	TargetAmount  float64 `json:"target_amount"`
}

func (req *CreateSponsorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.TargetAmount, validation.Min(0.0)),
	)
}

func (req *CreateSponsorRequest) ToSponsor() domain.Sponsor {
	return domain.Sponsor{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
	}
}

type UpdateSponsorRequest struct {
	Name          *string  `json:"name"`
	ContactPerson *string  `json:"contact_person"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	Address       *string  `json:"address"`
	Description   *string  `json:"description"`
	TargetAmount  *float64 `json:"target_amount"`
}

func (req *UpdateSponsorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Length(2, 100)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.TargetAmount, validation.Min(0.0)),
	)
}

func (req *UpdateSponsorRequest) ToUpdate() domain.SponsorUpdate {
	return domain.SponsorUpdate{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
	}
}
