package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
)

type CreateBundleRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (req *CreateBundleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.Price, validation.Min(0.0)),
	)
}

func (req *CreateBundleRequest) ToBundle() domain.Bundle {
	return domain.Bundle{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
}

type UpdateBundleRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func (req *UpdateBundleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Length(2, 50)),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.Price, validation.Min(0.0)),
	)
}

func (req *UpdateBundleRequest) ToUpdate() domain.BundleUpdate {
	return domain.BundleUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
}
