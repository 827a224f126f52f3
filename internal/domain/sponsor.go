package domain

import "time"

type Sponsor struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Description   string    `json:"description"`
	TargetAmount  float64   `json:"target_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

type SponsorUpdate struct {
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	Description   *string
	TargetAmount  *float64
}
