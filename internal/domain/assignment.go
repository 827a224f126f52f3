package domain

import "time"

type AssignmentStatus string

const (
	StatusAssigned   AssignmentStatus = "assigned"
	StatusInProgress AssignmentStatus = "in_progress"
	StatusCompleted  AssignmentStatus = "completed"
	StatusRejected   AssignmentStatus = "rejected"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case StatusAssigned, StatusInProgress, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Assignment links one sponsor to the user responsible for it during a
// sponsorship cycle. Unassigned rows are kept with status "rejected"
// rather than deleted, so ids are never reused.
type Assignment struct {
	ID            string           `json:"id"`
	SponsorID     string           `json:"sponsor_id"`
	UserID        string           `json:"user_id"`
	Status        AssignmentStatus `json:"status"`
	AssignedAt    time.Time        `json:"assigned_at"`
	AmountPledged float64          `json:"amount_pledged"`
	AmountActual  *float64         `json:"amount_actual,omitempty"`
	BundleNames   []string         `json:"bundle_names,omitempty"`
	LogoReady     bool             `json:"logo_ready"`
	CashReady     bool             `json:"cash_ready"`
	TicketsReady  bool             `json:"tickets_ready"`
	Notes         string           `json:"notes,omitempty"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
}

// IsActive reports whether the assignment still counts for its sponsor.
func (a Assignment) IsActive() bool {
	return a.Status != StatusRejected
}

// RealizedAmount is the amount that actually came in: the actual amount
// when recorded, the pledge otherwise.
func (a Assignment) RealizedAmount() float64 {
	if a.AmountActual != nil {
		return *a.AmountActual
	}
	return a.AmountPledged
}

// AssignmentUpdate is a merge-patch: nil fields are left untouched.
// Nullable columns can only be overwritten through a patch, never
// cleared back to null; clearing happens via Unassign and ResetProgress.
type AssignmentUpdate struct {
	UserID        *string
	Status        *AssignmentStatus
	AmountPledged *float64
	AmountActual  *float64
	BundleNames   *[]string
	LogoReady     *bool
	CashReady     *bool
	TicketsReady  *bool
	Notes         *string
	CompletedAt   *time.Time
}
