package domain

// UserStats is one row of the per-user performance table.
type UserStats struct {
	User            User    `json:"user"`
	TotalAssigned   int     `json:"total_assigned"`
	CompletedCount  int     `json:"completed_count"`
	InProgressCount int     `json:"in_progress_count"`
	TotalRaised     float64 `json:"total_raised"`
	CompletionRate  int     `json:"completion_rate"`
}

// OverviewStats are the global dashboard totals.
type OverviewStats struct {
	TotalSponsors      int     `json:"total_sponsors"`
	AssignedSponsors   int     `json:"assigned_sponsors"`
	CompletedSponsors  int     `json:"completed_sponsors"`
	InProgressSponsors int     `json:"in_progress_sponsors"`
	UnassignedSponsors int     `json:"unassigned_sponsors"`
	TotalTargetAmount  float64 `json:"total_target_amount"`
	TotalRaisedAmount  float64 `json:"total_raised_amount"`
}
