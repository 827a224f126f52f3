package response

type ResetAssignmentsResponse struct {
	ResetCount int `json:"reset_count"`
}
