package service

import (
	"sort"
	"strings"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
)

// Sponsor list filters. Status values mirror the admin dashboard tabs.
const (
	FilterStatusAll         = "all"
	FilterStatusAssigned    = "assigned"
	FilterStatusUnassigned  = "unassigned"
	FilterStatusCompleted   = "completed"
	FilterStatusUncompleted = "uncompleted"
)

// SponsorFilter selects sponsors by the state of their active assignment,
// owning user, bundle membership and free-text search. Zero values mean
// "no constraint".
type SponsorFilter struct {
	Status string
	UserID string
	Bundle string
	Search string
}

// activeAssignmentFor finds the sponsor's first non-rejected assignment.
func activeAssignmentFor(assignments []domain.Assignment, sponsorID string) (domain.Assignment, bool) {
	for _, a := range assignments {
		if a.SponsorID == sponsorID && a.IsActive() {
			return a, true
		}
	}

	return domain.Assignment{}, false
}

// filterSponsors applies all criteria conjunctively, in a fixed order:
// status, owning user, bundle membership, free-text search.
func filterSponsors(sponsors []domain.Sponsor, assignments []domain.Assignment, filter SponsorFilter) []domain.Sponsor {
	result := sponsors

	switch filter.Status {
	case "", FilterStatusAll:
	case FilterStatusAssigned:
		result = keepSponsors(result, func(s domain.Sponsor) bool {
			_, ok := activeAssignmentFor(assignments, s.ID)
			return ok
		})
	case FilterStatusUnassigned:
		result = keepSponsors(result, func(s domain.Sponsor) bool {
			_, ok := activeAssignmentFor(assignments, s.ID)
			return !ok
		})
	case FilterStatusCompleted:
		result = keepSponsors(result, func(s domain.Sponsor) bool {
			a, ok := activeAssignmentFor(assignments, s.ID)
			return ok && a.Status == domain.StatusCompleted
		})
	case FilterStatusUncompleted:
		result = keepSponsors(result, func(s domain.Sponsor) bool {
			a, ok := activeAssignmentFor(assignments, s.ID)
			return ok && a.Status != domain.StatusCompleted
		})
	}

	if filter.UserID != "" {
		result = keepSponsors(result, func(s domain.Sponsor) bool {
			a, ok := activeAssignmentFor(assignments, s.ID)
			return ok && a.UserID == filter.UserID
		})
	}

	// Bundle membership looks at every assignment of the sponsor,
	// rejected ones included: once a bundle name is recorded it stays
	// part of the sponsor's history.
	if filter.Bundle != "" {
		result = keepSponsors(result, func(s domain.Sponsor) bool {
			for _, a := range assignments {
				if a.SponsorID != s.ID {
					continue
				}
				for _, name := range a.BundleNames {
					if name == filter.Bundle {
						return true
					}
				}
			}
			return false
		})
	}

	if q := strings.TrimSpace(filter.Search); q != "" {
		q = strings.ToLower(q)
		result = keepSponsors(result, func(s domain.Sponsor) bool {
			return strings.Contains(strings.ToLower(s.Name), q) ||
				strings.Contains(strings.ToLower(s.ContactPerson), q) ||
				strings.Contains(strings.ToLower(s.Email), q)
		})
	}

	return result
}

func keepSponsors(sponsors []domain.Sponsor, keep func(domain.Sponsor) bool) []domain.Sponsor {
	kept := make([]domain.Sponsor, 0, len(sponsors))
	for _, s := range sponsors {
		if keep(s) {
			kept = append(kept, s)
		}
	}

	return kept
}

func computeOverview(sponsors []domain.Sponsor, assignments []domain.Assignment) domain.OverviewStats {
	stats := domain.OverviewStats{
		TotalSponsors: len(sponsors),
	}

	for _, s := range sponsors {
		stats.TotalTargetAmount += s.TargetAmount
	}

	for _, a := range assignments {
		switch a.Status {
		case domain.StatusCompleted:
			stats.CompletedSponsors++
			stats.TotalRaisedAmount += a.RealizedAmount()
		case domain.StatusInProgress:
			stats.InProgressSponsors++
		}
		if a.IsActive() {
			stats.AssignedSponsors++
		}
	}

	stats.UnassignedSponsors = stats.TotalSponsors - stats.AssignedSponsors

	return stats
}

func computeUserStats(users []domain.User, assignments []domain.Assignment) []domain.UserStats {
	stats := make([]domain.UserStats, 0, len(users))

	for _, user := range users {
		if user.Role != domain.RoleMember {
			continue
		}

		row := domain.UserStats{User: user}
		for _, a := range assignments {
			if a.UserID != user.ID || !a.IsActive() {
				continue
			}

			row.TotalAssigned++
			switch a.Status {
			case domain.StatusCompleted:
				row.CompletedCount++
				row.TotalRaised += a.RealizedAmount()
			case domain.StatusInProgress:
				row.InProgressCount++
			}
		}

		if row.TotalAssigned > 0 {
			row.CompletionRate = int(float64(row.CompletedCount)/float64(row.TotalAssigned)*100 + 0.5)
		}

		stats = append(stats, row)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].CompletedCount > stats[j].CompletedCount
	})

	return stats
}
