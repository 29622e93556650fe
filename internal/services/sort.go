package services

import (
	"sort"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"
)

// salaryRankAsc orders the salary bands cheapest first. OTHER ranks after
// every concrete band, and a missing value ranks after OTHER in both sort
// modes.
var salaryRankAsc = map[models.ExpectedSalary]int{
	models.Salary400600:   1,
	models.Salary700900:   2,
	models.Salary10001500: 3,
	models.Salary15002000: 4,
	models.SalaryOther:    5,
}

const salaryRankMissing = 6

func salaryRank(app *models.Application, mode string) int {
	if app.ExpectedSalary == nil {
		return salaryRankMissing
	}
	rank, ok := salaryRankAsc[*app.ExpectedSalary]
	if !ok {
		return salaryRankMissing
	}
	if mode == dto.SalarySortHighest && rank < salaryRankMissing {
		// Invert the band order while keeping OTHER just before missing.
		if rank == salaryRankAsc[models.SalaryOther] {
			return rank
		}
		return salaryRankAsc[models.SalaryOther] - rank
	}
	return rank
}

var statusRank = func() map[models.ApplicationStatus]int {
	ranks := make(map[models.ApplicationStatus]int, len(models.ApplicationStatuses))
	for i, s := range models.ApplicationStatuses {
		ranks[s] = i
	}
	return ranks
}()

// SortApplications orders the triage list in place: expected salary when a
// sort mode is set, then status (PENDING first), then newest application
// first.
func SortApplications(apps []*models.Application, salaryMode string) {
	bySalary := salaryMode == dto.SalarySortLowest || salaryMode == dto.SalarySortHighest

	sort.SliceStable(apps, func(i, j int) bool {
		a, b := apps[i], apps[j]

		if bySalary {
			ra, rb := salaryRank(a, salaryMode), salaryRank(b, salaryMode)
			if ra != rb {
				return ra < rb
			}
		}

		sa, sb := statusRank[a.Status], statusRank[b.Status]
		if sa != sb {
			return sa < sb
		}

		return a.AppliedAt.After(b.AppliedAt)
	})
}
