package alerting

import (
	"sort"
	"time"

	"github.com/sofiaherrero/vinculo/internal/domain"
)

// ExpiryGrace is how long a planned intervention may sit past its start
// before it counts as expired. Deliberately 25 hours rather than a
// calendar-day check: an action planned for yesterday morning is flagged,
// one planned exactly a day ago still gets its grace hour.
const ExpiryGrace = 25 * time.Hour

// ExpiredActions returns the planned interventions whose start is older
// than now minus ExpiryGrace, ascending by start (oldest first).
func ExpiredActions(snap *Snapshot, now time.Time) []*domain.Intervention {
	cutoff := now.Add(-ExpiryGrace)
	var expired []*domain.Intervention
	snap.allInterventions(func(iv *domain.Intervention) {
		if iv.Status != domain.InterventionPlanned {
			return
		}
		if iv.Start.Before(cutoff) {
			expired = append(expired, iv)
		}
	})
	sort.SliceStable(expired, func(i, j int) bool {
		return expired[i].Start.Before(expired[j].Start)
	})
	return expired
}
