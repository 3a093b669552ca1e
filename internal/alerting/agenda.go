package alerting

import (
	"sort"
	"time"

	"github.com/sofiaherrero/vinculo/internal/domain"
)

// TodayAgenda returns the interventions, case-scoped or general, whose
// start falls on now's calendar day (in now's location) and that were
// created by userID, ascending by start. The agenda is strictly personal:
// every professional, whatever their role, sees only their own items.
func TodayAgenda(snap *Snapshot, userID string, now time.Time) []*domain.Intervention {
	var items []*domain.Intervention
	snap.allInterventions(func(iv *domain.Intervention) {
		if iv.CreatedBy != userID {
			return
		}
		if sameDay(iv.Start, now) {
			items = append(items, iv)
		}
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start.Before(items[j].Start)
	})
	return items
}

// sameDay reports whether t falls on ref's calendar day, evaluated in
// ref's location so the caseworker's local day is what counts.
func sameDay(t, ref time.Time) bool {
	y1, m1, d1 := t.In(ref.Location()).Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
