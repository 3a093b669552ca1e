package alerting

import (
	"sort"

	"github.com/sofiaherrero/vinculo/internal/domain"
)

// UnassignedCEAS is the bucket for active cases whose assigned social
// worker has no CEAS, or that have no assigned social worker at all.
const UnassignedCEAS = "Unassigned"

// Group is one bucket of a workload breakdown. Pct is the bucket's share
// of the active (non-closed) case total.
type Group struct {
	Key   string
	Count int
	Pct   float64
}

// ByStatus groups active cases by workflow stage, descending by count.
// Ties keep first-encountered order.
func ByStatus(snap *Snapshot) []Group {
	return groupCases(snap, func(c *domain.Case) string {
		return string(c.Status)
	})
}

// ByCEAS groups active cases by the CEAS of their assigned social worker.
// Cases with no social worker, or whose worker has no CEAS, fall into the
// explicit Unassigned bucket rather than being dropped.
func ByCEAS(snap *Snapshot) []Group {
	directory := snap.professionalByID()
	return groupCases(snap, func(c *domain.Case) string {
		for _, id := range c.ProfessionalIDs {
			p, ok := directory[id]
			if !ok || p.Role != domain.RoleSocialWorker {
				continue
			}
			if p.CEAS != "" {
				return p.CEAS
			}
		}
		return UnassignedCEAS
	})
}

func groupCases(snap *Snapshot, keyOf func(*domain.Case) string) []Group {
	counts := make(map[string]int)
	var order []string
	var total int
	for _, c := range snap.Cases {
		if !c.Active() {
			continue
		}
		total++
		key := keyOf(c)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		g := Group{Key: key, Count: counts[key]}
		if total > 0 {
			g.Pct = float64(g.Count) / float64(total) * 100
		}
		groups = append(groups, g)
	}
	// Stable sort keeps first-encountered order among equal counts.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return groups
}
