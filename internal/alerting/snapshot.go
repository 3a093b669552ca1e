package alerting

import "github.com/sofiaherrero/vinculo/internal/domain"

// Snapshot is the full state the alerting functions compute over: every
// case with its interventions loaded, the case-less general interventions,
// and the professional directory. All functions in this package are pure
// relative to a given snapshot and total: empty input yields empty output,
// never an error. Recomputation is linear in case-set size and performed on
// every read; no cache is kept.
type Snapshot struct {
	Cases         []*domain.Case
	General       []*domain.Intervention
	Professionals []*domain.Professional
}

// professionalByID builds a directory lookup. Unknown IDs stay absent.
func (s *Snapshot) professionalByID() map[string]*domain.Professional {
	m := make(map[string]*domain.Professional, len(s.Professionals))
	for _, p := range s.Professionals {
		m[p.ID] = p
	}
	return m
}

// allInterventions walks case-scoped and general interventions.
func (s *Snapshot) allInterventions(fn func(iv *domain.Intervention)) {
	for _, c := range s.Cases {
		for _, iv := range c.Interventions {
			fn(iv)
		}
	}
	for _, iv := range s.General {
		fn(iv)
	}
}
