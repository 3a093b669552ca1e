package alerting

import "github.com/sofiaherrero/vinculo/internal/domain"

// TeamGap flags a non-closed case whose assigned team is incomplete. Both
// roles may be missing at once. A complete-team case produces no TeamGap.
type TeamGap struct {
	Case              *domain.Case
	MissingSocial     bool
	MissingTechnician bool
}

// TeamGaps scans every non-closed case for an assigned SocialWorker and an
// assigned EdisTechnician, flagging whichever is absent. Closed cases are
// never flagged, even with no professionals at all. Assigned IDs missing
// from the directory count as no professional.
func TeamGaps(snap *Snapshot) []TeamGap {
	directory := snap.professionalByID()
	var gaps []TeamGap
	for _, c := range snap.Cases {
		if !c.Active() {
			continue
		}
		var hasSocial, hasTechnician bool
		for _, id := range c.ProfessionalIDs {
			p, ok := directory[id]
			if !ok {
				continue
			}
			switch p.Role {
			case domain.RoleSocialWorker:
				hasSocial = true
			case domain.RoleEdisTechnician:
				hasTechnician = true
			}
		}
		if hasSocial && hasTechnician {
			continue
		}
		gaps = append(gaps, TeamGap{
			Case:              c,
			MissingSocial:     !hasSocial,
			MissingTechnician: !hasTechnician,
		})
	}
	return gaps
}
