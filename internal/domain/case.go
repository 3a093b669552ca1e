package domain

import "time"

// Case is a tracked individual or family record progressing through the
// intervention workflow. The child collections are loaded together when the
// full aggregate is needed (inspect, alerting snapshot) and empty otherwise.
type Case struct {
	ID              string
	Name            string
	Nickname        string
	Status          CaseStatus
	Address         string
	ProfessionalIDs []string

	Interventions []*Intervention
	Tasks         []*Task
	FamilyGrid    []*FamilyMember
	MyNotes       []*Note

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether the case still counts toward workload aggregates.
func (c *Case) Active() bool {
	return c.Status != CaseClosed
}

// DisplayName prefers the nickname when one is set.
func (c *Case) DisplayName() string {
	if c.Nickname != "" {
		return c.Nickname
	}
	return c.Name
}

// DefaultView returns the screen a caseworker most likely wants when opening
// a case in the given stage. Early stages open on the file, working stages
// on the notebook, closed cases on the summary.
func (c *Case) DefaultView() string {
	switch c.Status {
	case CasePendingReferral, CaseWelcome:
		return "file"
	case CaseCoDiagnosis, CaseSharedPlanning:
		return "plan"
	case CaseAccompaniment, CaseFollowUp:
		return "notebook"
	case CaseClosed:
		return "summary"
	default:
		return "file"
	}
}

// FamilyMember is one row of a case's family grid.
type FamilyMember struct {
	ID           string
	CaseID       string
	Name         string
	Relationship string
	BirthDate    *time.Time
}

// Note is a private annotation on a case, visible only to its author.
type Note struct {
	ID        string
	CaseID    string
	AuthorID  string
	Text      string
	CreatedAt time.Time
}
