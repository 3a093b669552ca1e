package domain

import (
	"fmt"
	"time"
)

// Intervention is a scheduled or logged event (visit, call, meeting...),
// optionally tied to a case. CaseID == "" means a general intervention that
// belongs to the professional's own agenda rather than a case file.
type Intervention struct {
	ID               string
	CaseID           string
	Title            string
	Type             InterventionType
	Start            time.Time
	End              time.Time
	IsAllDay         bool
	Notes            string
	Status           InterventionStatus
	CancellationTime *time.Time
	Registered       bool
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// General reports whether the intervention is not tied to any case.
func (iv *Intervention) General() bool {
	return iv.CaseID == ""
}

// Duration returns End - Start.
func (iv *Intervention) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Validate checks the entity-level invariants. Registered interventions must
// be tied to a case (only case interventions appear in the field notebook),
// and the time range must not be inverted. End == Start is accepted.
func (iv *Intervention) Validate() error {
	if iv.Registered && iv.CaseID == "" {
		return fmt.Errorf("a registered intervention must be tied to a case")
	}
	if !iv.End.IsZero() && iv.End.Before(iv.Start) {
		return fmt.Errorf("end must not be before start")
	}
	if !ValidInterventionType(iv.Type) {
		return fmt.Errorf("unknown intervention type %q", iv.Type)
	}
	return nil
}

// ChangeStatus moves the intervention to the given status. Any transition
// between the three states is legal; there is no terminal state. Entering
// Cancelled from a non-Cancelled state stamps CancellationTime; cancelling
// an already-cancelled intervention keeps the first cancellation time.
func (iv *Intervention) ChangeStatus(to InterventionStatus, now time.Time) error {
	if !ValidInterventionStatuses[string(to)] {
		return fmt.Errorf("unknown intervention status %q", to)
	}
	if to == InterventionCancelled && iv.Status != InterventionCancelled {
		t := now
		iv.CancellationTime = &t
	}
	iv.Status = to
	iv.UpdatedAt = now
	return nil
}

// ShiftStart moves Start to newStart preserving the draft's duration: End
// moves by the same delta. An intervention without an End gets newStart + 1h.
func (iv *Intervention) ShiftStart(newStart time.Time) {
	if iv.End.IsZero() {
		iv.Start = newStart
		iv.End = newStart.Add(time.Hour)
		return
	}
	d := iv.End.Sub(iv.Start)
	iv.Start = newStart
	iv.End = newStart.Add(d)
}

// SetCase reattaches the intervention to a case. Clearing the case forces
// Registered off, since a case-less intervention cannot stay in the notebook.
func (iv *Intervention) SetCase(caseID string) {
	iv.CaseID = caseID
	if caseID == "" {
		iv.Registered = false
	}
}
