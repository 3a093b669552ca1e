package editor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sofiaherrero/vinculo/internal/domain"
)

// Persister is the persistence collaborator the editor saves through. Save
// and delete are fire-by-the-caller operations; on failure the in-memory
// draft is retained for manual retry.
type Persister interface {
	SaveIntervention(ctx context.Context, iv *domain.Intervention) error
	DeleteIntervention(ctx context.Context, iv *domain.Intervention) error
}

// Seed is the initial state handed to a new editor: a blank draft, an
// existing intervention being edited, or a task-conversion proposal.
type Seed struct {
	ID         string
	CaseID     string
	Title      string
	Type       domain.InterventionType
	Start      time.Time
	End        time.Time
	IsAllDay   bool
	Notes      string
	Status     domain.InterventionStatus
	Registered bool
	CreatedBy  string
}

// Editor produces a validated intervention from user input while preserving
// temporal consistency. It is a plain state machine: all methods execute
// synchronously, and nothing is persisted until Save.
type Editor struct {
	draft domain.Intervention
	isNew bool

	// wasRegistered is the notebook state when editing began; unchecking it
	// is a visible data loss and goes through the confirmation gate.
	wasRegistered bool

	deleteConfirmed bool
	gate            *gate
}

// New derives the editor's initial state from seed. A seed without a case
// defaults to the general-category type, a case-scoped seed to the case
// type. Missing instants default to start = now, end = start + 1h.
func New(seed Seed, now time.Time) *Editor {
	draft := domain.Intervention{
		ID:         seed.ID,
		CaseID:     seed.CaseID,
		Title:      seed.Title,
		Type:       seed.Type,
		Start:      seed.Start,
		End:        seed.End,
		IsAllDay:   seed.IsAllDay,
		Notes:      seed.Notes,
		Status:     seed.Status,
		Registered: seed.Registered,
		CreatedBy:  seed.CreatedBy,
	}
	if draft.Type == "" {
		if draft.CaseID == "" {
			draft.Type = domain.DefaultGeneralType
		} else {
			draft.Type = domain.DefaultCaseType
		}
	}
	if draft.Start.IsZero() {
		draft.Start = now.Truncate(time.Minute)
	}
	if draft.End.IsZero() {
		draft.End = draft.Start.Add(time.Hour)
	}
	if draft.Status == "" {
		draft.Status = domain.InterventionPlanned
	}
	return &Editor{
		draft:         draft,
		isNew:         seed.ID == "",
		wasRegistered: seed.Registered,
		gate:          newGate(),
	}
}

// Draft returns a copy of the current draft.
func (e *Editor) Draft() domain.Intervention {
	return e.draft
}

// IsNew reports whether Save will create rather than update.
func (e *Editor) IsNew() bool {
	return e.isNew
}

func (e *Editor) SetTitle(title string) {
	e.draft.Title = title
}

// SetCase reattaches the draft to a case. Clearing the case silently forces
// the registered flag off; no confirmation is involved on this path.
func (e *Editor) SetCase(caseID string) {
	e.draft.SetCase(caseID)
}

func (e *Editor) SetType(t domain.InterventionType) {
	e.draft.Type = t
}

func (e *Editor) SetAllDay(v bool) {
	e.draft.IsAllDay = v
}

func (e *Editor) SetNotes(notes string) {
	e.draft.Notes = notes
}

// SetStatus applies the status transition, stamping the cancellation time
// when entering Cancelled for the first time.
func (e *Editor) SetStatus(to domain.InterventionStatus, now time.Time) error {
	return e.draft.ChangeStatus(to, now)
}

// SetStart shifts the start instant, moving the end by the same delta so
// the draft's duration is preserved.
func (e *Editor) SetStart(start time.Time) {
	e.draft.ShiftStart(start)
}

// SetEnd moves the end instant. An inverted range is left in place and
// reported by Validate, never silently corrected.
func (e *Editor) SetEnd(end time.Time) {
	e.draft.End = end
}

// SetRegistered changes notebook membership. Checking is unconditional and
// applies immediately (returned ok is false). Unchecking a draft that was
// already registered when editing began returns a pending token; the change
// applies only when the token is confirmed.
func (e *Editor) SetRegistered(v bool) (Token, bool) {
	if v || !e.wasRegistered || !e.draft.Registered {
		e.draft.Registered = v
		return "", false
	}
	tok := e.gate.propose(func() {
		e.draft.Registered = false
	})
	return tok, true
}

// ProposeDelete stages removal of the intervention behind a confirmation
// token. Only after Confirm does Delete perform the persistence call.
func (e *Editor) ProposeDelete() Token {
	return e.gate.propose(func() {
		e.deleteConfirmed = true
	})
}

// Confirm applies the mutation behind tok. It fires at most once; a second
// confirm of the same token returns false.
func (e *Editor) Confirm(tok Token) bool {
	return e.gate.confirm(tok)
}

// Cancel discards the mutation behind tok; the prior state stands.
func (e *Editor) Cancel(tok Token) {
	e.gate.cancel(tok)
}

// Validate checks the draft. Errors are field-scoped and recomputed from
// the current state, so a corrected field clears its error on the next call.
func (e *Editor) Validate() ValidationErrors {
	var errs ValidationErrors
	if e.draft.Title == "" {
		errs = append(errs, ValidationError{Field: FieldTitle, Message: "title must not be empty"})
	}
	if e.draft.End.Before(e.draft.Start) {
		errs = append(errs, ValidationError{Field: FieldDateRange, Message: "end must not be before start"})
	}
	return errs
}

// Save validates the draft and emits a create (no ID yet) or update to the
// persistence collaborator. On persistence failure the draft is retained
// unchanged so the caseworker can retry.
func (e *Editor) Save(ctx context.Context, p Persister, now time.Time) error {
	if errs := e.Validate(); len(errs) > 0 {
		return errs
	}
	// Registered-without-case cannot be produced through the setters, but
	// seeds come from outside; re-check the invariant before persisting.
	if err := e.draft.Validate(); err != nil {
		return err
	}

	saved := e.draft
	if e.isNew {
		saved.ID = uuid.New().String()
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now

	if err := p.SaveIntervention(ctx, &saved); err != nil {
		return fmt.Errorf("saving intervention: %w", err)
	}
	e.draft = saved
	e.isNew = false
	e.wasRegistered = saved.Registered
	return nil
}

// Delete removes the intervention through the persistence collaborator. It
// refuses to run unless a proposed delete was confirmed.
func (e *Editor) Delete(ctx context.Context, p Persister) error {
	if !e.deleteConfirmed {
		return fmt.Errorf("delete has not been confirmed")
	}
	if err := p.DeleteIntervention(ctx, &e.draft); err != nil {
		return fmt.Errorf("deleting intervention: %w", err)
	}
	return nil
}
