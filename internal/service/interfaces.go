package service

import (
	"context"
	"time"

	"github.com/sofiaherrero/vinculo/internal/alerting"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/editor"
)

type CaseService interface {
	Create(ctx context.Context, c *domain.Case) error
	// GetAggregate loads the case with all child collections; private notes
	// are limited to the given viewer.
	GetAggregate(ctx context.Context, id, viewerID string) (*domain.Case, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.Case, error)
	Update(ctx context.Context, c *domain.Case) error
	SetStatus(ctx context.Context, id string, status domain.CaseStatus) error
	AssignProfessional(ctx context.Context, caseID, professionalID string) error
	UnassignProfessional(ctx context.Context, caseID, professionalID string) error
	AddNote(ctx context.Context, caseID, authorID, text string) error
	AddFamilyMember(ctx context.Context, m *domain.FamilyMember) error
	// Delete removes the case and all child records in one transaction.
	Delete(ctx context.Context, id string) error
}

// InterventionService persists interventions and doubles as the editor's
// persistence collaborator.
type InterventionService interface {
	editor.Persister

	GetByID(ctx context.Context, id string) (*domain.Intervention, error)
	ListByCase(ctx context.Context, caseID string) ([]*domain.Intervention, error)
	ListGeneral(ctx context.Context) ([]*domain.Intervention, error)
	// Notebook returns a case's registered interventions only.
	Notebook(ctx context.Context, caseID string) ([]*domain.Intervention, error)
	ChangeStatus(ctx context.Context, id string, to domain.InterventionStatus, now time.Time) error
}

type TaskService interface {
	Add(ctx context.Context, t *domain.Task) error
	Toggle(ctx context.Context, id string, now time.Time) error
	ListByCase(ctx context.Context, caseID string) ([]*domain.Task, error)
	// Convert proposes an intervention seed from a task; the task itself is
	// left untouched.
	Convert(ctx context.Context, taskID string) (editor.Seed, error)
}

// OverviewService computes the cross-case dashboards by loading a fresh
// snapshot on every call and delegating to the alerting functions.
type OverviewService interface {
	Agenda(ctx context.Context, now time.Time) ([]*domain.Intervention, error)
	Expired(ctx context.Context, now time.Time) ([]*domain.Intervention, error)
	TeamGaps(ctx context.Context) ([]alerting.TeamGap, error)
	StatusBreakdown(ctx context.Context) ([]alerting.Group, error)
	CEASBreakdown(ctx context.Context) ([]alerting.Group, error)
}
