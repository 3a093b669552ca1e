package repository

import (
	"context"

	"github.com/sofiaherrero/vinculo/internal/domain"
)

type CaseRepo interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.Case, error)
	Update(ctx context.Context, c *domain.Case) error
	SetStatus(ctx context.Context, id string, status domain.CaseStatus) error
	AssignProfessional(ctx context.Context, caseID, professionalID string) error
	UnassignProfessional(ctx context.Context, caseID, professionalID string) error
	ListProfessionalIDs(ctx context.Context, caseID string) ([]string, error)
	Delete(ctx context.Context, id string) error
}

type InterventionRepo interface {
	Create(ctx context.Context, iv *domain.Intervention) error
	GetByID(ctx context.Context, id string) (*domain.Intervention, error)
	ListByCase(ctx context.Context, caseID string) ([]*domain.Intervention, error)
	// ListGeneral returns interventions not tied to any case.
	ListGeneral(ctx context.Context) ([]*domain.Intervention, error)
	ListAll(ctx context.Context) ([]*domain.Intervention, error)
	Update(ctx context.Context, iv *domain.Intervention) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByCase(ctx context.Context, caseID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type NoteRepo interface {
	Create(ctx context.Context, n *domain.Note) error
	ListByCase(ctx context.Context, caseID string) ([]*domain.Note, error)
	ListByAuthor(ctx context.Context, caseID, authorID string) ([]*domain.Note, error)
	Delete(ctx context.Context, id string) error
}

type FamilyRepo interface {
	Create(ctx context.Context, m *domain.FamilyMember) error
	ListByCase(ctx context.Context, caseID string) ([]*domain.FamilyMember, error)
	Delete(ctx context.Context, id string) error
}

// ProfessionalRepo is the read-mostly professional directory. Upsert exists
// so the directory can be seeded and kept in sync from the outside.
type ProfessionalRepo interface {
	Upsert(ctx context.Context, p *domain.Professional) error
	GetByID(ctx context.Context, id string) (*domain.Professional, error)
	List(ctx context.Context) ([]*domain.Professional, error)
}

// ProfileRepo stores the identity the CLI acts as (current user).
type ProfileRepo interface {
	CurrentUserID(ctx context.Context) (string, error)
	SetCurrentUserID(ctx context.Context, professionalID string) error
}
