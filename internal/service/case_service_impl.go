package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sofiaherrero/vinculo/internal/db"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/repository"
)

type caseService struct {
	cases         repository.CaseRepo
	interventions repository.InterventionRepo
	tasks         repository.TaskRepo
	notes         repository.NoteRepo
	family        repository.FamilyRepo
	uow           db.UnitOfWork
}

func NewCaseService(
	cases repository.CaseRepo,
	interventions repository.InterventionRepo,
	tasks repository.TaskRepo,
	notes repository.NoteRepo,
	family repository.FamilyRepo,
	uow db.UnitOfWork,
) CaseService {
	return &caseService{
		cases:         cases,
		interventions: interventions,
		tasks:         tasks,
		notes:         notes,
		family:        family,
		uow:           uow,
	}
}

func (s *caseService) Create(ctx context.Context, c *domain.Case) error {
	if c.Name == "" {
		return fmt.Errorf("case name is required")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = domain.CasePendingReferral
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.cases.Create(ctx, c)
}

func (s *caseService) GetAggregate(ctx context.Context, id, viewerID string) (*domain.Case, error) {
	c, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Interventions, err = s.interventions.ListByCase(ctx, id); err != nil {
		return nil, err
	}
	if c.Tasks, err = s.tasks.ListByCase(ctx, id); err != nil {
		return nil, err
	}
	if c.FamilyGrid, err = s.family.ListByCase(ctx, id); err != nil {
		return nil, err
	}
	if viewerID != "" {
		if c.MyNotes, err = s.notes.ListByAuthor(ctx, id, viewerID); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (s *caseService) List(ctx context.Context, includeClosed bool) ([]*domain.Case, error) {
	return s.cases.List(ctx, includeClosed)
}

func (s *caseService) Update(ctx context.Context, c *domain.Case) error {
	c.UpdatedAt = time.Now().UTC()
	return s.cases.Update(ctx, c)
}

func (s *caseService) SetStatus(ctx context.Context, id string, status domain.CaseStatus) error {
	// The workflow is advisory: any jump between stages is accepted, only
	// unknown values are rejected.
	if !domain.ValidCaseStatuses[string(status)] {
		return fmt.Errorf("unknown case status %q", status)
	}
	return s.cases.SetStatus(ctx, id, status)
}

func (s *caseService) AssignProfessional(ctx context.Context, caseID, professionalID string) error {
	return s.cases.AssignProfessional(ctx, caseID, professionalID)
}

func (s *caseService) UnassignProfessional(ctx context.Context, caseID, professionalID string) error {
	return s.cases.UnassignProfessional(ctx, caseID, professionalID)
}

func (s *caseService) AddNote(ctx context.Context, caseID, authorID, text string) error {
	if text == "" {
		return fmt.Errorf("note text is required")
	}
	return s.notes.Create(ctx, &domain.Note{
		ID:        uuid.New().String(),
		CaseID:    caseID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *caseService) AddFamilyMember(ctx context.Context, m *domain.FamilyMember) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Name == "" {
		return fmt.Errorf("family member name is required")
	}
	return s.family.Create(ctx, m)
}

// Delete removes the case and its child records in a single transaction so
// a half-deleted aggregate can never be observed.
func (s *caseService) Delete(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txIvs := repository.NewSQLiteInterventionRepo(tx)
		ivs, err := txIvs.ListByCase(ctx, id)
		if err != nil {
			return err
		}
		for _, iv := range ivs {
			if err := txIvs.Delete(ctx, iv.ID); err != nil {
				return err
			}
		}
		return repository.NewSQLiteCaseRepo(tx).Delete(ctx, id)
	})
}
