package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/repository"
)

type interventionService struct {
	interventions repository.InterventionRepo
}

func NewInterventionService(interventions repository.InterventionRepo) InterventionService {
	return &interventionService{interventions: interventions}
}

// SaveIntervention creates or updates depending on whether the ID is known
// to the store. This is the editor's persistence collaborator; concurrent
// saves on the same intervention resolve last-write-wins at the store.
func (s *interventionService) SaveIntervention(ctx context.Context, iv *domain.Intervention) error {
	if err := iv.Validate(); err != nil {
		return err
	}
	if iv.ID == "" {
		iv.ID = uuid.New().String()
	}
	if _, err := s.interventions.GetByID(ctx, iv.ID); err != nil {
		return s.interventions.Create(ctx, iv)
	}
	return s.interventions.Update(ctx, iv)
}

func (s *interventionService) DeleteIntervention(ctx context.Context, iv *domain.Intervention) error {
	return s.interventions.Delete(ctx, iv.ID)
}

func (s *interventionService) GetByID(ctx context.Context, id string) (*domain.Intervention, error) {
	return s.interventions.GetByID(ctx, id)
}

func (s *interventionService) ListByCase(ctx context.Context, caseID string) ([]*domain.Intervention, error) {
	return s.interventions.ListByCase(ctx, caseID)
}

func (s *interventionService) ListGeneral(ctx context.Context) ([]*domain.Intervention, error) {
	return s.interventions.ListGeneral(ctx)
}

// Notebook is the field-notebook view: registered interventions only. The
// registered invariant guarantees every entry is case-scoped.
func (s *interventionService) Notebook(ctx context.Context, caseID string) ([]*domain.Intervention, error) {
	ivs, err := s.interventions.ListByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	var registered []*domain.Intervention
	for _, iv := range ivs {
		if iv.Registered {
			registered = append(registered, iv)
		}
	}
	return registered, nil
}

// ChangeStatus applies the quick status-change control: load, transition
// (stamping the first cancellation time), store.
func (s *interventionService) ChangeStatus(ctx context.Context, id string, to domain.InterventionStatus, now time.Time) error {
	iv, err := s.interventions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := iv.ChangeStatus(to, now); err != nil {
		return err
	}
	if err := s.interventions.Update(ctx, iv); err != nil {
		return fmt.Errorf("storing status change: %w", err)
	}
	return nil
}
