package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sofiaherrero/vinculo/internal/alerting"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/repository"
)

type overviewService struct {
	cases         repository.CaseRepo
	interventions repository.InterventionRepo
	professionals repository.ProfessionalRepo
	profile       repository.ProfileRepo
}

func NewOverviewService(
	cases repository.CaseRepo,
	interventions repository.InterventionRepo,
	professionals repository.ProfessionalRepo,
	profile repository.ProfileRepo,
) OverviewService {
	return &overviewService{
		cases:         cases,
		interventions: interventions,
		professionals: professionals,
		profile:       profile,
	}
}

// loadSnapshot assembles the full case set plus general interventions. It
// runs on every overview read; the cost is linear in case-set size, which
// stays cheap at the scale a single team works at.
func (s *overviewService) loadSnapshot(ctx context.Context) (*alerting.Snapshot, error) {
	cases, err := s.cases.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("loading cases: %w", err)
	}
	for _, c := range cases {
		if c.Interventions, err = s.interventions.ListByCase(ctx, c.ID); err != nil {
			return nil, fmt.Errorf("loading case interventions: %w", err)
		}
	}
	general, err := s.interventions.ListGeneral(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading general interventions: %w", err)
	}
	pros, err := s.professionals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading professionals: %w", err)
	}
	return &alerting.Snapshot{
		Cases:         cases,
		General:       general,
		Professionals: pros,
	}, nil
}

func (s *overviewService) Agenda(ctx context.Context, now time.Time) ([]*domain.Intervention, error) {
	userID, err := s.profile.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return alerting.TodayAgenda(snap, userID, now), nil
}

func (s *overviewService) Expired(ctx context.Context, now time.Time) ([]*domain.Intervention, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return alerting.ExpiredActions(snap, now), nil
}

func (s *overviewService) TeamGaps(ctx context.Context) ([]alerting.TeamGap, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return alerting.TeamGaps(snap), nil
}

func (s *overviewService) StatusBreakdown(ctx context.Context) ([]alerting.Group, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return alerting.ByStatus(snap), nil
}

func (s *overviewService) CEASBreakdown(ctx context.Context) ([]alerting.Group, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return alerting.ByCEAS(snap), nil
}
