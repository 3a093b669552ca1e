package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/sofiaherrero/vinculo/internal/domain"
)

// Case options

type CaseOption func(*domain.Case)

func WithCaseStatus(s domain.CaseStatus) CaseOption {
	return func(c *domain.Case) {
		c.Status = s
	}
}

func WithNickname(n string) CaseOption {
	return func(c *domain.Case) {
		c.Nickname = n
	}
}

func NewTestCase(name string, opts ...CaseOption) *domain.Case {
	now := time.Now().UTC()
	c := &domain.Case{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.CaseAccompaniment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Intervention options

type InterventionOption func(*domain.Intervention)

func WithCaseID(id string) InterventionOption {
	return func(iv *domain.Intervention) {
		iv.CaseID = id
	}
}

func WithStart(t time.Time) InterventionOption {
	return func(iv *domain.Intervention) {
		iv.End = t.Add(iv.End.Sub(iv.Start))
		iv.Start = t
	}
}

func WithInterventionStatus(s domain.InterventionStatus) InterventionOption {
	return func(iv *domain.Intervention) {
		iv.Status = s
	}
}

func WithType(ty domain.InterventionType) InterventionOption {
	return func(iv *domain.Intervention) {
		iv.Type = ty
	}
}

func WithCreatedBy(id string) InterventionOption {
	return func(iv *domain.Intervention) {
		iv.CreatedBy = id
	}
}

func WithRegistered() InterventionOption {
	return func(iv *domain.Intervention) {
		iv.Registered = true
	}
}

func NewTestIntervention(title string, opts ...InterventionOption) *domain.Intervention {
	now := time.Now().UTC().Truncate(time.Second)
	iv := &domain.Intervention{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      domain.TypeInterview,
		Start:     now,
		End:       now.Add(time.Hour),
		Status:    domain.InterventionPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(iv)
	}
	return iv
}

// Professional options

type ProfessionalOption func(*domain.Professional)

func WithRole(r domain.Role) ProfessionalOption {
	return func(p *domain.Professional) {
		p.Role = r
	}
}

func WithCEAS(ceas string) ProfessionalOption {
	return func(p *domain.Professional) {
		p.CEAS = ceas
	}
}

func NewTestProfessional(name string, opts ...ProfessionalOption) *domain.Professional {
	p := &domain.Professional{
		ID:   uuid.New().String(),
		Name: name,
		Role: domain.RoleSocialWorker,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestTask builds a case-scoped task.
func NewTestTask(caseID, text string) *domain.Task {
	now := time.Now().UTC()
	return &domain.Task{
		ID:        uuid.New().String(),
		CaseID:    caseID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
