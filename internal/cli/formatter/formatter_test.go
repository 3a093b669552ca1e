package formatter

import (
	"testing"
	"time"

	"github.com/sofiaherrero/vinculo/internal/alerting"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHumanDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"yesterday", now.AddDate(0, 0, -1), "Yesterday"},
		{"tomorrow", now.AddDate(0, 0, 1), "Tomorrow"},
		{"far past", time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), "Sep 30, 2022"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanDate(tt.input, now))
		})
	}
}

func TestTimeRange(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "Mar 10, 2026 09:30–10:30", TimeRange(start, start.Add(time.Hour), false))
	assert.Equal(t, "Mar 10, 2026 (all day)", TimeRange(start, start.Add(time.Hour), true))
	assert.Contains(t, TimeRange(start, start.Add(48*time.Hour), false), "Mar 12, 2026")
}

func TestCaseStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending referral", CaseStatusLabel(domain.CasePendingReferral))
	assert.Equal(t, "Co-diagnosis", CaseStatusLabel(domain.CaseCoDiagnosis))
	assert.Equal(t, "Closed", CaseStatusLabel(domain.CaseClosed))
	// Unknown values fall through verbatim.
	assert.Equal(t, "weird", CaseStatusLabel(domain.CaseStatus("weird")))
}

func TestFormatCaseList(t *testing.T) {
	cases := []*domain.Case{
		{ID: "11111111-aaaa", Name: "Familia García", Status: domain.CaseAccompaniment},
		{ID: "22222222-bbbb", Name: "Expediente 7", Nickname: "E7", Status: domain.CaseClosed,
			ProfessionalIDs: []string{"p1", "p2"}},
	}

	out := FormatCaseList(cases)
	assert.Contains(t, out, "Familia García")
	assert.Contains(t, out, "E7")
	assert.Contains(t, out, "Accompaniment")
	assert.Contains(t, out, "2 assigned")
	assert.NotContains(t, out, "Expediente 7") // nickname wins in the list
}

func TestFormatCaseDetailSections(t *testing.T) {
	birth := time.Date(2014, 5, 1, 0, 0, 0, 0, time.UTC)
	c := &domain.Case{
		ID:     "33333333-cccc",
		Name:   "Familia Ruiz",
		Status: domain.CaseFollowUp,
		Interventions: []*domain.Intervention{
			{Title: "Visita inicial", Status: domain.InterventionCompleted, Registered: true,
				Start: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)},
			{Title: "Borrador", Status: domain.InterventionPlanned, Registered: false},
		},
		Tasks: []*domain.Task{
			{ID: "t1", Text: "Llamar al colegio", Completed: true},
		},
		FamilyGrid: []*domain.FamilyMember{
			{Name: "Lucía", Relationship: "daughter", BirthDate: &birth},
		},
		MyNotes: []*domain.Note{
			{Text: "Revisar beca comedor", CreatedAt: time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)},
		},
	}

	out := FormatCaseDetail(c)
	assert.Contains(t, out, "Visita inicial")
	// Unregistered interventions stay out of the notebook section.
	assert.NotContains(t, out, "Borrador")
	assert.Contains(t, out, "Llamar al colegio")
	assert.Contains(t, out, "Lucía")
	assert.Contains(t, out, "daughter")
	assert.Contains(t, out, "Revisar beca comedor")
}

func TestFormatInterventionList(t *testing.T) {
	ivs := []*domain.Intervention{
		{ID: "44444444", Title: "Visita", Type: domain.TypeHomeVisit,
			Status: domain.InterventionPlanned, Registered: true,
			Start: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)},
	}

	out := FormatInterventionList(ivs)
	assert.Contains(t, out, "Visita")
	assert.Contains(t, out, "home_visit")
	assert.Contains(t, out, "Planned")

	assert.Equal(t, "No interventions.", FormatInterventionList(nil))
}

func TestFormatTaskList(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "aaaaaaaa-1", Text: "pending one"},
		{ID: "bbbbbbbb-2", Text: "done one", Completed: true, AssignedTo: []string{"p1"}},
	}

	out := FormatTaskList(tasks)
	assert.Contains(t, out, "[ ] pending one")
	assert.Contains(t, out, "[x] done one")
	assert.Contains(t, out, "(1 assigned)")
}

func TestFormatAgendaEmpty(t *testing.T) {
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	out := FormatAgenda(nil, now)
	assert.Contains(t, out, "Nothing scheduled")
}

func TestFormatTeamGaps(t *testing.T) {
	gaps := []alerting.TeamGap{
		{Case: &domain.Case{Name: "Familia Sol"}, MissingSocial: true, MissingTechnician: true},
		{Case: &domain.Case{Name: "Familia Mar"}, MissingTechnician: true},
	}

	out := FormatTeamGaps(gaps)
	assert.Contains(t, out, "Familia Sol")
	assert.Contains(t, out, "missing social worker and EDIS technician")
	assert.Contains(t, out, "missing EDIS technician")

	assert.Contains(t, FormatTeamGaps(nil), "complete team")
}

func TestFormatBreakdown(t *testing.T) {
	groups := []alerting.Group{
		{Key: "accompaniment", Count: 3, Pct: 75},
		{Key: "welcome", Count: 1, Pct: 25},
	}

	out := FormatBreakdown("By stage", groups, func(k string) string {
		return CaseStatusLabel(domain.CaseStatus(k))
	})
	assert.Contains(t, out, "Accompaniment")
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "Welcome")

	assert.Equal(t, "No active cases.", FormatBreakdown("By stage", nil, nil))
}
