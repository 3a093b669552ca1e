package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/repository"
	"github.com/sofiaherrero/vinculo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCaseService(t *testing.T) (CaseService, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	svc := NewCaseService(
		repository.NewSQLiteCaseRepo(database),
		repository.NewSQLiteInterventionRepo(database),
		repository.NewSQLiteTaskRepo(database),
		repository.NewSQLiteNoteRepo(database),
		repository.NewSQLiteFamilyRepo(database),
		testutil.NewTestUoW(database),
	)
	return svc, database
}

func TestCaseService_CreateDefaults(t *testing.T) {
	svc, _ := setupCaseService(t)
	ctx := context.Background()

	c := &domain.Case{Name: "Familia Ruiz"}
	require.NoError(t, svc.Create(ctx, c))
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.CasePendingReferral, c.Status)
}

func TestCaseService_CreateRequiresName(t *testing.T) {
	svc, _ := setupCaseService(t)
	require.Error(t, svc.Create(context.Background(), &domain.Case{}))
}

func TestCaseService_GetAggregateLoadsChildren(t *testing.T) {
	svc, database := setupCaseService(t)
	ctx := context.Background()
	ivs := repository.NewSQLiteInterventionRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)

	c := &domain.Case{Name: "Familia Ruiz"}
	require.NoError(t, svc.Create(ctx, c))
	require.NoError(t, ivs.Create(ctx, testutil.NewTestIntervention("Visita", testutil.WithCaseID(c.ID))))
	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(c.ID, "llamar")))
	require.NoError(t, svc.AddNote(ctx, c.ID, "me", "nota mía"))
	require.NoError(t, svc.AddNote(ctx, c.ID, "other", "nota ajena"))
	require.NoError(t, svc.AddFamilyMember(ctx, &domain.FamilyMember{CaseID: c.ID, Name: "Lucía", Relationship: "hija"}))

	got, err := svc.GetAggregate(ctx, c.ID, "me")
	require.NoError(t, err)
	assert.Len(t, got.Interventions, 1)
	assert.Len(t, got.Tasks, 1)
	assert.Len(t, got.FamilyGrid, 1)
	require.Len(t, got.MyNotes, 1, "only the viewer's own notes are loaded")
	assert.Equal(t, "nota mía", got.MyNotes[0].Text)
}

func TestCaseService_SetStatusAdvisoryJumps(t *testing.T) {
	svc, _ := setupCaseService(t)
	ctx := context.Background()

	c := &domain.Case{Name: "Fam"}
	require.NoError(t, svc.Create(ctx, c))

	// Straight from referral to closed: permitted, the workflow does not
	// gate transitions.
	require.NoError(t, svc.SetStatus(ctx, c.ID, domain.CaseClosed))
	require.Error(t, svc.SetStatus(ctx, c.ID, "reopened"), "unknown value rejected")
}

func TestCaseService_DeleteRemovesAggregate(t *testing.T) {
	svc, database := setupCaseService(t)
	ctx := context.Background()
	ivs := repository.NewSQLiteInterventionRepo(database)

	c := &domain.Case{Name: "Fam"}
	require.NoError(t, svc.Create(ctx, c))
	require.NoError(t, ivs.Create(ctx, testutil.NewTestIntervention("Visita", testutil.WithCaseID(c.ID))))

	require.NoError(t, svc.Delete(ctx, c.ID))

	_, err := svc.GetAggregate(ctx, c.ID, "")
	require.Error(t, err)
	left, err := ivs.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}
