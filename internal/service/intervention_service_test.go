package service

import (
	"context"
	"testing"
	"time"

	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/editor"
	"github.com/sofiaherrero/vinculo/internal/repository"
	"github.com/sofiaherrero/vinculo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 9, 10, 11, 0, 0, 0, time.UTC)

func TestInterventionService_SaveCreatesThenUpdates(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewInterventionService(repository.NewSQLiteInterventionRepo(database))
	ctx := context.Background()

	iv := testutil.NewTestIntervention("Llamada")
	require.NoError(t, svc.SaveIntervention(ctx, iv))

	iv.Title = "Llamada de seguimiento"
	require.NoError(t, svc.SaveIntervention(ctx, iv))

	got, err := svc.GetByID(ctx, iv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Llamada de seguimiento", got.Title)

	all, err := svc.ListGeneral(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "second save must update, not duplicate")
}

func TestInterventionService_SaveRejectsInvariantViolation(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewInterventionService(repository.NewSQLiteInterventionRepo(database))

	iv := testutil.NewTestIntervention("Visita", testutil.WithRegistered())
	err := svc.SaveIntervention(context.Background(), iv)
	require.Error(t, err, "registered without a case must not reach the store")
}

func TestInterventionService_NotebookFiltersRegistered(t *testing.T) {
	database := testutil.NewTestDB(t)
	cases := repository.NewSQLiteCaseRepo(database)
	svc := NewInterventionService(repository.NewSQLiteInterventionRepo(database))
	ctx := context.Background()

	c := testutil.NewTestCase("Fam")
	require.NoError(t, cases.Create(ctx, c))
	require.NoError(t, svc.SaveIntervention(ctx, testutil.NewTestIntervention("registrada", testutil.WithCaseID(c.ID), testutil.WithRegistered())))
	require.NoError(t, svc.SaveIntervention(ctx, testutil.NewTestIntervention("sin registrar", testutil.WithCaseID(c.ID))))

	notebook, err := svc.Notebook(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, notebook, 1)
	assert.Equal(t, "registrada", notebook[0].Title)
}

func TestInterventionService_ChangeStatusStampsCancellation(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewInterventionService(repository.NewSQLiteInterventionRepo(database))
	ctx := context.Background()

	iv := testutil.NewTestIntervention("Visita")
	require.NoError(t, svc.SaveIntervention(ctx, iv))

	require.NoError(t, svc.ChangeStatus(ctx, iv.ID, domain.InterventionCancelled, testNow))
	got, err := svc.GetByID(ctx, iv.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CancellationTime)
	first := got.CancellationTime.UTC()

	// Cancelling again keeps the first timestamp.
	require.NoError(t, svc.ChangeStatus(ctx, iv.ID, domain.InterventionCancelled, testNow.Add(time.Hour)))
	got, err = svc.GetByID(ctx, iv.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got.CancellationTime.UTC())
}

func TestEditor_SavesThroughService(t *testing.T) {
	database := testutil.NewTestDB(t)
	cases := repository.NewSQLiteCaseRepo(database)
	svc := NewInterventionService(repository.NewSQLiteInterventionRepo(database))
	ctx := context.Background()

	c := testutil.NewTestCase("Fam")
	require.NoError(t, cases.Create(ctx, c))

	e := editor.New(editor.Seed{CaseID: c.ID, Title: "Entrevista", CreatedBy: "pro-1"}, testNow)
	_, pending := e.SetRegistered(true)
	require.False(t, pending)
	require.NoError(t, e.Save(ctx, svc, testNow))

	notebook, err := svc.Notebook(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, notebook, 1)
	assert.Equal(t, "Entrevista", notebook[0].Title)
}
