package repository

import (
	"context"
	"testing"
	"time"

	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterventionRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	cases := NewSQLiteCaseRepo(database)
	repo := NewSQLiteInterventionRepo(database)
	ctx := context.Background()

	c := testutil.NewTestCase("Fam")
	require.NoError(t, cases.Create(ctx, c))

	iv := testutil.NewTestIntervention("Visita domiciliaria",
		testutil.WithCaseID(c.ID),
		testutil.WithType(domain.TypeHomeVisit),
		testutil.WithRegistered(),
		testutil.WithCreatedBy("pro-1"),
	)
	iv.Notes = "Primera visita"
	require.NoError(t, repo.Create(ctx, iv))

	got, err := repo.GetByID(ctx, iv.ID)
	require.NoError(t, err)
	assert.Equal(t, iv.Title, got.Title)
	assert.Equal(t, c.ID, got.CaseID)
	assert.Equal(t, domain.TypeHomeVisit, got.Type)
	assert.True(t, got.Registered)
	assert.Equal(t, "pro-1", got.CreatedBy)
	assert.Equal(t, iv.Start.UTC(), got.Start.UTC())
	assert.Equal(t, time.Hour, got.Duration())
	assert.Nil(t, got.CancellationTime)
}

func TestInterventionRepo_GeneralHasNullCase(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteInterventionRepo(database)
	ctx := context.Background()

	general := testutil.NewTestIntervention("Coordinación CEAS", testutil.WithType(domain.TypeCoordination))
	require.NoError(t, repo.Create(ctx, general))

	got, err := repo.ListGeneral(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].General())
}

func TestInterventionRepo_UpdatePersistsCancellation(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteInterventionRepo(database)
	ctx := context.Background()

	iv := testutil.NewTestIntervention("Llamada")
	require.NoError(t, repo.Create(ctx, iv))

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, iv.ChangeStatus(domain.InterventionCancelled, now))
	require.NoError(t, repo.Update(ctx, iv))

	got, err := repo.GetByID(ctx, iv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InterventionCancelled, got.Status)
	require.NotNil(t, got.CancellationTime)
	assert.Equal(t, now, got.CancellationTime.UTC())
}

func TestInterventionRepo_ListByCaseOrderedByStart(t *testing.T) {
	database := testutil.NewTestDB(t)
	cases := NewSQLiteCaseRepo(database)
	repo := NewSQLiteInterventionRepo(database)
	ctx := context.Background()

	c := testutil.NewTestCase("Fam")
	require.NoError(t, cases.Create(ctx, c))

	base := time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)
	late := testutil.NewTestIntervention("Tarde", testutil.WithCaseID(c.ID), testutil.WithStart(base.Add(4*time.Hour)))
	early := testutil.NewTestIntervention("Mañana", testutil.WithCaseID(c.ID), testutil.WithStart(base))
	require.NoError(t, repo.Create(ctx, late))
	require.NoError(t, repo.Create(ctx, early))

	got, err := repo.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mañana", got[0].Title)
	assert.Equal(t, "Tarde", got[1].Title)
}

func TestInterventionRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteInterventionRepo(database)
	ctx := context.Background()

	iv := testutil.NewTestIntervention("Llamada")
	require.NoError(t, repo.Create(ctx, iv))
	require.NoError(t, repo.Delete(ctx, iv.ID))

	_, err := repo.GetByID(ctx, iv.ID)
	require.Error(t, err)
}
