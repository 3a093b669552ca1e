package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_RoundTripWithAssignees(t *testing.T) {
	database := testutil.NewTestDB(t)
	cases := NewSQLiteCaseRepo(database)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	c := testutil.NewTestCase("Fam")
	require.NoError(t, cases.Create(ctx, c))

	task := testutil.NewTestTask(c.ID, "Llamar a familia")
	task.AssignedTo = []string{"pro-1", "pro-2"}
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Llamar a familia", got.Text)
	assert.False(t, got.Completed)
	assert.Equal(t, []string{"pro-1", "pro-2"}, got.AssignedTo)
}

func TestTaskRepo_UpdateToggle(t *testing.T) {
	database := testutil.NewTestDB(t)
	cases := NewSQLiteCaseRepo(database)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	c := testutil.NewTestCase("Fam")
	require.NoError(t, cases.Create(ctx, c))
	task := testutil.NewTestTask(c.ID, "Informe")
	require.NoError(t, repo.Create(ctx, task))

	task.Toggle(time.Now().UTC())
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestNoteRepo_PrivateToAuthor(t *testing.T) {
	database := testutil.NewTestDB(t)
	cases := NewSQLiteCaseRepo(database)
	repo := NewSQLiteNoteRepo(database)
	ctx := context.Background()

	c := testutil.NewTestCase("Fam")
	require.NoError(t, cases.Create(ctx, c))

	now := time.Now().UTC()
	mine := &domain.Note{ID: uuid.New().String(), CaseID: c.ID, AuthorID: "me", Text: "privada", CreatedAt: now}
	theirs := &domain.Note{ID: uuid.New().String(), CaseID: c.ID, AuthorID: "other", Text: "ajena", CreatedAt: now}
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, theirs))

	got, err := repo.ListByAuthor(ctx, c.ID, "me")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "privada", got[0].Text)
}

func TestFamilyRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	cases := NewSQLiteCaseRepo(database)
	repo := NewSQLiteFamilyRepo(database)
	ctx := context.Background()

	c := testutil.NewTestCase("Fam")
	require.NoError(t, cases.Create(ctx, c))

	birth := time.Date(2012, 3, 4, 0, 0, 0, 0, time.UTC)
	m := &domain.FamilyMember{ID: uuid.New().String(), CaseID: c.ID, Name: "Lucía", Relationship: "hija", BirthDate: &birth}
	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hija", got[0].Relationship)
	require.NotNil(t, got[0].BirthDate)
	assert.Equal(t, birth, *got[0].BirthDate)
}

func TestProfileRepo_SetAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(database)
	ctx := context.Background()

	_, err := repo.CurrentUserID(ctx)
	require.Error(t, err, "unset profile should error")

	require.NoError(t, repo.SetCurrentUserID(ctx, "pro-1"))
	require.NoError(t, repo.SetCurrentUserID(ctx, "pro-2"))

	id, err := repo.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pro-2", id)
}
