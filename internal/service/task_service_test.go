package service

import (
	"context"
	"testing"

	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/editor"
	"github.com/sofiaherrero/vinculo/internal/repository"
	"github.com/sofiaherrero/vinculo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_AddAndToggle(t *testing.T) {
	database := testutil.NewTestDB(t)
	cases := repository.NewSQLiteCaseRepo(database)
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database))
	ctx := context.Background()

	c := testutil.NewTestCase("Fam")
	require.NoError(t, cases.Create(ctx, c))

	task := &domain.Task{CaseID: c.ID, Text: "Llamar a familia"}
	require.NoError(t, svc.Add(ctx, task))

	require.NoError(t, svc.Toggle(ctx, task.ID, testNow))
	list, err := svc.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Completed)
}

func TestTaskService_AddRequiresCase(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database))
	require.Error(t, svc.Add(context.Background(), &domain.Task{Text: "suelta"}))
}

func TestTaskService_ConvertProposesSeedLeavingTaskIntact(t *testing.T) {
	database := testutil.NewTestDB(t)
	cases := repository.NewSQLiteCaseRepo(database)
	tasks := NewTaskService(repository.NewSQLiteTaskRepo(database))
	ivs := NewInterventionService(repository.NewSQLiteInterventionRepo(database))
	ctx := context.Background()

	c := testutil.NewTestCase("Fam")
	require.NoError(t, cases.Create(ctx, c))
	task := &domain.Task{CaseID: c.ID, Text: "Llamar a familia"}
	require.NoError(t, tasks.Add(ctx, task))
	require.NoError(t, tasks.Toggle(ctx, task.ID, testNow))

	seed, err := tasks.Convert(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tarea: Llamar a familia", seed.Title)
	assert.Equal(t, domain.InterventionCompleted, seed.Status)
	assert.True(t, seed.Registered)
	assert.Equal(t, c.ID, seed.CaseID)

	// Complete the proposal through the editor: a new notebook entry
	// appears and the task stays where it was.
	e := editor.New(seed, testNow)
	require.NoError(t, e.Save(ctx, ivs, testNow))

	notebook, err := ivs.Notebook(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, notebook, 1)
	assert.Equal(t, domain.InterventionCompleted, notebook[0].Status)

	left, err := tasks.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.True(t, left[0].Completed, "source task neither mutated nor deleted")
}
