package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/editor"
	"github.com/sofiaherrero/vinculo/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Add(ctx context.Context, t *domain.Task) error {
	if t.Text == "" {
		return fmt.Errorf("task text is required")
	}
	if t.CaseID == "" {
		return fmt.Errorf("task must belong to a case")
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) Toggle(ctx context.Context, id string, now time.Time) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.Toggle(now)
	return s.tasks.Update(ctx, t)
}

func (s *taskService) ListByCase(ctx context.Context, caseID string) ([]*domain.Task, error) {
	return s.tasks.ListByCase(ctx, caseID)
}

// Convert proposes a notebook intervention for the task. The seed is handed
// to the editor; the task stays in place whatever the caseworker decides.
func (s *taskService) Convert(ctx context.Context, taskID string) (editor.Seed, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return editor.Seed{}, err
	}
	return editor.SeedFromTask(t)
}
