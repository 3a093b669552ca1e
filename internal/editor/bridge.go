package editor

import (
	"fmt"

	"github.com/sofiaherrero/vinculo/internal/domain"
)

// SeedFromTask converts a completed task into a pre-filled intervention
// seed for the notebook: registered, already completed, attached to the
// task's case. The task itself is neither mutated nor deleted; conversion
// only proposes a new intervention.
func SeedFromTask(task *domain.Task) (Seed, error) {
	if task.CaseID == "" {
		return Seed{}, fmt.Errorf("only case tasks can be converted to an intervention")
	}
	return Seed{
		CaseID:     task.CaseID,
		Title:      "Tarea: " + task.Text,
		Type:       domain.DefaultAccompanimentType,
		Notes:      fmt.Sprintf("Registro generado a partir de la tarea: %q", task.Text),
		Status:     domain.InterventionCompleted,
		Registered: true,
	}, nil
}
