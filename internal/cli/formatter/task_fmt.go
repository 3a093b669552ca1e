package formatter

import (
	"fmt"
	"strings"

	"github.com/sofiaherrero/vinculo/internal/domain"
)

// FormatTaskList renders a case's tasks as a checklist.
func FormatTaskList(tasks []*domain.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, taskLine(t))
	}
	return strings.Join(lines, "\n")
}

func taskLine(t *domain.Task) string {
	box := StyleBlue.Render("[ ]")
	text := StyleFg.Render(t.Text)
	if t.Completed {
		box = StyleGreen.Render("[x]")
		text = Dim(t.Text)
	}
	line := fmt.Sprintf("%s %s %s", box, text, TruncID(t.ID))
	if len(t.AssignedTo) > 0 {
		line += Dim(fmt.Sprintf(" (%d assigned)", len(t.AssignedTo)))
	}
	return line
}
