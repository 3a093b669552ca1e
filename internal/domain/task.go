package domain

import "time"

// Task is a lightweight to-do attached to a case, assignable to one or more
// professionals.
type Task struct {
	ID         string
	CaseID     string
	Text       string
	Completed  bool
	AssignedTo []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Toggle flips the completion flag.
func (t *Task) Toggle(now time.Time) {
	t.Completed = !t.Completed
	t.UpdatedAt = now
}

// AssignedToProfessional reports whether id is among the task's assignees.
func (t *Task) AssignedToProfessional(id string) bool {
	for _, a := range t.AssignedTo {
		if a == id {
			return true
		}
	}
	return false
}
