package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func pinClock(t *testing.T) {
	t.Helper()
	prev := Now
	Now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { Now = prev })
}

func focusField(m *editorModel, field int) {
	for m.focus != field {
		m.Update(key("tab"))
	}
}

func TestEditorModelCycleType(t *testing.T) {
	pinClock(t)
	m := newEditorModel(&App{}, editor.Seed{Title: "Visita", CaseID: "c1"})

	require.Equal(t, domain.DefaultCaseType, m.ed.Draft().Type)
	focusField(m, fieldType)
	m.Update(key("right"))
	assert.NotEqual(t, domain.DefaultCaseType, m.ed.Draft().Type)
}

func TestEditorModelDeregistrationNeedsConfirm(t *testing.T) {
	pinClock(t)
	m := newEditorModel(&App{}, editor.Seed{Title: "Visita", CaseID: "c1", Registered: true})

	focusField(m, fieldRegistered)
	m.Update(key("space"))

	// Still registered until the prompt is answered.
	assert.True(t, m.ed.Draft().Registered)
	assert.NotEmpty(t, m.pendingToken)
	assert.Contains(t, m.View(), "(y/n)")

	m.Update(key("y"))
	assert.False(t, m.ed.Draft().Registered)
	assert.Empty(t, m.pendingToken)
}

func TestEditorModelDeclineKeepsRegistered(t *testing.T) {
	pinClock(t)
	m := newEditorModel(&App{}, editor.Seed{Title: "Visita", CaseID: "c1", Registered: true})

	focusField(m, fieldRegistered)
	m.Update(key("space"))
	m.Update(key("n"))

	assert.True(t, m.ed.Draft().Registered)
	assert.Empty(t, m.pendingToken)
}

func TestEditorModelRegisterWithoutCaseRefused(t *testing.T) {
	pinClock(t)
	m := newEditorModel(&App{}, editor.Seed{Title: "Formación"})

	focusField(m, fieldRegistered)
	m.Update(key("space"))

	assert.False(t, m.ed.Draft().Registered)
	assert.Contains(t, m.message, "notebook")
}

func TestEditorModelEmptyTitleBlocksSave(t *testing.T) {
	pinClock(t)
	m := newEditorModel(&App{}, editor.Seed{CaseID: "c1"})
	m.inputs[fieldTitle].SetValue("")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.False(t, m.done)
	assert.True(t, strings.Contains(m.View(), "title must not be empty"))
}
