package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sofiaherrero/vinculo/internal/cli/formatter"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/editor"
)

// Field order in the editor form.
const (
	fieldTitle = iota
	fieldStart
	fieldEnd
	fieldNotes
	fieldType
	fieldStatus
	fieldAllDay
	fieldRegistered
	fieldCount
)

var typeOptions = []domain.InterventionType{
	domain.TypeHomeVisit,
	domain.TypeInterview,
	domain.TypeCall,
	domain.TypeAccompaniment,
	domain.TypeFamilyMeeting,
	domain.TypeCoordination,
	domain.TypeTraining,
	domain.TypePaperwork,
}

var statusOptions = []domain.InterventionStatus{
	domain.InterventionPlanned,
	domain.InterventionCompleted,
	domain.InterventionCancelled,
}

// editorModel is the interactive intervention form. It owns an editor state
// machine and pushes every field change into it, so validation and the
// de-registration gate behave exactly as in the non-interactive paths.
type editorModel struct {
	app *App
	ed  *editor.Editor

	inputs [4]textinput.Model // title, start, end, notes
	focus  int

	// pendingToken is set while a de-registration waits on the gate; the
	// model switches to a yes/no prompt until it is resolved.
	pendingToken  editor.Token
	pendingPrompt string

	errs    editor.ValidationErrors
	message string
	saveErr error
	done    bool
}

func newEditorModel(app *App, seed editor.Seed) *editorModel {
	ed := editor.New(seed, Now())
	draft := ed.Draft()

	m := &editorModel{app: app, ed: ed}

	title := textinput.New()
	title.Placeholder = "Title"
	title.SetValue(draft.Title)
	title.Focus()

	start := textinput.New()
	start.Placeholder = instantLayout
	start.SetValue(draft.Start.Format(instantLayout))

	end := textinput.New()
	end.Placeholder = instantLayout
	if !draft.End.IsZero() {
		end.SetValue(draft.End.Format(instantLayout))
	}

	notes := textinput.New()
	notes.Placeholder = "Notes"
	notes.SetValue(draft.Notes)

	m.inputs = [4]textinput.Model{title, start, end, notes}
	return m
}

func (m *editorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	if m.pendingToken != "" {
		return m.updateConfirm(keyMsg)
	}

	switch keyMsg.String() {
	case "esc", "ctrl+c":
		m.message = "Discarded."
		m.done = true
		return m, tea.Quit

	case "tab", "down", "enter":
		m.commitFocused()
		m.focus = (m.focus + 1) % fieldCount
		return m, m.refocus()

	case "shift+tab", "up":
		m.commitFocused()
		m.focus = (m.focus - 1 + fieldCount) % fieldCount
		return m, m.refocus()

	case "left", "right":
		if cmd, handled := m.cycle(keyMsg.String() == "right"); handled {
			return m, cmd
		}

	case " ":
		if cmd, handled := m.toggle(); handled {
			return m, cmd
		}

	case "ctrl+s":
		return m, m.save()
	}

	return m, m.updateFocused(msg)
}

// updateConfirm handles the yes/no prompt guarding a de-registration.
func (m *editorModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.ed.Confirm(m.pendingToken)
		m.pendingToken = ""
		m.message = "Removed from the notebook."
	case "n", "esc":
		m.ed.Cancel(m.pendingToken)
		m.pendingToken = ""
		m.message = "Kept in the notebook."
	}
	return m, nil
}

// updateFocused routes non-navigation input to the focused text field.
func (m *editorModel) updateFocused(msg tea.Msg) tea.Cmd {
	if m.focus >= len(m.inputs) {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// commitFocused pushes the focused text field into the editor so the draft
// and its validation stay current while navigating.
func (m *editorModel) commitFocused() {
	switch m.focus {
	case fieldTitle:
		m.ed.SetTitle(m.inputs[fieldTitle].Value())
	case fieldStart:
		if t, err := parseInstant(m.inputs[fieldStart].Value()); err == nil {
			m.ed.SetStart(t)
			// The shift moved End too; reflect it back into the field.
			m.inputs[fieldEnd].SetValue(m.ed.Draft().End.Format(instantLayout))
		}
	case fieldEnd:
		if t, err := parseInstant(m.inputs[fieldEnd].Value()); err == nil {
			m.ed.SetEnd(t)
		}
	case fieldNotes:
		m.ed.SetNotes(m.inputs[fieldNotes].Value())
	}
	m.errs = m.ed.Validate()
}

func (m *editorModel) refocus() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if m.focus < len(m.inputs) {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

// cycle moves the type or status selector. Returns handled=false when the
// focus is on a text field so arrow keys keep moving the cursor.
func (m *editorModel) cycle(forward bool) (tea.Cmd, bool) {
	step := 1
	if !forward {
		step = -1
	}
	switch m.focus {
	case fieldType:
		cur := indexOfType(m.ed.Draft().Type)
		next := (cur + step + len(typeOptions)) % len(typeOptions)
		m.ed.SetType(typeOptions[next])
		return nil, true
	case fieldStatus:
		cur := indexOfStatus(m.ed.Draft().Status)
		next := (cur + step + len(statusOptions)) % len(statusOptions)
		if err := m.ed.SetStatus(statusOptions[next], Now().UTC()); err != nil {
			m.message = err.Error()
		}
		return nil, true
	}
	return nil, false
}

// toggle flips the all-day or registered checkbox. De-registration routes
// through the gate and shows the confirm prompt instead of applying.
func (m *editorModel) toggle() (tea.Cmd, bool) {
	switch m.focus {
	case fieldAllDay:
		m.ed.SetAllDay(!m.ed.Draft().IsAllDay)
		return nil, true
	case fieldRegistered:
		next := !m.ed.Draft().Registered
		if next && m.ed.Draft().CaseID == "" {
			m.message = "Only case interventions can go in the notebook."
			return nil, true
		}
		tok, pending := m.ed.SetRegistered(next)
		if pending {
			m.pendingToken = tok
			m.pendingPrompt = "Remove this entry from the field notebook? (y/n)"
		}
		return nil, true
	}
	return nil, false
}

func (m *editorModel) save() tea.Cmd {
	for f := 0; f < len(m.inputs); f++ {
		prev := m.focus
		m.focus = f
		m.commitFocused()
		m.focus = prev
	}
	if m.errs = m.ed.Validate(); len(m.errs) > 0 {
		m.message = "Fix the highlighted fields first."
		return nil
	}
	if err := m.ed.Save(context.Background(), m.app.Interventions, Now().UTC()); err != nil {
		m.saveErr = err
		m.message = err.Error()
		return nil
	}
	m.saveErr = nil
	m.message = fmt.Sprintf("Saved %q.", m.ed.Draft().Title)
	m.done = true
	return tea.Quit
}

func (m *editorModel) View() string {
	if m.done {
		return m.message + "\n"
	}

	draft := m.ed.Draft()
	var b strings.Builder

	heading := "New intervention"
	if !m.ed.IsNew() {
		heading = "Edit intervention"
	}
	b.WriteString(formatter.Header(heading) + "\n\n")

	b.WriteString(m.textFieldView(fieldTitle, "Title", editor.FieldTitle))
	b.WriteString(m.textFieldView(fieldStart, "Start", editor.FieldDateRange))
	b.WriteString(m.textFieldView(fieldEnd, "End", editor.FieldDateRange))
	b.WriteString(m.textFieldView(fieldNotes, "Notes", ""))

	b.WriteString(m.selectorView(fieldType, "Type", string(draft.Type)))
	b.WriteString(m.selectorView(fieldStatus, "Status", formatter.InterventionStatusLabel(draft.Status)))
	b.WriteString(m.checkboxView(fieldAllDay, "All day", draft.IsAllDay))
	b.WriteString(m.checkboxView(fieldRegistered, "Notebook", draft.Registered))

	if m.pendingToken != "" {
		b.WriteString("\n" + formatter.StyleYellow.Render(m.pendingPrompt) + "\n")
	} else if m.message != "" {
		b.WriteString("\n" + formatter.Dim(m.message) + "\n")
	}

	b.WriteString("\n" + formatter.Dim("tab/↑↓ move · ←→ change · space toggle · ctrl+s save · esc discard") + "\n")
	return b.String()
}

func (m *editorModel) textFieldView(field int, label string, errField editor.Field) string {
	line := fmt.Sprintf("%s %s\n", m.label(field, label), m.inputs[field].View())
	if errField != "" {
		if ve, ok := m.errs.ForField(errField); ok {
			line += "           " + formatter.StyleRed.Render("✗ "+ve.Message) + "\n"
		}
	}
	return line
}

func (m *editorModel) selectorView(field int, label, value string) string {
	marker := "  "
	if m.focus == field {
		marker = formatter.StyleHeader.Render("‹›")
	}
	return fmt.Sprintf("%s %s %s\n", m.label(field, label), marker, formatter.StyleFg.Render(value))
}

func (m *editorModel) checkboxView(field int, label string, checked bool) string {
	box := "[ ]"
	if checked {
		box = formatter.StyleGreen.Render("[x]")
	}
	return fmt.Sprintf("%s %s\n", m.label(field, label), box)
}

func (m *editorModel) label(field int, text string) string {
	padded := fmt.Sprintf("%-9s", text)
	if m.focus == field {
		return formatter.StyleHeader.Render(padded)
	}
	return formatter.Dim(padded)
}

func indexOfType(t domain.InterventionType) int {
	for i, o := range typeOptions {
		if o == t {
			return i
		}
	}
	return 0
}

func indexOfStatus(s domain.InterventionStatus) int {
	for i, o := range statusOptions {
		if o == s {
			return i
		}
	}
	return 0
}

// runEditor opens the interactive intervention form and blocks until the
// caseworker saves or discards.
func runEditor(app *App, seed editor.Seed) error {
	m := newEditorModel(app, seed)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	if m.saveErr != nil {
		return m.saveErr
	}
	fmt.Println(m.message)
	return nil
}
