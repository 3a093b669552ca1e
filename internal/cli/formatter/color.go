package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sofiaherrero/vinculo/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CaseStatusLabel returns the human label for a workflow stage.
func CaseStatusLabel(s domain.CaseStatus) string {
	switch s {
	case domain.CasePendingReferral:
		return "Pending referral"
	case domain.CaseWelcome:
		return "Welcome"
	case domain.CaseCoDiagnosis:
		return "Co-diagnosis"
	case domain.CaseSharedPlanning:
		return "Shared planning"
	case domain.CaseAccompaniment:
		return "Accompaniment"
	case domain.CaseFollowUp:
		return "Follow-up"
	case domain.CaseClosed:
		return "Closed"
	default:
		return string(s)
	}
}

// CaseStatusPill returns a colored workflow-stage indicator. Early stages
// are blue, working stages green, follow-up yellow, closed dimmed.
func CaseStatusPill(s domain.CaseStatus) string {
	label := CaseStatusLabel(s)
	switch s {
	case domain.CasePendingReferral, domain.CaseWelcome:
		return StyleBlue.Render("○ " + label)
	case domain.CaseCoDiagnosis, domain.CaseSharedPlanning:
		return StylePurple.Render("◐ " + label)
	case domain.CaseAccompaniment:
		return StyleGreen.Render("● " + label)
	case domain.CaseFollowUp:
		return StyleYellow.Render("● " + label)
	case domain.CaseClosed:
		return StyleDim.Render("✔ " + label)
	default:
		return StyleDim.Render(label)
	}
}

// InterventionStatusLabel returns the human label for an intervention status.
func InterventionStatusLabel(s domain.InterventionStatus) string {
	switch s {
	case domain.InterventionPlanned:
		return "Planned"
	case domain.InterventionCompleted:
		return "Completed"
	case domain.InterventionCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// InterventionStatusPill returns a colored intervention status indicator.
func InterventionStatusPill(s domain.InterventionStatus) string {
	switch s {
	case domain.InterventionPlanned:
		return StyleBlue.Render("○ Planned")
	case domain.InterventionCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.InterventionCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(s))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
