package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	tomorrow := now.AddDate(0, 0, 1)
	y4, m4, d4 := tomorrow.Date()
	if y2 == y4 && m2 == m4 && d2 == d4 {
		return "Tomorrow"
	}
	return t.Format("Jan 2, 2006")
}

// TimeRange renders a start/end pair as "Jan 2, 2006 15:04–16:04", or just
// the date for all-day entries.
func TimeRange(start, end time.Time, allDay bool) string {
	if allDay {
		return start.Format("Jan 2, 2006") + " (all day)"
	}
	if end.IsZero() {
		return start.Format("Jan 2, 2006 15:04")
	}
	if sameDay(start, end) {
		return fmt.Sprintf("%s–%s", start.Format("Jan 2, 2006 15:04"), end.Format("15:04"))
	}
	return fmt.Sprintf("%s – %s", start.Format("Jan 2, 2006 15:04"), end.Format("Jan 2, 2006 15:04"))
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Overdue renders how long past the grace window an action is.
func Overdue(start time.Time, now time.Time) string {
	diff := now.Sub(start)
	days := int(diff.Hours() / 24)
	if days >= 1 {
		return StyleRed.Render(fmt.Sprintf("%dd overdue", days))
	}
	return StyleRed.Render(fmt.Sprintf("%dh overdue", int(diff.Hours())))
}
