package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/sofiaherrero/vinculo/internal/alerting"
	"github.com/sofiaherrero/vinculo/internal/domain"
)

// FormatAgenda renders today's personal agenda, ascending by start.
func FormatAgenda(ivs []*domain.Intervention, now time.Time) string {
	var b strings.Builder
	b.WriteString(Dim(now.Format("Monday, Jan 2 2006")) + "\n\n")

	if len(ivs) == 0 {
		b.WriteString(Dim("Nothing scheduled for today.") + "\n")
		return RenderBox("Agenda", b.String())
	}

	for _, iv := range ivs {
		when := iv.Start.Format("15:04")
		if iv.IsAllDay {
			when = "all day"
		}
		scope := Dim("general")
		if !iv.General() {
			short := iv.CaseID
			if len(short) > 8 {
				short = short[:8]
			}
			scope = StyleBlue.Render("case " + short)
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			StyleYellow.Render(when),
			Bold(iv.Title),
			StylePurple.Render(string(iv.Type)),
			scope))
	}

	return RenderBox("Agenda", b.String())
}

// FormatExpired renders planned interventions left past the grace window,
// oldest first.
func FormatExpired(ivs []*domain.Intervention, now time.Time) string {
	if len(ivs) == 0 {
		return StyleGreen.Render("No expired actions.")
	}

	headers := []string{"ID", "START", "TITLE", "OVERDUE"}
	rows := make([][]string, 0, len(ivs))
	for _, iv := range ivs {
		rows = append(rows, []string{
			TruncID(iv.ID),
			StyleFg.Render(iv.Start.Format("Jan 2, 2006 15:04")),
			Bold(iv.Title),
			Overdue(iv.Start, now),
		})
	}

	return Header("Expired actions") + "\n" + RenderTable(headers, rows)
}

// FormatTeamGaps renders cases whose assigned team is missing a social
// worker, a technician, or both.
func FormatTeamGaps(gaps []alerting.TeamGap) string {
	if len(gaps) == 0 {
		return StyleGreen.Render("All active cases have a complete team.")
	}

	var b strings.Builder
	b.WriteString(Header("Incomplete teams") + "\n")
	for _, g := range gaps {
		var missing []string
		if g.MissingSocial {
			missing = append(missing, "social worker")
		}
		if g.MissingTechnician {
			missing = append(missing, "EDIS technician")
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			StyleYellow.Render("▲"),
			Bold(g.Case.DisplayName()),
			StyleRed.Render("missing "+strings.Join(missing, " and "))))
	}
	return b.String()
}

// FormatBreakdown renders a workload breakdown with counts, shares and a
// proportional bar.
func FormatBreakdown(title string, groups []alerting.Group, labelOf func(string) string) string {
	if len(groups) == 0 {
		return Dim("No active cases.")
	}
	if labelOf == nil {
		labelOf = func(k string) string { return k }
	}

	const barWidth = 20

	headers := []string{"GROUP", "CASES", "SHARE", ""}
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		filled := int(g.Pct / 100 * barWidth)
		if filled > barWidth {
			filled = barWidth
		}
		bar := StyleGreen.Render(strings.Repeat("█", filled)) +
			Dim(strings.Repeat("░", barWidth-filled))
		rows = append(rows, []string{
			StyleFg.Render(labelOf(g.Key)),
			Bold(fmt.Sprintf("%d", g.Count)),
			StyleFg.Render(fmt.Sprintf("%.0f%%", g.Pct)),
			bar,
		})
	}

	return Header(title) + "\n" + RenderTable(headers, rows)
}
