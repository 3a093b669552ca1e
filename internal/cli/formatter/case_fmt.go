package formatter

import (
	"fmt"
	"strings"

	"github.com/sofiaherrero/vinculo/internal/domain"
)

// FormatCaseList renders the caseload as a table.
func FormatCaseList(cases []*domain.Case) string {
	headers := []string{"ID", "NAME", "STAGE", "TEAM"}
	rows := make([][]string, 0, len(cases))

	for _, c := range cases {
		team := Dim("--")
		if n := len(c.ProfessionalIDs); n > 0 {
			team = StyleFg.Render(fmt.Sprintf("%d assigned", n))
		}
		rows = append(rows, []string{
			TruncID(c.ID),
			Bold(c.DisplayName()),
			CaseStatusPill(c.Status),
			team,
		})
	}

	return RenderTable(headers, rows)
}

// FormatCaseDetail renders the full case file: identity, team, field
// notebook, tasks, family grid and the viewer's private notes.
func FormatCaseDetail(c *domain.Case) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(c.DisplayName()), CaseStatusPill(c.Status)))
	if c.Nickname != "" && c.Nickname != c.Name {
		b.WriteString(Dim(c.Name) + "\n")
	}
	if c.Address != "" {
		b.WriteString(Dim(c.Address) + "\n")
	}
	b.WriteString(Dim("ID "+c.ID) + "\n")

	b.WriteString("\n" + Header("Notebook") + "\n")
	registered := 0
	for _, iv := range c.Interventions {
		if !iv.Registered {
			continue
		}
		registered++
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			InterventionStatusPill(iv.Status),
			StyleFg.Render(iv.Title),
			Dim(TimeRange(iv.Start, iv.End, iv.IsAllDay))))
	}
	if registered == 0 {
		b.WriteString(Dim("  No registered interventions.") + "\n")
	}

	b.WriteString("\n" + Header("Tasks") + "\n")
	if len(c.Tasks) == 0 {
		b.WriteString(Dim("  No tasks.") + "\n")
	}
	for _, t := range c.Tasks {
		b.WriteString("  " + taskLine(t) + "\n")
	}

	b.WriteString("\n" + Header("Family grid") + "\n")
	if len(c.FamilyGrid) == 0 {
		b.WriteString(Dim("  Empty.") + "\n")
	}
	for _, m := range c.FamilyGrid {
		line := fmt.Sprintf("  %s", StyleFg.Render(m.Name))
		if m.Relationship != "" {
			line += Dim(" (" + m.Relationship + ")")
		}
		if m.BirthDate != nil {
			line += Dim("  b. " + m.BirthDate.Format("2006-01-02"))
		}
		b.WriteString(line + "\n")
	}

	if len(c.MyNotes) > 0 {
		b.WriteString("\n" + Header("My notes") + "\n")
		for _, n := range c.MyNotes {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim(n.CreatedAt.Format("2006-01-02")), StyleFg.Render(n.Text)))
		}
	}

	return RenderBox("Case file", b.String())
}
