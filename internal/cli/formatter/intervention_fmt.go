package formatter

import (
	"github.com/sofiaherrero/vinculo/internal/domain"
)

// FormatInterventionList renders interventions as a table, notebook entries
// marked in the last column.
func FormatInterventionList(ivs []*domain.Intervention) string {
	if len(ivs) == 0 {
		return Dim("No interventions.")
	}

	headers := []string{"ID", "WHEN", "TITLE", "TYPE", "STATUS", "NOTEBOOK"}
	rows := make([][]string, 0, len(ivs))

	for _, iv := range ivs {
		notebook := Dim("--")
		if iv.Registered {
			notebook = StyleGreen.Render("✔")
		}
		rows = append(rows, []string{
			TruncID(iv.ID),
			StyleFg.Render(TimeRange(iv.Start, iv.End, iv.IsAllDay)),
			Bold(iv.Title),
			StylePurple.Render(string(iv.Type)),
			InterventionStatusPill(iv.Status),
			notebook,
		})
	}

	return RenderTable(headers, rows)
}
