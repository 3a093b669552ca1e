package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// resolveCaseID turns user input into a case ID: exact UUID, exact name or
// nickname (case-insensitive), then UUID prefix.
func resolveCaseID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("case is required")
	}

	cases, err := app.Cases.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, c := range cases {
		if c.ID == input {
			return c.ID, nil
		}
	}
	for _, c := range cases {
		if strings.EqualFold(c.Name, input) || (c.Nickname != "" && strings.EqualFold(c.Nickname, input)) {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range cases {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("case not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("case ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

const instantLayout = "2006-01-02 15:04"

// parseInstant parses a local "YYYY-MM-DD HH:MM" instant, falling back to a
// bare date at midnight.
func parseInstant(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(instantLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid instant %q (want YYYY-MM-DD HH:MM)", s)
	}
	return t, nil
}

// currentUserID loads the acting professional, preferring VINCULO_USER via
// main's profile seeding and falling back to the stored profile row.
func currentUserID(ctx context.Context, app *App) (string, error) {
	return app.Profile.CurrentUserID(ctx)
}
