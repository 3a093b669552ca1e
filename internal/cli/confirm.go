package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// requestConfirmation shows an accept/decline prompt and runs onConfirm at
// most once, only on explicit accept. Declining is a no-op, not an error.
// Non-interactive runs decline unless the caller passed --yes.
func requestConfirmation(app *App, title, message string, assumeYes bool, onConfirm func()) error {
	if assumeYes {
		onConfirm()
		return nil
	}
	if app.IsInteractive != nil && !app.IsInteractive() {
		return fmt.Errorf("%s: confirmation required (re-run with --yes)", title)
	}

	var accepted bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(message).
				Affirmative("Yes").
				Negative("No").
				Value(&accepted),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return fmt.Errorf("running confirmation prompt: %w", err)
	}
	if accepted {
		onConfirm()
	}
	return nil
}
