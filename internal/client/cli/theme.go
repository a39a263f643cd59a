package cli

import (
	"context"

	"github.com/voidvault/voidvault-cli/internal/client/session"
)

// ToggleTheme flips between the dark and light theme and persists the
// choice so it survives restarts.
func (a *App) ToggleTheme(ctx context.Context) error {
	if a.theme == session.ThemeDark {
		a.theme = session.ThemeLight
	} else {
		a.theme = session.ThemeDark
	}
	if err := a.store.SetTheme(ctx, a.theme); err != nil {
		a.log.Warn(ctx, "could not persist theme", "error", err)
	}
	printlnFn("Theme:", a.theme)
	return nil
}
