package cli

import (
	"context"
	"fmt"
)

// Notifications lists the caller's notifications, newest first.
func (a *App) Notifications(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	list, err := a.api.Notifications(ctx)
	if err != nil {
		return a.reportError(err)
	}
	if len(list.Notifications) == 0 {
		printlnFn("No notifications.")
		return nil
	}

	for _, n := range list.Notifications {
		actor := ""
		if n.ActorUsername != nil {
			actor = "@" + *n.ActorUsername + " "
		}
		line := fmt.Sprintf("  [%s] %s%s", n.Type, actor, n.Title)
		if n.Body != "" {
			line += ": " + n.Body
		}
		printlnFn(line, "("+n.CreatedAt+")")
	}
	return nil
}
