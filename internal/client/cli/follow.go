package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/voidvault/voidvault-cli/internal/client/models"
)

// FollowPanel shows suggestions, following and followers, then offers
// follow/unfollow actions. The lists are reloaded after every mutation so
// they stay server-authoritative.
func (a *App) FollowPanel(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	for {
		data, err := a.api.FollowData(ctx)
		if err != nil {
			return a.reportError(err)
		}

		printlnFn(fmt.Sprintf("Following %d, followers %d.", len(data.Following), len(data.Followers)))
		if len(data.Suggestions) > 0 {
			printlnFn("Who to follow:")
			for _, s := range data.Suggestions {
				printlnFn("  @" + s.Username)
			}
		}
		if len(data.Following) > 0 {
			printlnFn("Following:")
			for _, u := range data.Following {
				printlnFn(fmt.Sprintf("  @%s (since %s)", u.Username, u.FollowedAt))
			}
		}
		if len(data.Followers) > 0 {
			printlnFn("Followers:")
			for _, u := range data.Followers {
				mark := ""
				if u.IsFollowingBack {
					mark = " (mutual)"
				}
				printlnFn("  @" + u.Username + mark)
			}
		}

		action, err := getSimpleText(a.reader, "Action: follow <username> / unfollow <username> / done", os.Stdout)
		if err != nil {
			return err
		}
		parts := strings.Fields(action)
		if len(parts) == 0 || parts[0] == "done" {
			return nil
		}
		if len(parts) != 2 {
			printlnFn("Usage: follow <username> or unfollow <username>")
			continue
		}
		username := strings.TrimPrefix(parts[1], "@")

		userID := findFollowTarget(data, username)
		if userID == "" {
			printlnFn("No such user in the lists above:", username)
			continue
		}

		switch parts[0] {
		case "follow":
			err = a.api.Follow(ctx, userID)
		case "unfollow":
			err = a.api.Unfollow(ctx, userID)
		default:
			printlnFn("Unknown action:", parts[0])
			continue
		}
		if err != nil {
			a.reportError(err)
			continue
		}
		printlnFn("Done.")
	}
}

// findFollowTarget resolves a username to an id across all three lists.
func findFollowTarget(data *models.FollowData, username string) string {
	for _, s := range data.Suggestions {
		if s.Username == username {
			return s.ID
		}
	}
	for _, u := range data.Following {
		if u.Username == username {
			return u.ID
		}
	}
	for _, u := range data.Followers {
		if u.Username == username {
			return u.ID
		}
	}
	return ""
}
