package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Search runs a combined user and post search, with inline follow and
// unfollow on the found users. The query reruns after every follow change
// so the shown relation state stays server-authoritative.
func (a *App) Search(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	query, err := getSimpleText(a.reader, "Search for", os.Stdout)
	if err != nil {
		return err
	}

	for {
		result, err := a.api.Search(ctx, query)
		if err != nil {
			return a.reportError(err)
		}

		if len(result.Users) == 0 && len(result.Posts) == 0 {
			printlnFn("Nothing found.")
			return nil
		}

		if len(result.Users) > 0 {
			printlnFn("Users:")
			for _, user := range result.Users {
				mark := ""
				if user.IsFollowing {
					mark = " (following)"
				}
				printlnFn(fmt.Sprintf("  @%s%s", user.Username, mark))
			}
		}
		if len(result.Posts) > 0 {
			printlnFn("Posts:")
			for _, post := range result.Posts {
				printlnFn(fmt.Sprintf("  @%s #%s: %s", post.Username, post.Channel, post.Content))
			}
		}

		if len(result.Users) == 0 {
			return nil
		}
		action, err := getSimpleText(a.reader, "Action: follow <username> / unfollow <username> / done", os.Stdout)
		if err != nil {
			return err
		}
		parts := strings.Fields(action)
		if len(parts) == 0 || parts[0] == "done" {
			return nil
		}
		if len(parts) != 2 || (parts[0] != "follow" && parts[0] != "unfollow") {
			printlnFn("Usage: follow <username> or unfollow <username>")
			continue
		}
		username := strings.TrimPrefix(parts[1], "@")

		userID := ""
		for _, user := range result.Users {
			if user.Username == username {
				userID = user.ID
				break
			}
		}
		if userID == "" {
			printlnFn("No such user in the results:", username)
			continue
		}

		if parts[0] == "follow" {
			err = a.api.Follow(ctx, userID)
		} else {
			err = a.api.Unfollow(ctx, userID)
		}
		if err != nil {
			a.reportError(err)
		}
	}
}
