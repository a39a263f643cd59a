package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real
// App type satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Recover(ctx context.Context) error
	Logout(ctx context.Context) error

	Feed(ctx context.Context) error
	FeedMore(ctx context.Context) error
	FeedFilter(ctx context.Context) error
	Compose(ctx context.Context) error
	React(ctx context.Context) error
	Save(ctx context.Context) error
	Comments(ctx context.Context) error
	ReportPost(ctx context.Context) error
	DeletePost(ctx context.Context) error
	OpenPost(ctx context.Context, id string) error

	Search(ctx context.Context) error
	Notifications(ctx context.Context) error
	FollowPanel(ctx context.Context) error
	Chat(ctx context.Context) error
	Profile(ctx context.Context) error
	Advice(ctx context.Context) error

	ToggleTheme(ctx context.Context) error
	Terms(ctx context.Context) error
	Privacy(ctx context.Context) error
	Admin(ctx context.Context) error
}

const helpLoggedIn = "Available commands: feed, more, filter, post, react, save, comments, report, delete, open <post-id>,\n" +
	"  search, notifications, follow, chat, profile, advice, theme, terms, privacy, logout, exit"
const helpLoggedOut = "Available commands: register, login, recover, terms, privacy, admin, exit"

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. The prompt shows the current status (from
// statusFn). The loop exits on scanner EOF or "exit"/"quit".
//
// Command handlers report their own errors as inline status text; the REPL
// stays resilient and only routes input.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vv (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "recover":
			_ = a.Recover(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "feed", "home":
			_ = a.Feed(ctx)
		case "more":
			_ = a.FeedMore(ctx)
		case "filter":
			_ = a.FeedFilter(ctx)
		case "post", "compose":
			_ = a.Compose(ctx)
		case "react":
			_ = a.React(ctx)
		case "save":
			_ = a.Save(ctx)
		case "comments":
			_ = a.Comments(ctx)
		case "report":
			_ = a.ReportPost(ctx)
		case "delete":
			_ = a.DeletePost(ctx)
		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <post-id>")
				continue
			}
			_ = a.OpenPost(ctx, args[0])

		case "search":
			_ = a.Search(ctx)
		case "notifications", "notif":
			_ = a.Notifications(ctx)
		case "follow":
			_ = a.FollowPanel(ctx)
		case "chat":
			_ = a.Chat(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "advice":
			_ = a.Advice(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)
		case "terms":
			_ = a.Terms(ctx)
		case "privacy":
			_ = a.Privacy(ctx)
		case "admin":
			_ = a.Admin(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
