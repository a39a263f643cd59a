package cli

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"
	"strings"

	"github.com/voidvault/voidvault-cli/internal/client/models"
)

// adminPassword gates the console locally before any admin request is
// made. The real authorization happens server-side through the console
// secret header; this gate only keeps the console out of casual reach.
const adminPassword = "vivekbadass"

// adminState tracks whether the console is unlocked and caches the last
// loaded moderation lists so actions can refer to rows by number.
type adminState struct {
	unlocked bool
	users    []models.AdminUser
	posts    []models.AdminPost
}

// unlockAdmin prompts for the console password and, on success, arms the
// API client with the admin secret for subsequent /admin calls.
func (a *App) unlockAdmin() (bool, error) {
	password, err := getSecret("admin console password", os.Stdout)
	if err != nil {
		return false, err
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(adminPassword)) != 1 {
		printlnFn("Wrong password.")
		return false, nil
	}
	a.admin.unlocked = true
	a.api.SetAdminSecret(password)
	return true, nil
}

// Admin runs the moderation console. Sections load lazily: nothing is
// fetched until a section command asks for it.
func (a *App) Admin(ctx context.Context) error {
	if !a.admin.unlocked {
		ok, err := a.unlockAdmin()
		if err != nil || !ok {
			return err
		}
	}

	printlnFn("Admin console. Sections: overview, users [query], posts [query], reports.")
	printlnFn("Actions: ban <n> / unban <n> / shadow <n> / unshadow <n> / rmuser <n> /")
	printlnFn("         hide <n> / unhide <n> / rmpost <n>. 'lock' leaves and re-locks.")

	for {
		line, err := getSimpleText(a.reader, "admin", os.Stdout)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.Join(parts[1:], " ")

		switch cmd {
		case "lock", "done", "exit":
			a.admin = adminState{}
			a.api.SetAdminSecret("")
			printlnFn("Console locked.")
			return nil
		case "overview":
			a.adminOverview(ctx)
		case "users":
			a.adminUsers(ctx, arg)
		case "posts":
			a.adminPosts(ctx, arg)
		case "reports":
			a.adminReports(ctx)
		case "ban", "unban", "shadow", "unshadow", "rmuser":
			a.adminUserAction(ctx, cmd, arg)
		case "hide", "unhide", "rmpost":
			a.adminPostAction(ctx, cmd, arg)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) adminOverview(ctx context.Context) {
	overview, err := a.api.AdminOverview(ctx)
	if err != nil {
		a.reportError(err)
		return
	}
	s := overview.Stats
	printlnFn(fmt.Sprintf("Users: %d total, %d active, %d banned, %d online",
		s.TotalUsers, s.ActiveUsers, s.BannedUsers, s.OnlineUsers))
	printlnFn(fmt.Sprintf("Posts: %d total, %d hidden. Reports: %d",
		s.TotalPosts, s.HiddenPosts, s.TotalReports))
}

func (a *App) adminUsers(ctx context.Context, query string) {
	list, err := a.api.AdminUsers(ctx, query)
	if err != nil {
		a.reportError(err)
		return
	}
	a.admin.users = list.Users
	if len(list.Users) == 0 {
		printlnFn("No users.")
		return
	}
	for i, user := range list.Users {
		var flags []string
		if !user.IsActive {
			flags = append(flags, "inactive")
		}
		if user.IsBanned {
			flags = append(flags, "banned")
		}
		if user.IsShadowBanned {
			flags = append(flags, "shadow")
		}
		suffix := ""
		if len(flags) > 0 {
			suffix = " [" + strings.Join(flags, ",") + "]"
		}
		printlnFn(fmt.Sprintf("  [%d] @%s trust %d, joined %s%s",
			i+1, user.Username, user.TrustScore, user.CreatedAt, suffix))
	}
}

func (a *App) adminPosts(ctx context.Context, query string) {
	list, err := a.api.AdminPosts(ctx, query)
	if err != nil {
		a.reportError(err)
		return
	}
	a.admin.posts = list.Posts
	if len(list.Posts) == 0 {
		printlnFn("No posts.")
		return
	}
	for i, post := range list.Posts {
		suffix := ""
		if post.Hidden {
			suffix = " [hidden]"
		}
		if post.ReportCount > 0 {
			suffix += fmt.Sprintf(" (%d reports)", post.ReportCount)
		}
		printlnFn(fmt.Sprintf("  [%d] #%s %s%s", i+1, post.Channel, post.Content, suffix))
	}
}

func (a *App) adminReports(ctx context.Context) {
	list, err := a.api.AdminReports(ctx)
	if err != nil {
		a.reportError(err)
		return
	}
	if len(list.Reports) == 0 {
		printlnFn("The report queue is empty.")
		return
	}
	for _, report := range list.Reports {
		printlnFn(fmt.Sprintf("  %s %s (%s)", report.ContentType, report.ContentID, report.CreatedAt))
	}
}

// adminUserAction applies a moderation verb to a user picked from the last
// loaded user list, then reloads the list so the shown flags match the
// server.
func (a *App) adminUserAction(ctx context.Context, verb, arg string) {
	if len(a.admin.users) == 0 {
		printlnFn("Load a user list first ('users').")
		return
	}
	n, err := getIndexFromText(arg, len(a.admin.users))
	if err != nil {
		printlnFn(err.Error())
		return
	}
	user := a.admin.users[n-1]

	boolPtr := func(v bool) *bool { return &v }
	switch verb {
	case "ban":
		err = a.api.ModerateUser(ctx, models.AdminModeration{UserID: user.ID, IsBanned: boolPtr(true)})
	case "unban":
		err = a.api.ModerateUser(ctx, models.AdminModeration{UserID: user.ID, IsBanned: boolPtr(false)})
	case "shadow":
		err = a.api.ModerateUser(ctx, models.AdminModeration{UserID: user.ID, IsShadowBanned: boolPtr(true)})
	case "unshadow":
		err = a.api.ModerateUser(ctx, models.AdminModeration{UserID: user.ID, IsShadowBanned: boolPtr(false)})
	case "rmuser":
		ok, confirmErr := getConfirm(a.reader,
			fmt.Sprintf("Delete @%s and all their content?", user.Username), os.Stdout)
		if confirmErr != nil || !ok {
			return
		}
		err = a.api.AdminDeleteUser(ctx, user.ID)
	}
	if err != nil {
		a.reportError(err)
		return
	}
	printlnFn("Done.")
	a.adminUsers(ctx, "")
	a.adminOverview(ctx)
}

// adminPostAction mirrors adminUserAction for the post list.
func (a *App) adminPostAction(ctx context.Context, verb, arg string) {
	if len(a.admin.posts) == 0 {
		printlnFn("Load a post list first ('posts').")
		return
	}
	n, err := getIndexFromText(arg, len(a.admin.posts))
	if err != nil {
		printlnFn(err.Error())
		return
	}
	post := a.admin.posts[n-1]

	switch verb {
	case "hide":
		err = a.api.AdminHidePost(ctx, post.ID, true)
	case "unhide":
		err = a.api.AdminHidePost(ctx, post.ID, false)
	case "rmpost":
		ok, confirmErr := getConfirm(a.reader, "Delete this post permanently?", os.Stdout)
		if confirmErr != nil || !ok {
			return
		}
		err = a.api.AdminDeletePost(ctx, post.ID)
	}
	if err != nil {
		a.reportError(err)
		return
	}
	printlnFn("Done.")
	a.adminPosts(ctx, "")
	a.adminOverview(ctx)
}
