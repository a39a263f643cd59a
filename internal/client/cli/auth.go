package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/voidvault/voidvault-cli/internal/client/api"
	"github.com/voidvault/voidvault-cli/internal/client/models"
	"github.com/voidvault/voidvault-cli/internal/client/panel"
)

// reportError shows a command failure to the user. API errors carry the
// backend's message verbatim; transport errors get the friendly variants.
func (a *App) reportError(err error) error {
	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		printlnFn("Error:", apiErr.Message)
	case errors.Is(err, api.ErrTimeout):
		printlnFn("Error: the server took too long to respond, try again")
	case errors.Is(err, api.ErrNetwork):
		printlnFn("Error: cannot reach the server")
	default:
		printlnFn("Error:", err.Error())
	}
	return err
}

// Register creates a new account. The recovery key, when issued, is shown
// exactly once and never written anywhere.
func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already signed in. Use 'logout' first.")
		return nil
	}

	username, err := getSimpleText(a.reader, "Pick a username (or leave empty for a suggestion)", os.Stdout)
	if err != nil {
		return err
	}
	if username == "" {
		suggested, err := a.api.SuggestUsername(ctx)
		if err != nil {
			return a.reportError(err)
		}
		printlnFn("Suggested username:", suggested)
		username = suggested
	}

	password, err := getSecret("password", os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.api.Register(ctx, username, password)
	if err != nil {
		return a.reportError(err)
	}

	if result.SessionToken != "" {
		if err := a.store.SetToken(ctx, result.SessionToken); err != nil {
			a.log.Warn(ctx, "could not persist session token", "error", err)
		}
	}
	if result.RecoveryKey != "" {
		printlnFn("Your recovery key (write it down, it will not be shown again):")
		printlnFn("  " + result.RecoveryKey)
	}

	if err := a.resolveIdentity(ctx); err != nil {
		return a.reportError(err)
	}
	printlnFn(fmt.Sprintf("Welcome, @%s!", a.currentUser.Username))
	return nil
}

// Login authenticates with a password.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already signed in. Use 'logout' first.")
		return nil
	}

	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getSecret("password", os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.api.Login(ctx, username, password)
	if err != nil {
		return a.reportError(err)
	}
	return a.finishLogin(ctx, result.SessionToken)
}

// Recover authenticates with the one-time recovery key instead of a
// password.
func (a *App) Recover(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already signed in. Use 'logout' first.")
		return nil
	}

	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	key, err := getSecret("recovery key", os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.api.LoginWithRecoveryKey(ctx, username, key)
	if err != nil {
		return a.reportError(err)
	}
	return a.finishLogin(ctx, result.SessionToken)
}

func (a *App) finishLogin(ctx context.Context, token string) error {
	if token != "" {
		if err := a.store.SetToken(ctx, token); err != nil {
			a.log.Warn(ctx, "could not persist session token", "error", err)
		}
	}
	if err := a.resolveIdentity(ctx); err != nil {
		return a.reportError(err)
	}
	printlnFn(fmt.Sprintf("Signed in as @%s", a.currentUser.Username))
	return nil
}

// Logout ends the session. Local state is cleared even when the server
// call fails, so a dead backend never traps the user in a session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not signed in.")
		return nil
	}

	if err := a.api.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout request failed", "error", err)
	}
	if err := a.store.ClearToken(ctx); err != nil {
		a.log.Warn(ctx, "could not clear session token", "error", err)
	}
	a.currentUser = nil
	a.feed = panel.New(a.fetchFeedPage)
	a.followingOnly = false
	a.advice = panel.New(a.fetchAdvicePage)
	a.adviceMode = models.AdviceModeNeed
	a.admin = adminState{}
	printlnFn("Signed out.")
	return nil
}
