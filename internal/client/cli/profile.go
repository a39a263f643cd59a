package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/voidvault/voidvault-cli/internal/client/models"
)

func printProfile(profile *models.Profile) {
	user := profile.User
	printlnFn(fmt.Sprintf("@%s (joined %s, trust %d)", user.Username, user.CreatedAt, user.TrustScore))
	if user.Bio != nil && *user.Bio != "" {
		printlnFn("  " + *user.Bio)
	}
	if user.AvatarURL != nil {
		printlnFn("  avatar: " + *user.AvatarURL)
	}

	stats := profile.Stats
	relation := ""
	if !stats.IsSelf {
		if stats.IsFollowing {
			relation = " (you follow them)"
		} else {
			relation = " (not following)"
		}
	}
	printlnFn(fmt.Sprintf("  %d posts, %d followers, %d following%s",
		stats.Posts, stats.Followers, stats.Following, relation))

	if len(profile.Posts) > 0 {
		printlnFn("Posts:")
		for _, post := range profile.Posts {
			printlnFn(fmt.Sprintf("  #%s (%s): %s", post.Channel, post.CreatedAt, post.Content))
		}
	}
	if len(profile.SavedPosts) > 0 {
		printlnFn("Saved posts:")
		for _, post := range profile.SavedPosts {
			printlnFn(fmt.Sprintf("  #%s (%s): %s", post.Channel, post.CreatedAt, post.Content))
		}
	}
}

// Profile shows a profile (own by default) and, for the caller's own,
// offers account actions.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	userID, err := getSimpleText(a.reader, "User id (leave empty for your own profile)", os.Stdout)
	if err != nil {
		return err
	}

	profile, err := a.api.Profile(ctx, userID)
	if err != nil {
		return a.reportError(err)
	}
	printProfile(profile)

	if !profile.Stats.IsSelf {
		return nil
	}

	action, err := getSimpleText(a.reader,
		"Account action: edit / avatar / rotate-key / deactivate / delete-account / done", os.Stdout)
	if err != nil {
		return err
	}
	switch action {
	case "edit":
		return a.editProfile(ctx)
	case "avatar":
		return a.changeAvatar(ctx)
	case "rotate-key":
		return a.rotateRecoveryKey(ctx)
	case "deactivate":
		return a.deactivateAccount(ctx)
	case "delete-account":
		return a.deleteAccount(ctx)
	case "", "done":
		return nil
	}
	printlnFn("Unknown action:", action)
	return nil
}

// editProfile patches username and bio. Empty answers leave the field
// untouched; the request carries only what changed.
func (a *App) editProfile(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "New username (leave empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	bio, err := getSimpleText(a.reader, "New bio (leave empty to keep, '-' to clear)", os.Stdout)
	if err != nil {
		return err
	}

	var update models.ProfileUpdate
	if username != "" {
		update.Username = &username
	}
	switch bio {
	case "":
	case "-":
		empty := ""
		update.Bio = &empty
	default:
		update.Bio = &bio
	}
	if update.Username == nil && update.Bio == nil {
		printlnFn("Nothing to change.")
		return nil
	}

	user, err := a.api.UpdateProfile(ctx, update)
	if err != nil {
		return a.reportError(err)
	}
	if err := a.resolveIdentity(ctx); err != nil {
		return a.reportError(err)
	}
	printlnFn("Profile updated. You are now @" + user.Username)
	return nil
}

// changeAvatar uploads a new profile image and points the profile at it.
func (a *App) changeAvatar(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Image file path", os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	avatarURL, err := a.uploader.UploadProfileImage(ctx, path, func(percent int) {
		printlnFn(fmt.Sprintf("Uploading... %d%%", percent))
	})
	if err != nil {
		return a.reportError(err)
	}

	if _, err := a.api.UpdateProfile(ctx, models.ProfileUpdate{AvatarURL: &avatarURL}); err != nil {
		return a.reportError(err)
	}
	printlnFn("Avatar updated.")
	return nil
}

// rotateRecoveryKey replaces the recovery key. The new one is shown once.
func (a *App) rotateRecoveryKey(ctx context.Context) error {
	ok, err := getConfirm(a.reader, "Rotate the recovery key? The old one stops working immediately.", os.Stdout)
	if err != nil || !ok {
		return err
	}

	key, err := a.api.RotateRecoveryKey(ctx)
	if err != nil {
		return a.reportError(err)
	}
	printlnFn("Your new recovery key (write it down, it will not be shown again):")
	printlnFn("  " + key)
	return nil
}

func (a *App) deactivateAccount(ctx context.Context) error {
	ok, err := getConfirm(a.reader, "Deactivate your account?", os.Stdout)
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeactivateAccount(ctx); err != nil {
		return a.reportError(err)
	}
	printlnFn("Account deactivated.")
	return a.Logout(ctx)
}

func (a *App) deleteAccount(ctx context.Context) error {
	ok, err := getConfirm(a.reader, "Permanently delete your account and everything in it?", os.Stdout)
	if err != nil || !ok {
		return err
	}
	confirmation, err := getSimpleText(a.reader, "Type your username to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if confirmation != a.currentUser.Username {
		printlnFn("Username mismatch, not deleting.")
		return nil
	}

	if err := a.api.DeleteAccount(ctx); err != nil {
		return a.reportError(err)
	}
	printlnFn("Account deleted.")
	return a.Logout(ctx)
}
