package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/voidvault/voidvault-cli/internal/client/media"
	"github.com/voidvault/voidvault-cli/internal/client/models"
	"github.com/voidvault/voidvault-cli/internal/client/panel"
)

// requireLogin gates commands that need a session.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Sign in first ('register' or 'login').")
	return false
}

func (a *App) fetchFeedPage(ctx context.Context, cursor string) (panel.Page[models.FeedPost], error) {
	page, err := a.api.Feed(ctx, cursor, a.followingOnly)
	if err != nil {
		return panel.Page[models.FeedPost]{}, err
	}
	return panel.Page[models.FeedPost]{Items: page.Posts, NextCursor: page.NextCursor}, nil
}

func renderPost(index int, post models.FeedPost) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] @%s #%s (%s)\n", index, post.Username, post.Channel, post.CreatedAt)
	fmt.Fprintf(&b, "    %s\n", strings.ReplaceAll(post.Content, "\n", "\n    "))
	if post.ImageURL != nil {
		fmt.Fprintf(&b, "    image: %s\n", *post.ImageURL)
	}
	if post.VideoURL != nil {
		fmt.Fprintf(&b, "    video: %s\n", *post.VideoURL)
	}
	if e := post.Engagement; e != nil {
		saved := ""
		if e.IsSaved {
			saved = " [saved]"
		}
		mine := ""
		if e.MyReaction != nil {
			mine = " (you: " + *e.MyReaction
			if e.MyEmoji != nil {
				mine += " " + *e.MyEmoji
			}
			mine += ")"
		}
		fmt.Fprintf(&b, "    %d likes, %d dislikes, %d comments, %d saves%s%s",
			e.LikeCount, e.DislikeCount, e.CommentCount, e.SaveCount, saved, mine)
	}
	return b.String()
}

func (a *App) printFeed() {
	posts := a.feed.Items()
	if len(posts) == 0 {
		printlnFn("The feed is empty.")
		return
	}
	for i, post := range posts {
		printlnFn(renderPost(i+1, post))
	}
	if a.feed.HasMore() {
		printlnFn("('more' loads the next page)")
	}
}

// Feed reloads the home feed from the top.
func (a *App) Feed(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if err := a.feed.Refresh(ctx); err != nil {
		return a.reportError(err)
	}
	a.printFeed()
	return nil
}

// FeedMore appends the next feed page. At the end of the list it is a
// visible no-op.
func (a *App) FeedMore(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if !a.feed.HasMore() {
		printlnFn("No more posts.")
		return nil
	}
	if err := a.feed.More(ctx); err != nil {
		return a.reportError(err)
	}
	a.printFeed()
	return nil
}

// FeedFilter toggles the following-only filter and reloads from the top.
func (a *App) FeedFilter(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	a.followingOnly = !a.followingOnly
	if a.followingOnly {
		printlnFn("Showing posts from people you follow.")
	} else {
		printlnFn("Showing all posts.")
	}
	if err := a.feed.Refresh(ctx); err != nil {
		return a.reportError(err)
	}
	a.printFeed()
	return nil
}

// Compose publishes a new post, optionally with one image or video
// attachment uploaded ahead of the publish call.
func (a *App) Compose(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	channel, err := getSimpleText(a.reader, "Channel (e.g. general)", os.Stdout)
	if err != nil {
		return err
	}
	if channel == "" {
		channel = "general"
	}
	content, err := getMultiline(a.reader, "What's on your mind?", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		printlnFn("Nothing to post.")
		return nil
	}

	draft := models.PostDraft{
		Channel:        channel,
		Content:        content,
		IdempotencyKey: uuid.NewString(),
	}

	mediaPath, err := getSimpleText(a.reader, "Attach a file? (path, or leave empty)", os.Stdout)
	if err != nil {
		return err
	}
	if mediaPath != "" {
		kind, err := media.DetectKind(mediaPath)
		if err != nil {
			return a.reportError(err)
		}
		uploaded, err := a.uploader.UploadPostMedia(ctx, mediaPath, kind, func(percent int) {
			printlnFn(fmt.Sprintf("Uploading... %d%%", percent))
		})
		if err != nil {
			return a.reportError(err)
		}
		switch uploaded.Kind {
		case media.KindVideo:
			draft.VideoURL = uploaded.SecureURL
		default:
			draft.ImageURL = uploaded.SecureURL
		}
	}

	postID, err := a.api.CreatePost(ctx, draft)
	if err != nil {
		return a.reportError(err)
	}
	printlnFn("Posted:", postID)

	if err := a.feed.Refresh(ctx); err != nil {
		return a.reportError(err)
	}
	a.printFeed()
	return nil
}

// pickFeedPost asks for a 1-based position in the currently shown feed.
func (a *App) pickFeedPost(prompt string) (*models.FeedPost, error) {
	posts := a.feed.Items()
	if len(posts) == 0 {
		printlnFn("Load the feed first ('feed').")
		return nil, nil
	}
	n, err := getIndex(a.reader, prompt, len(posts), os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return nil, nil
	}
	return &posts[n-1], nil
}

// applyEngagement splices a server engagement snapshot into the feed in
// place. Counters always come from the server, never from local math.
func (a *App) applyEngagement(postID string, engagement *models.Engagement) {
	a.feed.Patch(
		func(p models.FeedPost) bool { return p.ID == postID },
		func(p *models.FeedPost) { p.Engagement = engagement },
	)
}

// React sets, switches or clears the caller's reaction on a post. Picking
// the reaction you already have clears it.
func (a *App) React(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	post, err := a.pickFeedPost("Which post? (number)")
	if post == nil || err != nil {
		return err
	}

	choice, err := getSimpleText(a.reader, "Reaction: like / dislike / emoji", os.Stdout)
	if err != nil {
		return err
	}
	choice = strings.ToLower(choice)

	var emoji string
	switch choice {
	case models.ReactionLike, models.ReactionDislike:
	case models.ReactionEmoji:
		emoji, err = getSimpleText(a.reader, "Which emoji?", os.Stdout)
		if err != nil {
			return err
		}
	default:
		printlnFn("Unknown reaction:", choice)
		return nil
	}

	current := post.Engagement
	var engagement *models.Engagement
	if current != nil && current.MyReaction != nil && *current.MyReaction == choice &&
		(choice != models.ReactionEmoji || (current.MyEmoji != nil && *current.MyEmoji == emoji)) {
		engagement, err = a.api.RemoveReaction(ctx, post.ID)
	} else {
		engagement, err = a.api.SetReaction(ctx, post.ID, choice, emoji)
	}
	if err != nil {
		return a.reportError(err)
	}

	a.applyEngagement(post.ID, engagement)
	printlnFn("Done.")
	return nil
}

// Save toggles the bookmark state of a post.
func (a *App) Save(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	post, err := a.pickFeedPost("Which post? (number)")
	if post == nil || err != nil {
		return err
	}

	var engagement *models.Engagement
	if post.Engagement != nil && post.Engagement.IsSaved {
		engagement, err = a.api.UnsavePost(ctx, post.ID)
	} else {
		engagement, err = a.api.SavePost(ctx, post.ID)
	}
	if err != nil {
		return a.reportError(err)
	}

	a.applyEngagement(post.ID, engagement)
	if engagement != nil && engagement.IsSaved {
		printlnFn("Saved.")
	} else {
		printlnFn("Removed from saved.")
	}
	return nil
}

// Comments shows a post's comments and optionally adds one.
func (a *App) Comments(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	post, err := a.pickFeedPost("Which post? (number)")
	if post == nil || err != nil {
		return err
	}

	cursor := ""
	for {
		page, err := a.api.Comments(ctx, post.ID, cursor)
		if err != nil {
			return a.reportError(err)
		}
		if len(page.Comments) == 0 && cursor == "" {
			printlnFn("No comments yet.")
		}
		for _, comment := range page.Comments {
			printlnFn(fmt.Sprintf("  @%s (%s): %s", comment.Username, comment.CreatedAt, comment.Content))
		}
		if page.NextCursor == nil || *page.NextCursor == "" {
			break
		}
		more, err := getConfirm(a.reader, "Load more comments?", os.Stdout)
		if err != nil || !more {
			break
		}
		cursor = *page.NextCursor
	}

	content, err := getSimpleText(a.reader, "Add a comment (leave empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		return nil
	}
	engagement, err := a.api.AddComment(ctx, post.ID, content)
	if err != nil {
		return a.reportError(err)
	}
	a.applyEngagement(post.ID, engagement)
	printlnFn("Comment added.")
	return nil
}

// ReportPost flags a post for moderation.
func (a *App) ReportPost(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	post, err := a.pickFeedPost("Report which post? (number)")
	if post == nil || err != nil {
		return err
	}
	if err := a.api.Report(ctx, "post", post.ID); err != nil {
		return a.reportError(err)
	}
	printlnFn("Reported. Thank you.")
	return nil
}

// DeletePost removes one of the caller's own posts and drops it from the
// local feed.
func (a *App) DeletePost(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	post, err := a.pickFeedPost("Delete which post? (number)")
	if post == nil || err != nil {
		return err
	}
	if post.UserID != a.currentUser.ID {
		printlnFn("You can only delete your own posts.")
		return nil
	}

	ok, err := getConfirm(a.reader, "Delete this post permanently?", os.Stdout)
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeletePost(ctx, post.ID); err != nil {
		return a.reportError(err)
	}
	a.feed.Remove(func(p models.FeedPost) bool { return p.ID == post.ID })
	printlnFn("Deleted.")
	return nil
}

// OpenPost shows one post by id, the deep-link entry point. The id must
// look like a UUID before any request is made.
func (a *App) OpenPost(ctx context.Context, id string) error {
	if !a.requireLogin() {
		return nil
	}
	// Strict canonical form only; uuid.Parse alone would also accept
	// braced and URN variants the backend never issues.
	if len(id) != 36 {
		printlnFn("That does not look like a post id.")
		return nil
	}
	if _, err := uuid.Parse(id); err != nil {
		printlnFn("That does not look like a post id.")
		return nil
	}

	post, err := a.api.Post(ctx, id)
	if err != nil {
		return a.reportError(err)
	}
	printlnFn(renderPost(1, *post))
	return nil
}
