package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/voidvault/voidvault-cli/internal/client/models"
	"github.com/voidvault/voidvault-cli/internal/client/panel"
)

func (a *App) fetchAdvicePage(ctx context.Context, cursor string) (panel.Page[models.AdvicePost], error) {
	page, err := a.api.Advice(ctx, a.adviceMode, cursor)
	if err != nil {
		return panel.Page[models.AdvicePost]{}, err
	}
	return panel.Page[models.AdvicePost]{Items: page.Advice, NextCursor: page.NextCursor}, nil
}

func (a *App) printAdvice() {
	posts := a.advice.Items()
	if len(posts) == 0 {
		printlnFn("The board is empty.")
		return
	}
	for i, post := range posts {
		printlnFn(fmt.Sprintf("[%d] (%s, %d replies)", i+1, post.CreatedAt, post.ReplyCount))
		printlnFn("    " + post.Content)
		for _, reply := range post.RecentReplies {
			printlnFn("      > " + reply.Content)
		}
	}
	if a.advice.HasMore() {
		printlnFn("('more' loads the next page)")
	}
}

// Advice runs the anonymous advice board. "need" mode shows requests to
// answer; "give" mode shows the caller's own requests. Full reply lists are
// loaded only on demand.
func (a *App) Advice(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	if err := a.advice.Refresh(ctx); err != nil {
		return a.reportError(err)
	}

	for {
		printlnFn("Advice board, mode:", a.adviceMode)
		a.printAdvice()

		action, err := getSimpleText(a.reader,
			"Action: mode / ask / reply <n> / replies <n> / more / done", os.Stdout)
		if err != nil {
			return err
		}

		parts := strings.Fields(action)
		if len(parts) == 2 {
			switch parts[0] {
			case "reply":
				if err := a.replyAdvice(ctx, parts[1]); err != nil {
					return err
				}
				continue
			case "replies":
				if err := a.showAdviceReplies(ctx, parts[1]); err != nil {
					return err
				}
				continue
			}
		}

		switch action {
		case "", "done":
			return nil
		case "mode":
			if a.adviceMode == models.AdviceModeNeed {
				a.adviceMode = models.AdviceModeGive
			} else {
				a.adviceMode = models.AdviceModeNeed
			}
			if err := a.advice.Refresh(ctx); err != nil {
				a.reportError(err)
			}
		case "ask":
			if err := a.askAdvice(ctx); err != nil {
				return err
			}
		case "more":
			if !a.advice.HasMore() {
				printlnFn("No more posts.")
				continue
			}
			if err := a.advice.More(ctx); err != nil {
				a.reportError(err)
			}
		default:
			printlnFn("Unknown action:", action)
		}
	}
}

func (a *App) askAdvice(ctx context.Context) error {
	content, err := getMultiline(a.reader, "What do you need advice on?", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		printlnFn("Nothing to ask.")
		return nil
	}
	if _, err := a.api.AskAdvice(ctx, content); err != nil {
		a.reportError(err)
		return nil
	}
	printlnFn("Posted anonymously.")
	if err := a.advice.Refresh(ctx); err != nil {
		a.reportError(err)
	}
	return nil
}

func (a *App) adviceAt(arg string) *models.AdvicePost {
	posts := a.advice.Items()
	n, err := getIndexFromText(arg, len(posts))
	if err != nil {
		printlnFn(err.Error())
		return nil
	}
	return &posts[n-1]
}

func (a *App) replyAdvice(ctx context.Context, arg string) error {
	post := a.adviceAt(arg)
	if post == nil {
		return nil
	}
	content, err := getMultiline(a.reader, "Your advice", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		return nil
	}
	if err := a.api.ReplyAdvice(ctx, post.ID, content); err != nil {
		a.reportError(err)
		return nil
	}
	printlnFn("Reply sent.")
	if err := a.advice.Refresh(ctx); err != nil {
		a.reportError(err)
	}
	return nil
}

func (a *App) showAdviceReplies(ctx context.Context, arg string) error {
	post := a.adviceAt(arg)
	if post == nil {
		return nil
	}
	list, err := a.api.AdviceReplies(ctx, post.ID)
	if err != nil {
		a.reportError(err)
		return nil
	}
	if len(list.Replies) == 0 {
		printlnFn("No replies yet.")
		return nil
	}
	for _, reply := range list.Replies {
		printlnFn(fmt.Sprintf("  @%s (%s): %s", reply.Username, reply.CreatedAt, reply.Content))
	}
	return nil
}
