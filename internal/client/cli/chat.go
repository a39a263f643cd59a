package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/voidvault/voidvault-cli/internal/client/models"
	"github.com/voidvault/voidvault-cli/internal/client/panel"
)

// messagesPager builds a pager for one conversation. The server returns
// each page newest-first; the page is reversed here so messages read top to
// bottom, and older pages are prepended above the existing ones.
func (a *App) messagesPager(conversationID string) *panel.Pager[models.ChatMessage] {
	fetch := func(ctx context.Context, cursor string) (panel.Page[models.ChatMessage], error) {
		page, err := a.api.ChatMessages(ctx, conversationID, cursor)
		if err != nil {
			return panel.Page[models.ChatMessage]{}, err
		}
		messages := make([]models.ChatMessage, len(page.Messages))
		for i, m := range page.Messages {
			messages[len(page.Messages)-1-i] = m
		}
		return panel.Page[models.ChatMessage]{Items: messages, NextCursor: page.NextCursor}, nil
	}
	return panel.New(fetch, panel.WithPrependOlder[models.ChatMessage]())
}

func (a *App) printMessages(messages []models.ChatMessage) {
	for _, m := range messages {
		who := "them"
		if m.SenderID == a.currentUser.ID {
			who = "you"
		}
		printlnFn(fmt.Sprintf("  [%s] %s: %s", m.CreatedAt, who, m.Content))
	}
}

// Chat lists conversations, opens one, and runs a small send/more loop
// inside it.
func (a *App) Chat(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	list, err := a.api.ChatList(ctx)
	if err != nil {
		return a.reportError(err)
	}

	if len(list.Conversations) == 0 {
		printlnFn("No conversations yet.")
	} else {
		printlnFn("Conversations:")
		for i, conv := range list.Conversations {
			name := "(deleted user)"
			if conv.OtherUser != nil {
				name = "@" + conv.OtherUser.Username
			}
			preview := ""
			if conv.LastMessage != nil {
				preview = ": " + conv.LastMessage.Content
			}
			printlnFn(fmt.Sprintf("  [%d] %s%s", i+1, name, preview))
		}
	}

	choice, err := getSimpleText(a.reader, "Open a conversation (number), 'new <user-id>' to start one, or leave empty", os.Stdout)
	if err != nil {
		return err
	}
	if choice == "" {
		return nil
	}

	var conversationID string
	if rest, ok := strings.CutPrefix(choice, "new "); ok {
		conversationID, err = a.api.StartChat(ctx, strings.TrimSpace(rest))
		if err != nil {
			return a.reportError(err)
		}
	} else {
		n, err := getIndexFromText(choice, len(list.Conversations))
		if err != nil {
			printlnFn(err.Error())
			return nil
		}
		conversationID = list.Conversations[n-1].ConversationID
	}

	return a.runConversation(ctx, conversationID)
}

// runConversation is the inner loop of one open chat.
func (a *App) runConversation(ctx context.Context, conversationID string) error {
	pager := a.messagesPager(conversationID)
	if err := pager.Refresh(ctx); err != nil {
		return a.reportError(err)
	}
	a.printMessages(pager.Items())

	for {
		line, err := getSimpleText(a.reader, "Message ('older' loads history, 'back' leaves)", os.Stdout)
		if err != nil {
			return err
		}
		switch line {
		case "", "back":
			return nil
		case "older":
			if !pager.HasMore() {
				printlnFn("Beginning of the conversation.")
				continue
			}
			if err := pager.More(ctx); err != nil {
				a.reportError(err)
				continue
			}
			a.printMessages(pager.Items())
		default:
			message, err := a.api.SendChatMessage(ctx, conversationID, line)
			if err != nil {
				a.reportError(err)
				continue
			}
			a.printMessages([]models.ChatMessage{*message})
		}
	}
}
