package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/voidvault/voidvault-cli/internal/client/models"
)

func signIn(app *App) {
	app.currentUser = &models.CurrentUser{ID: "u1", Username: "alice123"}
}

func feedJSON(posts string, next string) string {
	cursor := "null"
	if next != "" {
		cursor = fmt.Sprintf("%q", next)
	}
	return fmt.Sprintf(`{"posts":[%s],"nextCursor":%s}`, posts, cursor)
}

const helloPost = `{"id":"11111111-1111-4111-8111-111111111111","user_id":"u1","username":"alice123",
	"channel":"general","content":"hello","created_at":"2026-01-01","expires_at":"2026-01-02",
	"engagement":{"likeCount":0,"dislikeCount":0,"commentCount":0,"saveCount":0,
	"myReaction":null,"myEmoji":null,"isSaved":false,"emojiCounts":{}}}`

func TestFeed_PagesAccumulateWithoutDuplicates(t *testing.T) {
	silencePrintln(t)

	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Query().Get("cursor") {
		case "":
			w.Write([]byte(feedJSON(helloPost, "c1")))
		case "c1":
			second := `{"id":"22222222-2222-4222-8222-222222222222","user_id":"u2","username":"bob",
				"channel":"general","content":"second","created_at":"2026-01-01","expires_at":"2026-01-02",
				"engagement":null}`
			w.Write([]byte(feedJSON(second, "")))
		default:
			t.Errorf("unexpected cursor %q", r.URL.Query().Get("cursor"))
		}
	})

	app := newTestApp(t, mux)
	signIn(app)
	ctx := context.Background()

	if err := app.Feed(ctx); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if err := app.FeedMore(ctx); err != nil {
		t.Fatalf("FeedMore: %v", err)
	}
	if got := len(app.feed.Items()); got != 2 {
		t.Fatalf("want 2 posts, got %d", got)
	}

	// At the end of the list, more must not refire the first page.
	if err := app.FeedMore(ctx); err != nil {
		t.Fatalf("FeedMore at end: %v", err)
	}
	if calls != 2 {
		t.Fatalf("want 2 fetches, got %d", calls)
	}
	if got := len(app.feed.Items()); got != 2 {
		t.Fatalf("duplicated items: %d", got)
	}
}

func TestFeedFilter_ReloadsFromTop(t *testing.T) {
	silencePrintln(t)

	var seen []string
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Query().Get("following_only"))
		w.Write([]byte(feedJSON(helloPost, "")))
	})

	app := newTestApp(t, mux)
	signIn(app)
	ctx := context.Background()

	app.Feed(ctx)
	app.FeedFilter(ctx)
	app.FeedFilter(ctx)

	want := []string{"", "true", ""}
	if len(seen) != len(want) {
		t.Fatalf("requests mismatch: %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("following_only sequence mismatch: %v", seen)
		}
	}
}

func TestReact_AppliesServerSnapshot(t *testing.T) {
	silencePrintln(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedJSON(helloPost, "")))
	})
	mux.HandleFunc("/post/11111111-1111-4111-8111-111111111111/reaction", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["reaction"] != "like" {
			t.Errorf("unexpected reaction body: %v", body)
		}
		// Counters the client could not know locally prove the snapshot
		// replaced the engagement wholesale.
		w.Write([]byte(`{"engagement":{"likeCount":7,"dislikeCount":0,"commentCount":3,
			"saveCount":0,"myReaction":"like","myEmoji":null,"isSaved":false,"emojiCounts":{}}}`))
	})

	app := newTestApp(t, mux)
	signIn(app)
	ctx := context.Background()

	app.Feed(ctx)
	stubPrompts(t, "1", "like")
	if err := app.React(ctx); err != nil {
		t.Fatalf("React: %v", err)
	}

	e := app.feed.Items()[0].Engagement
	if e == nil || e.LikeCount != 7 || e.CommentCount != 3 {
		t.Fatalf("server snapshot not applied: %+v", e)
	}
	if e.MyReaction == nil || *e.MyReaction != "like" {
		t.Fatalf("myReaction mismatch: %+v", e.MyReaction)
	}
}

func TestReact_SameReactionClears(t *testing.T) {
	silencePrintln(t)

	liked := strings.ReplaceAll(helloPost, `"myReaction":null`, `"myReaction":"like"`)

	var method string
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedJSON(liked, "")))
	})
	mux.HandleFunc("/post/11111111-1111-4111-8111-111111111111/reaction", func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.Write([]byte(`{"engagement":{"likeCount":0,"dislikeCount":0,"commentCount":0,
			"saveCount":0,"myReaction":null,"myEmoji":null,"isSaved":false,"emojiCounts":{}}}`))
	})

	app := newTestApp(t, mux)
	signIn(app)
	ctx := context.Background()

	app.Feed(ctx)
	stubPrompts(t, "1", "like")
	if err := app.React(ctx); err != nil {
		t.Fatalf("React: %v", err)
	}

	if method != http.MethodDelete {
		t.Fatalf("picking the current reaction must clear it, got %s", method)
	}
	if e := app.feed.Items()[0].Engagement; e.MyReaction != nil {
		t.Fatalf("myReaction not cleared: %+v", e.MyReaction)
	}
}

func TestDeletePost_OwnPostsOnly(t *testing.T) {
	silencePrintln(t)

	foreign := `{"id":"33333333-3333-4333-8333-333333333333","user_id":"u2","username":"bob",
		"channel":"general","content":"not yours","created_at":"2026-01-01","expires_at":"2026-01-02",
		"engagement":null}`

	deleted := false
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedJSON(foreign, "")))
	})
	mux.HandleFunc("/post", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.Write([]byte(`{}`))
	})

	app := newTestApp(t, mux)
	signIn(app)
	ctx := context.Background()

	app.Feed(ctx)
	stubPrompts(t, "1")
	stubConfirm(t, true)
	if err := app.DeletePost(ctx); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if deleted {
		t.Fatal("foreign post must not be deletable")
	}
	if got := len(app.feed.Items()); got != 1 {
		t.Fatalf("post dropped locally: %d", got)
	}
}

func TestOpenPost_RejectsMalformedID(t *testing.T) {
	silencePrintln(t)

	requested := false
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		requested = true
		w.Write([]byte(`{}`))
	})

	app := newTestApp(t, mux)
	signIn(app)

	if err := app.OpenPost(context.Background(), "not-a-uuid"); err != nil {
		t.Fatalf("OpenPost: %v", err)
	}
	if requested {
		t.Fatal("malformed id must be rejected before any request")
	}
}

func TestCompose_PublishesAndRefreshes(t *testing.T) {
	silencePrintln(t)

	var draft models.PostDraft
	mux := http.NewServeMux()
	mux.HandleFunc("/post", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&draft)
		w.Write([]byte(`{"post":{"id":"44444444-4444-4444-8444-444444444444"}}`))
	})
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedJSON(helloPost, "")))
	})

	app := newTestApp(t, mux)
	signIn(app)
	stubPrompts(t, "general", "")
	stubMultiline(t, "hello")

	if err := app.Compose(context.Background()); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if draft.Channel != "general" || draft.Content != "hello" {
		t.Fatalf("unexpected draft: %+v", draft)
	}
	if draft.IdempotencyKey == "" {
		t.Fatal("idempotency key missing")
	}
	if got := len(app.feed.Items()); got != 1 {
		t.Fatalf("feed not refreshed: %d", got)
	}
}
