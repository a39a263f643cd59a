package cli

import (
	"context"
	"net/http"
	"testing"
)

func TestAdvice_ModeToggleReloadsBoard(t *testing.T) {
	silencePrintln(t)

	var modes []string
	mux := http.NewServeMux()
	mux.HandleFunc("/advice", func(w http.ResponseWriter, r *http.Request) {
		modes = append(modes, r.URL.Query().Get("mode"))
		w.Write([]byte(`{"mode":"` + r.URL.Query().Get("mode") + `","advice":[],"nextCursor":null}`))
	})

	app := newTestApp(t, mux)
	signIn(app)
	stubPrompts(t, "mode", "done")

	if err := app.Advice(context.Background()); err != nil {
		t.Fatalf("Advice: %v", err)
	}

	want := []string{"need", "give"}
	if len(modes) != len(want) {
		t.Fatalf("requests mismatch: %v", modes)
	}
	for i := range want {
		if modes[i] != want[i] {
			t.Fatalf("mode sequence mismatch: %v", modes)
		}
	}
}

func TestAdvice_RepliesLoadOnDemand(t *testing.T) {
	silencePrintln(t)

	replyLoads := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/advice", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"mode":"need","advice":[{"id":"a1","user_id":"u2","content":"help me",
			"created_at":"2026-01-01","hidden":false,"report_count":0,"is_anonymous":true,
			"reply_count":1,"recent_replies":[]}],"nextCursor":null}`))
	})
	mux.HandleFunc("/advice/a1/replies", func(w http.ResponseWriter, r *http.Request) {
		replyLoads++
		w.Write([]byte(`{"replies":[{"id":"r1","advice_id":"a1","user_id":"u3","username":"carol",
			"content":"try this","created_at":"2026-01-01"}]}`))
	})

	app := newTestApp(t, mux)
	signIn(app)
	stubPrompts(t, "replies 1", "done")

	if err := app.Advice(context.Background()); err != nil {
		t.Fatalf("Advice: %v", err)
	}
	if replyLoads != 1 {
		t.Fatalf("replies must load exactly once, got %d", replyLoads)
	}
}
