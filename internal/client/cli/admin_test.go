package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestAdmin_WrongPasswordNeverReachesBackend(t *testing.T) {
	silencePrintln(t)

	requested := false
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		requested = true
		w.Write([]byte(`{}`))
	})

	app := newTestApp(t, mux)
	stubSecret(t, "not-the-password")

	if err := app.Admin(context.Background()); err != nil {
		t.Fatalf("Admin: %v", err)
	}
	if app.admin.unlocked {
		t.Fatal("console must stay locked")
	}
	if requested {
		t.Fatal("no request may leave a locked console")
	}
}

func TestAdmin_UnlockLoadsSectionsAndLocks(t *testing.T) {
	silencePrintln(t)

	var secrets []string
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/overview", func(w http.ResponseWriter, r *http.Request) {
		secrets = append(secrets, r.Header.Get("X-Admin-Secret"))
		w.Write([]byte(`{"stats":{"total_users":5,"active_users":4,"banned_users":1,
			"online_users":2,"total_posts":9,"hidden_posts":1,"total_reports":3}}`))
	})
	mux.HandleFunc("/admin/users", func(w http.ResponseWriter, r *http.Request) {
		secrets = append(secrets, r.Header.Get("X-Admin-Secret"))
		w.Write([]byte(`{"users":[{"id":"u9","username":"troll","recovery_key_hash":"x",
			"created_at":"2026-01-01","trust_score":1,"is_active":true,"is_banned":false,
			"is_shadow_banned":false,"bio":null,"avatar_url":null}]}`))
	})

	app := newTestApp(t, mux)
	stubSecret(t, adminPassword)
	stubPrompts(t, "overview", "users", "lock")

	if err := app.Admin(context.Background()); err != nil {
		t.Fatalf("Admin: %v", err)
	}

	if len(secrets) != 2 {
		t.Fatalf("want 2 admin requests, got %d", len(secrets))
	}
	for _, secret := range secrets {
		if secret != adminPassword {
			t.Fatalf("admin header missing: %q", secret)
		}
	}
	if app.admin.unlocked {
		t.Fatal("lock must re-lock the console")
	}
	if len(app.admin.users) != 0 {
		t.Fatal("lock must drop cached lists")
	}
}

func TestAdmin_BanRefreshesUserList(t *testing.T) {
	silencePrintln(t)

	userLoads := 0
	var moderated string
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/users", func(w http.ResponseWriter, r *http.Request) {
		userLoads++
		w.Write([]byte(`{"users":[{"id":"u9","username":"troll","recovery_key_hash":"x",
			"created_at":"2026-01-01","trust_score":1,"is_active":true,"is_banned":false,
			"is_shadow_banned":false,"bio":null,"avatar_url":null}]}`))
	})
	mux.HandleFunc("/admin/user/moderation", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		moderated, _ = body["user_id"].(string)
		if banned, ok := body["is_banned"].(bool); !ok || !banned {
			t.Errorf("is_banned not set: %v", body)
		}
		w.Write([]byte(`{}`))
	})

	app := newTestApp(t, mux)
	stubSecret(t, adminPassword)
	stubPrompts(t, "users", "ban 1", "lock")

	if err := app.Admin(context.Background()); err != nil {
		t.Fatalf("Admin: %v", err)
	}
	if moderated != "u9" {
		t.Fatalf("moderation target mismatch: %q", moderated)
	}
	if userLoads != 2 {
		t.Fatalf("list must reload after the action, loads=%d", userLoads)
	}
}
