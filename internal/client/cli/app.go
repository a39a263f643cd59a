package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/voidvault/voidvault-cli/internal/client/api"
	"github.com/voidvault/voidvault-cli/internal/client/config"
	"github.com/voidvault/voidvault-cli/internal/client/media"
	"github.com/voidvault/voidvault-cli/internal/client/models"
	"github.com/voidvault/voidvault-cli/internal/client/panel"
	"github.com/voidvault/voidvault-cli/internal/client/session"
	"github.com/voidvault/voidvault-cli/internal/logging"
)

// tokenSource adapts the session store to the api.TokenSource contract.
type tokenSource struct {
	store session.Store
}

func (t tokenSource) Token() string {
	return t.store.Token(context.Background())
}

// App wires the transport client, the persisted session state and the panel
// state behind the REPL commands.
type App struct {
	config   *config.Config
	api      *api.Client
	store    session.Store
	uploader *media.Uploader
	log      logging.Logger

	currentUser *models.CurrentUser
	theme       string

	// Per-panel list state. Each pager is independent; one panel's failed
	// load never disturbs another.
	feed          *panel.Pager[models.FeedPost]
	followingOnly bool
	adviceMode    string
	advice        *panel.Pager[models.AdvicePost]

	admin adminState

	reader *bufio.Reader
}

// NewApp builds the application from config. Opening the state database
// never fails the start: an unusable path degrades to memory-only state.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store := session.Open(ctx, cfg.StateDBPath)

	apiClient, err := api.New(cfg.APIBaseURL, tokenSource{store: store}, logger)
	if err != nil {
		store.Close()
		return nil, err
	}

	app := &App{
		config:     cfg,
		api:        apiClient,
		store:      store,
		uploader:   media.NewUploader(apiClient, media.WithHost(cfg.UploadHost)),
		log:        logger,
		theme:      store.Theme(ctx),
		adviceMode: models.AdviceModeNeed,
		reader:     bufio.NewReader(os.Stdin),
	}
	app.feed = panel.New(app.fetchFeedPage)
	app.advice = panel.New(app.fetchAdvicePage)
	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

// Bootstrap resolves the current identity once. Any failure clears the
// persisted token and leaves the app logged out; there is no retry loop.
func (a *App) Bootstrap(ctx context.Context) {
	if token := a.store.Token(ctx); token != "" {
		if exp, ok := session.TokenExpiry(token); ok && exp.Before(time.Now()) {
			a.log.Info(ctx, "stored session token looks expired", "expired_at", exp)
		}
	}

	me, err := a.api.Me(ctx)
	if err != nil {
		_ = a.store.ClearToken(ctx)
		a.currentUser = nil
		return
	}
	a.currentUser = me
}

// resolveIdentity refreshes currentUser after an auth mutation. The auth
// responses embed user fields; they are ignored in favor of /me.
func (a *App) resolveIdentity(ctx context.Context) error {
	me, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	a.currentUser = me
	return nil
}

func (a *App) status() string {
	s := "guest"
	if a.currentUser != nil {
		s = "@" + a.currentUser.Username
	}
	return fmt.Sprintf("%s %s", s, a.theme)
}

// Run bootstraps the session and enters the REPL.
func (a *App) Run(ctx context.Context, focusedPostID string) {
	defer a.store.Close()

	a.Bootstrap(ctx)
	if a.isLoggedIn() {
		log.Printf("Signed in as @%s\n", a.currentUser.Username)
	} else {
		log.Println("Not signed in. Use 'register' or 'login'.")
	}

	// A deep-linked post is shown before the prompt, like the ?post=
	// query parameter on the web.
	if focusedPostID != "" && a.isLoggedIn() {
		_ = a.OpenPost(ctx, focusedPostID)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
