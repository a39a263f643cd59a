// Package session persists the small pieces of client state that survive
// restarts: the fallback session token and the theme preference. The sqlite
// store is the durable implementation; when its path is unusable the client
// degrades to an in-memory store instead of failing.
package session

import "context"

// Theme values the dashboard understands.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

const (
	keyToken = "session_token"
	keyTheme = "theme"
)

// Store is the persisted-state contract. Implementations must treat a
// missing key as an empty value, never as an error.
type Store interface {
	Token(ctx context.Context) string
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error

	Theme(ctx context.Context) string
	SetTheme(ctx context.Context, theme string) error

	Close() error
}

// Open returns a durable store at path, or the in-memory fallback when the
// database cannot be opened or migrated.
func Open(ctx context.Context, path string) Store {
	store, err := OpenSQLite(ctx, path)
	if err != nil {
		return NewMemory()
	}
	return store
}
