package config

import (
	"path/filepath"

	"github.com/voidvault/voidvault-cli/internal/filex"
)

// stateDirName is the per-working-directory data dir that holds the state
// database when the user gives a bare filename.
const stateDirName = ".voidvault"

// Config holds runtime settings for the VoidVault CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST endpoint.
//   - UploadHost: asset-host endpoint prefix for direct media uploads.
//   - StateDBPath: path of the local client-state database (session token,
//     theme). When the file cannot be opened the client runs memory-only.
type Config struct {
	APIBaseURL  string
	UploadHost  string
	StateDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.UploadHost = "https://api.cloudinary.com/v1_1"
	c.StateDBPath = "voidvault.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	cfg.StateDBPath = resolveStatePath(cfg.StateDBPath)
	return cfg
}

// resolveStatePath places a bare filename inside the data dir. Explicit
// paths pass through untouched; when the dir cannot be created the bare
// name stays and sqlite (or the memory fallback) deals with it.
func resolveStatePath(path string) string {
	if filepath.Dir(path) != "." {
		return path
	}
	dir, err := filex.EnsureDir(stateDirName)
	if err != nil {
		return path
	}
	return filepath.Join(dir, path)
}
