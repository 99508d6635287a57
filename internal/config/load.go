package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Load reads settings.json, favorites.txt, and downloads.txt from
// configDir, creating any that are missing with defaults, then applies
// environment overrides. A .env file in the current directory is
// loaded first (without clobbering real env vars), exactly as
// Zzhihon-Bt1QFM's config.Load and sherlockholmesat221b-dbh-go-srv's
// main both do via godotenv.Load().
func Load(configDir string) (*FileConfig, error) {
	_ = godotenv.Load() // best effort; absence is not an error

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating config dir %s: %w", configDir, err)
	}

	settings, err := loadSettings(configDir)
	if err != nil {
		return nil, err
	}

	favorites, err := loadLines(filepath.Join(configDir, "favorites.txt"))
	if err != nil {
		return nil, err
	}
	downloads, err := loadLines(filepath.Join(configDir, "downloads.txt"))
	if err != nil {
		return nil, err
	}

	cfg := &FileConfig{
		dir:       configDir,
		settings:  settings,
		favorites: favorites,
		downloads: downloads,
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *FileConfig) applyEnvOverrides() {
	if v := getEnv("R4_MOUNT_POINT", ""); v != "" {
		c.settings.Paths.MountPoint = v
	}
	if v := getEnv("R4_DOWNLOAD_DIR", ""); v != "" {
		c.settings.Paths.DownloadDir = v
	}
	// R4_CACHE_DIR and R4_STATE_DIR are accepted but unused by this
	// component (no response cache, no persisted job state — see
	// spec §9's "Cache" design note and §4.7's "no persistent status
	// file is required").
	c.supabaseURL = firstEnv("", "SUPABASE_URL", "VITE_SUPABASE_URL")
	c.supabaseKey = firstEnv("", "SUPABASE_KEY", "VITE_SUPABASE_KEY")

	if v := getEnv("R4_CONFIG_FILE", ""); v != "" {
		// Re-read settings.json from an explicit override path,
		// ignoring errors: an unreadable override falls back to
		// whatever was already loaded from configDir.
		if settings, err := readSettingsFile(v); err == nil {
			c.settings = settings
		}
	}
}

func loadSettings(configDir string) (Settings, error) {
	path := filepath.Join(configDir, "settings.json")
	settings, err := readSettingsFile(path)
	if err == nil {
		return settings, nil
	}
	if !os.IsNotExist(err) {
		return Settings{}, err
	}

	settings = defaultSettings()
	if err := writeSettingsFile(path, settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func loadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return nil, fmt.Errorf("creating %s: %w", path, err)
		}
		return nil, nil
	}
	return parseLines(string(data)), nil
}

func (c *FileConfig) MountPoint() string  { return c.settings.Paths.MountPoint }
func (c *FileConfig) DownloadDir() string { return c.settings.Paths.DownloadDir }
func (c *FileConfig) Favorites() []string { return c.favorites }
func (c *FileConfig) Downloads() []string { return c.downloads }
func (c *FileConfig) Settings() Settings  { return c.settings }
func (c *FileConfig) SupabaseURL() string { return c.supabaseURL }
func (c *FileConfig) SupabaseKey() string { return c.supabaseKey }
