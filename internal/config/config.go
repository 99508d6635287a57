// Package config implements the Config collaborator named in spec §6:
// settings.json, favorites.txt/downloads.txt, and environment
// overrides. It follows the getEnv/getEnvInt helper pattern used by
// the pack's own config loaders (Zzhihon-Bt1QFM/config/config.go),
// extended with github.com/joho/godotenv for .env support.
package config

import (
	"os"
	"path/filepath"
)

// YtDlpSettings mirrors spec §6's ytdlp.* settings fields.
type YtDlpSettings struct {
	Format             string `json:"format"`
	ExtractAudio       bool   `json:"extractAudio"`
	AudioFormat        string `json:"audioFormat"`
	AudioQuality       string `json:"audioQuality"`
	AddMetadata        bool   `json:"addMetadata"`
	EmbedThumbnail     bool   `json:"embedThumbnail"`
	WriteThumbnail     bool   `json:"writeThumbnail"`
	CookiesFile        string `json:"cookiesFile"`
	CookiesFromBrowser string `json:"cookiesFromBrowser"`
}

// Features mirrors spec §6's features.* settings fields.
type Features struct {
	OrganizeByTags bool `json:"organizeByTags"`
	RsyncEnabled   bool `json:"rsyncEnabled"`
}

// Paths mirrors spec §6's paths.* settings fields.
type Paths struct {
	MountPoint string `json:"mountPoint"`
	DownloadDir string `json:"downloadDir"`
}

// Mount mirrors spec §6's mount.* settings fields.
type Mount struct {
	Debug bool `json:"debug"`
}

// Settings is the on-disk settings.json shape. Unknown keys are
// ignored by encoding/json's default decode behavior, matching the
// spec's "unknown keys ignored" contract.
type Settings struct {
	Downloader string        `json:"downloader"`
	YtDlp      YtDlpSettings `json:"ytdlp"`
	Paths      Paths         `json:"paths"`
	Features   Features      `json:"features"`
	Mount      Mount         `json:"mount"`
}

func defaultSettings() Settings {
	home, _ := os.UserHomeDir()
	return Settings{
		Downloader: "yt-dlp",
		YtDlp: YtDlpSettings{
			Format:       "bestaudio/best",
			ExtractAudio: true,
			AudioFormat:  "mp3",
			AudioQuality: "0",
			AddMetadata:  true,
		},
		Paths: Paths{
			MountPoint:  filepath.Join(home, "mnt", "radio4000"),
			DownloadDir: filepath.Join(home, "radio4000-downloads"),
		},
		Features: Features{
			OrganizeByTags: true,
			RsyncEnabled:   false,
		},
	}
}

// Config is the collaborator interface the projection and download
// pipeline depend on.
type Config interface {
	MountPoint() string
	DownloadDir() string
	Favorites() []string
	Downloads() []string
	Settings() Settings
	SupabaseURL() string
	SupabaseKey() string
}

// FileConfig is the concrete, file- and environment-backed Config.
type FileConfig struct {
	dir        string
	settings   Settings
	favorites  []string
	downloads  []string
	supabaseURL string
	supabaseKey string
}

// getEnv mirrors Zzhihon-Bt1QFM's config.getEnv helper: look up an env
// var, falling back to a default when unset.
func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// firstEnv returns the first set environment variable among keys, or
// fallback. Used for the SUPABASE_* / VITE_SUPABASE_* alias pairs.
func firstEnv(fallback string, keys ...string) string {
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok && v != "" {
			return v
		}
	}
	return fallback
}
