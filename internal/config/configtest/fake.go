// Package configtest provides a minimal in-memory config.Config for
// tests.
package configtest

import "github.com/radio4000/r4fs/internal/config"

// Fake is a plain in-memory config.Config.
type Fake struct {
	Mount       string
	Download    string
	Favs        []string
	Dls         []string
	SettingsVal config.Settings
	SBURL       string
	SBKey       string
}

func (f *Fake) MountPoint() string          { return f.Mount }
func (f *Fake) DownloadDir() string         { return f.Download }
func (f *Fake) Favorites() []string         { return f.Favs }
func (f *Fake) Downloads() []string         { return f.Dls }
func (f *Fake) Settings() config.Settings   { return f.SettingsVal }
func (f *Fake) SupabaseURL() string         { return f.SBURL }
func (f *Fake) SupabaseKey() string         { return f.SBKey }
