package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/kerbaras/audiobooks/pkg/utils"
)

// Config holds the process-wide settings. Precedence is
// flags > config file > defaults; the cmd layer applies the flag part.
type Config struct {
	OutputDir      string
	UserAgent      string
	PlaylistFormat string
	Workers        int
	HistoryDB      string
}

func Default() Config {
	wd, _ := os.Getwd()
	return Config{
		OutputDir:      wd,
		UserAgent:      utils.DefaultUserAgent,
		PlaylistFormat: "pls",
		Workers:        1,
		HistoryDB:      filepath.Join(configDir(), "history.db"),
	}
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	return filepath.Join(configDir(), "config.ini")
}

func configDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "audiobooks")
}

// Load reads an ini file over the defaults. A missing file is not an
// error; it just yields the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if _, err := os.Stat(path); err != nil {
		return c, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}

	sec := cfg.Section("general")
	if v := sec.Key("output_dir").String(); v != "" {
		c.OutputDir = v
	}
	if v := sec.Key("user_agent").String(); v != "" {
		c.UserAgent = v
	}
	if v := sec.Key("playlist_format").String(); v != "" {
		c.PlaylistFormat = v
	}
	if v, err := sec.Key("workers").Int(); err == nil && v > 0 {
		c.Workers = v
	}
	if v := sec.Key("history_db").String(); v != "" {
		c.HistoryDB = v
	}
	return c, nil
}
