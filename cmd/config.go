package cmd

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the optional settings file at ~/.ozpocket/config.toml.
// Command-line flags override it.
type Config struct {
	SnapshotFile   string `toml:"snapshot_file"`
	RateURL        string `toml:"rate_url"`
	RefreshMinutes int    `toml:"refresh_minutes"`
}

var loadConfig = sync.OnceValue(func() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}
	}
	return readConfig(filepath.Join(home, ".ozpocket", "config.toml"))
})

func readConfig(path string) (cfg Config) {
	data, err := os.ReadFile(path)
	if err != nil {
		// A missing config file is the normal case.
		return Config{}
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		log.Printf("warning, ignoring unreadable config %s: %v", path, err)
		return Config{}
	}
	return cfg
}
