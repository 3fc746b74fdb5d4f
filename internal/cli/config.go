package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/tickerhub/cryptocompare/pkg/buildinfo"
	"github.com/tickerhub/cryptocompare/pkg/cryptocompare"
)

// appName is the application name used for config paths and display.
const appName = "cryptocompare"

// Config holds the process configuration read at startup. All fields are
// optional; zero values fall back to the library defaults.
type Config struct {
	TimeoutMS  int    `toml:"timeout_ms"`   // default request timeout in milliseconds
	UserAgent  string `toml:"user_agent"`   // User-Agent header for API requests
	MiniAPIURL string `toml:"mini_api_url"` // override for the mini API base URL
	FullAPIURL string `toml:"full_api_url"` // override for the full API base URL
}

// loadConfig reads the configuration file and applies environment overrides.
//
// The file is located, in order: the explicit path argument, the
// CRYPTOCOMPARE_CONFIG environment variable, then config.toml in the user
// config dir (e.g. ~/.config/cryptocompare/). A missing default file is not
// an error; a missing explicit file is.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = os.Getenv("CRYPTOCOMPARE_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, appName, "config.toml")
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if explicit || !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overrides cfg fields from CRYPTOCOMPARE_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("CRYPTOCOMPARE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutMS = ms
		}
	}
	if v := os.Getenv("CRYPTOCOMPARE_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("CRYPTOCOMPARE_MINI_API_URL"); v != "" {
		cfg.MiniAPIURL = v
	}
	if v := os.Getenv("CRYPTOCOMPARE_FULL_API_URL"); v != "" {
		cfg.FullAPIURL = v
	}
}

// clientConfig maps the process configuration onto the library Config.
func (c Config) clientConfig(logger *log.Logger) cryptocompare.Config {
	agent := c.UserAgent
	if agent == "" {
		agent = fmt.Sprintf("%s-cli/%s", appName, buildinfo.Version)
	}
	return cryptocompare.Config{
		Timeout:    time.Duration(c.TimeoutMS) * time.Millisecond,
		MiniAPIURL: c.MiniAPIURL,
		FullAPIURL: c.FullAPIURL,
		UserAgent:  agent,
		Logger:     logger,
	}
}
