// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	File    string  `toml:"file"`
	Watch   Watch   `toml:"watch"`
	Metrics Metrics `toml:"metrics"`
	Alerts  Alerts  `toml:"alerts"`
}

type Watch struct {
	Debounce         time.Duration `toml:"debounce"`
	MaxRescansPerSec float64       `toml:"max_rescans_per_sec"`
	Burst            int           `toml:"burst"`
}

type Metrics struct {
	// Observability listen address, e.g. ":9190". Empty disables the
	// server; it only runs in watch mode either way.
	Addr string `toml:"addr"`
}

type Alerts struct {
	Beep bool `toml:"beep"`
}

// Default is the configuration used when no config file exists and the
// target path comes from the command line.
func Default() *Config {
	cfg := &Config{Alerts: Alerts{Beep: true}}
	applyDefaults(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{Alerts: Alerts{Beep: true}}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.MaxRescansPerSec == 0 {
		cfg.Watch.MaxRescansPerSec = 4.0
	}
	if cfg.Watch.Burst == 0 {
		cfg.Watch.Burst = 1
	}
}
