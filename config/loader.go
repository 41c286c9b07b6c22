package config

import (
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/omnioperator/omnilog/log"
)

// ErrNoFile is returned when watching a Loader which wasn't given a configuration file.
var ErrNoFile = errors.New("no configuration file to watch")

// Loader reads a Config from an optional file (YAML, JSON or TOML, based on the extension) with environment
// overrides.
type Loader struct {
	path  string
	viper *viper.Viper
}

// NewLoader creates a Loader for the given file, an empty path results in the defaults plus environment overrides.
func NewLoader(path string) *Loader {
	v := viper.New()

	defaults := Default()
	v.SetDefault("level", defaults.Level)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("buffer_size", defaults.BufferSize)
	v.SetDefault("metrics", defaults.Metrics)

	if path != "" {
		v.SetConfigFile(path)
	}

	return &Loader{path: path, viper: v}
}

// Load reads and validates the configuration.
func (l *Loader) Load() (Config, error) {
	if l.path != "" {
		if err := l.viper.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file '%s': %w", l.path, err)
		}
	}

	return l.decode()
}

func (l *Loader) decode() (Config, error) {
	var cfg Config
	if err := l.viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.applyEnv()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Watch reloads the configuration file whenever it changes and applies the new level to threshold. Only the level is
// hot reloaded; other changes require the Facade to be rebuilt. Reloads which fail are reported to onError (which may
// be nil) and leave the threshold untouched.
//
// NOTE: Load must have been called successfully before Watch.
func (l *Loader) Watch(threshold *log.AtomicThreshold, onError func(error)) error {
	if l.path == "" {
		return ErrNoFile
	}

	l.viper.OnConfigChange(func(event fsnotify.Event) {
		cfg, err := l.decode()
		if err == nil {
			var level log.Level

			level, err = cfg.ThresholdLevel()
			if err == nil {
				threshold.SetLevel(level)
				return
			}
		}

		if onError != nil {
			onError(fmt.Errorf("failed to reload '%s': %w", event.Name, err))
		}
	})

	l.viper.WatchConfig()

	return nil
}
