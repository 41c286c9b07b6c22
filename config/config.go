// Package config loads the logging configuration of the extension and builds the Facade it describes.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/omnioperator/omnilog/envvar"
	"github.com/omnioperator/omnilog/log"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid logging configuration")

// Environment variables which override values from the configuration file.
const (
	EnvLevel      = "OMNI_LOG_LEVEL"
	EnvFormat     = "OMNI_LOG_FORMAT"
	EnvOutput     = "OMNI_LOG_OUTPUT"
	EnvColor      = "OMNI_LOG_COLOR"
	EnvBufferSize = "OMNI_LOG_BUFFER_SIZE"
	EnvRateLimit  = "OMNI_LOG_RATE_LIMIT"
	EnvRateBurst  = "OMNI_LOG_RATE_BURST"
)

// Supported outputs.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// FileConfig configures the rotated log file used by the "file" output.
type FileConfig struct {
	Path       string `mapstructure:"path" json:"path,omitempty"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" json:"max_size_mb,omitempty" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" json:"max_backups,omitempty" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" json:"max_age_days,omitempty" validate:"gte=0"`
	Compress   bool   `mapstructure:"compress" json:"compress,omitempty"`
}

// RateLimitConfig limits the rate of records below the error level, a zero rate disables the limit.
type RateLimitConfig struct {
	PerSecond float64 `mapstructure:"per_second" json:"per_second,omitempty" validate:"gte=0"`
	Burst     int     `mapstructure:"burst" json:"burst,omitempty" validate:"gte=0"`
}

// Config describes the logging setup.
type Config struct {
	Level      string          `mapstructure:"level" json:"level" validate:"required,oneof=trace debug info warn warning error off none"`
	Format     string          `mapstructure:"format" json:"format" validate:"required,oneof=text json"`
	Output     string          `mapstructure:"output" json:"output" validate:"required,oneof=stdout stderr file"`
	Color      bool            `mapstructure:"color" json:"color"`
	BufferSize int             `mapstructure:"buffer_size" json:"buffer_size" validate:"gte=2,lte=1048576"`
	Metrics    bool            `mapstructure:"metrics" json:"metrics"`
	File       FileConfig      `mapstructure:"file" json:"file"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit" json:"rate_limit"`
}

// Default returns the configuration used when no file is given: info and above, as text, to stderr.
func Default() Config {
	return Config{
		Level:      "info",
		Format:     "text",
		Output:     OutputStderr,
		BufferSize: log.DefaultBufferSize,
	}
}

var validate = validator.New()

// Validate checks that the configuration can be built.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if c.Output == OutputFile && c.File.Path == "" {
		return fmt.Errorf("%w: file output requires 'file.path'", ErrInvalid)
	}

	return nil
}

// ThresholdLevel returns the parsed minimum level.
func (c Config) ThresholdLevel() (log.Level, error) {
	return log.ParseLevel(c.Level)
}

// applyEnv overrides values using the environment, environment variables take precedence over the file. Values which
// can't be parsed are ignored.
func (c *Config) applyEnv() {
	if level, ok := envvar.GetLevel(EnvLevel); ok {
		c.Level = level.String()
	}

	if format, ok := envvar.GetString(EnvFormat); ok {
		c.Format = format
	}

	if output, ok := envvar.GetString(EnvOutput); ok {
		c.Output = output
	}

	if color, ok := envvar.GetBool(EnvColor); ok {
		c.Color = color
	}

	if size, ok := envvar.GetInt(EnvBufferSize); ok {
		c.BufferSize = size
	}

	if perSecond, ok := envvar.GetFloat64(EnvRateLimit); ok {
		c.RateLimit.PerSecond = perSecond
	}

	if burst, ok := envvar.GetInt(EnvRateBurst); ok {
		c.RateLimit.Burst = burst
	}
}

// normalize lower cases the enumerated values so that "INFO" and "info" are equivalent.
func (c *Config) normalize() {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
}
