package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/simonhull/promptly/input"
	"github.com/simonhull/promptly/logger"
	"github.com/spf13/viper"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid configuration")

// Diagnostics streams
const (
	StreamStderr = "stderr"
	StreamStdout = "stdout"
)

// Failure policies
const (
	FailExit   = "exit"
	FailReturn = "return"
)

// Config holds engine settings read from promptly.yml and PROMPTLY_* variables
type Config struct {
	Diagnostics     string `mapstructure:"diagnostics"`      // stderr or stdout
	OnFailure       string `mapstructure:"on_failure"`       // exit or return
	ExitCode        int    `mapstructure:"exit_code"`        // Status used by the exit policy
	LogLevel        string `mapstructure:"log_level"`        // debug, info, warn, error, silent
	NoColor         bool   `mapstructure:"no_color"`         // Plain diagnostics
	Interactive     string `mapstructure:"interactive"`      // auto, always, never
	RequiredMessage string `mapstructure:"required_message"` // Printed for empty required answers
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Diagnostics:     StreamStderr,
		OnFailure:       FailExit,
		ExitCode:        1,
		LogLevel:        "silent",
		Interactive:     string(input.ModeAuto),
		RequiredMessage: "Value is required.",
	}
}

// Load reads configuration from defaults, a config file and the environment.
//
// With an empty path, promptly.yml is looked up in the working directory and
// a missing file is not an error. An explicit path must exist. Environment
// variables (PROMPTLY_ON_FAILURE, PROMPTLY_LOG_LEVEL, ...) override the file;
// NO_COLOR is honoured as well.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("diagnostics", def.Diagnostics)
	v.SetDefault("on_failure", def.OnFailure)
	v.SetDefault("exit_code", def.ExitCode)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("no_color", def.NoColor)
	v.SetDefault("interactive", def.Interactive)
	v.SetDefault("required_message", def.RequiredMessage)

	// Enable environment variable overrides
	v.SetEnvPrefix("PROMPTLY")
	v.AutomaticEnv()
	if err := v.BindEnv("no_color", "PROMPTLY_NO_COLOR", "NO_COLOR"); err != nil {
		return nil, fmt.Errorf("binding NO_COLOR: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("promptly")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated fields and normalises their case
func (c *Config) Validate() error {
	c.Diagnostics = strings.ToLower(strings.TrimSpace(c.Diagnostics))
	c.OnFailure = strings.ToLower(strings.TrimSpace(c.OnFailure))

	switch c.Diagnostics {
	case StreamStderr, StreamStdout:
	default:
		return fmt.Errorf("%w: diagnostics must be %q or %q, got %q", ErrInvalid, StreamStderr, StreamStdout, c.Diagnostics)
	}

	switch c.OnFailure {
	case FailExit, FailReturn:
	default:
		return fmt.Errorf("%w: on_failure must be %q or %q, got %q", ErrInvalid, FailExit, FailReturn, c.OnFailure)
	}

	if c.ExitCode <= 0 || c.ExitCode > 255 {
		return fmt.Errorf("%w: exit_code must be between 1 and 255, got %d", ErrInvalid, c.ExitCode)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	mode, err := input.ParseMode(c.Interactive)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	c.Interactive = string(mode)

	if strings.TrimSpace(c.RequiredMessage) == "" {
		return fmt.Errorf("%w: required_message must not be empty", ErrInvalid)
	}

	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c *Config) Level() logger.Level {
	l, _ := logger.ParseLevel(c.LogLevel)
	return l
}

// Mode returns the parsed input mode. Call after Validate.
func (c *Config) Mode() input.Mode {
	m, _ := input.ParseMode(c.Interactive)
	return m
}
