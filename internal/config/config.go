package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dshills/replterm/internal/console"
	"github.com/dshills/replterm/internal/logging"
	"github.com/dshills/replterm/internal/repl"
)

// Config holds every replterm setting.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Scripts lists Lua files whose commands are installed in every window.
	Scripts []string `toml:"scripts" yaml:"scripts"`

	Window  WindowConfig  `toml:"window" yaml:"window"`
	Console ConsoleConfig `toml:"console" yaml:"console"`
}

// WindowConfig holds the defaults applied to new windows.
type WindowConfig struct {
	Prompt        string `toml:"prompt" yaml:"prompt"`
	CaseSensitive bool   `toml:"case_sensitive" yaml:"case_sensitive"`
	ParseEmpty    bool   `toml:"parse_empty" yaml:"parse_empty"`
	HandleHelp    bool   `toml:"handle_help" yaml:"handle_help"`
}

// ConsoleConfig holds interactive console settings.
type ConsoleConfig struct {
	// PollInterval is a Go duration string such as "1ms".
	PollInterval string `toml:"poll_interval" yaml:"poll_interval"`

	// HistoryLimit caps submitted lines kept for recall. 0 keeps all.
	HistoryLimit int `toml:"history_limit" yaml:"history_limit"`

	// ScrollbackLimit caps output lines kept. 0 keeps all.
	ScrollbackLimit int `toml:"scrollback_limit" yaml:"scrollback_limit"`

	Status    string `toml:"status" yaml:"status"`
	EchoInput bool   `toml:"echo_input" yaml:"echo_input"`

	// Keys maps action names to key specs, e.g. scroll_up = "Ctrl+U".
	Keys map[string]string `toml:"keys" yaml:"keys"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Prompt:     repl.DefaultPrompt,
			HandleHelp: true,
		},
		Console: ConsoleConfig{
			PollInterval: console.DefaultPollInterval.String(),
			EchoInput:    true,
		},
	}
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, &ValidationError{Path: "log_level", Message: fmt.Sprintf("unknown level %q", c.LogLevel)})
	}
	if d, err := time.ParseDuration(c.Console.PollInterval); err != nil {
		errs = append(errs, &ValidationError{Path: "console.poll_interval", Message: err.Error(), Err: err})
	} else if d <= 0 {
		errs = append(errs, &ValidationError{Path: "console.poll_interval", Message: "must be positive"})
	}
	if c.Console.HistoryLimit < 0 {
		errs = append(errs, &ValidationError{Path: "console.history_limit", Message: "must not be negative"})
	}
	if c.Console.ScrollbackLimit < 0 {
		errs = append(errs, &ValidationError{Path: "console.scrollback_limit", Message: "must not be negative"})
	}
	if _, err := console.ParseKeyMap(c.Console.Keys); err != nil {
		errs = append(errs, &ValidationError{Path: "console.keys", Message: err.Error(), Err: err})
	}
	for i, s := range c.Scripts {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, &ValidationError{Path: fmt.Sprintf("scripts[%d]", i), Message: "empty path"})
		}
	}

	return errors.Join(errs...)
}

// Level returns the configured log level.
func (c *Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}

// PollInterval returns the console poll interval, falling back to the
// default when the setting does not parse.
func (c *Config) PollInterval() time.Duration {
	d, err := time.ParseDuration(c.Console.PollInterval)
	if err != nil || d <= 0 {
		return console.DefaultPollInterval
	}
	return d
}

// WindowOptions converts the window section to repl options.
func (c *Config) WindowOptions() []repl.Option {
	return []repl.Option{
		repl.WithPrompt(c.Window.Prompt),
		repl.WithCaseSensitive(c.Window.CaseSensitive),
		repl.WithParseEmpty(c.Window.ParseEmpty),
		repl.WithHelp(c.Window.HandleHelp),
	}
}

// ConsoleOptions converts the console section to console options.
func (c *Config) ConsoleOptions() ([]console.Option, error) {
	km, err := console.ParseKeyMap(c.Console.Keys)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	opts := []console.Option{
		console.WithKeyMap(km),
		console.WithPollInterval(c.PollInterval()),
		console.WithHistoryLimit(c.Console.HistoryLimit),
		console.WithScrollbackLimit(c.Console.ScrollbackLimit),
		console.WithEcho(c.Console.EchoInput),
	}
	if c.Console.Status != "" {
		opts = append(opts, console.WithStatus(c.Console.Status))
	}
	return opts, nil
}
