// Package config loads replterm settings from a TOML or YAML file.
//
// The format is chosen by file extension: ".toml" is decoded with
// go-toml, ".yaml" and ".yml" with yaml.v3. Keys that the file leaves out
// keep their defaults, and a missing file yields Default().
//
// Example (TOML):
//
//	log_level = "debug"
//	scripts = ["~/.config/replterm/commands.lua"]
//
//	[window]
//	prompt = "$ "
//	case_sensitive = false
//
//	[console]
//	poll_interval = "5ms"
//	history_limit = 500
//	scrollback_limit = 10000
//
//	[console.keys]
//	scroll_up = "Ctrl+U"
//	scroll_down = "Ctrl+D"
//
// Unknown keys are rejected so that typos surface as a ParseError instead of
// being silently ignored.
package config
