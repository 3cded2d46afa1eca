// Package config handles loading Blush's TOML configuration.
//
// The Load function resolves ~/.config/blush/config.toml unless an explicit
// path is given, expands "~" in paths, and falls back to sensible defaults
// when the file is missing or fields are empty:
//
//	api_url  = "https://dummyjson.com"
//	data_dir = "~/.local/share/blush"
//
// A missing config file is not an error; the app works out of the box. Real
// read or parse failures are reported so a broken file is not silently
// ignored.
package config
