// Package config loads cmdhelp settings.
// Values are layered: embedded defaults, then the user config file (TOML or
// YAML), then CMDHELP_* environment variables.
package config
