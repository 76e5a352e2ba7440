// Package config loads, validates, and normalizes bloggen configuration.
//
// Configuration is a TOML file with sections per subsystem (paths, ollama,
// generation, logging). Load applies defaults first, then file values, then
// environment overrides, expands ~ in all path fields, and validates the
// result. A sample configuration is embedded for 'bloggen config init'.
package config
