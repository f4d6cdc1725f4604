// Package config loads and validates lantern's TOML configuration.
package config
