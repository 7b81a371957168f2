// Package config loads and validates backfill configuration.
//
// Configuration is YAML with ${VAR} environment variable expansion,
// resolved once at startup and passed into the components that need it.
package config
