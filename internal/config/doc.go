// Package config defines the application configuration structure and
// loading logic. Configuration is sourced from environment variables
// (TASTYPOINT_ prefix) with an optional YAML file fallback, and is
// validated before use.
package config
