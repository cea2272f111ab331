// Package config loads autolint configuration for the CLI.
//
// The configuration types live in internal/config so the HTTP server can
// share them; they are re-exported here via type aliases for convenience.
package config

import (
	sharedcfg "github.com/leapstack-labs/autolint/internal/config"
)

// Config is an alias for the shared configuration.
type Config = sharedcfg.Config

// LintConfig is an alias for the shared lint configuration.
type LintConfig = sharedcfg.LintConfig

// ServerConfig is an alias for the shared server configuration.
type ServerConfig = sharedcfg.ServerConfig
