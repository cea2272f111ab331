package config

import "time"

// Default configuration values.
const (
	DefaultOutput          = "auto" // TTY=text, non-TTY=markdown
	DefaultFixMode         = "safe"
	DefaultAddr            = ":8080"
	DefaultMaxBodyBytes    = 1 << 20
	DefaultShutdownTimeout = 5 * time.Second
)

// Defaults returns the default values as a flat koanf map.
func Defaults() map[string]any {
	return map[string]any{
		"output":                  DefaultOutput,
		"verbose":                 false,
		"jobs":                    0,
		"lint.strict":             false,
		"fix.mode":                DefaultFixMode,
		"server.addr":             DefaultAddr,
		"server.max_body_bytes":   DefaultMaxBodyBytes,
		"server.shutdown_timeout": DefaultShutdownTimeout.String(),
	}
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Fix:    FixConfig{Mode: DefaultFixMode},
		Server: ServerConfig{
			Addr:            DefaultAddr,
			MaxBodyBytes:    DefaultMaxBodyBytes,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}
