package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/autolint/internal/server"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Addr         string
	MaxBodyBytes int64
	APIToken     string
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lint API over HTTP",
		Long: `Start an HTTP server exposing the lint engine.

Endpoints:
  POST /lint    {"content": "...", "strict": false, "rules": {"MAINT005": true}}
  POST /fix     {"content": "...", "fix_mode": "safe"}
  GET  /rules   rule catalog
  GET  /health  liveness

Set server.api_token (or AUTOLINT_SERVER_API_TOKEN) to require a bearer
token on every endpoint except /health.`,
		Example: `  # Serve on the default address (:8080)
  autolint serve

  # Serve on localhost only
  autolint serve --addr 127.0.0.1:9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "Listen address (default :8080)")
	cmd.Flags().Int64Var(&opts.MaxBodyBytes, "max-body-bytes", 0, "Largest accepted request body (default 1 MiB)")
	cmd.Flags().StringVar(&opts.APIToken, "api-token", "", "Bearer token required by the API")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx, err := NewCommandContext(cmd, "")
	if err != nil {
		return err
	}

	serverCfg := cmdCtx.Cfg.Server
	if opts.Addr != "" {
		serverCfg.Addr = opts.Addr
	}
	if opts.MaxBodyBytes > 0 {
		serverCfg.MaxBodyBytes = opts.MaxBodyBytes
	}
	if opts.APIToken != "" {
		serverCfg.APIToken = opts.APIToken
	}

	fixMode, err := cmdCtx.Cfg.FixMode()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Engine:         cmdCtx.Engine,
		Server:         serverCfg,
		DefaultFixMode: fixMode,
		Logger:         cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	return srv.Serve(cmd.Context())
}
