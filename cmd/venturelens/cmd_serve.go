package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/venturelens/venturelens/internal/webserver"
)

func newServeCommand() *cobra.Command {
	var (
		modelsDir   string
		policyPath  string
		host        string
		port        int
		allowRemote bool
		corsOrigins []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the prediction engine over HTTP",
		Long: `Serve the prediction engine over HTTP.

The server binds to loopback (127.0.0.1) by default. Use --allow-remote to
bind to all interfaces.

Endpoints:
  POST /api/predict     Score a metric set
  POST /api/recommend   Score and suggest improvements
  GET  /api/model-info  Loaded bundle and policy metadata
  GET  /api/health      Liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(modelsDir, policyPath)
			if err != nil {
				return err
			}

			if port == 0 {
				port = env.cfg.Server.Port
			}
			origins := corsOrigins
			if len(origins) == 0 {
				origins = env.cfg.Server.AllowedOrigins
			}
			if allowRemote {
				host = "0.0.0.0"
				slog.Warn("binding to all interfaces; the API has no authentication")
			}

			srv := webserver.New(webserver.Config{
				Host:           host,
				Port:           port,
				AllowedOrigins: origins,
				Logger:         slog.Default(),
			}, env.eng)

			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&modelsDir, "models", "", "Model bundle directory (default from project config)")
	cmd.Flags().StringVar(&policyPath, "policy", "", "Policy file path (default from project config)")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind (default 127.0.0.1)")
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default from project config)")
	cmd.Flags().BoolVar(&allowRemote, "allow-remote", false,
		"Bind to all interfaces (WARNING: exposes the server to the network with no authentication)")
	cmd.Flags().StringSliceVar(&corsOrigins, "cors-origin", nil, "Allowed CORS origin (repeatable)")

	return cmd
}
