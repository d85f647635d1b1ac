package cli

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackplan/internal/server"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr string
		root string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve build plans over HTTP",
		Long: `Serve exposes detection and planning over HTTP:

  GET  /healthz
  GET  /providers
  POST /detect   {"path": "..."}
  POST /plan     {"path": "...", "provider": "", "env": {"KEY": "VALUE"}}

With --root, request paths are resolved inside that directory and may not
escape it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(c.newRunner(cmd), logger, root),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr, "root", root)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if stderrors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				logger.Info("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&root, "root", "", "restrict request paths to this directory")

	return cmd
}
