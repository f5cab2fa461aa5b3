package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/immersivevr/immersive/pkg/cli/config"
	httpctrl "github.com/immersivevr/immersive/pkg/controller/http"
	"github.com/immersivevr/immersive/pkg/usecase"
	"github.com/immersivevr/immersive/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var addr string
	var catalogCfg config.Catalog
	var metricsCfg config.Metrics

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("IMMERSIVE_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, metricsCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the catalog API and the web viewer",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := catalogCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize catalog")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo)

			var httpOpts []httpctrl.Options
			if metrics := metricsCfg.Configure(); metrics != nil {
				size, err := uc.Catalog.CatalogSize(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to count catalog records")
				}
				metrics.SetCatalogSize(size)
				httpOpts = append(httpOpts, httpctrl.WithMetrics(metrics))
				logging.Default().Info("Prometheus metrics enabled", "path", "/metrics")
			}

			httpHandler, err := httpctrl.New(uc.Catalog, httpOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			return serveUntilSignal(ctx, server)
		},
	}
}

// serveUntilSignal runs server until SIGINT/SIGTERM or ctx cancellation and
// then shuts it down gracefully.
func serveUntilSignal(ctx context.Context, server *http.Server) error {
	ctx, stop := signalContext(ctx)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logging.Default().Info("Starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return goerr.Wrap(err, "failed to start server", goerr.V("addr", server.Addr))
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		logging.Default().Info("Shutting down HTTP server", "cause", context.Cause(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return goerr.Wrap(err, "failed to shutdown server gracefully")
		}
		logging.Default().Info("Server shutdown completed")
		return nil
	})

	return eg.Wait()
}

// signalContext is canceled on SIGINT or SIGTERM
func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
