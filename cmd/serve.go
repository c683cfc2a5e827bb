package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/drip/glance"
	"github.com/etnz/drip/logger"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the glance view over HTTP" }
func (*serveCmd) Usage() string {
	return `dripctl -shared <dir> serve [-addr <host:port>]

  Serves GET /glance?on=<day> and GET /healthz. The view is read from the
  shared directory on every request. Logs are written as JSON lines.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8080", "listen address")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if *sharedDir == "" {
		return usageError(fmt.Errorf("-shared or %s is required", EnvSharedDir))
	}
	level, _ := logger.ParseLevel(*logLevel)
	log := logger.NewService(level, os.Stdout)

	srv := &http.Server{
		Addr:              c.addr,
		Handler:           glance.NewRouter(log, glance.Reader{Root: *sharedDir}, today),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", c.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			return subcommands.ExitFailure
		}
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Error("shutdown failed", "error", err)
			return subcommands.ExitFailure
		}
		log.Info("stopped")
	}
	return subcommands.ExitSuccess
}
