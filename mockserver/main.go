package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"go-shop-sync/internal/catalog"
	"go-shop-sync/internal/config"
	"go-shop-sync/internal/mockbackend"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {

	cnf := config.LoadConfigOrPanic()
	zerolog.SetGlobalLevel(cnf.LogLevel())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	snapshot, err := catalog.LoadFile(cnf.MockServer.CatalogPath)
	if err != nil {
		panic(err)
	}

	backend := mockbackend.New(snapshot, cnf.UserId)
	srv := &http.Server{
		Addr:              cnf.MockServer.Addr,
		Handler:           backend.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, gctx := errgroup.WithContext(context.Background())
	group.Go(func() error {
		log.Info().Str("addr", srv.Addr).Int("products", len(snapshot.Products())).Msg("mock backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Handles SIGINT and SIGTERM.
	wait := gfshutdown.GracefulShutdown(context.Background(), shutdownTimeout, map[string]gfshutdown.Operation{
		"mock-backend": func(ctx context.Context) error {
			log.Info().Msg("mock backend shutting down")
			return srv.Shutdown(ctx)
		},
	})

	select {
	case code := <-wait:
		_ = group.Wait()
		os.Exit(code)
	case <-gctx.Done():
		// errgroup encountered an error
		log.Error().Err(group.Wait()).Msg("mock backend stopped")
		os.Exit(1)
	}
}
