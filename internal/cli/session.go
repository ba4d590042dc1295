package cli

import (
	"sync"

	"go-shop-sync/internal/api"
	"go-shop-sync/internal/catalog"
	"go-shop-sync/internal/config"
	"go-shop-sync/internal/engine"
	"go-shop-sync/internal/store"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session is one synchronized engine bound to a single command invocation.
type session struct {
	engine *engine.Engine
	out    *OutputFormatter

	failuresCh chan engine.Failure
	done       chan struct{}

	mu       sync.Mutex
	failures []engine.Failure
}

func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	cnf, err := config.Load()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}

	level := cnf.LogLevel()
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	path := opts.CatalogPath
	if path == "" {
		path = cnf.Catalog.Path
	}
	snapshot, err := catalog.LoadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load catalog", err)
	}

	client, err := api.New(cnf.Api)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "create api client", err)
	}

	s := &session{
		engine: engine.New(snapshot, engine.NewServices(client), engine.ConfigFrom(cnf)),
		out: &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   opts.Verbose,
		},
		failuresCh: make(chan engine.Failure, 32),
		done:       make(chan struct{}),
	}
	s.engine.Subscribe(s.failuresCh)
	go s.collect()

	s.engine.Start()
	s.engine.Wait()
	s.out.VerboseLog("catalog: %d products, basket: %d items", len(snapshot.Products()), len(s.store().Basket.Get()))

	return s, nil
}

func (s *session) store() *store.Store {
	return s.engine.Store()
}

func (s *session) collect() {
	defer close(s.done)
	for f := range s.failuresCh {
		s.mu.Lock()
		s.failures = append(s.failures, f)
		s.mu.Unlock()
	}
}

// close shuts the engine down and fails when any of ops reported a failure.
func (s *session) close(ops ...engine.Op) error {
	s.engine.Close()
	<-s.done

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.failures {
		s.out.VerboseLog("%s failed: %v", f.Op, f.Err)
	}
	for _, f := range s.failures {
		for _, op := range ops {
			if f.Op == op {
				return WrapExitError(ExitFailure, string(f.Op), f.Err)
			}
		}
	}
	return nil
}
