package daemon

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ritualforge/ritual/internal/api"
	"github.com/ritualforge/ritual/internal/app/plan"
	"github.com/ritualforge/ritual/internal/app/progress"
	"github.com/ritualforge/ritual/internal/infra/catalog"
	_ "github.com/ritualforge/ritual/internal/infra/metrics" // Register Prometheus metrics
	"github.com/ritualforge/ritual/internal/infra/sqlite"
	"github.com/ritualforge/ritual/internal/infra/store"
)

// Daemon is the Ritual engine runtime. It wires the store, ledger, plan
// builder, and API server together.
type Daemon struct {
	Config  Config
	Store   store.Gateway
	Ledger  *progress.Ledger
	Planner *plan.Builder
	Server  *api.Server
}

// New creates a Daemon with all services wired. The catalog is validated
// fail-fast here: it is compiled-in, so an invalid entry is fatal.
func New(cfg Config) (*Daemon, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	gw, err := openStore(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	ledger, err := progress.NewLedger(gw)
	if err != nil {
		gw.Close()
		return nil, fmt.Errorf("init ledger: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	planner := plan.NewBuilder(ledger, rng)
	server := api.NewServer(ledger, planner, rng)

	return &Daemon{
		Config:  cfg,
		Store:   gw,
		Ledger:  ledger,
		Planner: planner,
		Server:  server,
	}, nil
}

// openStore constructs the configured persistence gateway.
func openStore(cfg StorageConfig) (store.Gateway, error) {
	switch cfg.Backend {
	case "sqlite":
		return sqlite.Open(cfg.Dir)
	case "", "json":
		return store.OpenFile(cfg.Dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Run serves the HTTP API until the context is cancelled or a signal
// arrives, then shuts down cleanly.
func (d *Daemon) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: d.Server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[daemon] listening on http://%s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		d.Close()
		return fmt.Errorf("serve: %w", err)
	case sig := <-sigCh:
		log.Printf("[daemon] received %s, shutting down", sig)
	case <-ctx.Done():
		log.Printf("[daemon] context cancelled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[daemon] shutdown error: %v", err)
	}
	return d.Close()
}

// Close releases the persistence gateway. Pending writes complete before
// the process tears down; saves are atomic-replace, so a crash can lose
// at most the latest unflushed mutation, never corrupt the record.
func (d *Daemon) Close() error {
	if err := d.Store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}
