package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/maloquacious/commdir/internal/server"
	"github.com/maloquacious/commdir/internal/store/sqlite"
)

// runServe prepares the store and runs the public and admin servers until
// a signal, /admin/shutdown, the exit-after timer or a server error.
// Any storage failure before listening is fatal.
func (a *app) runServe(cmd *cobra.Command, args []string) error {
	cfg := a.cfg

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	st := sqlite.New(cfg.DBPath, a.log)
	if err := st.Open(); err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	reset, err := st.EnsureSchema(ctx)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	if reset {
		a.log.Warn("people table did not match the expected columns and was recreated")
	}
	if _, err := st.SeedIfEmpty(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	srv := server.New(cfg, st, a.log,
		server.WithVersion(version.String()),
		server.WithShutdown(cancel),
	)

	publicSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	servers := []*http.Server{publicSrv}

	// Bind admin to 127.0.0.1 only (loopback enforcement)
	var adminListener net.Listener
	var adminSrv *http.Server
	if cfg.AdminPort != 0 {
		adminListener, err = net.Listen("tcp", cfg.AdminAddr())
		if err != nil {
			return fmt.Errorf("admin listener bind failed (loopback only): %w", err)
		}
		adminSrv = &http.Server{
			Handler:           srv.AdminHandler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		servers = append(servers, adminSrv)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("public server listening on %s", publicSrv.Addr)
		if err := publicSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("public server error: %w", err)
		}
		return nil
	})

	if adminSrv != nil {
		g.Go(func() error {
			a.log.Info("admin server listening on %s (JSON-only)", adminListener.Addr())
			if err := adminSrv.Serve(adminListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("admin server error: %w", err)
			}
			return nil
		})
	}

	// Optional run timer
	if cfg.ExitAfter > 0 {
		g.Go(func() error {
			a.log.Info("exit-after timer set: %s", cfg.ExitAfter)
			select {
			case <-time.After(cfg.ExitAfter):
				cancel()
			case <-gctx.Done():
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down")
		shutdownCtx, done := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer done()
		var errs []error
		for _, s := range servers {
			errs = append(errs, s.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.log.Info("shutdown complete")
	return nil
}
