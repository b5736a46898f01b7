package main

import (
	"context"
	"errors"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/ledger/internal/adapters/clock"
	"github.com/vncsmyrnk/ledger/internal/adapters/handler/http"
	"github.com/vncsmyrnk/ledger/internal/adapters/idgen"
	"github.com/vncsmyrnk/ledger/internal/core/services"
)

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (overrides LEDGER_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the ledger HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cfg.LogLevel)

		repo, closeStore, err := openStore(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		ledger := services.NewLedgerService(repo, clock.NewSystem(), idgen.NewUUIDGenerator(), logger)
		handler := http.NewHandler(
			http.NewVoteHandler(ledger),
			http.NewTallyHandler(services.NewTallyService(ledger)),
		)
		server := &stdhttp.Server{Addr: cfg.Addr, Handler: handler}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			logger.Info("ledger listening", "addr", cfg.Addr, "store", cfg.Store)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			return err
		case <-ctx.Done():
		}
		logger.Info("gracefully shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	},
}
