package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/lib/pq"
	"github.com/vncsmyrnk/ledger/internal/adapters/repository/gormstore"
	"github.com/vncsmyrnk/ledger/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/ledger/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/ledger/internal/config"
	"github.com/vncsmyrnk/ledger/internal/core/ports"
)

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// requireDurableStore rejects the memory store for one-shot commands, which
// would only ever see the empty ledger of their own process.
func requireDurableStore(cfg config.Config, command string) error {
	if cfg.Store == config.StoreMemory {
		return fmt.Errorf("%s needs a durable store: set LEDGER_STORE or --store to %q or %q",
			command, config.StorePostgres, config.StoreGorm)
	}
	return nil
}

func openSQL(db config.DBConfig) (*sql.DB, error) {
	conn, err := sql.Open("postgres", db.ConnString())
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return conn, nil
}

// openStore builds the configured vote store. The returned close function is
// never nil.
func openStore(cfg config.Config, logger *slog.Logger) (ports.VoteRepository, func() error, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := openSQL(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewVoteRepository(db), db.Close, nil
	case config.StoreGorm:
		db, err := gormstore.Connect(cfg.DB.ConnString())
		if err != nil {
			return nil, nil, err
		}
		return gormstore.NewRepository(db, logger), func() error { return gormstore.Close(db) }, nil
	default:
		return memory.NewVoteRepository(), func() error { return nil }, nil
	}
}
