package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/ledger/internal/adapters/clock"
	"github.com/vncsmyrnk/ledger/internal/adapters/idgen"
	"github.com/vncsmyrnk/ledger/internal/core/services"
)

func init() {
	rootCmd.AddCommand(tallyCmd)
}

var tallyCmd = &cobra.Command{
	Use:   "tally",
	Short: "Print the current tally from the configured store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireDurableStore(cfg, "tally"); err != nil {
			return err
		}
		logger := newLogger(cfg.LogLevel)

		repo, closeStore, err := openStore(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		ledger := services.NewLedgerService(repo, clock.NewSystem(), idgen.NewUUIDGenerator(), logger)
		tallyService := services.NewTallyService(ledger)

		// Use a timeout for the job execution to prevent it from hanging indefinitely
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		logger.Info("starting tally job", "store", cfg.Store)

		result, err := tallyService.Tally(ctx)
		if err != nil {
			return fmt.Errorf("error tallying votes: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CANDIDATE\tVOTES\tSHARE")
		for _, row := range result {
			fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", row.Candidate, row.VoteCount, row.Percentage)
		}
		return w.Flush()
	},
}
