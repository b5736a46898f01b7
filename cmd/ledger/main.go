package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/ledger/internal/config"
)

var (
	cfg       config.Config
	storeFlag string
	addrFlag  string
)

var rootCmd = &cobra.Command{
	Use:          "ledger",
	Short:        "One-vote-per-voter ledger",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if storeFlag != "" {
			loaded.Store = storeFlag
		}
		if addrFlag != "" {
			loaded.Addr = addrFlag
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "vote store: memory, postgres or gorm (overrides LEDGER_STORE)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
