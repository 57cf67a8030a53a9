package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turismocol/turismocol/internal/daemon"
	"github.com/turismocol/turismocol/internal/infra/seed"
	"github.com/turismocol/turismocol/internal/infra/sqlite"
)

func init() {
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample destination catalog and rewards",
	Long: `Load the embedded Boyacá and Cundinamarca destination catalog and the
partner reward definitions into local storage. Safe to run repeatedly:
existing destinations are kept and reward redemption counters survive.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := daemon.Load(configPath)
	if err != nil {
		return err
	}

	db, err := sqlite.Open(cfg.Storage.Dir)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if err := seed.Load(db); err != nil {
		return err
	}

	fmt.Printf("Seeded %d destinations and %d rewards into %s\n",
		len(seed.Destinations), len(seed.Rewards), cfg.Storage.Dir)
	return nil
}
