// Package cli implements the turismocol command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turismocol/turismocol/internal/daemon"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "turismocol",
	Short: "Engagement and recommendation backend for Colombian tourism",
	Long: `turismocol serves the engagement backend for the tourism catalog:
destination search over the RNT registry, a points ledger with levels,
partner reward redemption and personalized recommendations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", daemon.DefaultConfigPath(),
		"Path to the TOML configuration file")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the turismocol version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
