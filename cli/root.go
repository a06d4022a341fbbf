// Package cli implements the geohash command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "geohash",
	Short: "Encode, decode and serve geohash cells",
	Long: `geohash converts coordinates to geohash strings and back,
lists the cells around a hash, and serves the same operations over HTTP
together with a proximity index.`,
	SilenceUsage: true,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config.yaml)")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
