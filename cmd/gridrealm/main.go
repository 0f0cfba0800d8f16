// gridrealm is a terminal fantasy city builder.
//
// Usage:
//
//	gridrealm play [city]        - Play a city (loads the save if one exists)
//	gridrealm simulate [city]    - Run the simulation headless for N days
//	gridrealm saves              - List saved cities
//	gridrealm serve              - Start SSH server for remote play
//	gridrealm config             - Print the default realm configuration
//
// Global flags:
//
//	--config <path> - Path to a custom realm config YAML
//	--db <path>     - Set database path (default: ~/.gridrealm/saves.db)
//	--seed <value>  - Set advisor RNG seed for reproducible quests
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridrealm",
	Short: "Gridrealm - Build a fantasy city in your terminal",
	Long: `Gridrealm is a terminal city builder. Found a realm, lay roads,
raise cottages and wizard towers, and keep your citizens happy while
the treasury holds.

Available commands:
  play     - Play a city interactively
  simulate - Run the simulation headless
  saves    - List saved cities
  serve    - Start SSH server for remote play
  config   - Print the default realm configuration

Examples:
  gridrealm play
  gridrealm play avalon
  gridrealm simulate --days 100
  gridrealm serve --ssh :2222
  gridrealm saves`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom realm config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridrealm/saves.db", "Path to saves database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Advisor RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
