package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quintrel/gridrealm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default realm configuration",
	Long: `Print the built-in realm configuration YAML to stdout.

Save it, edit the numbers, and pass it back with --config to play
with your own balance:

  gridrealm config > my-realm.yaml
  gridrealm play --config my-realm.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if _, err := os.Stdout.Write(config.DefaultRealmYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
