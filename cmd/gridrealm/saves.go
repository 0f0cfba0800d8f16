package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quintrel/gridrealm/internal/storage"
)

var flagDelete string

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved cities",
	Long: `Display all saved cities, most recently played first.

Examples:
  gridrealm saves
  gridrealm saves --delete avalon`,
	Args: cobra.NoArgs,
	Run:  runSaves,
}

func init() {
	savesCmd.Flags().StringVar(&flagDelete, "delete", "", "Delete the named save instead of listing")
}

func runSaves(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDelete != "" {
		if err := store.DeleteCity(flagDelete); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %s\n", flagDelete)
		return
	}

	infos, err := store.ListCities()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing saves: %v\n", err)
		os.Exit(1)
	}

	if len(infos) == 0 {
		fmt.Println("No saved cities yet.")
		fmt.Println()
		fmt.Println("Run 'gridrealm play' to found your first realm.")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-10s  %-8s  %s\n", "City", "Day", "Population", "Gold", "Last played")
	fmt.Printf("  %-16s  %-6s  %-10s  %-8s  %s\n", "----", "---", "----------", "----", "-----------")
	for _, info := range infos {
		fmt.Printf("  %-16s  %-6d  %-10d  %-8d  %s\n",
			info.Name, info.Day, info.Population, info.Money,
			info.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
