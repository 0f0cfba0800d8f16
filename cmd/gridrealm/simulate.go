package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quintrel/gridrealm/internal/config"
	"github.com/quintrel/gridrealm/internal/sim"
	"github.com/quintrel/gridrealm/internal/storage"
)

var (
	flagDays    int
	flagSaveSim bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [city]",
	Short: "Run the simulation headless",
	Long: `Advance a city by a number of days without the UI and print the
resulting statistics. Useful for balancing configs and for watching
how a saved city develops on its own.

Examples:
  gridrealm simulate --days 100
  gridrealm simulate avalon --days 30
  gridrealm simulate avalon --days 30 --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagDays, "days", 10, "Number of days to simulate")
	simulateCmd.Flags().BoolVar(&flagSaveSim, "save", false, "Write the result back to the save")
}

func runSimulate(cmd *cobra.Command, args []string) {
	cityName := "capital"
	if len(args) > 0 {
		cityName = args[0]
	}
	if flagDays < 1 {
		fmt.Fprintln(os.Stderr, "Error: --days must be at least 1")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	catalog, err := sim.NewCatalog(cfg.Buildings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tuning := sim.TuningFromConfig(cfg)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	grid := sim.NewGrid(cfg.Grid.Size)
	stats := sim.NewStats(cfg.Economy.InitialMoney, cfg.Economy.TaxRate)
	if saved, savedStats, found, loadErr := store.LoadCity(cityName); loadErr == nil && found {
		grid, stats = saved, savedStats
	} else {
		fmt.Printf("No save named %q, simulating a fresh realm\n", cityName)
	}

	startDay := stats.Day
	for i := 0; i < flagDays; i++ {
		grid, stats = sim.Tick(grid, stats, catalog, tuning)
	}

	fmt.Printf("Simulated %s from day %d to day %d\n\n", cityName, startDay, stats.Day)
	fmt.Printf("  %-12s %d\n", "Gold", stats.Money)
	fmt.Printf("  %-12s %d\n", "Population", stats.Population)
	fmt.Printf("  %-12s %d\n", "Happiness", stats.Happiness)
	fmt.Printf("  %-12s %d / %d\n", "Mana", stats.ManaUsage, stats.ManaSupply)
	fmt.Printf("  %-12s %d / %d\n", "Essence", stats.EssenceUsage, stats.EssenceSupply)
	fmt.Printf("  %-12s %d\n", "Structures", grid.CountOccupied())

	if flagSaveSim {
		if err := store.SaveCity(cityName, grid, stats); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nSaved %s at day %d\n", cityName, stats.Day)
	}
}
