package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quintrel/gridrealm/internal/advisor"
	"github.com/quintrel/gridrealm/internal/config"
	"github.com/quintrel/gridrealm/internal/platform/tui"
	"github.com/quintrel/gridrealm/internal/session"
	"github.com/quintrel/gridrealm/internal/sim"
	"github.com/quintrel/gridrealm/internal/storage"
)

// minTermWidth fits the map plus the side panel.
const minTermWidth = 76

var playCmd = &cobra.Command{
	Use:   "play [city]",
	Short: "Play a city",
	Long: `Open a city in the terminal. If a save with the given name exists
it is loaded, otherwise a fresh realm is founded. With no name the
most recently played city is resumed (or "capital" on first run).

Controls:
  Arrows/hjkl - Move cursor
  Tab/S-Tab   - Cycle structures
  Enter/B     - Build selected structure
  U           - Enhance structure
  X           - Clear tile
  Space/P     - Pause time
  E           - Change weather
  +/-         - Adjust tax rate
  Ctrl+S      - Save
  Q/Ctrl+C    - Save and quit

Examples:
  gridrealm play
  gridrealm play avalon
  gridrealm play --config ./my-realm.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cityName := ""
	if len(args) > 0 {
		cityName = args[0]
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

	// Warn early if the terminal is too narrow for the map
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && w < minTermWidth {
		fmt.Fprintf(os.Stderr, "Warning: terminal width %d is below %d, the map may wrap\n", w, minTermWidth)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open saves database: %v\n", err)
		// Continue without persistence
		store = nil
	}

	// With no city name, resume the most recently played save.
	if cityName == "" {
		cityName = "capital"
		if store != nil {
			if latest, found, latestErr := store.LatestCity(); latestErr == nil && found {
				cityName = latest
			}
		}
	}

	grid := sim.NewGrid(cfg.Grid.Size)
	stats := sim.NewStats(cfg.Economy.InitialMoney, cfg.Economy.TaxRate)
	if store != nil {
		if saved, savedStats, found, loadErr := store.LoadCity(cityName); loadErr == nil && found {
			grid, stats = saved, savedStats
			fmt.Printf("Loaded %s (day %d)\n", cityName, stats.Day)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess := session.New(session.Options{
		Name:         cityName,
		Grid:         grid,
		Stats:        stats,
		Catalog:      catalog,
		Tuning:       sim.TuningFromConfig(cfg),
		Advisor:      advisor.NewScripted(seed),
		Store:        store,
		TickInterval: time.Duration(cfg.Clock.TickMS) * time.Millisecond,
	})

	runErr := tui.Run(sess, catalog)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running city: %v\n", runErr)
		os.Exit(1)
	}
}
