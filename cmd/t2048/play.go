package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagFresh      bool
	flagNoPersist  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the puzzle in the current terminal.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  U                - Undo last move
  R/N              - New game
  Q/Ctrl+C         - Quit (game is saved)

Difficulty options:
  easy   - 4-tiles spawn rarely
  normal - Classic spawn odds
  hard   - 4-tiles spawn often

Examples:
  t2048 play
  t2048 play --difficulty hard
  t2048 play --config ./my-rules.yaml
  t2048 play --fresh`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Discard the saved game and start over")
	playCmd.Flags().BoolVar(&flagNoPersist, "no-persist", false, "Keep nothing on disk for this session")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load game configuration
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.New(game.Options{
		Spawn4Probability: gameCfg.Spawn.FourProbability,
		WinValue:          gameCfg.Game.WinTile,
		SlideTicks:        gameCfg.Animation.SlideTicks,
		PopTicks:          gameCfg.Animation.PopTicks,
	})

	// Open game storage
	var store *storage.Store
	if flagNoPersist {
		store = storage.NewStore(storage.NewMemory())
	} else {
		dbPath := flagDBPath
		if !cmd.Flags().Changed("db") && gameCfg.Storage.Path != "" {
			dbPath = gameCfg.Storage.Path
		}
		backend, err := storage.Open(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
			// Continue without persistence - game still works
		} else {
			store = storage.NewStore(backend)
		}
	}

	if flagFresh && store != nil {
		if err := store.ClearGame(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not clear saved game: %v\n", err)
		}
	}

	// Run the game
	runErr := tui.Run(g, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
