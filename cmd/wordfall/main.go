// wordfall is a terminal word-catching game.
//
// Words fall from the top of the screen. Move the paddle with the arrow
// keys (or a/d) and catch the word shown as the target. Catching any
// other word costs a life. The round ends after 60 seconds, when all
// lives are gone, or when Esc is pressed.
//
// Usage:
//
//	wordfall
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/games/wordfall"
	"github.com/vovakirdan/wordfall/internal/platform/tui"
)

// footerRows is the space under the playfield used by the hint and help lines.
const footerRows = 2

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "wordfall",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordfall",
	Short: "Word Fall - catch the falling target word",
	Long: `Word Fall is a terminal arcade game. Words drop toward your paddle;
catch the one matching the target and avoid the others.

Controls:
  Left/A    - Move left
  Right/D   - Move right
  Esc       - End the round
  Ctrl+C    - Exit immediately`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           runGame,
}

func runGame(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid compiled-in configuration", "err", err)
	}

	checkTerminal(cfg.Playfield.Width, cfg.Playfield.Height+footerRows)

	game := wordfall.New(cfg)
	runtime := core.RuntimeConfig{
		ScreenW:  cfg.Playfield.Width,
		ScreenH:  cfg.Playfield.Height,
		TickRate: cfg.TickRate(),
		Seed:     time.Now().UnixNano(),
	}

	logger.Info("starting", "game", game.Title(), "time_limit", cfg.Rules.TimeLimit, "lives", cfg.Rules.StartLives)

	state, err := tui.Run(game, runtime, logger)
	if err != nil {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}

	reason := game.Reason()
	if reason == wordfall.EndNone {
		logger.Info("aborted", "score", state.Score)
		return
	}
	logger.Info("game over", "reason", reason, "score", state.Score, "lives", state.Lives)
}

// checkTerminal warns when the terminal cannot show the whole playfield.
func checkTerminal(minW, minH int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Debug("cannot read terminal size", "err", err)
		return
	}
	if w < minW || h < minH {
		logger.Warn("terminal is smaller than the playfield", "have", fmt.Sprintf("%dx%d", w, h), "need", fmt.Sprintf("%dx%d", minW, minH))
	}
}
