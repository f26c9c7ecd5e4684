package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/platform/window"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls (endless fighter):
  Left/Right, A/D   - Turn
  Up/W              - Thrust
  Space, left click - Fire

Controls (level platform):
  Arrows, WASD      - Strafe on four engines
  Space, left click - Fire at the mouse
  X/F, right click  - Spread shot at the mouse

Common:
  P                 - Pause / resume
  Enter             - Select / next level / back to menu after game over
  R                 - New game after game over
  Esc/B             - Back to menu
  Tab               - Session scoreboard
  Ctrl+S            - Screenshot to ~/.asteroids/screenshots
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at lowest difficulty, slower spawns
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty, faster spawns
  fixed  - No progression, stays at config's initial level

Examples:
  asteroids play
  asteroids play --difficulty easy
  asteroids play --config ./my-asteroids.yaml --log-file asteroids.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	s, err := newSession(rt, io.Discard)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := tui.Run(s.machine, s.store, rt, s.log); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the game in a desktop window. Controls match 'asteroids play';
the platform's guns follow the mouse cursor.

Examples:
  asteroids window
  asteroids window --fps 120 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	s, err := newSession(rt, os.Stderr)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := window.Run(s.machine, s.cfg, rt, s.log); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
