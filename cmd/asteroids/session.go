package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/mode"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var _ mode.Scoreboard = (*storage.Store)(nil)

// session bundles everything one game run needs.
type session struct {
	cfg     config.AsteroidsConfig
	rt      core.RuntimeConfig
	log     *log.Logger
	store   *storage.Store
	machine *mode.Machine
	logFile *os.File
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig() (config.AsteroidsConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds the logger. fallback receives logs when --log-file is
// not set; the terminal frontend passes io.Discard since it owns the screen.
func newLogger(fallback io.Writer) (*log.Logger, *os.File, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	var f *os.File
	if flagLogFile != "" {
		f, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           level,
	})
	return logger, f, nil
}

// newSession loads config, opens the scoreboard and builds the machine.
func newSession(rt core.RuntimeConfig, logOut io.Writer) (*session, error) {
	logger, logFile, err := newLogger(logOut)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}

	s := &session{cfg: cfg, rt: rt, log: logger, logFile: logFile}

	seed := rt.ResolveSeed()
	env := &mode.Env{
		Config: cfg,
		Rand:   rand.New(rand.NewSource(seed)), //#nosec G404 -- game randomness
		Log:    logger,
	}

	s.store, err = storage.Open()
	if err != nil {
		// The game works without a scoreboard.
		logger.Warn("could not open scoreboard", "err", err)
		s.store = nil
	} else {
		env.Board = s.store
	}

	s.machine = mode.NewMachine(env)
	logger.Info("session started",
		"seed", seed,
		"fps", rt.TickRate,
		"difficulty", flagDifficulty,
		"viewport", fmt.Sprintf("%.0fx%.0f", cfg.Viewport.Width, cfg.Viewport.Height),
	)
	return s, nil
}

// Close releases the scoreboard and log file.
func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.log.Warn("closing scoreboard", "err", err)
		}
	}
	s.log.Info("session ended")
	if s.logFile != nil {
		s.logFile.Close()
	}
}
