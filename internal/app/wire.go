package app

import (
	"io"
	"log/slog"
	"os"

	"clikv/internal/clipboard"
	"clikv/internal/color"
	"clikv/internal/domain"
	"clikv/internal/store"
)

// Runtime carries process-level handles that do not come from configuration.
type Runtime struct {
	Stdout    io.Writer        // defaults to a colorable os.Stdout
	Stderr    io.Writer        // defaults to os.Stderr
	Clipboard domain.Clipboard // defaults to the system clipboard
}

// Wire bundles everything a command needs.
type Wire struct {
	Open      domain.StoreOpener
	Clipboard domain.Clipboard
	Painter   *color.Painter
	Log       *slog.Logger
	Stdout    io.Writer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config, rt Runtime) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdout := rt.Stdout
	if stdout == nil {
		stdout = color.Writer(os.Stdout)
	}
	stderr := rt.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	clip := rt.Clipboard
	if clip == nil {
		clip = clipboard.NewSystem()
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	mode := cfg.ColorMode()
	painterTarget := stdout
	if rt.Stdout == nil {
		// The colorable wrapper hides the *os.File needed for TTY detection.
		painterTarget = os.Stdout
	}
	painter := color.New(mode, painterTarget)

	storeCfg := cfg.StoreConfig()
	opts := []store.Option{store.WithLogger(logger)}
	if cfg.Force {
		opts = append(opts, store.WithForce())
	}

	return &Wire{
		Open: func() (domain.KeyValueStore, error) {
			s, err := store.Open(storeCfg, opts...)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
		Clipboard: clip,
		Painter:   painter,
		Log:       logger,
		Stdout:    stdout,
	}, nil
}
