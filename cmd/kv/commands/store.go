package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"clikv/internal/clipboard"
	"clikv/internal/domain"
)

// ErrNotFound is returned by get for an absent key.
var ErrNotFound = errors.New("no data found")

type runFunc func(cmd *cobra.Command, args []string) error

// configured loads configuration before running fn.
func (c *cli) configured(fn runFunc) runFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := c.setup(); err != nil {
			return err
		}
		return fn(cmd, args)
	}
}

// withStore opens the store, runs fn and closes the store so pending changes
// are saved on every return path. The message fn returns is printed only once
// the store closed cleanly.
func (c *cli) withStore(fn func(s domain.KeyValueStore) (string, error)) error {
	s, err := c.wire.Open()
	if err != nil {
		return fmt.Errorf("can't read storage from disk: %w", err)
	}

	msg, err := fn(s)
	if cerr := s.Close(); cerr != nil {
		return errors.Join(err, fmt.Errorf("error while saving data: %w", cerr))
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(c.wire.Stdout, msg)
	return nil
}

// argOrClipboard returns args[i] when present, otherwise the clipboard text.
func (c *cli) argOrClipboard(args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	s, err := clipboard.ReadNonEmpty(c.wire.Clipboard)
	if err != nil {
		if errors.Is(err, clipboard.ErrEmptyClipboard) {
			return "", err
		}
		return "", fmt.Errorf("can't extract value from clipboard: %w", err)
	}
	c.wire.Log.Debug("argument read from clipboard", "position", i)
	return s, nil
}
