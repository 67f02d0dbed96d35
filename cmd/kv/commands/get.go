package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"clikv/internal/domain"
)

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print a value and copy it to the clipboard (key from clipboard if omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: c.configured(func(cmd *cobra.Command, args []string) error {
			key, err := c.argOrClipboard(args, 0)
			if err != nil {
				return err
			}

			return c.withStore(func(s domain.KeyValueStore) (string, error) {
				val, ok := s.Get(key)
				if !ok {
					return "", ErrNotFound
				}
				if err := c.wire.Clipboard.WriteText(val); err != nil {
					return "", err
				}
				p := c.wire.Painter
				return fmt.Sprintf("%s %s %s",
					p.Green("got"), p.Cyan(val), p.Green("and copied to clipboard")), nil
			})
		}),
	}
}
