package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"clikv/internal/domain"
)

func (c *cli) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm [key]",
		Aliases: []string{"remove"},
		Short:   "Remove a key (key from clipboard if omitted)",
		Args:    cobra.MaximumNArgs(1),
		RunE: c.configured(func(cmd *cobra.Command, args []string) error {
			key, err := c.argOrClipboard(args, 0)
			if err != nil {
				return err
			}

			return c.withStore(func(s domain.KeyValueStore) (string, error) {
				s.Remove(key)
				p := c.wire.Painter
				return fmt.Sprintf("%s %s", p.Green("removed value by key"), p.Cyan(key)), nil
			})
		}),
	}
}
