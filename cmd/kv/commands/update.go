package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"clikv/internal/domain"
)

func (c *cli) updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "upd <key> [value]",
		Aliases: []string{"update"},
		Short:   "Replace the value of an existing key (value from clipboard if omitted)",
		Long: `Replace the value of an existing key. Missing keys are not created.
Without a value argument the clipboard content is used.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: c.configured(func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value, err := c.argOrClipboard(args, 1)
			if err != nil {
				return err
			}

			return c.withStore(func(s domain.KeyValueStore) (string, error) {
				s.Update(key, value)
				p := c.wire.Painter
				return fmt.Sprintf("%s %s %s %s",
					p.Green("value"), p.Cyan(value), p.Green("updated for key"), p.Cyan(key)), nil
			})
		}),
	}
}
