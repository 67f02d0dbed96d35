package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"clikv/internal/domain"
)

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <key> [value]",
		Short: "Store a value under a new key (value from clipboard if omitted)",
		Long: `Store a value under a new key. If the key already exists its value is kept
and nothing changes. Without a value argument the clipboard content is used.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: c.configured(func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value, err := c.argOrClipboard(args, 1)
			if err != nil {
				return err
			}

			return c.withStore(func(s domain.KeyValueStore) (string, error) {
				s.Add(key, value)
				p := c.wire.Painter
				return fmt.Sprintf("%s %s %s %s",
					p.Green("value"), p.Cyan(value), p.Green("added with key"), p.Cyan(key)), nil
			})
		}),
	}
}
