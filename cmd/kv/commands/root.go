package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clikv/internal/app"
	"clikv/internal/color"
)

// ErrUnsupported is returned for an unknown sub-command.
var ErrUnsupported = errors.New("unsupported cmd")

// cli holds per-process state shared by the sub-commands.
type cli struct {
	rt         app.Runtime
	v          *viper.Viper
	configFile string
	wire       *app.Wire
}

// Execute runs the kv CLI against the real terminal and clipboard.
func Execute() error {
	return execute(app.Runtime{}, os.Args[1:])
}

func execute(rt app.Runtime, args []string) error {
	c := &cli{rt: rt, v: viper.New()}
	root := c.rootCmd()
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		c.reportError(err)
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kv",
		Short: "Tiny key-value store for the command line",
		Long: `kv keeps short string values under string keys in a single JSON file.

The backing file is configured with --folder/--file, the KV_FOLDER_PATH and
KV_FILE_PATH (or FOLDER_PATH and FILE_PATH) environment variables, or a config
file. Omitted key or value arguments are taken from the clipboard.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("%w `%s`", ErrUnsupported, args[0])
		},
	}
	if c.rt.Stdout != nil {
		root.SetOut(c.rt.Stdout)
	}
	if c.rt.Stderr != nil {
		root.SetErr(c.rt.Stderr)
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (default <user config dir>/clikv/config.yaml)")
	flags.String("folder", "", "folder holding the backing file")
	flags.String("file", "", "backing JSON file")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("color", "auto", "colorize output: auto, always or never")
	flags.Bool("no-color", false, "disable colors (same as --color never)")
	flags.BoolP("verbose", "v", false, "debug logging on stderr")
	flags.Bool("force", false, "overwrite the backing file even if it changed since it was read")
	flags.Bool("dry-run", false, "apply the command without saving")

	for key, flag := range map[string]string{
		"folder_path": "folder",
		"file_path":   "file",
		"log_level":   "log-level",
		"color":       "color",
		"no_color":    "no-color",
		"verbose":     "verbose",
		"force":       "force",
		"dry_run":     "dry-run",
	} {
		_ = c.v.BindPFlag(key, flags.Lookup(flag))
	}

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == root {
			fmt.Fprintln(cmd.OutOrStdout(), c.examples(cmd.OutOrStdout()))
		}
		defaultHelp(cmd, args)
	})
	root.SetHelpCommand(c.helpCmd(root))
	root.AddCommand(c.addCmd(), c.updateCmd(), c.getCmd(), c.removeCmd())
	return root
}

func (c *cli) helpCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:     "help [command]",
		Aliases: []string{"h"},
		Short:   "Print usage",
		Run: func(cmd *cobra.Command, args []string) {
			target, _, err := root.Find(args)
			if err != nil || target == nil {
				target = root
			}
			_ = target.Help()
		},
	}
}

// setup loads configuration and builds the wire on first use.
func (c *cli) setup() error {
	if c.wire != nil {
		return nil
	}
	cfg, err := app.LoadConfig(c.v, c.configFile)
	if err != nil {
		return err
	}
	w, err := app.NewWire(cfg, c.rt)
	if err != nil {
		return err
	}
	c.wire = w
	return nil
}

func (c *cli) reportError(err error) {
	var stderr io.Writer = color.Writer(os.Stderr)
	var target io.Writer = os.Stderr
	if c.rt.Stderr != nil {
		stderr, target = c.rt.Stderr, c.rt.Stderr
	}
	p := c.painter(target)
	if c.wire != nil {
		p = c.wire.Painter
	}
	fmt.Fprintln(stderr, p.Red(err.Error()))
}

// painter colors output written to w before configuration is loaded, from
// the color flags alone.
func (c *cli) painter(w io.Writer) *color.Painter {
	if c.v.GetBool("no_color") {
		return color.New(color.ModeNever, w)
	}
	mode, err := color.ParseMode(c.v.GetString("color"))
	if err != nil {
		mode = color.ModeAuto
	}
	return color.New(mode, w)
}

// examples renders the per-command cheat sheet shown above the usage text.
func (c *cli) examples(w io.Writer) string {
	target := w
	if c.rt.Stdout == nil {
		target = os.Stdout
	}
	p := c.painter(target)

	var b strings.Builder
	for _, e := range []struct{ label, explicit, clip string }{
		{"add key:", "kv add key value", "kv add key + value from clipboard"},
		{"update key:", "kv upd key newvalue", "kv upd key + value from clipboard"},
		{"get key:", "kv get key", "kv get + key from clipboard, value is copied to clipboard"},
		{"remove key:", "kv rm key", "kv rm + key from clipboard"},
	} {
		fmt.Fprintf(&b, "%s\t%s\n\t\t%s\n", p.Yellow(e.label), p.Cyan(e.explicit), p.Cyan(e.clip))
	}
	return b.String()
}
