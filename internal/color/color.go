package color

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	red    = "\x1b[31m"
	green  = "\x1b[32m"
	yellow = "\x1b[33m"
	cyan   = "\x1b[36m"
	reset  = "\x1b[0m"
)

// Mode selects when colors are emitted.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode accepts auto, always and never (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	case "":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// Painter wraps text in ANSI color escapes when enabled.
type Painter struct {
	enabled bool
}

// New returns a Painter for output going to w.
func New(mode Mode, w io.Writer) *Painter {
	switch mode {
	case ModeAlways:
		return &Painter{enabled: true}
	case ModeNever:
		return &Painter{}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return &Painter{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return &Painter{}
	}
	fd := f.Fd()
	return &Painter{enabled: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}

// Writer returns a writer for f that understands ANSI escapes on every platform.
func Writer(f *os.File) io.Writer { return colorable.NewColorable(f) }

func (p *Painter) Enabled() bool { return p.enabled }

func (p *Painter) Red(s string) string    { return p.paint(red, s) }
func (p *Painter) Green(s string) string  { return p.paint(green, s) }
func (p *Painter) Yellow(s string) string { return p.paint(yellow, s) }
func (p *Painter) Cyan(s string) string   { return p.paint(cyan, s) }

func (p *Painter) paint(code, s string) string {
	if !p.enabled {
		return s
	}
	return code + s + reset
}
