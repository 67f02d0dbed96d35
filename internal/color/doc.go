// Package color renders the ANSI-colored messages printed by the clikv CLI.
//
// Whether escapes are emitted is decided once, from the configured Mode and,
// in ModeAuto, from whether the output is a terminal (github.com/mattn/go-isatty)
// and whether NO_COLOR is set. Output should go through Writer, which
// translates escapes on legacy Windows consoles (github.com/mattn/go-colorable).
package color
