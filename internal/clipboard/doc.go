// Package clipboard adapts the system clipboard for clikv.
//
// System talks to the OS clipboard through github.com/atotto/clipboard
// (pbcopy/pbpaste on macOS, xclip/xsel/wl-clipboard on Linux, the Win32 API on
// Windows). Memory is an in-process clipboard for tests and headless use.
package clipboard
