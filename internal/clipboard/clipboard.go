package clipboard

import (
	"errors"
	"fmt"
	"sync"

	sysclip "github.com/atotto/clipboard"

	"clikv/internal/domain"
)

var (
	// ErrClipboard wraps failures of the underlying clipboard.
	ErrClipboard = errors.New("clipboard unavailable")
	// ErrEmptyClipboard is returned by ReadNonEmpty when there is nothing to read.
	ErrEmptyClipboard = errors.New("clipboard is empty")
)

// System is the OS clipboard.
type System struct{}

// NewSystem returns the OS clipboard adapter.
func NewSystem() *System { return &System{} }

// ReadText returns the current clipboard text.
func (System) ReadText() (string, error) {
	if sysclip.Unsupported {
		return "", fmt.Errorf("%w: no clipboard utility found", ErrClipboard)
	}
	s, err := sysclip.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	return s, nil
}

// WriteText replaces the clipboard text.
func (System) WriteText(s string) error {
	if sysclip.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrClipboard)
	}
	if err := sysclip.WriteAll(s); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	return nil
}

// Memory is a process-local clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory { return &Memory{text: text} }

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	return nil
}

// ReadNonEmpty reads c and fails with ErrEmptyClipboard when it holds no text.
func ReadNonEmpty(c domain.Clipboard) (string, error) {
	s, err := c.ReadText()
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", ErrEmptyClipboard
	}
	return s, nil
}

// Compile-time assertions that both clipboards implement domain.Clipboard.
var (
	_ domain.Clipboard = System{}
	_ domain.Clipboard = (*Memory)(nil)
)
