package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"clikv/internal/domain"
)

// Config locates the backing file of a Storage.
type Config struct {
	FolderPath string // created when missing
	FilePath   string // backing JSON document
	ReadOnly   bool   // never persist; Close becomes a no-op
}

// Validate reports whether both paths are set.
func (c Config) Validate() error {
	if c.FolderPath == "" {
		return fmt.Errorf("%w: folder path is empty", ErrConfig)
	}
	if c.FilePath == "" {
		return fmt.Errorf("%w: file path is empty", ErrConfig)
	}
	return nil
}

// Option customises a Storage at Open.
type Option func(*Storage)

// WithLogger routes debug logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Storage) { s.log = l }
}

// WithForce disables the stale-write check in Save.
func WithForce() Option {
	return func(s *Storage) { s.force = true }
}

// Storage is the in-memory key-value mapping plus its backing file.
type Storage struct {
	data map[string]string

	folderPath string
	filePath   string

	loaded  digest
	persist bool
	force   bool
	dirty   bool
	closed  bool

	log *slog.Logger
}

// Open loads the mapping stored at cfg.FilePath, creating cfg.FolderPath and
// an empty backing file first if they do not exist.
func Open(cfg Config, opts ...Option) (*Storage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Storage{
		folderPath: cfg.FolderPath,
		filePath:   cfg.FilePath,
		persist:    !cfg.ReadOnly,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, apply := range opts {
		apply(s)
	}

	if err := ensureFile(s.folderPath, s.filePath); err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrIO, s.filePath, err)
	}
	b, err := readFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, s.filePath, err)
	}
	data, err := decode(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, s.filePath, err)
	}

	s.data = data
	s.loaded = digestOf(b)
	s.log.Debug("storage loaded", "path", s.filePath, "keys", len(data), "bytes", len(b))
	return s, nil
}

// NewMemory returns a handle over data that is never written to disk.
// A nil map starts an empty store.
func NewMemory(data map[string]string) *Storage {
	m := make(map[string]string, len(data))
	for k, v := range data {
		m[k] = v
	}
	return &Storage{
		data: m,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Add stores value under key unless key is already present. It reports
// whether the value was inserted.
func (s *Storage) Add(key, value string) bool {
	if _, ok := s.data[key]; ok {
		s.log.Debug("add skipped, key exists", "key", key)
		return false
	}
	s.data[key] = value
	s.dirty = true
	return true
}

// Update replaces the value of an existing key. Absent keys are not created
// and an identical value is not rewritten. It reports whether anything changed.
func (s *Storage) Update(key, value string) bool {
	cur, ok := s.data[key]
	if !ok {
		s.log.Debug("update skipped, key missing", "key", key)
		return false
	}
	if cur == value {
		s.log.Debug("update skipped, value unchanged", "key", key)
		return false
	}
	s.data[key] = value
	s.dirty = true
	return true
}

// Get returns the value stored under key.
func (s *Storage) Get(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Remove deletes key. It reports whether the key was present.
func (s *Storage) Remove(key string) bool {
	if _, ok := s.data[key]; !ok {
		return false
	}
	delete(s.data, key)
	s.dirty = true
	return true
}

// Len returns the number of stored keys.
func (s *Storage) Len() int { return len(s.data) }

// Dirty reports whether the mapping changed since it was loaded or saved.
func (s *Storage) Dirty() bool { return s.dirty }

// Save writes the whole mapping to the backing file. It is a no-op for
// read-only and in-memory handles.
func (s *Storage) Save() error {
	if !s.persist {
		return nil
	}

	if !s.force {
		cur, err := readCurrent(s.filePath)
		if err != nil {
			return fmt.Errorf("%w: read %s: %w", ErrIO, s.filePath, err)
		}
		if digestOf(cur) != s.loaded {
			return fmt.Errorf("%w: %s", ErrConflict, s.filePath)
		}
	}

	b, err := encode(s.data)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrIO, err)
	}
	if err := writeFile(s.filePath, b, fileMode); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, s.filePath, err)
	}

	s.loaded = digestOf(b)
	s.dirty = false
	s.log.Debug("storage saved", "path", s.filePath, "keys", len(s.data), "bytes", len(b))
	return nil
}

// Close persists pending mutations. Calling it again does nothing.
func (s *Storage) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.dirty {
		return nil
	}
	return s.Save()
}

func decode(b []byte) (map[string]string, error) {
	if len(b) == 0 {
		return make(map[string]string), nil
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content is not valid UTF-8")
	}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil, fmt.Errorf("expected a JSON object, got null")
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	m := make(map[string]string, len(raw))
	for k, v := range raw {
		// Unmarshal into a string accepts null, so check the token first.
		if len(v) == 0 || v[0] != '"' {
			return nil, fmt.Errorf("value of %q is not a string", k)
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, fmt.Errorf("value of %q: %w", k, err)
		}
		m[k] = s
	}
	return m, nil
}

func encode(m map[string]string) ([]byte, error) {
	return json.Marshal(m)
}

// Compile-time assertion that Storage implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*Storage)(nil)
