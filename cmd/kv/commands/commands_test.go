package commands

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clikv/internal/app"
	"clikv/internal/clipboard"
	"clikv/internal/color"
	"clikv/internal/domain"
	"clikv/internal/store"
)

type harness struct {
	file   string
	clip   *clipboard.Memory
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, name := range []string{"KV_FOLDER_PATH", "FOLDER_PATH", "KV_FILE_PATH", "FILE_PATH", "KV_COLOR", "KV_LOG_LEVEL"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	dir := filepath.Join(t.TempDir(), "kv")
	t.Setenv("KV_FOLDER_PATH", dir)
	t.Setenv("KV_FILE_PATH", filepath.Join(dir, "data.json"))

	return &harness{
		file:   filepath.Join(dir, "data.json"),
		clip:   clipboard.NewMemory(""),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
}

// run executes one CLI invocation with a fresh command tree.
func (h *harness) run(args ...string) error {
	h.stdout.Reset()
	h.stderr.Reset()
	rt := app.Runtime{Stdout: h.stdout, Stderr: h.stderr, Clipboard: h.clip}
	return execute(rt, append([]string{"--color", "never"}, args...))
}

func (h *harness) clipText(t *testing.T) string {
	t.Helper()
	s, err := h.clip.ReadText()
	require.NoError(t, err)
	return s
}

func TestAddThenGet(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("add", "k", "v"))
	assert.Equal(t, "value v added with key k\n", h.stdout.String())

	require.NoError(t, h.run("get", "k"))
	assert.Equal(t, "got v and copied to clipboard\n", h.stdout.String())
	assert.Equal(t, "v", h.clipText(t))
}

func TestAdd_ExistingKey_KeepsFirstValue(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("add", "a", "1"))
	require.NoError(t, h.run("add", "a", "2"))
	require.NoError(t, h.run("get", "a"))

	assert.Equal(t, "1", h.clipText(t))
}

func TestAdd_ValueFromClipboard(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.clip.WriteText("from-clip"))

	require.NoError(t, h.run("add", "k"))
	assert.Equal(t, "value from-clip added with key k\n", h.stdout.String())

	b, err := os.ReadFile(h.file)
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"from-clip"}`, string(b))
}

func TestAdd_EmptyClipboard_Fails(t *testing.T) {
	h := newHarness(t)

	err := h.run("add", "k")
	assert.ErrorIs(t, err, clipboard.ErrEmptyClipboard)
	assert.Contains(t, h.stderr.String(), "clipboard is empty")

	_, statErr := os.Stat(h.file)
	assert.True(t, os.IsNotExist(statErr), "store must not be opened")
}

func TestUpdate(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("add", "a", "1"))
	require.NoError(t, h.run("upd", "a", "2"))
	assert.Equal(t, "value 2 updated for key a\n", h.stdout.String())

	require.NoError(t, h.run("get", "a"))
	assert.Equal(t, "2", h.clipText(t))
}

func TestUpdate_MissingKey_NotCreated(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("upd", "a", "1"))

	err := h.run("get", "a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "no data found\n", h.stderr.String())
}

func TestUpdate_ValueFromClipboard(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("add", "a", "1"))
	require.NoError(t, h.clip.WriteText("2"))

	require.NoError(t, h.run("upd", "a"))

	b, err := os.ReadFile(h.file)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"2"}`, string(b))
}

func TestGet_KeyFromClipboard(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("add", "k", "v"))
	require.NoError(t, h.clip.WriteText("k"))

	require.NoError(t, h.run("get"))
	assert.Equal(t, "v", h.clipText(t))
}

func TestGet_EmptyClipboard_Fails(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.run("get"), clipboard.ErrEmptyClipboard)
}

func TestGet_DoesNotRewriteFile(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(h.file), 0o755))
	require.NoError(t, os.WriteFile(h.file, []byte(`{ "k" : "v" }`), 0o644))

	require.NoError(t, h.run("get", "k"))

	b, err := os.ReadFile(h.file)
	require.NoError(t, err)
	assert.Equal(t, `{ "k" : "v" }`, string(b))
}

func TestRemove(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("add", "k", "v"))

	require.NoError(t, h.run("rm", "k"))
	assert.Equal(t, "removed value by key k\n", h.stdout.String())

	assert.ErrorIs(t, h.run("get", "k"), ErrNotFound)
}

func TestRemove_Missing_NoError(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("rm", "missing"))
}

func TestRemove_KeyFromClipboard(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("add", "k", "v"))
	require.NoError(t, h.clip.WriteText("k"))

	require.NoError(t, h.run("rm"))

	b, err := os.ReadFile(h.file)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))
}

func TestHelp_DoesNotTouchStorage(t *testing.T) {
	for _, args := range [][]string{{"help"}, {"h"}, {"-h"}, {"--help"}, {}} {
		h := newHarness(t)

		require.NoError(t, h.run(args...), args)
		assert.Contains(t, h.stdout.String(), "Usage:", args)

		_, err := os.Stat(h.file)
		assert.True(t, os.IsNotExist(err), args)
	}
}

func TestHelp_ShowsColoredExamples(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("help"))
	assert.Contains(t, h.stdout.String(), "update key:\tkv upd key newvalue\n")

	require.NoError(t, h.run("--color", "always", "help"))
	assert.Contains(t, h.stdout.String(), "\x1b[33madd key:\x1b[0m")
	assert.Contains(t, h.stdout.String(), "\x1b[36mkv rm key\x1b[0m")
}

func TestNoColor_OverridesColorAlways(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("--color", "always", "--no-color", "add", "k", "v"))
	assert.Equal(t, "value v added with key k\n", h.stdout.String())

	require.NoError(t, h.run("--color", "always", "--no-color", "help"))
	assert.NotContains(t, h.stdout.String(), "\x1b[")
}

func TestColorAlways_ColorsResult(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("--color", "always", "rm", "k"))
	assert.Equal(t, "\x1b[32mremoved value by key\x1b[0m \x1b[36mk\x1b[0m\n", h.stdout.String())
}

func TestUnsupportedCommand(t *testing.T) {
	h := newHarness(t)

	err := h.run("frobnicate")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, "unsupported cmd `frobnicate`\n", h.stderr.String())

	_, statErr := os.Stat(h.file)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMissingConfig_Fails(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.Unsetenv("KV_FOLDER_PATH"))
	require.NoError(t, os.Unsetenv("KV_FILE_PATH"))

	assert.ErrorIs(t, h.run("add", "k", "v"), store.ErrConfig)
}

func TestFlagsOverrideEnv(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "other.json")

	require.NoError(t, h.run("--folder", dir, "--file", file, "add", "k", "v"))

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"v"}`, string(b))
	_, err = os.Stat(h.file)
	assert.True(t, os.IsNotExist(err))
}

func TestMalformedStore_Fails(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(h.file), 0o755))
	require.NoError(t, os.WriteFile(h.file, []byte(`{"k":`), 0o644))

	err := h.run("get", "k")
	assert.ErrorIs(t, err, store.ErrParse)
	assert.Contains(t, h.stderr.String(), "can't read storage from disk")
}

func TestDryRun_DoesNotPersist(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("--dry-run", "add", "k", "v"))
	assert.Equal(t, "value v added with key k\n", h.stdout.String())

	assert.ErrorIs(t, h.run("get", "k"), ErrNotFound)
}

func TestPersistFailure_Reported(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("add", "a", "1"))

	s, err := store.Open(store.Config{FolderPath: filepath.Dir(h.file), FilePath: h.file})
	require.NoError(t, err)
	c := &cli{rt: app.Runtime{Stdout: h.stdout, Stderr: h.stderr, Clipboard: h.clip}}
	c.wire = &app.Wire{
		Open:      func() (domain.KeyValueStore, error) { return s, nil },
		Clipboard: h.clip,
		Painter:   color.New(color.ModeNever, h.stdout),
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Stdout:    h.stdout,
	}
	h.stdout.Reset()

	err = c.withStore(func(s domain.KeyValueStore) (string, error) {
		// Another invocation saves first.
		require.NoError(t, os.WriteFile(h.file, []byte(`{"a":"1","b":"2"}`), 0o644))
		s.Add("c", "3")
		return "saved", nil
	})
	assert.ErrorIs(t, err, store.ErrConflict)
	assert.Contains(t, err.Error(), "error while saving data")
	assert.Empty(t, h.stdout.String())
}
