package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/openapi-snapshot/config"
	"github.com/erraggy/openapi-snapshot/snaperrors"
)

func TestWriteAtomicCreatesNestedDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.json")

	require.NoError(t, WriteAtomic(path, `{"ok":true}`))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteAtomicOverwritesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, WriteAtomic(path, "first"))
	require.NoError(t, WriteAtomic(path, "second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.json", entries[0].Name())
}

func TestWriteAtomicFailedRenameLeavesDestination(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "occupied")
	require.NoError(t, os.MkdirAll(dest, 0o755))
	prior := filepath.Join(dest, "keep.txt")
	require.NoError(t, os.WriteFile(prior, []byte("keep"), 0o600))

	// The rename cannot replace a non-empty directory, so the write fails
	// after the temp file was fully staged.
	err := WriteAtomic(dest, "new contents")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output: failed to move temp file")

	kind, ok := snaperrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, snaperrors.KindIO, kind)
	assert.Equal(t, 4, snaperrors.ExitCode(err))

	// Prior destination state is untouched and the temp file is gone.
	data, readErr := os.ReadFile(prior)
	require.NoError(t, readErr)
	assert.Equal(t, "keep", string(data))

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	require.Len(t, entries, 1)
	assert.Equal(t, "occupied", entries[0].Name())
}

func TestWriterStdout(t *testing.T) {
	var buf bytes.Buffer
	w := &Writer{Stdout: &buf}

	ignored := filepath.Join(t.TempDir(), "ignored.json")
	cfg := &config.Config{Stdout: true, Out: ignored}
	require.NoError(t, w.WritePayloads(cfg, &Payloads{Primary: `{"a":1}`}))

	assert.Equal(t, "{\"a\":1}\n", buf.String())
	_, err := os.Stat(ignored)
	assert.True(t, os.IsNotExist(err), "stdout mode must not write files")
}

func TestWriterWritesBothFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Out:        filepath.Join(dir, "spec.json"),
		OutlineOut: filepath.Join(dir, "spec.outline.json"),
	}
	payloads := &Payloads{Primary: "primary", Outline: "outline"}

	require.NoError(t, (&Writer{}).WritePayloads(cfg, payloads))

	data, err := os.ReadFile(cfg.Out)
	require.NoError(t, err)
	assert.Equal(t, "primary", string(data))

	data, err = os.ReadFile(cfg.OutlineOut)
	require.NoError(t, err)
	assert.Equal(t, "outline", string(data))
}

func TestWriterSkipsOutlineWithoutDestination(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Out: filepath.Join(dir, "spec.json")}
	payloads := &Payloads{Primary: "primary", Outline: "outline"}

	require.NoError(t, (&Writer{}).WritePayloads(cfg, payloads))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "spec.json", entries[0].Name())
}

func TestWriterRequiresDestination(t *testing.T) {
	err := (&Writer{}).WritePayloads(&config.Config{}, &Payloads{Primary: "x"})
	require.EqualError(t, err, "--out is required unless --stdout is set.")

	kind, ok := snaperrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, snaperrors.KindUsage, kind)
}
