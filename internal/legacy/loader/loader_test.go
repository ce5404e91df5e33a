package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-librarian/pkg/legacy"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("libraries: []\n"), 0o644))

	l := New(nil)
	doc, err := l.Load(context.Background(), legacy.FileSource(path))
	require.NoError(t, err)

	state, err := doc.State()
	require.NoError(t, err)
	assert.Empty(t, state.Libraries)
}

func TestLoadMissingFile(t *testing.T) {
	l := New(nil)
	_, err := l.Load(context.Background(), legacy.FileSource(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"configs/state.yaml": {Data: []byte("image: gcr.io/foo/bar\n")},
	}

	l := New(fsys)
	doc, err := l.Load(context.Background(), legacy.FSSource("configs/state.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "configs/state.yaml", doc.Location())
}

func TestLoadFromFSWithoutFilesystem(t *testing.T) {
	l := New(nil)
	_, err := l.Load(context.Background(), legacy.FSSource("state.yaml"))
	assert.Error(t, err)
}

func TestLoadZeroSource(t *testing.T) {
	l := New(nil)
	_, err := l.Load(context.Background(), legacy.Source{})
	assert.Error(t, err)
}

func TestLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New(nil)
	_, err := l.Load(ctx, legacy.FileSource("state.yaml"))
	assert.ErrorIs(t, err, context.Canceled)
}
