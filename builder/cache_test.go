package builder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	keplergl "github.com/flywave/go-keplergl"
)

func copyFixture(t *testing.T, dst string) {
	t.Helper()
	b, err := os.ReadFile("../testdata/drone_sim.json")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, b, 0o644))
}

func touch(t *testing.T, path string, at time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, at, at))
}

func TestCacheReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")
	copyFixture(t, path)
	touch(t, path, time.Now().Add(-time.Hour))

	c := NewCache(zap.NewNop())
	u := c.Refresh(path)
	require.NoError(t, u.Err)
	assert.True(t, u.Reloaded)
	first := u.Doc

	doc, err := c.Document(path)
	require.NoError(t, err)
	assert.Same(t, first, doc, "unchanged file is served from the cache")

	doc.Config.MapState.Zoom = 99
	require.NoError(t, keplergl.Save(path, doc))
	touch(t, path, time.Now())

	u = c.Refresh(path)
	assert.True(t, u.Reloaded)
	assert.NotSame(t, first, u.Doc)
	var verr *keplergl.ValidationError
	assert.True(t, errors.As(u.Err, &verr), "validation runs on reload")

	c.ClearAll()
	u = c.Refresh(path)
	assert.True(t, u.Reloaded)
}

func TestCacheRemovedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")
	copyFixture(t, path)

	c := NewCache(nil)
	_, err := c.Document(path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	_, err = c.Document(path)
	assert.Error(t, err)

	c.Forget(path)
	_, err = c.Document(path)
	assert.Error(t, err)
}

func TestPreload(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	copyFixture(t, good)
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o644))

	c := NewCache(nil)
	err := c.Preload(good, filepath.Join(dir, "a.json"), filepath.Join(dir, "b.yaml"))
	var missing *FilesMissingError
	require.True(t, errors.As(err, &missing))
	assert.Len(t, missing.Files, 2)
	assert.Contains(t, err.Error(), "a.json")

	assert.Error(t, c.Preload(broken))
	assert.NoError(t, c.Preload(good))

	invalid := filepath.Join(dir, "invalid.json")
	doc, err := keplergl.Load(good)
	require.NoError(t, err)
	doc.Config.MapState.Zoom = 30
	require.NoError(t, keplergl.Save(invalid, doc))

	require.NoError(t, c.Preload(invalid))
	_, err = c.Document(invalid)
	var verr *keplergl.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "/config/mapState/zoom", verr.Problems[0].Path)
}
