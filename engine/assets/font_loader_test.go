package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontDefault(t *testing.T) {
	f, err := LoadFont("")
	require.NoError(t, err)
	defer f.Close()
}

func TestLoadFontFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Go.ttf"), goregular.TTF, 0o644))

	old := FontDir
	FontDir = dir
	t.Cleanup(func() { FontDir = old })

	f, err := LoadFont("Go.ttf")
	require.NoError(t, err)
	f.Close()

	f, err = LoadFont(filepath.Join(dir, "Go.ttf"))
	require.NoError(t, err)
	f.Close()
}

func TestLoadFontErrors(t *testing.T) {
	_, err := LoadFont("does-not-exist.ttf")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o644))
	_, err = LoadFont(bad)
	assert.ErrorContains(t, err, "parse font")
}
