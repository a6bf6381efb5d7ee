package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortKey(t *testing.T) {
	tests := []struct {
		key   string
		width int
		want  string
	}{
		{"6104a8c6c1b4ef7788b5d8f0", 8, "6104a8c6c1b4ef7788b5d8f0"},
		{"ckpqs7yb70000h3l5f0ui6ohv", 24, "ckpqs7yb70000h3l5f0ui6oh"},
		{"abc", 8, "abc"},
		{"6104a8c6c1b4ef7788b5d8fz", 8, "6104a8c6"},
		{"abc", -1, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShortKey(tt.key, tt.width), tt.key)
	}
}

func TestEllipsize(t *testing.T) {
	assert.Equal(t, "pyAtlas...", Ellipsize("pyAtlasTestCluster", 10))
	assert.Equal(t, "short", Ellipsize("short", 10))
	assert.Equal(t, "クラ...", Ellipsize("クラスター名前", 7))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "13 GiB", FormatBytes(14380134400))
	assert.Equal(t, "0 B", FormatBytes(0))
}

func TestAtomicWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, AtomicWriteFile(path, []byte(`{"a":1}`), 0600))
	require.NoError(t, AtomicWriteFile(path, []byte(`{"a":2}`), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	err = AtomicWriteFile(filepath.Join(path+"-missing", "out.json"), []byte(`{}`), 0600)
	assert.Error(t, err)
}

func TestReadInput(t *testing.T) {
	data, source, err := ReadInput("-", strings.NewReader(`{"id":"a"}`))
	require.NoError(t, err)
	assert.Equal(t, "stdin", source)
	assert.Equal(t, `{"id":"a"}`, string(data))

	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	data, source, err = ReadInput(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, `{}`, string(data))

	_, _, err = ReadInput(filepath.Join(dir, "missing.json"), nil)
	assert.Error(t, err)
	_, _, err = ReadInput(dir, nil)
	assert.Error(t, err)
}
