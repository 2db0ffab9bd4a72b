package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%d.log", i))
		require.NoError(t, os.WriteFile(path, nil, 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"3.log", "4.log", "notes.txt"}, names)
}

func TestRotateLogs_BelowLimitKeepsAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 3))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.NoError(t, err)
}

func TestRotateLogs_MissingDirIsFine(t *testing.T) {
	assert.NoError(t, rotateLogs(filepath.Join(t.TempDir(), "absent"), 3))
}

func TestInitialize_DisabledReturnsNoFile(t *testing.T) {
	t.Setenv("STOW_DEBUG", "")
	t.Setenv("STOW_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestInitialize_FixedFileIsExported(t *testing.T) {
	t.Setenv("STOW_DEBUG", "")
	t.Setenv("STOW_DEBUG_FILE", "")
	file := filepath.Join(t.TempDir(), "logs", "stow.log")

	path, err := Initialize(false, file, DefaultMaxLogFiles)
	require.NoError(t, err)
	t.Cleanup(func() { Logger = discard() })

	assert.Equal(t, file, path)
	assert.Equal(t, "1", os.Getenv("STOW_DEBUG"))
	assert.Equal(t, file, os.Getenv("STOW_DEBUG_FILE"))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Debug logging initialized")
}
