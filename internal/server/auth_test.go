package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/stow/internal/config"
)

func newKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authorized_keys")
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newKey(t)
	other := newKey(t)
	path := writeAuthorizedKeys(t,
		"# team keys",
		"",
		"not a key",
		strings.TrimSpace(string(gossh.MarshalAuthorizedKey(allowed)))+" alice@laptop",
	)

	tests := []struct {
		name     string
		key      gossh.PublicKey
		path     string
		expected bool
	}{
		{name: "listed key", key: allowed, path: path, expected: true},
		{name: "unlisted key", key: other, path: path, expected: false},
		{name: "missing file", key: allowed, path: filepath.Join(t.TempDir(), "nope"), expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isKeyAuthorized(tt.key, tt.path))
		})
	}
}

func TestAuthorizedKeysPath(t *testing.T) {
	t.Setenv("HOME", "/home/stow")

	path, err := authorizedKeysPath(nil)
	require.NoError(t, err)
	assert.Equal(t, "/home/stow/.ssh/authorized_keys", path)

	path, err = authorizedKeysPath(&config.Settings{AuthorizedKeys: "~/keys/board"})
	require.NoError(t, err)
	assert.Equal(t, "/home/stow/keys/board", path)
}

func TestNewServer_Address(t *testing.T) {
	dir := t.TempDir()

	s, err := NewServer("localhost", 23234, nil, Options{
		ClipboardPath: filepath.Join(dir, "clipboard.json"),
		DBPath:        filepath.Join(dir, "stow.db"),
		HostKeyPath:   filepath.Join(dir, "ssh", "host_ed25519"),
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:23234", s.Address())
}
