package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stow/internal/config"
)

// result holds what one in-process CLI run printed
type result struct {
	err    error
	stdout string
}

// newHome isolates a test in its own STOW_HOME
func newHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("STOW_HOME", home)
	t.Setenv("STOW_DEBUG", "")
	t.Setenv("STOW_DEBUG_FILE", "")
	t.Setenv("STOW_MAX_LOG_FILES", "")
	return home
}

// run parses args the way main does and runs the selected command,
// capturing stdout
func run(t *testing.T, args ...string) result {
	t.Helper()

	settings, err := config.LoadSettings()
	require.NoError(t, err)

	var cli CLI
	cli.SetSettings(settings)
	parser, err := kong.New(&cli,
		kong.Name("stow"),
		kong.Vars{"version": "test"},
		kong.Bind(&cli),
		kong.Exit(func(int) { t.Fatalf("kong exited on %v", args) }),
	)
	require.NoError(t, err)

	stdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	out := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		out <- buf.String()
	}()

	ctx, err := parser.Parse(args)
	if err == nil {
		err = ctx.Run()
	}
	_ = cli.Close()

	w.Close()
	os.Stdout = stdout
	return result{err: err, stdout: <-out}
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	res := run(t, args...)
	require.NoError(t, res.err, "stow %v\nstdout: %s", args, res.stdout)
	return res.stdout
}

type listedItem struct {
	Key    string `json:"key"`
	Parent string `json:"parent"`
	Shelf  string `json:"shelf"`
	Text   string `json:"text"`
	Type   string `json:"type"`
}

func listItems(t *testing.T, args ...string) []listedItem {
	t.Helper()
	var items []listedItem
	out := mustRun(t, append([]string{"items", "list", "--format", "json"}, args...)...)
	require.NoError(t, json.Unmarshal([]byte(out), &items), out)
	return items
}

func keyOf(t *testing.T, items []listedItem, text string) string {
	t.Helper()
	for _, it := range items {
		if it.Text == text {
			return it.Key
		}
	}
	t.Fatalf("no item %q in %+v", text, items)
	return ""
}

// seedBoard creates an inbox with a folder and two items, and an archive
// that only takes folders
func seedBoard(t *testing.T) map[string]string {
	t.Helper()
	mustRun(t, "shelves", "add", "Inbox")
	mustRun(t, "shelves", "add", "Archive", "--accept", "folder")
	mustRun(t, "items", "add", "--shelf", "inbox", "Apples")
	mustRun(t, "items", "add", "--shelf", "inbox", "--folder", "Cellar")
	mustRun(t, "items", "add", "--shelf", "inbox", "Bread")

	items := listItems(t)
	return map[string]string{
		"apples": keyOf(t, items, "Apples"),
		"bread":  keyOf(t, items, "Bread"),
		"cellar": keyOf(t, items, "Cellar"),
	}
}

func TestShelvesCommands(t *testing.T) {
	newHome(t)
	seedBoard(t)

	out := mustRun(t, "shelves", "list")
	assert.Contains(t, out, "inbox")
	assert.Contains(t, out, "folder")

	mustRun(t, "shelves", "swap", "inbox", "archive")

	var shelves []struct {
		Items int    `json:"items"`
		Name  string `json:"name"`
	}
	out = mustRun(t, "shelves", "list", "--format", "json")
	require.NoError(t, json.Unmarshal([]byte(out), &shelves))
	require.Len(t, shelves, 2)
	assert.Equal(t, "archive", shelves[0].Name)
	assert.Equal(t, 3, shelves[1].Items)

	res := run(t, "shelves", "del", "inbox")
	assert.Error(t, res.err, "a shelf with items needs --force")
	mustRun(t, "shelves", "del", "inbox", "--force")
}

func TestShelvesAdd_RejectsUnknownType(t *testing.T) {
	newHome(t)

	res := run(t, "shelves", "add", "Odd", "--accept", "widget")

	assert.ErrorContains(t, res.err, "unknown item type")
}

func TestItemsMove_IntoFolder(t *testing.T) {
	newHome(t)
	keys := seedBoard(t)

	out := mustRun(t, "items", "move", keys["apples"], "--to", "inbox", "--into", keys["cellar"])
	assert.Contains(t, out, "Moved")

	items := listItems(t, "--shelf", "inbox")
	for _, it := range items {
		if it.Key == keys["apples"] {
			assert.Equal(t, keys["cellar"], it.Parent)
		}
	}
}

func TestItemsMove_BeforeSibling(t *testing.T) {
	newHome(t)
	keys := seedBoard(t)

	mustRun(t, "items", "move", keys["bread"], "--to", "inbox", "--before", keys["apples"])

	items := listItems(t, "--shelf", "inbox")
	require.NotEmpty(t, items)
	assert.Equal(t, "Bread", items[0].Text)
}

func TestItemsTransfer_Refusals(t *testing.T) {
	tests := []struct {
		name string
		args func(keys map[string]string) []string
	}{
		{
			name: "shelf does not take items",
			args: func(keys map[string]string) []string {
				return []string{"items", "move", keys["apples"], "--to", "archive"}
			},
		},
		{
			name: "into an item",
			args: func(keys map[string]string) []string {
				return []string{"items", "copy", keys["bread"], "--to", "inbox", "--into", keys["apples"]}
			},
		},
		{
			name: "unknown shelf",
			args: func(keys map[string]string) []string {
				return []string{"items", "link", keys["apples"], "--to", "attic"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newHome(t)
			keys := seedBoard(t)

			res := run(t, tt.args(keys)...)

			assert.Error(t, res.err)
			assert.Len(t, listItems(t), 3, "a refused drop changes nothing")
		})
	}
}

func TestItemsCopyAndLink(t *testing.T) {
	newHome(t)
	keys := seedBoard(t)

	mustRun(t, "items", "copy", keys["cellar"], "--to", "archive")
	mustRun(t, "items", "link", keys["bread"], "--to", "inbox")

	archive := listItems(t, "--shelf", "archive")
	require.Len(t, archive, 1)
	assert.Equal(t, "Cellar", archive[0].Text)
	assert.NotEqual(t, keys["cellar"], archive[0].Key)

	inbox := listItems(t, "--shelf", "inbox")
	require.Len(t, inbox, 4)
	assert.Equal(t, "link", inbox[3].Type)
}

func TestItemsCutAndPaste(t *testing.T) {
	home := newHome(t)
	keys := seedBoard(t)

	out := mustRun(t, "items", "cut", keys["cellar"])
	assert.Contains(t, out, "Cut")
	assert.FileExists(t, filepath.Join(home, "clipboard.json"))

	mustRun(t, "items", "paste", "--to", "archive")

	archive := listItems(t, "--shelf", "archive")
	require.Len(t, archive, 1)
	assert.Equal(t, keys["cellar"], archive[0].Key, "a cut pastes as a move")

	res := run(t, "items", "paste", "--to", "archive")
	assert.Error(t, res.err, "a pasted cut is released")
}

func TestItemsDelAndRename(t *testing.T) {
	newHome(t)
	keys := seedBoard(t)

	mustRun(t, "items", "rename", keys["bread"], "Sourdough")
	mustRun(t, "items", "del", keys["apples"])

	items := listItems(t)
	require.Len(t, items, 2)
	assert.Equal(t, "Sourdough", items[1].Text)
}

func TestSettingsKeys(t *testing.T) {
	home := newHome(t)

	mustRun(t, "settings", "keys", "set", "start_drag", "g")

	data, err := os.ReadFile(filepath.Join(home, "settings.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"start_drag"`)

	out := mustRun(t, "settings", "keys", "list")
	assert.Contains(t, out, "start_drag")

	var rows []struct {
		Custom []string `json:"custom"`
		Name   string   `json:"name"`
	}
	out = mustRun(t, "settings", "keys", "list", "--format", "json")
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	for _, r := range rows {
		if r.Name == "start_drag" {
			assert.Equal(t, []string{"g"}, r.Custom)
		}
	}

	mustRun(t, "settings", "keys", "reset", "start_drag")
	data, err = os.ReadFile(filepath.Join(home, "settings.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"start_drag"`)

	res := run(t, "settings", "keys", "set", "nope", "x")
	assert.ErrorContains(t, res.err, "unknown key")
}

func TestSettingsMeta(t *testing.T) {
	newHome(t)

	out := mustRun(t, "settings", "meta", "--format", "json")

	var meta map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &meta))
	format, ok := meta["format"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, format, "dwell_millis")
	assert.Contains(t, format, "default_operations")
}

func TestServeAddress(t *testing.T) {
	port := 2222
	tests := []struct {
		name     string
		cmd      ServeCmd
		settings *config.Settings
		wantHost string
		wantPort int
	}{
		{
			name:     "defaults",
			wantHost: config.DefaultSSHHost,
			wantPort: config.DefaultSSHPort,
		},
		{
			name:     "settings",
			settings: &config.Settings{SSHHost: "0.0.0.0", SSHPort: &port},
			wantHost: "0.0.0.0",
			wantPort: 2222,
		},
		{
			name:     "flags win",
			cmd:      ServeCmd{Host: "127.0.0.1", Port: 9000},
			settings: &config.Settings{SSHHost: "0.0.0.0", SSHPort: &port},
			wantHost: "127.0.0.1",
			wantPort: 9000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port := tt.cmd.address(tt.settings)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantPort, port)
		})
	}
}
