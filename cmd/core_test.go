package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("list shows defaults", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("config")
		env.contains(out, "author.name")
		env.contains(out, "history.capacity: 3")
		env.contains(out, "limits.max_line_length")
	})

	t.Run("set then get", func(t *testing.T) {
		env := newTestEnv(t)
		env.contains(env.run("config", "history.capacity", "5"), "history.capacity = 5 (global)")
		env.equals(env.run("config", "history.capacity"), "5")
		assert.FileExists(t, filepath.Join(env.home, ".lined", "config.yaml"))
	})

	t.Run("local", func(t *testing.T) {
		env := newTestEnv(t)
		env.contains(env.run("config", "--local", "author.name", "Ada"), "(local)")
		assert.FileExists(t, filepath.Join(env.dir, ".lined", "config.yaml"))
	})

	t.Run("errors", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.runErr("config", "editor.mode", "vi")
		assert.Error(t, err)
		_, err = env.runErr("config", "history.capacity", "0")
		assert.Error(t, err)
	})
}

func TestConfig_CapacityBoundsUndo(t *testing.T) {
	env := newTestEnv(t)
	env.run("config", "history.capacity", "5")

	out := env.runStdin("append a\nappend b\nappend c\nappend d\nundo\nundo\nundo\nundo\nundo\nprint\n", "edit")
	assert.Equal(t, 1, strings.Count(out, "Nothing to undo"))
}

func TestConfig_InvalidBlocksEditing(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(env.dir, ".lined"), 0755))
	env.writeFile(filepath.Join(".lined", "config.yaml"), "history:\n  capacity: 0\n")

	_, err := env.runErr("append", "a.txt", "x")
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(env.dir, "a.txt"))

	_, err = env.runErr("version")
	assert.NoError(t, err, "version runs without a session")
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	env.contains(env.run("version"), "Build Tag:")

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(env.runStdout("version", "-o", "json")), &info))
	assert.Contains(t, info, "go_version")
}

func TestLog(t *testing.T) {
	env := newTestEnv(t)
	env.run("append", "a.txt", "x", "-a", "ada")
	_, _ = env.runErr("insert", "a.txt", "9", "0", "y")

	out := env.run("log", "-n", "5")
	env.contains(out, "edit:insert  a.txt")
	env.contains(out, "failed: ")
	env.contains(out, "edit:append  a.txt  by ada  ok")

	var recs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.runStdout("log", "-n", "1", "-o", "json")), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "edit:insert", recs[0]["source"])
}
