package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var c Config
	assert.Equal(t, DefaultHistoryCapacity, c.HistoryCapacity())
	assert.Equal(t, DefaultMaxLineLength, c.MaxLineLength())
	assert.False(t, c.IsSet("history.capacity"))
	require.NoError(t, c.Validate())
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    string
		wantErr error
	}{
		{key: "author.name", value: "Ada", want: "Ada"},
		{key: "author.email", value: "ada@example.com", want: "ada@example.com"},
		{key: "history.capacity", value: "5", want: "5"},
		{key: "history.capacity", value: "0", wantErr: ErrInvalidValue},
		{key: "history.capacity", value: "1001", wantErr: ErrInvalidValue},
		{key: "history.capacity", value: "many", wantErr: ErrInvalidValue},
		{key: "limits.max_line_length", value: "4096", want: "4096"},
		{key: "limits.max_line_length", value: "-1", wantErr: ErrInvalidValue},
		{key: "editor.mode", value: "vi", wantErr: ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			var c Config
			err := c.Set(tt.key, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			got, err := c.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, c.IsSet(tt.key))
		})
	}
}

func TestAllCoversValidKeys(t *testing.T) {
	var c Config
	all := c.All()
	for _, k := range ValidKeys() {
		assert.Contains(t, all, k)
		assert.True(t, IsValidKey(k))
	}
	assert.False(t, IsValidKey("sync.files"))
}

func TestLoadLocal(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(".lined", 0755))
	require.NoError(t, os.WriteFile(filepath.Join(".lined", "config.yaml"),
		[]byte("history:\n  capacity: 7\nauthor:\n  name: Tester\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, cfg.Scope())
	assert.Equal(t, 7, cfg.HistoryCapacity())
	assert.Equal(t, "Tester", cfg.Author.Name)
}

func TestLoadRejectsOutOfBounds(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(".lined", 0755))
	require.NoError(t, os.WriteFile(filepath.Join(".lined", "config.yaml"),
		[]byte("history:\n  capacity: 0\n"), 0644))

	_, err := LoadScope(ScopeLocal)
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := LoadScope(ScopeLocal)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("history.capacity", "4"))
	require.NoError(t, cfg.Save())

	again, err := LoadScope(ScopeLocal)
	require.NoError(t, err)
	assert.Equal(t, 4, again.HistoryCapacity())
}
