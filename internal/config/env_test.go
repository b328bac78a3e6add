package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(values map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestDotenvLookup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOOGLE_API_KEY=from-file\n# comment\nGOOGLE_CX=\"quoted-cx\"\n"), 0644))

	lookup := DotenvLookup(path)

	v, ok := lookup(EnvAPIKey)
	assert.True(t, ok)
	assert.Equal(t, "from-file", v)

	v, ok = lookup(EnvCX)
	assert.True(t, ok)
	assert.Equal(t, "quoted-cx", v)

	_, ok = lookup("UNSET")
	assert.False(t, ok)
}

func TestDotenvLookup_MissingFile(t *testing.T) {
	lookup := DotenvLookup(filepath.Join(t.TempDir(), "nope.env"))
	_, ok := lookup(EnvAPIKey)
	assert.False(t, ok)
}

func TestChainLookups_FirstSourceWins(t *testing.T) {
	process := mapLookup(map[string]string{EnvAPIKey: "process-key"})
	user := mapLookup(map[string]string{EnvAPIKey: "user-key", EnvCX: "user-cx"})
	project := mapLookup(map[string]string{EnvCX: "project-cx"})

	lookup := ChainLookups(process, user, project)

	v, _ := lookup(EnvAPIKey)
	assert.Equal(t, "process-key", v)
	v, _ = lookup(EnvCX)
	assert.Equal(t, "user-cx", v)
}

func TestApplyEnvironment(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Search.APIKey = "file-key"
	cfg.Search.CX = "file-cx"

	got := ApplyEnvironment(cfg, mapLookup(map[string]string{
		EnvAPIKey: "env-key",
		EnvCX:     "",
	}))

	assert.Equal(t, "env-key", got.Search.APIKey)
	assert.Equal(t, "file-cx", got.Search.CX, "empty environment values must not clear configured ones")
	assert.Equal(t, "file-key", cfg.Search.APIKey, "input config must not be mutated")
}
