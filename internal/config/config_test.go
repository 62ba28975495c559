package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameServerDefaults(t *testing.T) {
	c, err := LoadGameServer()
	require.NoError(t, err)
	assert.Equal(t, ":7097", c.GRPCAddr)
	assert.Equal(t, ":5175", c.HTTPAddr)
	assert.Empty(t, c.WordServerAddr)
	assert.Equal(t, "file", c.StatsBackend)
	assert.Equal(t, "./data", c.StatsDir)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, 3*time.Second, c.WordTimeout)
	assert.Equal(t, "info", c.Level)
	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestGameServerOverrides(t *testing.T) {
	t.Setenv("GAME_GRPC_ADDR", ":9000")
	t.Setenv("WORD_SERVER_ADDR", "localhost:7211")
	t.Setenv("STATS_BACKEND", "sqlite")
	t.Setenv("STATS_DB", "/tmp/x.db")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("LOG_FORMAT", "json")

	c, err := LoadGameServer()
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.GRPCAddr)
	assert.Equal(t, "localhost:7211", c.WordServerAddr)
	assert.Equal(t, "sqlite", c.StatsBackend)
	assert.Equal(t, "/tmp/x.db", c.StatsDB)
	assert.Equal(t, 2*time.Hour, c.SessionTTL)
	assert.Equal(t, "json", c.Format)
}

func TestGameServerRejectsInvalid(t *testing.T) {
	cases := map[string][2]string{
		"backend":  {"STATS_BACKEND", "postgres"},
		"secret":   {"SESSION_SECRET", "short"},
		"level":    {"LOG_LEVEL", "loud"},
		"timezone": {"TIMEZONE", "Mars/Olympus"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := LoadGameServer()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")
	_, err := LoadGameServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestWordServerConfig(t *testing.T) {
	t.Setenv("WORDS_FILE", "words.json")
	t.Setenv("TIMEZONE", "Europe/London")
	c, err := LoadWordServer()
	require.NoError(t, err)
	assert.Equal(t, ":7211", c.GRPCAddr)
	assert.Equal(t, "words.json", c.WordsFile)
	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", loc.String())
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("WORD_GRPC_ADDR=:1111\nWORDS_FILE=from-dotenv.txt\n"), 0o644))
	t.Setenv("WORD_GRPC_ADDR", ":2222")
	t.Setenv("WORDS_FILE", "")
	require.NoError(t, os.Unsetenv("WORDS_FILE"))

	LoadDotEnv(path)
	t.Cleanup(func() { _ = os.Unsetenv("WORDS_FILE") })

	c, err := LoadWordServer()
	require.NoError(t, err)
	assert.Equal(t, ":2222", c.GRPCAddr)
	assert.Equal(t, "from-dotenv.txt", c.WordsFile)
}

func TestLoadClient(t *testing.T) {
	dir := t.TempDir()

	missing, err := LoadClient(filepath.Join(dir, "none.toml"))
	require.NoError(t, err)
	assert.Nil(t, missing.Server)

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("server = \"example.org:7097\"\ncolor = false\n"), 0o644))
	c, err := LoadClient(path)
	require.NoError(t, err)
	require.NotNil(t, c.Server)
	assert.Equal(t, "example.org:7097", *c.Server)
	require.NotNil(t, c.Color)
	assert.False(t, *c.Color)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("server = = \n"), 0o644))
	_, err = LoadClient(bad)
	assert.Error(t, err)

	_, err = LoadClient("")
	assert.Error(t, err)
}

func TestDefaultClientPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "dailywordle", "config.toml"), DefaultClientPath())
}

func TestDefaultSessionPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	assert.Equal(t, filepath.Join("/data", "dailywordle", "session"), DefaultSessionPath())
}
