package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty temp dir so no stray .env or wrdlstab.yaml is read.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func TestDefaults(t *testing.T) {
	chdir(t)
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Length)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, 50000, cfg.TopN)
	assert.Equal(t, 500, cfg.MaxShow)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestEnvironmentAndFileAndFlags(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrdlstab.yaml"), []byte("length: 6\nlang: de\nmax_show: 20\n"), 0o644))
	t.Setenv("WRDLSTAB_TOP_N", "1000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WRDLSTAB_LANG", "fr")

	v := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("max-show", 0, "")
	fs.String("unrelated", "", "")
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--max-show=7"}))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Length, "from file")
	assert.Equal(t, "fr", cfg.Lang, "env beats file")
	assert.Equal(t, 1000, cfg.TopN)
	assert.Equal(t, "debug", cfg.LogLevel, "unprefixed LOG_LEVEL")
	assert.Equal(t, 7, cfg.MaxShow, "flag beats file")
}

func TestExplicitFile(t *testing.T) {
	dir := chdir(t)
	_, err := Load(New(), filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("length: 0\n"), 0o644))
	_, err = Load(New(), path)
	require.ErrorIs(t, err, ErrInvalidConfig)

	require.NoError(t, os.WriteFile(path, []byte("length: 33\n"), 0o644))
	_, err = Load(New(), path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDotEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WRDLSTAB_WORDS_FILE=/tmp/list.txt\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("WRDLSTAB_WORDS_FILE") })

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/list.txt", cfg.WordsFile)
}
