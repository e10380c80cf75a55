package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileIsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	t.Setenv("PLANNER_DIR", "/tmp/planner-test")
	path := writeFile(t, "config.toml", `
[storage]
backend = "SQLite"
path = "${PLANNER_DIR}/planner.db"

[logging]
level = "debug"

[schedule]
even_week_anchor = "2026-10-17"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/planner-test/planner.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format, "unset keys keep defaults")

	anchor, ok, err := cfg.EvenWeekAnchor()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.October, anchor.Month())
	assert.Equal(t, 17, anchor.Day())

	dataPath, err := cfg.DataPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/planner-test/planner.db", dataPath)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
storage:
  backend: json
  path: /tmp/study_data.json
logging:
  level: info
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, "json", cfg.Logging.Format)
	_, ok, err := cfg.EvenWeekAnchor()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]string{
		"backend": "[storage]\nbackend = \"postgres\"\n",
		"level":   "[logging]\nlevel = \"loud\"\n",
		"anchor":  "[schedule]\neven_week_anchor = \"next monday\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.toml", body))
			assert.ErrorContains(t, err, "validating config")
		})
	}
}

func TestLoadParseError(t *testing.T) {
	_, err := Load(writeFile(t, "config.toml", "[storage\n"))
	assert.ErrorContains(t, err, "parsing config file")
}

func TestDataPathDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	p, err := cfg.DataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".studyplanner", "study_data.json"), p)

	cfg.Storage.Backend = BackendSQLite
	p, err = cfg.DataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".studyplanner", "planner.db"), p)

	cfg.Storage.Path = "~/notes/plan.json"
	p, err = cfg.DataPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes", "plan.json"), p)
}

func TestResolvePathEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/planner.yaml")
	p, err := ResolvePath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/planner.yaml", p)
}
