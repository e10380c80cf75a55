package root

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gonga3/study-planner/internal/config"
	"github.com/Gonga3/study-planner/internal/storage"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "missing.toml"))
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTaskAddAndList(t *testing.T) {
	data := filepath.Join(t.TempDir(), "study_data.json")

	out, _, err := run(t, "--data", data, "task", "add", "Read chapter 3", "-m", "45", "-p", "high")
	require.NoError(t, err)
	assert.Contains(t, out, "Read chapter 3")

	out, _, err = run(t, "--data", data, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Read chapter 3")

	st, err := storage.NewFileStore(data).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, st.Tasks, 1)
	assert.Equal(t, 45, st.Tasks[0].DurationMinutes)
}

func TestTaskAddRejectsBadInput(t *testing.T) {
	data := filepath.Join(t.TempDir(), "study_data.json")

	_, _, err := run(t, "--data", data, "task", "add", "Read", "-m", "0")
	require.Error(t, err)

	_, _, err = run(t, "--data", data, "task", "add", "Read", "-p", "urgent")
	require.Error(t, err)

	_, errOut, err := run(t, "--data", data, "task", "add", "   ")
	require.NoError(t, err)
	assert.Contains(t, errOut, "title must not be blank")
}

func TestChallengeToggleWithSQLite(t *testing.T) {
	data := filepath.Join(t.TempDir(), "planner.db")

	out, _, err := run(t, "--backend", "sqlite", "--data", data, "challenge", "toggle", "1", "2", "101")
	require.NoError(t, err)
	assert.Contains(t, out, "day 1 checked")
	assert.Contains(t, out, "day 2 checked")

	out, _, err = run(t, "--backend", "sqlite", "--data", data, "challenge", "toggle", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "day 2 unchecked")

	s, err := storage.OpenSQLiteStore(context.Background(), data)
	require.NoError(t, err)
	defer s.Close()
	st, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Challenge.Done(1))
	assert.False(t, st.Challenge.Done(2))

	out, _, err = run(t, "--backend", "sqlite", "--data", data, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "3 saves")
}

func TestCorruptDataWarnsAndContinues(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "study_data.json")
	require.NoError(t, writeFile(data, "{not json"))

	out, errOut, err := run(t, "--data", data, "habit", "list")
	require.NoError(t, err)
	assert.Contains(t, errOut, "using defaults")
	assert.Contains(t, out, "Habits")
}

func TestInvalidBackend(t *testing.T) {
	_, _, err := run(t, "--backend", "postgres", "task", "list")
	require.Error(t, err)
}

func writeFile(path, body string) error {
	return os.WriteFile(path, []byte(body), 0o644)
}
