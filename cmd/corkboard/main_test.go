package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	require.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
	require.Equal(t, slog.LevelError+2, parseLogLevel("error+2"))
	require.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
	require.Equal(t, slog.LevelInfo, parseLogLevel(""))
}

func TestEnsureDBDir(t *testing.T) {
	require.NoError(t, ensureDBDir(":memory:"))
	require.NoError(t, ensureDBDir("local.db"))

	path := filepath.Join(t.TempDir(), "nested", "dir", "board.db")
	require.NoError(t, ensureDBDir(path))
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestRotatingLog_MovesFullFileAside(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "corkboard.log")
	l, err := openRotatingLog(path)
	require.NoError(t, err)
	defer l.Close()
	l.maxSize = 64

	_, err = l.Write([]byte(strings.Repeat("a", 60)))
	require.NoError(t, err)
	_, err = l.Write([]byte(strings.Repeat("b", 20)))
	require.NoError(t, err)

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("b", 20), string(current))
	backup, err := os.ReadFile(path + ".1")
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("a", 60), string(backup))
}

func TestRotatingLog_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corkboard.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	l, err := openRotatingLog(path)
	require.NoError(t, err)
	_, err = l.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "old\nnew\n", string(data))
	_, err = os.Stat(path + ".1")
	require.True(t, os.IsNotExist(err))
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_BoardsAndUsers(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CORKBOARD_DB_PATH", filepath.Join(dir, "board.db"))
	t.Setenv("CORKBOARD_STORE_DRIVER", "sqlite")
	t.Setenv("CORKBOARD_TRANSPORT", "stdio")
	t.Setenv("CORKBOARD_LOG_PATH", filepath.Join(dir, "corkboard.log"))

	out, err := runCLI(t, "migrate")
	require.NoError(t, err)
	require.Contains(t, out, "schema up to date")

	out, err = runCLI(t, "board", "add", "Roadmap", "--public")
	require.NoError(t, err)
	require.Contains(t, out, "Roadmap")

	out, err = runCLI(t, "board", "list")
	require.NoError(t, err)
	require.Contains(t, out, "Roadmap")
	require.Contains(t, out, "true")

	out, err = runCLI(t, "board", "list", "--trashed")
	require.NoError(t, err)
	require.NotContains(t, out, "Roadmap")

	_, err = runCLI(t, "user", "add", "ana")
	require.NoError(t, err)
	_, err = runCLI(t, "user", "add", "ana")
	require.Error(t, err)

	out, err = runCLI(t, "user", "list")
	require.NoError(t, err)
	require.Contains(t, out, "ana")

	_, err = runCLI(t, "board", "add", "  ")
	require.Error(t, err)
}

func TestCLI_LockHeldByAnotherProcess(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CORKBOARD_DB_PATH", filepath.Join(dir, "board.db"))
	t.Setenv("CORKBOARD_TRANSPORT", "stdio")
	t.Setenv("CORKBOARD_LOG_PATH", filepath.Join(dir, "corkboard.log"))

	a, err := openApp("")
	require.NoError(t, err)
	defer a.Close()

	_, err = openApp("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "another corkboard process")
}
