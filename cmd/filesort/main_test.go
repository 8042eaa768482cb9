package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filesort/internal/config"
	"filesort/internal/fault"
	"filesort/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	configPath := filepath.Join(base, "filesort.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nstate_dir = %q\n\n[logging]\nlevel = %q\n\n[sorter]\nprogress_interval = %d\n\n[report]\nfilename = %q\n\n[history]\nenabled = %t\n",
		cfg.Paths.StateDir,
		cfg.Logging.Level,
		cfg.Sorter.ProgressInterval,
		cfg.Report.Filename,
		cfg.History.Enabled,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNoArgumentsPrintsHelp(t *testing.T) {
	out, _, err := runCLI(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "filesort <source> <target>")
}

func TestSourceNamedLikeSubcommandNeedsPath(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithHistory(false))
	t.Chdir(env.baseDir)
	testsupport.WriteTree(t, "history", map[string]string{"song.mp3": "m"})

	out, _, err := runCLI(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "filesort ./history sorted")

	_, _, err = runCLI(t, env.configPath, "./history", "sorted")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(env.baseDir, "sorted", "audio", "MP3", "song.mp3"))
}

func TestSingleArgumentIsRejected(t *testing.T) {
	_, _, err := runCLI(t, "", "only-source")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected <source> and <target>")
}

func TestSortWritesReportAndHistory(t *testing.T) {
	env := setupCLITestEnv(t)
	source := filepath.Join(env.baseDir, "incoming")
	target := filepath.Join(env.baseDir, "sorted")
	testsupport.WriteTree(t, source, map[string]string{
		"a.jpg":     "a",
		"b.PNG":     "b",
		"notes.txt": "n",
		"readme":    "r",
		"script.py": "s",
	})

	out, _, err := runCLI(t, env.configPath, source, target)
	require.NoError(t, err)
	assert.Contains(t, out, "Processed 5 of 5 files")
	assert.Contains(t, out, "images")

	reportPath := filepath.Join(target, "report.md")
	assert.Contains(t, out, reportPath)
	body := testsupport.ReadFile(t, reportPath)
	assert.True(t, strings.HasPrefix(body, "\ufeff# File Classification Report"))
	assert.Contains(t, body, "| images | 2 | 40.00% |")
	assert.Contains(t, body, "| uncategorized | 1 | 20.00% |")

	assert.FileExists(t, filepath.Join(target, "images", "JPEG", "a.jpg"))
	assert.FileExists(t, filepath.Join(target, "uncategorized", "readme"))

	out, _, err = runCLI(t, env.configPath, "history")
	require.NoError(t, err)
	assert.Contains(t, out, source)
	assert.Contains(t, out, target)

	out, _, err = runCLI(t, env.configPath, source, target)
	require.NoError(t, err)
	assert.Contains(t, out, "Processed 0 of 0 files")
	assert.FileExists(t, reportPath)
}

func TestSortCustomReportPath(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithHistory(false))
	source := filepath.Join(env.baseDir, "one.csv")
	testsupport.WriteFile(t, source, 4)
	target := filepath.Join(env.baseDir, "sorted")
	reportPath := filepath.Join(env.baseDir, "reports", "run.md")

	_, _, err := runCLI(t, env.configPath, source, target, "--report", reportPath)
	require.NoError(t, err)
	assert.FileExists(t, reportPath)
	assert.NoFileExists(t, filepath.Join(target, "report.md"))
	assert.NoFileExists(t, env.cfg.HistoryPath())
	assert.FileExists(t, filepath.Join(target, "data-files", "CSV", "one.csv"))
}

func TestSortRelativeReportPathUsesWorkingDirectory(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithHistory(false))
	source := filepath.Join(env.baseDir, "inbox")
	testsupport.WriteTree(t, source, map[string]string{"photo.jpg": "x"})
	target := filepath.Join(env.baseDir, "sorted")
	wd := filepath.Join(env.baseDir, "wd")
	require.NoError(t, os.MkdirAll(wd, 0o755))
	t.Chdir(wd)

	out, _, err := runCLI(t, env.configPath, source, target, "--report", "myreport.md")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(wd, "myreport.md"))
	assert.NoFileExists(t, filepath.Join(target, "myreport.md"))
	assert.Contains(t, out, filepath.Join(wd, "myreport.md"))
}

func TestSortMissingSourceFails(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "sorted")

	_, _, err := runCLI(t, env.configPath, filepath.Join(env.baseDir, "missing"), target)
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrNotFound)

	_, statErr := os.Stat(target)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestInvalidLogLevelFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	source := filepath.Join(env.baseDir, "in")
	testsupport.WriteTree(t, source, map[string]string{"a.txt": "a"})

	_, _, err := runCLI(t, env.configPath, "--log-level", "loud", source, filepath.Join(env.baseDir, "out"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrConfiguration)
	assert.FileExists(t, filepath.Join(source, "a.txt"))
}

func TestRulesCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, ".jpeg")
	assert.Contains(t, out, "source-code")
	assert.Contains(t, out, "uncategorized")
}

func TestHistoryWithoutRuns(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, env.configPath, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded yet.")
}

func TestConfigInitAndShow(t *testing.T) {
	env := setupCLITestEnv(t)

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err := runCLI(t, "", "config", "init", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote sample configuration")
	assert.FileExists(t, target)

	_, _, err = runCLI(t, "", "config", "init", target)
	require.ErrorContains(t, err, "--overwrite")

	_, _, err = runCLI(t, "", "config", "init", target, "--overwrite")
	require.NoError(t, err)

	out, _, err = runCLI(t, env.configPath, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, env.configPath)
	assert.Contains(t, out, env.cfg.Paths.StateDir)
	assert.Contains(t, out, "[sorter]")
}
