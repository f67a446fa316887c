package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/datatug/filelist/pkg/app"
	"github.com/datatug/filelist/pkg/ftsettings"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubs struct {
	settings *ftsettings.Settings
	setupErr error
	runErr   error
	ran      bool
}

// useStubs isolates HOME and replaces the app seams.
func useStubs(t *testing.T) *stubs {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{"FILELIST_ROOT", "FILELIST_EXTENSIONS", "FILELIST_HIDDEN", "FILELIST_PATTERNS",
		"FILELIST_REMEMBER_LAST_DIR", "FILELIST_LOG_LEVEL", "FILELIST_LOG_FORMAT", "FILELIST_LOG_FILE"} {
		t.Setenv(name, "")
	}
	s := &stubs{}
	oldSetupApp := setupApp
	oldRun := run
	t.Cleanup(func() {
		setupApp = oldSetupApp
		run = oldRun
	})
	setupApp = func(a app.App, settings *ftsettings.Settings, logger *slog.Logger) (*app.Browser, error) {
		s.settings = settings
		return nil, s.setupErr
	}
	run = func(cmd *cobra.Command, a application) error {
		s.ran = true
		return s.runErr
	}
	return s
}

func execute(args ...string) (string, error) {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCommand()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetOut(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	s := useStubs(t)
	root := t.TempDir()

	_, err := execute(root, "--ext", ".txt,.CSV", "--hide", ".svn", "--pattern", "**/*.tsv", "--restore", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.True(t, s.ran)
	require.NotNil(t, s.settings)
	assert.Equal(t, root, s.settings.RootPath)
	assert.Equal(t, []string{".txt", ".CSV"}, s.settings.Extensions)
	assert.Equal(t, []string{".svn"}, s.settings.Hidden)
	assert.Equal(t, []string{"**/*.tsv"}, s.settings.Patterns)
	assert.True(t, s.settings.RememberLastDir)
	assert.Equal(t, ftsettings.LogSettings{Level: "debug", Format: "json"}, s.settings.Log)
}

func TestRootCommand_Defaults(t *testing.T) {
	s := useStubs(t)
	_, err := execute()
	require.NoError(t, err)
	assert.Equal(t, ftsettings.DefaultSettings(), s.settings)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	s := useStubs(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("root: /data\nextensions: [.tsv]\n"), 0644))

	_, err := execute("--config", configPath, "--log-file", filepath.Join(t.TempDir(), "x.log"))
	require.NoError(t, err)
	assert.Equal(t, "/data", s.settings.RootPath)
	assert.Equal(t, []string{".tsv"}, s.settings.Extensions)
}

func TestRootCommand_Errors(t *testing.T) {
	t.Run("relative_root", func(t *testing.T) {
		s := useStubs(t)
		stderr, err := execute("relative/dir")
		assert.Error(t, err)
		assert.Contains(t, stderr, "must be absolute")
		assert.Nil(t, s.settings)
	})

	t.Run("missing_config", func(t *testing.T) {
		useStubs(t)
		_, err := execute("--config", filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("too_many_args", func(t *testing.T) {
		useStubs(t)
		_, err := execute("/a", "/b")
		assert.Error(t, err)
	})

	t.Run("setup_error", func(t *testing.T) {
		s := useStubs(t)
		s.setupErr = errors.New("setup failed")
		stderr, err := execute(t.TempDir())
		assert.ErrorIs(t, err, s.setupErr)
		assert.Contains(t, stderr, "setup failed")
		assert.False(t, s.ran)
	})

	t.Run("run_error", func(t *testing.T) {
		s := useStubs(t)
		s.runErr = errors.New("terminal gone")
		_, err := execute(t.TempDir())
		assert.ErrorIs(t, err, s.runErr)
	})
}

func TestRootCommand_Profiling(t *testing.T) {
	useStubs(t)
	dir := t.TempDir()
	cpuProfile := filepath.Join(dir, "cpu.prof")
	memProfile := filepath.Join(dir, "mem.prof")
	_, err := execute(dir, "--cpuprofile", cpuProfile, "--memprofile", memProfile)
	require.NoError(t, err)
	_, err = os.Stat(cpuProfile)
	assert.NoError(t, err)
	_, err = os.Stat(memProfile)
	assert.NoError(t, err)
}

func TestMain_ExitCode(t *testing.T) {
	useStubs(t)
	oldArgs := os.Args
	oldOsExit := osExit
	defer func() {
		os.Args = oldArgs
		osExit = oldOsExit
	}()
	var exitCode = -1
	osExit = func(code int) {
		exitCode = code
	}

	os.Args = []string{"filelist", "relative"}
	main()
	assert.Equal(t, 1, exitCode)

	exitCode = -1
	os.Args = []string{"filelist", t.TempDir()}
	main()
	assert.Equal(t, -1, exitCode)
}

type fakeApp struct {
	err error
}

func (f fakeApp) Run() error {
	return f.err
}

func Test_run(t *testing.T) {
	cmd := &cobra.Command{}
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)

	assert.NoError(t, run(cmd, fakeApp{}))

	expectedErr := errors.New("test error")
	assert.ErrorIs(t, run(cmd, fakeApp{err: expectedErr}), expectedErr)
	assert.Contains(t, stderr.String(), expectedErr.Error())
}
