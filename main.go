package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/datatug/filelist/pkg/app"
	"github.com/datatug/filelist/pkg/ftsettings"
	"github.com/datatug/filelist/pkg/profiling"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var osExit = os.Exit

func main() {
	if err := newRootCommand().Execute(); err != nil {
		osExit(1)
	}
}

type cliFlags struct {
	configPath      string
	extensions      []string
	hidden          []string
	patterns        []string
	rememberLastDir bool
	logLevel        string
	logFormat       string
	logFile         string
	cpuProfile      string
	memProfile      string
}

func newRootCommand() *cobra.Command {
	var flags cliFlags
	cmd := &cobra.Command{
		Use:   "filelist [root]",
		Short: "Terminal browser for the CSV files under a directory",
		Long: "Terminal browser for the CSV files under a directory.\n\n" +
			"Settings are read from ~/.filelist/config.yaml (or --config), then FILELIST_* environment variables, then flags.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, flags, args)
			if err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
				return err
			}
			if flags.cpuProfile != "" {
				stopCPUProfiling := profiling.DoCPUProfiling(flags.cpuProfile)
				defer stopCPUProfiling()
			}
			if flags.memProfile != "" {
				defer profiling.DoMemProfiling(flags.memProfile)()
			}
			logger, closeLog := settings.ConfigureLogger()
			defer closeLog()
			slog.SetDefault(logger)

			tviewApp := newTviewApp()
			if _, err = setupApp(app.NewApp(tviewApp), settings, logger); err != nil {
				logger.Error("failed to set up browser", "root", settings.RootPath, "error", err)
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
				return err
			}
			return run(cmd, tviewApp)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")
	f.StringSliceVarP(&flags.extensions, "ext", "e", nil, "case-sensitive file name suffixes to list (default .CSV)")
	f.StringSliceVar(&flags.hidden, "hide", nil, "entry names never listed (default .git)")
	f.StringSliceVarP(&flags.patterns, "pattern", "p", nil, "glob patterns files may match instead of an extension, e.g. '**/*.tsv'")
	f.BoolVarP(&flags.rememberLastDir, "restore", "r", false, "start in the directory browsed last time")
	f.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	f.StringVar(&flags.logFormat, "log-format", "", "log format: text or json")
	f.StringVar(&flags.logFile, "log-file", "", "log file (default ~/.filelist/filelist.log)")
	f.StringVar(&flags.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	f.StringVar(&flags.memProfile, "memprofile", "", "write memory profile to `file` on exit")
	return cmd
}

// loadSettings layers flags and the root argument over the config file.
func loadSettings(cmd *cobra.Command, flags cliFlags, args []string) (*ftsettings.Settings, error) {
	settings, err := ftsettings.LoadSettings(flags.configPath)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		settings.RootPath = args[0]
	}
	changed := cmd.Flags().Changed
	if changed("ext") {
		settings.Extensions = flags.extensions
	}
	if changed("hide") {
		settings.Hidden = flags.hidden
	}
	if changed("pattern") {
		settings.Patterns = flags.patterns
	}
	if changed("restore") {
		settings.RememberLastDir = flags.rememberLastDir
	}
	if changed("log-level") {
		settings.Log.Level = flags.logLevel
	}
	if changed("log-format") {
		settings.Log.Format = flags.logFormat
	}
	if changed("log-file") {
		settings.Log.File = flags.logFile
	}
	if err = settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

var setupApp = app.SetupApp

var newTviewApp = func() *tview.Application {
	return tview.NewApplication()
}

type application interface{ Run() error }

var run = func(cmd *cobra.Command, a application) error {
	if err := a.Run(); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
		return err
	}
	return nil
}
