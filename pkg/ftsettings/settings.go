package ftsettings

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/datatug/filelist/pkg/filelist"
	"github.com/datatug/filelist/pkg/fsutils"
)

const UserDir = "~/.filelist"

const (
	configFileName = "config.yaml"
	logFileName    = "filelist.log"
)

var osUserHomeDir = os.UserHomeDir
var osGetenv = os.Getenv

// GetUserDir returns the expanded settings directory.
func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

// LogSettings configures the slog logger.
type LogSettings struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"` // "text" or "json"
	File   string `yaml:"file,omitempty"`   // empty = default log file in UserDir
}

// Settings holds the browser configuration.
type Settings struct {
	RootPath        string      `yaml:"root,omitempty"`
	Extensions      []string    `yaml:"extensions,omitempty"`
	Hidden          []string    `yaml:"hidden,omitempty"`
	Patterns        []string    `yaml:"patterns,omitempty"`
	RememberLastDir bool        `yaml:"remember_last_dir,omitempty"`
	Log             LogSettings `yaml:"log,omitempty"`
}

// DefaultSettings returns the compatibility defaults: browse /usr/bin/dat,
// list .CSV files, hide .git.
func DefaultSettings() *Settings {
	filter := filelist.DefaultFilter()
	return &Settings{
		RootPath:   filelist.DefaultRootPath,
		Extensions: filter.Extensions,
		Hidden:     filter.Hidden,
		Patterns:   []string{},
		Log: LogSettings{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadSettings applies, in order, defaults, the YAML config file and
// FILELIST_* environment variables. An empty configPath means the optional
// config.yaml in UserDir.
func LoadSettings(configPath string) (*Settings, error) {
	settings := DefaultSettings()
	required := configPath != ""
	if !required {
		userDir, err := GetUserDir()
		if err == nil {
			configPath = filepath.Join(userDir, configFileName)
		}
	}
	if configPath != "" {
		if err := fsutils.ReadYAMLFile(configPath, required, settings); err != nil {
			return settings, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}
	settings.applyEnv()
	return settings, nil
}

func (s *Settings) applyEnv() {
	if root := osGetenv("FILELIST_ROOT"); root != "" {
		s.RootPath = root
	}
	if extensions := osGetenv("FILELIST_EXTENSIONS"); extensions != "" {
		s.Extensions = splitList(extensions)
	}
	if hidden := osGetenv("FILELIST_HIDDEN"); hidden != "" {
		s.Hidden = splitList(hidden)
	}
	if patterns := osGetenv("FILELIST_PATTERNS"); patterns != "" {
		s.Patterns = splitList(patterns)
	}
	if remember := osGetenv("FILELIST_REMEMBER_LAST_DIR"); remember != "" {
		s.RememberLastDir = strings.ToLower(remember) == "true"
	}
	if logLevel := osGetenv("FILELIST_LOG_LEVEL"); logLevel != "" {
		s.Log.Level = logLevel
	}
	if logFormat := osGetenv("FILELIST_LOG_FORMAT"); logFormat != "" {
		s.Log.Format = logFormat
	}
	if logFile := osGetenv("FILELIST_LOG_FILE"); logFile != "" {
		s.Log.File = logFile
	}
}

func splitList(s string) []string {
	items := strings.Split(s, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

// Validate expands ~ in the root path and checks the rest of the settings.
func (s *Settings) Validate() error {
	s.RootPath = fsutils.ExpandHome(s.RootPath)
	if !path.IsAbs(filepath.ToSlash(s.RootPath)) {
		return fmt.Errorf("root path must be absolute: %q", s.RootPath)
	}
	if err := s.Filter().Validate(); err != nil {
		return err
	}
	if _, err := ParseLogLevel(s.Log.Level); err != nil {
		return err
	}
	switch s.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", s.Log.Format)
	}
	return nil
}

func (s *Settings) Filter() filelist.Filter {
	return filelist.Filter{
		Hidden:     s.Hidden,
		Extensions: s.Extensions,
		Patterns:   s.Patterns,
	}
}

// ParseLogLevel converts a level name to slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// LogFilePath is where logs go; the terminal belongs to the UI.
func (s *Settings) LogFilePath() string {
	if s.Log.File != "" {
		return fsutils.ExpandHome(s.Log.File)
	}
	userDir, err := GetUserDir()
	if err != nil {
		return ""
	}
	return filepath.Join(userDir, logFileName)
}

var openLogFile = func(name string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// ConfigureLogger builds a logger writing to LogFilePath. When the file can
// not be opened logs are discarded. The returned close func is never nil.
func (s *Settings) ConfigureLogger() (*slog.Logger, func()) {
	var output io.Writer = io.Discard
	closeFunc := func() {}
	if logFile := s.LogFilePath(); logFile != "" {
		if file, err := openLogFile(logFile); err == nil {
			output = file
			closeFunc = func() {
				_ = file.Close()
			}
		}
	}

	level, _ := ParseLogLevel(s.Log.Level)
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if s.Log.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler), closeFunc
}
