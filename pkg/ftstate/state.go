package ftstate

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/datatug/filelist/pkg/fsutils"
)

const defaultStateDir = "~/.filelist"
const stateFileName = "filelist-state.json"

var stateDirPath = fsutils.ExpandHome(defaultStateDir)

// State is what the browser remembers between runs.
type State struct {
	RootPath    string `json:"root_path,omitempty"`
	CurrentDir  string `json:"current_dir,omitempty"`
	CurrentFile string `json:"current_file,omitempty"`
}

func getStateFilePath() string {
	return filepath.Join(stateDirPath, stateFileName)
}

var logErr = func(msg string, err error) {
	slog.Warn(msg, "file", getStateFilePath(), "error", err)
}

func GetState() (*State, error) {
	var state State
	return &state, readJSON(getStateFilePath(), false, &state)
}

// GetCurrentDir returns the remembered directory if it was saved for the
// same rootPath, otherwise an empty string.
func GetCurrentDir(rootPath string) string {
	var state State
	if err := readJSON(getStateFilePath(), false, &state); err != nil {
		logErr("failed to read state file", err)
		return ""
	}
	if state.RootPath != rootPath {
		return ""
	}
	return state.CurrentDir
}

func SaveCurrentDir(rootPath, currentDir string) {
	saveStateValue(func(state *State) {
		if state.RootPath != rootPath || state.CurrentDir != currentDir {
			state.CurrentFile = ""
		}
		state.RootPath = rootPath
		state.CurrentDir = currentDir
	})
}

func SaveCurrentFileName(name string) {
	saveStateValue(func(state *State) {
		state.CurrentFile = name
	})
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

func saveStateValue(f func(state *State)) {
	filePath := getStateFilePath()
	var state State
	if err := readJSON(filePath, false, &state); err != nil {
		logErr("failed to read state file", err)
	}

	if err := os.MkdirAll(stateDirPath, 0755); err != nil {
		logErr("failed to create state directory", err)
		return
	}

	f(&state)
	if err := writeJSON(filePath, state); err != nil {
		logErr("failed to write state file", err)
	}
}
