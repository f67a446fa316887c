package viewers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/datatug/filelist/pkg/fsutils"
	"github.com/rivo/tview"
)

// MaxFileBytes caps how much of a file is read for viewing.
const MaxFileBytes = 512 * 1024

// Viewer shows the content of a single file.
type Viewer interface {
	Title() string
	Main() tview.Primitive
}

var readFileData = fsutils.ReadFileData

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
}

// Open picks a viewer by the file extension, case-insensitively:
// CSV files get a table, images a metadata table, anything else text.
func Open(dirPath, fileName string) (Viewer, error) {
	fullName := filepath.Join(dirPath, fileName)
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, isImage := imageExtensions[ext]; isImage {
		return NewImageViewer(fullName)
	}
	data, err := readFileData(fullName, MaxFileBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fullName, err)
	}
	switch ext {
	case ".csv", ".tsv":
		return NewCSVViewer(fileName, data, DefaultMaxRows)
	default:
		return NewTextViewer(fileName, data), nil
	}
}
