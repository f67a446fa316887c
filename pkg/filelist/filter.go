package filelist

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/datatug/filelist/pkg/files"
)

// Filter decides which directory entries are listed.
type Filter struct {
	// Hidden names are never listed, whatever their type.
	Hidden []string
	// Extensions are case-sensitive name suffixes a non-directory must end with.
	Extensions []string
	// Patterns are doublestar globs a non-directory may match instead.
	Patterns []string
}

func DefaultFilter() Filter {
	return Filter{
		Hidden:     []string{".git"},
		Extensions: []string{".CSV"},
	}
}

func (f Filter) Validate() error {
	for _, pattern := range f.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid file pattern %q", pattern)
		}
	}
	for _, ext := range f.Extensions {
		if ext == "" {
			return fmt.Errorf("empty file extension")
		}
	}
	return nil
}

// Accept uses the entry type as enumerated, so a symlink to a directory
// counts as a directory only if it also passes the file rules.
func (f Filter) Accept(entry os.DirEntry) bool {
	name := entry.Name()
	if name == files.SelfEntryName {
		return false
	}
	if slices.Contains(f.Hidden, name) {
		return false
	}
	if entry.IsDir() {
		return true
	}
	return f.matchesFile(name)
}

func (f Filter) matchesFile(name string) bool {
	for _, ext := range f.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	for _, pattern := range f.Patterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}
