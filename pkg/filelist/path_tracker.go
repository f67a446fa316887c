package filelist

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// MaxPathLen bounds the length of a browse path.
const MaxPathLen = 4096

var (
	ErrInvalidPath = errors.New("invalid path")
	ErrAtBoundary  = errors.New("can not ascend above browse root")
)

// Initialize validates rootPath and returns its cleaned form as the starting path.
func Initialize(rootPath string) (string, error) {
	if rootPath == "" {
		return "", fmt.Errorf("%w: empty root path", ErrInvalidPath)
	}
	if strings.ContainsRune(rootPath, 0) {
		return "", fmt.Errorf("%w: root path contains NUL", ErrInvalidPath)
	}
	if !path.IsAbs(rootPath) {
		return "", fmt.Errorf("%w: root path %q is not absolute", ErrInvalidPath, rootPath)
	}
	p := path.Clean(rootPath)
	if len(p) > MaxPathLen {
		return "", fmt.Errorf("%w: root path is longer than %d bytes", ErrInvalidPath, MaxPathLen)
	}
	return p, nil
}

// Descend appends childName to currentPath. No existence check is made.
func Descend(currentPath, childName string) (string, error) {
	if err := checkEntryName(childName); err != nil {
		return "", err
	}
	var p string
	if currentPath == "/" {
		p = "/" + childName
	} else {
		p = currentPath + "/" + childName
	}
	if len(p) > MaxPathLen {
		return "", fmt.Errorf("%w: path is longer than %d bytes", ErrInvalidPath, MaxPathLen)
	}
	return p, nil
}

// checkEntryName requires a bare name of a directory entry.
func checkEntryName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: bad entry name %q", ErrInvalidPath, name)
	case strings.ContainsAny(name, "/\x00"):
		return fmt.Errorf("%w: entry name %q contains a separator", ErrInvalidPath, name)
	}
	return nil
}

// Ascend returns the parent of currentPath; the parent of "/" is "/".
func Ascend(currentPath string) string {
	return path.Dir(currentPath)
}

func IsAtRoot(currentPath string) bool {
	return currentPath == "/"
}

func IsAtConfiguredRoot(currentPath, rootPath string) bool {
	return currentPath == rootPath
}

// isWithin reports whether p is rootPath or lies below it.
func isWithin(p, rootPath string) bool {
	if p == rootPath || rootPath == "/" {
		return true
	}
	return strings.HasPrefix(p, rootPath+"/")
}

// PathTracker owns the current browse path and the root it may not leave.
type PathTracker struct {
	current string
	root    string
}

func NewPathTracker(rootPath string) (*PathTracker, error) {
	root, err := Initialize(rootPath)
	if err != nil {
		return nil, err
	}
	return &PathTracker{current: root, root: root}, nil
}

func (t *PathTracker) Current() string {
	return t.current
}

func (t *PathTracker) Root() string {
	return t.root
}

// Descend moves into childName. On error the current path is unchanged.
func (t *PathTracker) Descend(childName string) error {
	p, err := Descend(t.current, childName)
	if err != nil {
		return err
	}
	t.current = p
	return nil
}

// Ascend moves to the parent directory unless already at "/" or at the root.
func (t *PathTracker) Ascend() error {
	if IsAtRoot(t.current) || IsAtConfiguredRoot(t.current, t.root) {
		return fmt.Errorf("%w: %s", ErrAtBoundary, t.current)
	}
	t.current = Ascend(t.current)
	return nil
}

// Restore sets the current path to p when p is an absolute path inside the root.
func (t *PathTracker) Restore(p string) error {
	cleaned, err := Initialize(p)
	if err != nil {
		return err
	}
	if !isWithin(cleaned, t.root) {
		return fmt.Errorf("%w: %s is outside of %s", ErrInvalidPath, cleaned, t.root)
	}
	t.current = cleaned
	return nil
}
