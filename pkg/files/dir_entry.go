package files

import (
	"os"
	"path/filepath"
)

// Names of the self and parent entries every POSIX directory listing carries.
const (
	SelfEntryName   = "."
	ParentEntryName = ".."
)

type DirEntryOption func(*DirEntry)

// Symlink marks the entry as a symbolic link, as os.ReadDir reports it.
func Symlink() DirEntryOption {
	return func(d *DirEntry) {
		d.mode |= os.ModeSymlink
	}
}

// WithInfo attaches file info built from the given options.
func WithInfo(o ...FileInfoOption) DirEntryOption {
	return func(d *DirEntry) {
		d.info = NewFileInfo(*d, o...)
	}
}

func NewDirEntry(name string, isDir bool, o ...DirEntryOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{name: name}
	if isDir {
		dirEntry.mode = os.ModeDir
	}
	for _, opt := range o {
		opt(&dirEntry)
	}
	return dirEntry
}

// DotEntries returns the "." and ".." entries that os.ReadDir omits.
func DotEntries() []os.DirEntry {
	return []os.DirEntry{
		NewDirEntry(SelfEntryName, true),
		NewDirEntry(ParentEntryName, true),
	}
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name string
	mode os.FileMode
	info *FileInfo
}

func (d DirEntry) Name() string      { return d.name }
func (d DirEntry) IsDir() bool       { return d.mode.IsDir() }
func (d DirEntry) Type() os.FileMode { return d.mode.Type() }
func (d DirEntry) Info() (os.FileInfo, error) {
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}
