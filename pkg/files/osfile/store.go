package osfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/datatug/filelist/pkg/files"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)

// Store reads the local file system. Every name it is given must be
// absolute so that results never depend on the process working directory.
type Store struct {
	title string
}

func (s Store) RootTitle() string {
	return s.title
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requireAbs(name); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

// Stat follows symbolic links, so a link to a directory reports IsDir.
func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := requireAbs(name); err != nil {
		return nil, err
	}
	return osStat(name)
}

func requireAbs(name string) error {
	if !filepath.IsAbs(name) {
		return fmt.Errorf("osfile: path %q is not absolute", name)
	}
	return nil
}

func NewStore() *Store {
	var store Store
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	store.title = "🖥️" + store.title
	return &store
}
