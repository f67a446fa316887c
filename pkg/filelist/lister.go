package filelist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"sort"

	"github.com/datatug/filelist/pkg/files"
)

var ErrEnumeration = errors.New("failed to enumerate directory")

// DirectoryLister turns the content of a directory into display entries.
type DirectoryLister struct {
	store  files.Store
	filter Filter
	logger *slog.Logger
}

func NewDirectoryLister(store files.Store, filter Filter, logger *slog.Logger) *DirectoryLister {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectoryLister{
		store:  store,
		filter: filter,
		logger: logger,
	}
}

// Refresh lists currentPath. The ".." entry becomes a GoUp entry unless
// currentPath is "/" or rootPath, in which case it is dropped.
// On enumeration failure it returns an empty, non-nil slice and an error
// wrapping ErrEnumeration.
func (l *DirectoryLister) Refresh(ctx context.Context, currentPath, rootPath string) ([]Entry, error) {
	children, err := l.store.ReadDir(ctx, currentPath)
	if err != nil {
		return []Entry{}, fmt.Errorf("%w %s: %w", ErrEnumeration, currentPath, err)
	}

	accepted := make([]os.DirEntry, 0, len(children)+2)
	for _, child := range files.DotEntries() {
		if l.filter.Accept(child) {
			accepted = append(accepted, child)
		}
	}
	for _, child := range children {
		name := child.Name()
		if name == files.SelfEntryName || name == files.ParentEntryName {
			continue // already added
		}
		if l.filter.Accept(child) {
			accepted = append(accepted, child)
		}
	}
	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Name() < accepted[j].Name()
	})

	entries := make([]Entry, 0, len(accepted))
	for _, child := range accepted {
		name := child.Name()
		if name == files.ParentEntryName {
			if IsAtRoot(currentPath) || IsAtConfiguredRoot(currentPath, rootPath) {
				continue
			}
			entries = append(entries, Entry{Label: UpLabel, Kind: KindGoUp})
			continue
		}
		entries = append(entries, Entry{Label: name, Kind: l.classify(ctx, currentPath, child)})
	}
	return entries, nil
}

func (l *DirectoryLister) classify(ctx context.Context, dirPath string, child os.DirEntry) Kind {
	fullName := path.Join(dirPath, child.Name())
	info, err := l.store.Stat(ctx, fullName)
	if err != nil {
		l.logger.Debug("stat failed, using listed entry type", "path", fullName, "error", err)
		if child.IsDir() {
			return KindDirectory
		}
		return KindFile
	}
	if info.IsDir() {
		return KindDirectory
	}
	return KindFile
}
