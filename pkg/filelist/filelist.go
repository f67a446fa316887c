package filelist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var ErrConstruction = errors.New("failed to create file list")

// Row is a handle to a row created by a RowFactory.
type Row int

// Event is the kind of interaction a row received.
type Event int

const (
	EventClicked Event = iota
	EventPressed
	EventReleased
	EventFocused
)

// RowFactory is the display the list renders into.
type RowFactory interface {
	Clean()
	AddRow(symbol Symbol, label string) Row
	RowLabel(row Row) string
	RowSymbol(row Row) Symbol
}

// FileViewFunc is handed a selected file. dirPath is the absolute directory
// and fileName a bare name.
type FileViewFunc func(parent any, dirPath, fileName string)

// FileList is a directory browser: it lists the current directory into a
// RowFactory and navigates on clicks.
// It is not safe for concurrent use; call it from the UI goroutine.
type FileList struct {
	o        options
	parent   any
	rows     RowFactory
	viewFile FileViewFunc
	tracker  *PathTracker
	lister   *DirectoryLister
	entries  []Entry
}

// New creates a file list and fills rows with the first listing.
// When template is not nil its current path, root, filter and store are
// copied, and options are applied on top. A clone whose root does not
// contain the template's current path is rejected.
func New(parent any, template *FileList, rows RowFactory, viewFile FileViewFunc, options ...Option) (*FileList, error) {
	if rows == nil {
		return nil, fmt.Errorf("%w: row factory is nil", ErrConstruction)
	}
	fl := &FileList{
		parent:   parent,
		rows:     rows,
		viewFile: viewFile,
	}
	if template != nil {
		fl.o = template.o
		fl.o.root = template.tracker.root
		fl.o.initialPath = ""
	} else {
		fl.o = defaultOptions()
	}
	for _, option := range options {
		option(&fl.o)
	}
	if fl.o.logger == nil {
		fl.o.logger = slog.Default()
	}
	if fl.o.store == nil {
		fl.o.store = newDefaultStore()
	}
	if err := fl.o.filter.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}

	tracker, err := NewPathTracker(fl.o.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	if template != nil {
		if !isWithin(template.tracker.current, tracker.root) {
			return nil, fmt.Errorf("%w: %w: %s is outside of %s",
				ErrConstruction, ErrInvalidPath, template.tracker.current, tracker.root)
		}
		tracker.current = template.tracker.current
	} else if fl.o.initialPath != "" {
		if err = tracker.Restore(fl.o.initialPath); err != nil {
			fl.o.logger.Info("not restoring initial path", "path", fl.o.initialPath, "error", err)
		}
	}
	fl.tracker = tracker
	fl.lister = NewDirectoryLister(fl.o.store, fl.o.filter, fl.o.logger)

	_ = fl.Update(context.Background())
	fl.o.logger.Debug("file list created", "root", tracker.root, "path", tracker.current)
	return fl, nil
}

func (fl *FileList) CurrentPath() string {
	return fl.tracker.Current()
}

func (fl *FileList) RootPath() string {
	return fl.tracker.Root()
}

// Entries returns the entries of the last listing.
func (fl *FileList) Entries() []Entry {
	entries := make([]Entry, len(fl.entries))
	copy(entries, fl.entries)
	return entries
}

// Update clears the rows and lists the current path again.
// A listing failure is logged and rendered as an empty list; the error is
// returned for callers that want to surface it.
func (fl *FileList) Update(ctx context.Context) error {
	fl.rows.Clean()
	entries, err := fl.lister.Refresh(ctx, fl.tracker.current, fl.tracker.root)
	if err != nil {
		fl.o.logger.Warn("failed to list directory", "path", fl.tracker.current, "error", err)
	}
	fl.entries = entries
	for _, entry := range entries {
		fl.rows.AddRow(entry.Kind.Symbol(), entry.Label)
	}
	return err
}

// OnRowEvent is the click notification entry point for the display.
// Only EventClicked is acted upon.
func (fl *FileList) OnRowEvent(ctx context.Context, row Row, event Event) error {
	if event != EventClicked {
		return nil
	}
	entry := Entry{
		Label: fl.rows.RowLabel(row),
		Kind:  KindOf(fl.rows.RowSymbol(row)),
	}
	fl.o.logger.Debug("row clicked", "label", entry.Label, "kind", entry.Kind)
	return fl.HandleSelection(ctx, entry)
}

// HandleSelection navigates for directory and go-up entries and hands file
// entries with a bare name to the FileViewFunc. A failed path computation
// keeps the current path and is returned without refreshing.
func (fl *FileList) HandleSelection(ctx context.Context, entry Entry) error {
	var err error
	switch entry.Kind {
	case KindGoUp:
		err = fl.tracker.Ascend()
	case KindDirectory:
		err = fl.tracker.Descend(entry.Label)
	case KindFile:
		if err = checkEntryName(entry.Label); err != nil {
			fl.o.logger.Warn("ignoring selection", "path", fl.tracker.current, "label", entry.Label, "error", err)
			return err
		}
		if fl.viewFile != nil {
			fl.viewFile(fl.parent, fl.tracker.current, entry.Label)
		}
		return nil
	default:
		fl.o.logger.Debug("ignoring selection of an unknown entry kind", "label", entry.Label)
		return nil
	}
	if err != nil {
		fl.o.logger.Warn("ignoring selection", "path", fl.tracker.current, "label", entry.Label, "error", err)
		return err
	}
	err = fl.Update(ctx)
	if fl.o.pathChanged != nil {
		fl.o.pathChanged(fl.tracker.current)
	}
	return err
}
