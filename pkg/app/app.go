package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/datatug/filelist/pkg/filelist"
	"github.com/datatug/filelist/pkg/files"
	"github.com/datatug/filelist/pkg/files/osfile"
	"github.com/datatug/filelist/pkg/fsutils"
	"github.com/datatug/filelist/pkg/ftsettings"
	"github.com/datatug/filelist/pkg/ftstate"
	"github.com/datatug/filelist/pkg/ftui"
	"github.com/datatug/filelist/pkg/gitutils"
	"github.com/datatug/filelist/pkg/viewers"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	listPage   = "list"
	viewerPage = "viewer"
)

var (
	newStore = func() files.Store {
		return osfile.NewStore()
	}
	dirExists           = fsutils.DirExists
	openViewer          = viewers.Open
	getBranch           = gitutils.GetBranch
	getCurrentDir       = ftstate.GetCurrentDir
	getState            = ftstate.GetState
	saveCurrentDir      = ftstate.SaveCurrentDir
	saveCurrentFileName = ftstate.SaveCurrentFileName
)

// Browser is the terminal UI: a header with the current path, the file
// list and a viewer page for the selected file.
type Browser struct {
	app      App
	settings *ftsettings.Settings
	logger   *slog.Logger
	store    files.Store

	root     *tview.Flex
	header   *tview.TextView
	footer   *tview.TextView
	pages    *tview.Pages
	listView *ftui.ListView
	fileList *filelist.FileList
	viewer   viewers.Viewer
}

// SetupApp builds the browser for settings and makes it the app root.
func SetupApp(app App, settings *ftsettings.Settings, logger *slog.Logger) (*Browser, error) {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Browser{
		app:      app,
		settings: settings,
		logger:   logger,
		store:    newStore(),
		header:   tview.NewTextView().SetDynamicColors(true),
		footer:   tview.NewTextView().SetDynamicColors(true),
		pages:    tview.NewPages(),
		listView: ftui.NewListView(),
	}
	b.listView.SetBorder(true)
	if exists, err := dirExists(settings.RootPath); !exists {
		logger.Warn("browse root is not an existing directory", "root", settings.RootPath, "error", err)
	}

	options := []filelist.Option{
		filelist.WithRoot(settings.RootPath),
		filelist.WithFilter(settings.Filter()),
		filelist.WithStore(b.store),
		filelist.WithLogger(logger),
		filelist.WithPathChangedFunc(b.onPathChanged),
	}
	if settings.RememberLastDir {
		if lastDir := getCurrentDir(settings.RootPath); lastDir != "" {
			options = append(options, filelist.WithInitialPath(lastDir))
		}
	}

	fileList, err := filelist.New(b, nil, b.listView, viewFile, options...)
	if err != nil {
		return nil, err
	}
	b.fileList = fileList
	b.listView.SetEventFunc(func(row filelist.Row, event filelist.Event) {
		_ = b.fileList.OnRowEvent(context.Background(), row, event)
	})
	b.restoreCurrentFile()

	b.pages.AddPage(listPage, b.listView, true, true)
	b.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.header, 1, 0, false).
		AddItem(b.pages, 0, 1, true).
		AddItem(b.footer, 1, 0, false)
	b.root.SetInputCapture(b.handleKey)
	b.updateHeader(fileList.CurrentPath())
	b.updateFooter()

	app.EnableMouse(true)
	app.SetRoot(b.root, true)
	app.SetFocus(b.listView)
	return b, nil
}

func (b *Browser) FileList() *filelist.FileList {
	return b.fileList
}

func (b *Browser) ListView() *ftui.ListView {
	return b.listView
}

// Viewer returns the open viewer or nil.
func (b *Browser) Viewer() viewers.Viewer {
	return b.viewer
}

func (b *Browser) HeaderText() string {
	return b.header.GetText(true)
}

func viewFile(parent any, dirPath, fileName string) {
	if b, ok := parent.(*Browser); ok {
		b.ShowFile(dirPath, fileName)
	}
}

// ShowFile opens fileName in a viewer page. A file that can not be read
// is shown as an error message.
func (b *Browser) ShowFile(dirPath, fileName string) {
	viewer, err := openViewer(dirPath, fileName)
	if err != nil {
		b.logger.Warn("failed to open file", "dir", dirPath, "file", fileName, "error", err)
		textViewer := viewers.NewTextViewer(fileName, nil)
		textViewer.ShowError(err.Error())
		viewer = textViewer
	}
	b.viewer = viewer
	b.pages.AddAndSwitchToPage(viewerPage, viewer.Main(), true)
	b.app.SetFocus(viewer.Main())
	b.updateFooter()
	if b.settings.RememberLastDir {
		saveCurrentFileName(fileName)
	}
}

// CloseViewer returns to the list with the viewed file selected.
func (b *Browser) CloseViewer() {
	if b.viewer == nil {
		return
	}
	title := b.viewer.Title()
	b.viewer = nil
	b.pages.RemovePage(viewerPage)
	b.pages.SwitchToPage(listPage)
	b.listView.SelectLabel(title)
	b.app.SetFocus(b.listView)
	b.updateFooter()
}

// GoUp selects the go-up row if the list has one.
func (b *Browser) GoUp() {
	for _, entry := range b.fileList.Entries() {
		if entry.Kind == filelist.KindGoUp {
			_ = b.fileList.HandleSelection(context.Background(), entry)
			return
		}
	}
}

func (b *Browser) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if b.viewer != nil {
		switch {
		case event.Key() == tcell.KeyEscape, event.Key() == tcell.KeyRune && event.Rune() == 'q':
			b.CloseViewer()
			return nil
		}
		return event
	}
	switch {
	case event.Key() == tcell.KeyBackspace, event.Key() == tcell.KeyBackspace2, event.Key() == tcell.KeyLeft:
		b.GoUp()
		return nil
	case event.Key() == tcell.KeyRune && event.Rune() == 'q':
		b.app.Stop()
		return nil
	}
	return event
}

func (b *Browser) onPathChanged(currentPath string) {
	b.updateHeader(currentPath)
	if b.settings.RememberLastDir {
		saveCurrentDir(b.fileList.RootPath(), currentPath)
	}
}

func (b *Browser) updateHeader(currentPath string) {
	text := fmt.Sprintf("%s [::b]%s[::-]", tview.Escape(b.store.RootTitle()), tview.Escape(currentPath))
	if branch, err := getBranch(currentPath); err == nil {
		text += " [gray]⎇ " + tview.Escape(branch) + "[-]"
	}
	b.header.SetText(text)
	b.listView.SetTitle(fmt.Sprintf(" %d ", len(b.fileList.Entries())))
}

func (b *Browser) updateFooter() {
	var items []ftui.MenuItem
	if b.viewer != nil {
		items = []ftui.MenuItem{
			{Title: "Back", HotKeys: []string{"Esc", "q"}},
		}
	} else {
		items = []ftui.MenuItem{
			{Title: "Open", HotKeys: []string{"Enter"}},
			{Title: "Up", HotKeys: []string{"Backspace", "←"}},
			{Title: "Quit", HotKeys: []string{"q"}},
		}
	}
	b.footer.SetText(ftui.HintText(items))
}

func (b *Browser) restoreCurrentFile() {
	if !b.settings.RememberLastDir {
		return
	}
	state, err := getState()
	if err != nil || state.CurrentFile == "" || state.CurrentDir != b.fileList.CurrentPath() {
		return
	}
	b.listView.SelectLabel(state.CurrentFile)
}
