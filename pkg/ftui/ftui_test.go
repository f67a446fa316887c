package ftui

import (
	"testing"

	"github.com/datatug/filelist/pkg/filelist"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func TestMenuItem(t *testing.T) {
	t.Parallel()
	called := false
	item := MenuItem{
		Title:   "Test",
		HotKeys: []string{"Ctrl-T"},
		Action: func() {
			called = true
		},
	}
	item.Action()
	assert.True(t, called)
	assert.Equal(t, "[yellow]Ctrl-T[-] Test", HintText([]MenuItem{item}))
	assert.Equal(t, "[yellow]Enter[-] Open  [yellow]Esc/q[-] Back",
		HintText([]MenuItem{
			{Title: "Open", HotKeys: []string{"Enter"}},
			{Title: "Back", HotKeys: []string{"Esc", "q"}},
		}))
	assert.Equal(t, "", HintText(nil))
}

func TestListView_RowFactory(t *testing.T) {
	t.Parallel()
	lv := NewListView()

	assert.Equal(t, filelist.Row(-1), lv.CurrentRow())
	assert.Equal(t, filelist.Row(0), lv.AddRow(filelist.SymbolUp, filelist.UpLabel))
	assert.Equal(t, filelist.Row(1), lv.AddRow(filelist.SymbolDirectory, "2024"))
	assert.Equal(t, filelist.Row(2), lv.AddRow(filelist.SymbolFile, "a.CSV"))

	assert.Equal(t, 3, lv.GetItemCount())
	mainText, _ := lv.GetItemText(1)
	assert.Equal(t, "📁 2024", mainText)

	for row, want := range []struct {
		label  string
		symbol filelist.Symbol
	}{
		{label: filelist.UpLabel, symbol: filelist.SymbolUp},
		{label: "2024", symbol: filelist.SymbolDirectory},
		{label: "a.CSV", symbol: filelist.SymbolFile},
	} {
		assert.Equal(t, want.label, lv.RowLabel(filelist.Row(row)))
		assert.Equal(t, want.symbol, lv.RowSymbol(filelist.Row(row)))
		assert.Equal(t, filelist.KindOf(want.symbol).Symbol(), lv.RowSymbol(filelist.Row(row)))
	}

	t.Run("out_of_range", func(t *testing.T) {
		assert.Equal(t, "", lv.RowLabel(3))
		assert.Equal(t, "", lv.RowLabel(-1))
		assert.Equal(t, filelist.SymbolNone, lv.RowSymbol(3))
		assert.Equal(t, filelist.SymbolNone, lv.RowSymbol(-1))
	})

	t.Run("select_label", func(t *testing.T) {
		assert.True(t, lv.SelectLabel("a.CSV"))
		assert.Equal(t, filelist.Row(2), lv.CurrentRow())
		assert.False(t, lv.SelectLabel("missing"))
	})

	lv.Clean()
	assert.Equal(t, 0, lv.GetItemCount())
	assert.Equal(t, "", lv.RowLabel(0))
	assert.Equal(t, filelist.Row(-1), lv.CurrentRow())
}

func TestListView_BracketsInLabel(t *testing.T) {
	t.Parallel()
	lv := NewListView()
	row := lv.AddRow(filelist.SymbolFile, "[red].CSV")
	assert.Equal(t, "[red].CSV", lv.RowLabel(row))
	mainText, _ := lv.GetItemText(0)
	assert.Equal(t, "📄 [red[].CSV", mainText)
}

func TestListView_Events(t *testing.T) {
	t.Parallel()
	lv := NewListView()
	type received struct {
		row   filelist.Row
		event filelist.Event
	}
	var events []received
	lv.SetEventFunc(func(row filelist.Row, event filelist.Event) {
		events = append(events, received{row: row, event: event})
	})
	lv.AddRow(filelist.SymbolDirectory, "a")
	lv.AddRow(filelist.SymbolFile, "b.CSV")
	events = nil

	handler := lv.InputHandler()
	handler(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), func(p tview.Primitive) {})
	handler(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(p tview.Primitive) {})

	assert.Equal(t, []received{
		{row: 1, event: filelist.EventFocused},
		{row: 1, event: filelist.EventClicked},
	}, events)
	assert.Equal(t, "b.CSV", lv.RowLabel(events[1].row))
	assert.Equal(t, filelist.SymbolFile, lv.RowSymbol(events[1].row))
}

func TestListView_NoEventFunc(t *testing.T) {
	t.Parallel()
	lv := NewListView()
	lv.AddRow(filelist.SymbolFile, "a.CSV")
	lv.InputHandler()(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(p tview.Primitive) {})
}

func TestSymbolIcon(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "📁", SymbolIcon(filelist.SymbolDirectory))
	assert.Equal(t, "📄", SymbolIcon(filelist.SymbolFile))
	assert.Equal(t, "⬆️", SymbolIcon(filelist.SymbolUp))
	assert.Equal(t, "  ", SymbolIcon(filelist.SymbolNone))
}
