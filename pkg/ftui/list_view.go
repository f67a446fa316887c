package ftui

import (
	"github.com/datatug/filelist/pkg/filelist"
	"github.com/rivo/tview"
)

var _ filelist.RowFactory = (*ListView)(nil)

// RowEventFunc receives the row events of a ListView.
type RowEventFunc func(row filelist.Row, event filelist.Event)

// ListView renders file list rows into a tview.List, prefixing each label
// with the icon of its symbol.
type ListView struct {
	*tview.List
	labels  []string
	symbols []filelist.Symbol
	onEvent RowEventFunc
}

func NewListView() *ListView {
	lv := &ListView{
		List: tview.NewList().
			ShowSecondaryText(false).
			SetHighlightFullLine(true),
	}
	lv.SetSelectedFunc(func(index int, _ string, _ string, _ rune) {
		lv.emit(filelist.Row(index), filelist.EventClicked)
	})
	lv.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		lv.emit(filelist.Row(index), filelist.EventFocused)
	})
	return lv
}

func (lv *ListView) SetEventFunc(f RowEventFunc) {
	lv.onEvent = f
}

func (lv *ListView) emit(row filelist.Row, event filelist.Event) {
	if lv.onEvent != nil {
		lv.onEvent(row, event)
	}
}

func (lv *ListView) Clean() {
	lv.labels = lv.labels[:0]
	lv.symbols = lv.symbols[:0]
	lv.Clear()
}

func (lv *ListView) AddRow(symbol filelist.Symbol, label string) filelist.Row {
	lv.labels = append(lv.labels, label)
	lv.symbols = append(lv.symbols, symbol)
	lv.AddItem(SymbolIcon(symbol)+" "+tview.Escape(label), "", 0, nil)
	return filelist.Row(len(lv.labels) - 1)
}

func (lv *ListView) RowLabel(row filelist.Row) string {
	if row < 0 || int(row) >= len(lv.labels) {
		return ""
	}
	return lv.labels[row]
}

func (lv *ListView) RowSymbol(row filelist.Row) filelist.Symbol {
	if row < 0 || int(row) >= len(lv.symbols) {
		return filelist.SymbolNone
	}
	return lv.symbols[row]
}

// SelectLabel moves the cursor to the first row with the given label.
func (lv *ListView) SelectLabel(label string) bool {
	for i, l := range lv.labels {
		if l == label {
			lv.SetCurrentItem(i)
			return true
		}
	}
	return false
}

// CurrentRow is the row under the cursor, or -1 for an empty list.
func (lv *ListView) CurrentRow() filelist.Row {
	if len(lv.labels) == 0 {
		return -1
	}
	return filelist.Row(lv.GetCurrentItem())
}

func SymbolIcon(symbol filelist.Symbol) string {
	switch symbol {
	case filelist.SymbolDirectory:
		return "📁"
	case filelist.SymbolFile:
		return "📄"
	case filelist.SymbolUp:
		return "⬆️"
	default:
		return "  "
	}
}
