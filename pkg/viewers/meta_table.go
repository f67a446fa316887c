package viewers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Meta struct {
	Groups []*MetaGroup
}

type MetaGroup struct {
	ID      string
	Title   string
	Records []*MetaRecord
}

type MetaRecord struct {
	ID         string
	Title      string
	Value      string
	ValueAlign Align
}

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// MetaTable renders Meta as a two column table: a title row per group
// followed by its indented records.
type MetaTable struct {
	*tview.Table
}

func NewMetaTable() *MetaTable {
	return &MetaTable{
		Table: tview.NewTable(),
	}
}

func (t *MetaTable) SetMeta(meta *Meta) {
	t.Clear()
	if meta == nil {
		return
	}
	row := 0
	for _, group := range meta.Groups {
		groupCell := tview.NewTableCell(group.Title).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false)
		t.SetCell(row, 0, groupCell)
		row++
		for _, record := range group.Records {
			t.SetCell(row, 0, tview.NewTableCell("  "+record.Title).SetTextColor(tcell.ColorGray))
			valueCell := tview.NewTableCell(record.Value)
			if record.ValueAlign == AlignRight {
				valueCell.SetAlign(tview.AlignRight)
			}
			t.SetCell(row, 1, valueCell)
			row++
		}
	}
}
