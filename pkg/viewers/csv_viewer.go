package viewers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// DefaultMaxRows caps the records a CSVViewer renders, header included.
const DefaultMaxRows = 10_000

var _ Viewer = (*CSVViewer)(nil)

// CSVViewer renders delimited text as a table with a fixed header row.
type CSVViewer struct {
	*tview.Table
	title     string
	rows      int
	truncated bool
}

// NewCSVViewer parses data with the delimiter detected on its first line.
// A malformed record after the first ends the table and marks it truncated;
// data cut at the read cap usually ends that way.
func NewCSVViewer(fileName string, data []byte, maxRows int) (*CSVViewer, error) {
	v := &CSVViewer{
		Table: tview.NewTable().
			SetBorders(false).
			SetFixed(1, 0).
			SetSelectable(true, false),
		title: fileName,
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	for {
		if maxRows > 0 && v.rows >= maxRows {
			v.truncated = true
			break
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if v.rows == 0 {
				return nil, fmt.Errorf("failed to parse %s: %w", fileName, err)
			}
			v.truncated = true
			break
		}
		v.addRecord(record)
	}

	title := " " + fileName + " [" + strconv.Itoa(v.RecordCount()) + " records"
	if v.truncated {
		title += ", truncated"
	}
	v.SetBorder(true).SetTitle(title + "] ")
	return v, nil
}

func (v *CSVViewer) addRecord(record []string) {
	for col, value := range record {
		cell := tview.NewTableCell(tview.Escape(value)).SetMaxWidth(40)
		if v.rows == 0 {
			cell.SetTextColor(tcell.ColorYellow).
				SetAttributes(tcell.AttrBold).
				SetSelectable(false)
		}
		v.SetCell(v.rows, col, cell)
	}
	v.rows++
}

// RecordCount is the number of rendered records, excluding the header.
func (v *CSVViewer) RecordCount() int {
	if v.rows == 0 {
		return 0
	}
	return v.rows - 1
}

func (v *CSVViewer) Truncated() bool {
	return v.truncated
}

func (v *CSVViewer) Title() string {
	return v.title
}

func (v *CSVViewer) Main() tview.Primitive {
	return v.Table
}

// DetectDelimiter returns the most frequent of comma, semicolon and tab on
// the first line, defaulting to comma.
func DetectDelimiter(data []byte) rune {
	firstLine := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		firstLine = data[:i]
	}
	delimiter, best := ',', bytes.Count(firstLine, []byte{','})
	for _, candidate := range []rune{';', '\t'} {
		if n := bytes.Count(firstLine, []byte{byte(candidate)}); n > best {
			delimiter, best = candidate, n
		}
	}
	return delimiter
}
