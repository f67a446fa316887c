package viewers

import (
	"bytes"

	"github.com/datatug/filelist/pkg/chroma2tcell"
	"github.com/datatug/filelist/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ Viewer = (*TextViewer)(nil)

type TextViewer struct {
	*tview.TextView
	title string
}

var colorizeFile = chroma2tcell.ColorizeFile

// NewTextViewer shows data syntax highlighted by the lexer matching fileName.
func NewTextViewer(fileName string, data []byte) *TextViewer {
	v := &TextViewer{
		TextView: tview.NewTextView().
			SetWrap(true).
			SetScrollable(true),
		title: fileName,
	}
	v.SetBorder(true).SetTitle(" " + fileName + " ")
	v.setData(fileName, data)
	return v
}

func (v *TextViewer) setData(fileName string, data []byte) {
	if bytes.IndexByte(data, 0) >= 0 {
		v.SetDynamicColors(false)
		v.SetText("Binary file, " + fsutils.GetSizeShortText(int64(len(data))) + " shown")
		return
	}
	colorized, err := colorizeFile(fileName, string(data))
	if err != nil {
		v.SetDynamicColors(false)
		v.SetText(string(data))
		return
	}
	v.SetDynamicColors(true)
	v.SetText(colorized)
}

// ShowError replaces the content with text in red.
func (v *TextViewer) ShowError(text string) {
	v.SetDynamicColors(false)
	v.SetText(text)
	v.SetTextColor(tcell.ColorRed)
}

func (v *TextViewer) Title() string {
	return v.title
}

func (v *TextViewer) Main() tview.Primitive {
	return v.TextView
}
