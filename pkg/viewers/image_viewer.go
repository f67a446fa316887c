package viewers

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/datatug/filelist/pkg/fsutils"
	"github.com/rivo/tview"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var _ Viewer = (*ImageViewer)(nil)

// ImageViewer shows image metadata; pixels are not rendered.
type ImageViewer struct {
	metaTable *MetaTable
	title     string
}

func NewImageViewer(fullName string) (*ImageViewer, error) {
	meta, err := GetImageMeta(fullName)
	if err != nil {
		return nil, err
	}
	v := &ImageViewer{
		metaTable: NewMetaTable(),
		title:     filepath.Base(fullName),
	}
	v.metaTable.SetBorder(true).SetTitle(" " + v.title + " ")
	v.metaTable.SetSelectable(true, false)
	v.metaTable.SetMeta(meta)
	return v, nil
}

func (v *ImageViewer) Title() string {
	return v.title
}

func (v *ImageViewer) Main() tview.Primitive {
	return v.metaTable
}

// GetImageMeta decodes the image header only.
func GetImageMeta(path string) (*Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, err
	}
	main := &MetaGroup{
		ID:    "main",
		Title: "Format: " + strings.ToUpper(format),
	}
	main.Records = append(main.Records,
		&MetaRecord{ID: "width", Title: "Width", Value: strconv.Itoa(cfg.Width), ValueAlign: AlignRight},
		&MetaRecord{ID: "height", Title: "Height", Value: strconv.Itoa(cfg.Height), ValueAlign: AlignRight},
	)
	if info, statErr := f.Stat(); statErr == nil {
		main.Records = append(main.Records, &MetaRecord{
			ID:         "size",
			Title:      "Size",
			Value:      fsutils.GetSizeShortText(info.Size()),
			ValueAlign: AlignRight,
		})
	}
	return &Meta{
		Groups: []*MetaGroup{main},
	}, nil
}
