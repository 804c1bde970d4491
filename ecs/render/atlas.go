package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

var ErrUnknownColor = errors.New("render: unknown placeholder color")

// PlaceholderPrefix selects a generated atlas, e.g. "placeholder:hotpink".
const PlaceholderPrefix = "placeholder:"

// Atlas is a sprite sheet cut into equal cells, numbered row-major.
type Atlas struct {
	Name   string
	Source image.Image
	CellW  int
	CellH  int
	Cols   int

	img *ebiten.Image
}

func NewAtlas(name string, src image.Image, cellW, cellH int) (*Atlas, error) {
	if src == nil {
		return nil, fmt.Errorf("render: atlas %s: nil image", name)
	}
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("render: atlas %s: invalid cell %dx%d", name, cellW, cellH)
	}
	b := src.Bounds()
	cols := b.Dx() / cellW
	if cols == 0 || b.Dy()/cellH == 0 {
		return nil, fmt.Errorf("render: atlas %s: image %dx%d smaller than one cell", name, b.Dx(), b.Dy())
	}
	return &Atlas{Name: name, Source: src, CellW: cellW, CellH: cellH, Cols: cols}, nil
}

// Cells is the number of whole cells in the sheet.
func (a *Atlas) Cells() int {
	if a == nil || a.Cols == 0 {
		return 0
	}
	return a.Cols * (a.Source.Bounds().Dy() / a.CellH)
}

// Cell returns the source rectangle of cell index.
func (a *Atlas) Cell(index int) (image.Rectangle, bool) {
	if a == nil || index < 0 || index >= a.Cells() {
		return image.Rectangle{}, false
	}
	b := a.Source.Bounds()
	x := b.Min.X + (index%a.Cols)*a.CellW
	y := b.Min.Y + (index/a.Cols)*a.CellH
	return image.Rect(x, y, x+a.CellW, y+a.CellH), true
}

// Image uploads the sheet on first use.
func (a *Atlas) Image() *ebiten.Image {
	if a == nil {
		return nil
	}
	if a.img == nil {
		a.img = ebiten.NewImageFromImage(a.Source)
	}
	return a.img
}

// LoadAtlas returns the atlas for key, building and caching it on first use.
// Keys with PlaceholderPrefix are generated; anything else is a PNG path
// relative to dir.
func LoadAtlas(key, dir string, cellW, cellH int) (*Atlas, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty atlas key")
	}
	if a := GetAtlas(key); a != nil {
		return a, nil
	}

	var (
		src image.Image
		err error
	)
	if name, ok := strings.CutPrefix(key, PlaceholderPrefix); ok {
		c, found := colornames.Map[strings.ToLower(name)]
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		src = Placeholder(c, cellW, cellH)
	} else {
		src, err = decodeFile(filepath.Join(dir, filepath.FromSlash(key)))
		if err != nil {
			return nil, err
		}
	}

	a, err := NewAtlas(key, src, cellW, cellH)
	if err != nil {
		return nil, err
	}
	RegisterAtlas(key, a)
	return a, nil
}

func decodeFile(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", path, err)
	}
	return img, nil
}
