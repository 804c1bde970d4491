package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
)

const (
	PlaceholderCols = 4
	// PlaceholderRows is one idle row followed by an eight frame walk cycle.
	PlaceholderRows = 9
)

var walkStride = [8]int{0, 1, 2, 1, 0, -1, -2, -1}

// Placeholder draws a character sheet in the standard layout: column c is
// direction c (down, right, up, left), row 0 is idle and rows 1-8 are the
// walk cycle. Faces mark the visible side so mirroring is easy to spot.
func Placeholder(body color.RGBA, cellW, cellH int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cellW*PlaceholderCols, cellH*PlaceholderRows))
	for row := 0; row < PlaceholderRows; row++ {
		stride := 0
		if row > 0 {
			stride = walkStride[row-1]
		}
		for col := 0; col < PlaceholderCols; col++ {
			cell := image.Rect(col*cellW, row*cellH, (col+1)*cellW, (row+1)*cellH)
			drawFigure(img, cell, body, col, stride)
		}
	}
	return img
}

func drawFigure(dst *image.RGBA, cell image.Rectangle, body color.RGBA, dir, stride int) {
	w, h := cell.Dx(), cell.Dy()
	at := func(x0, y0, x1, y1 int) image.Rectangle {
		return image.Rect(cell.Min.X+x0, cell.Min.Y+y0, cell.Min.X+x1, cell.Min.Y+y1)
	}
	fill := func(r image.Rectangle, c color.Color) {
		draw.Draw(dst, r.Intersect(cell), &image.Uniform{C: c}, image.Point{}, draw.Src)
	}

	bob := 0
	if stride == 2 || stride == -2 {
		bob = 1
	}
	legW := w / 6
	hipY := h * 5 / 6
	cx := w / 2

	// Legs swing opposite each other.
	fill(at(cx-legW-1+stride, hipY-bob, cx-1+stride, h), colornames.Dimgray)
	fill(at(cx+1-stride, hipY-bob, cx+legW+1-stride, h), colornames.Dimgray)

	fill(at(w/4, h/3-bob, w*3/4, hipY-bob), body)

	headTop := h/12 - bob
	headBottom := h/3 - bob
	fill(at(w*5/16, headTop, w*11/16, headBottom), colornames.Peachpuff)

	eyeY := (headTop + headBottom) / 2
	eye := func(x int) { fill(at(x, eyeY, x+2, eyeY+2), colornames.Black) }
	switch dir {
	case 0: // down, facing the viewer
		eye(cx - 4)
		eye(cx + 2)
	case 1: // right
		eye(w*11/16 - 4)
		fill(at(w*11/16, eyeY+2, w*11/16+2, eyeY+4), colornames.Peachpuff)
	case 2: // up, back of the head
		fill(at(w*5/16, headTop, w*11/16, headBottom), darken(body))
	case 3: // left
		eye(w*5/16 + 2)
		fill(at(w*5/16-2, eyeY+2, w*5/16, eyeY+4), colornames.Peachpuff)
	}
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
