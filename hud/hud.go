package hud

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const maxLines = 12

// HUD is a debug overlay in the top-left corner listing every character's
// visible side and animation state.
type HUD struct {
	ui      *ebitenui.UI
	lines   []*widget.Text
	visible bool
}

func New() *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	textColor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)

	h := &HUD{visible: true}
	for i := 0; i < maxLines; i++ {
		line := widget.NewText(
			widget.TextOpts.Text("", &face, textColor),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		)
		h.lines = append(h.lines, line)
		panel.AddChild(line)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(8)),
		)),
	)
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

func (h *HUD) Visible() bool {
	return h != nil && h.visible
}

func (h *HUD) SetVisible(v bool) {
	if h != nil {
		h.visible = v
	}
}

func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// SetStatus replaces the overlay text. Lines past the panel size are dropped.
func (h *HUD) SetStatus(s Status) {
	if h == nil {
		return
	}
	text := s.Lines()
	for i, line := range h.lines {
		line.Label = ""
		if i < len(text) {
			line.Label = text[i]
		}
	}
}

func (h *HUD) Update() {
	if h.Visible() {
		h.ui.Update()
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if h.Visible() {
		h.ui.Draw(screen)
	}
}
