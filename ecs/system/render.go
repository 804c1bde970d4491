package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/milk9111/billboard/ecs/render"
	"golang.org/x/image/colornames"
)

const (
	fieldOfView = 45.0
	nearPlane   = 0.1
	farPlane    = 200.0
	gridExtent  = 10
)

// Projection maps world points to screen pixels for one camera view.
type Projection struct {
	viewProj      mgl64.Mat4
	width, height float64
}

// NewProjection builds a perspective projection for a screen of the given
// size looking through pos and rot.
func NewProjection(pos mgl64.Vec3, rot mgl64.Quat, width, height float64) Projection {
	aspect := 1.0
	if height > 0 {
		aspect = width / height
	}
	proj := mgl64.Perspective(mgl64.DegToRad(fieldOfView), aspect, nearPlane, farPlane)
	view := rot.Inverse().Mat4().Mul4(mgl64.Translate3D(-pos[0], -pos[1], -pos[2]))
	return Projection{viewProj: proj.Mul4(view), width: width, height: height}
}

// Project returns the screen position of p. ok is false for points behind
// the near plane.
func (p Projection) Project(v mgl64.Vec3) (x, y float64, ok bool) {
	clip := p.viewProj.Mul4x1(v.Vec4(1))
	if clip[3] < nearPlane {
		return 0, 0, false
	}
	nx, ny := clip[0]/clip[3], clip[1]/clip[3]
	return (nx + 1) / 2 * p.width, (1 - ny) / 2 * p.height, true
}

type RenderSystem struct {
	vertices []ebiten.Vertex
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{vertices: make([]ebiten.Vertex, 4)}
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	cam, ok := activeCamera(w)
	if !ok {
		return
	}

	b := screen.Bounds()
	proj := NewProjection(cam.View.Position, cam.View.Rotation, float64(b.Dx()), float64(b.Dy()))
	drawGround(screen, proj)

	type drawItem struct {
		e     ecs.Entity
		depth float64
	}
	var items []drawItem
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, _ *component.Sprite) {
		items = append(items, drawItem{e: e, depth: t.Position.Sub(cam.View.Position).Dot(cam.View.Forward)})
	})
	// Far to near.
	sort.SliceStable(items, func(i, j int) bool { return items[i].depth > items[j].depth })

	for _, it := range items {
		t, _ := ecs.Get(w, it.e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, it.e, component.SpriteComponent.Kind())
		r.drawSprite(screen, proj, t, s)
	}
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, proj Projection, t *component.Transform, s *component.Sprite) {
	atlas := render.GetAtlas(s.Atlas)
	if atlas == nil || s.PixelsPerMetre <= 0 {
		return
	}
	src, ok := atlas.Cell(s.Index)
	if !ok {
		return
	}

	wm := float64(atlas.CellW) / s.PixelsPerMetre
	hm := float64(atlas.CellH) / s.PixelsPerMetre
	x0, x1 := -s.PivotX*wm, (1-s.PivotX)*wm
	y0, y1 := -s.PivotY*hm, (1-s.PivotY)*hm

	rot := t.Rotation
	if rot.Len() == 0 {
		rot = mgl64.QuatIdent()
	}
	scale := t.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}

	corners := [4]mgl64.Vec3{{x0, y1, 0}, {x1, y1, 0}, {x1, y0, 0}, {x0, y0, 0}}
	srcL, srcR := float32(src.Min.X), float32(src.Max.X)
	if s.FlipX {
		srcL, srcR = srcR, srcL
	}
	srcXY := [4][2]float32{
		{srcL, float32(src.Min.Y)},
		{srcR, float32(src.Min.Y)},
		{srcR, float32(src.Max.Y)},
		{srcL, float32(src.Max.Y)},
	}

	for i, c := range corners {
		local := mgl64.Vec3{c[0] * scale[0], c[1] * scale[1], 0}
		sx, sy, ok := proj.Project(t.Position.Add(rot.Rotate(local)))
		if !ok {
			return
		}
		r.vertices[i] = ebiten.Vertex{
			DstX:   float32(sx),
			DstY:   float32(sy),
			SrcX:   srcXY[i][0],
			SrcY:   srcXY[i][1],
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	screen.DrawTriangles(r.vertices, quadIndices, atlas.Image(), &ebiten.DrawTrianglesOptions{})
}

func drawGround(screen *ebiten.Image, proj Projection) {
	lineColor := color.NRGBA{R: colornames.Darkolivegreen.R, G: colornames.Darkolivegreen.G, B: colornames.Darkolivegreen.B, A: 0xff}
	for i := -gridExtent; i <= gridExtent; i++ {
		f := float64(i)
		strokeWorld(screen, proj, mgl64.Vec3{f, 0, -gridExtent}, mgl64.Vec3{f, 0, gridExtent}, lineColor)
		strokeWorld(screen, proj, mgl64.Vec3{-gridExtent, 0, f}, mgl64.Vec3{gridExtent, 0, f}, lineColor)
	}
}

// strokeWorld draws a world segment split into short pieces so the parts in
// front of the camera survive when the rest is behind it.
func strokeWorld(screen *ebiten.Image, proj Projection, a, b mgl64.Vec3, clr color.Color) {
	const pieces = 20
	for i := 0; i < pieces; i++ {
		p := a.Add(b.Sub(a).Mul(float64(i) / pieces))
		q := a.Add(b.Sub(a).Mul(float64(i+1) / pieces))
		x0, y0, ok0 := proj.Project(p)
		x1, y1, ok1 := proj.Project(q)
		if !ok0 || !ok1 || math.IsNaN(x0+y0+x1+y1) {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
	}
}
