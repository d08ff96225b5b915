package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Texture is a loaded sprite. *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
}

// Canvas receives the draw commands of one frame.
type Canvas interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float32, c color.Color)
	// StrokeRect draws a border of the given thickness inside the rectangle.
	StrokeRect(x, y, w, h, thickness float32, c color.Color)
	// DrawText draws s with its top-left corner at x, y. Lines are
	// separated by '\n'.
	DrawText(s string, x, y int, size float64, c color.Color)
	DrawTexture(t Texture, x, y float64)
}

// ScreenCanvas draws onto an Ebitengine image.
type ScreenCanvas struct {
	dst *ebiten.Image
}

// NewScreenCanvas wraps the screen passed to Game.Draw.
func NewScreenCanvas(dst *ebiten.Image) *ScreenCanvas {
	return &ScreenCanvas{dst: dst}
}

// Clear fills the whole image.
func (sc *ScreenCanvas) Clear(c color.Color) {
	sc.dst.Fill(c)
}

// FillRect draws a filled rectangle.
func (sc *ScreenCanvas) FillRect(x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(sc.dst, x, y, w, h, c, false)
}

// StrokeRect draws a rectangle outline that stays within x, y, w, h.
func (sc *ScreenCanvas) StrokeRect(x, y, w, h, thickness float32, c color.Color) {
	half := thickness / 2
	vector.StrokeRect(sc.dst, x+half, y+half, w-thickness, h-thickness, thickness, c, false)
}

// DrawText draws text using the Go Regular face at the given size.
func (sc *ScreenCanvas) DrawText(s string, x, y int, size float64, c color.Color) {
	face := GetFaceWithSize(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = size * lineSpacing
	text.Draw(sc.dst, s, face, op)
}

// DrawTexture draws an Ebitengine texture unscaled at x, y.
func (sc *ScreenCanvas) DrawTexture(t Texture, x, y float64) {
	img, ok := t.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	sc.dst.DrawImage(img, op)
}
