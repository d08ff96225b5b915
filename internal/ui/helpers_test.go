package ui

import (
	"fmt"
	"image"
	"image/color"
	"testing"
)

// fakeTexture stands in for a GPU image.
type fakeTexture struct {
	key string
}

func (t *fakeTexture) Bounds() image.Rectangle {
	return image.Rect(0, 0, 60, 60)
}

// fakeLoader hands out fakeTextures and records releases.
type fakeLoader struct {
	missing  map[string]bool
	loaded   []string
	unloaded []string
}

func (l *fakeLoader) Load(key string) (Texture, error) {
	if l.missing[key] {
		return nil, fmt.Errorf("%w: %s.png", ErrAssetMissing, key)
	}
	l.loaded = append(l.loaded, key)
	return &fakeTexture{key: key}, nil
}

func (l *fakeLoader) Unload(t Texture) {
	l.unloaded = append(l.unloaded, t.(*fakeTexture).key)
}

// fakeWindow records the window configuration.
type fakeWindow struct {
	width, height int
	title         string
	tps           int
	calls         int
}

func (w *fakeWindow) SetSize(width, height int) {
	w.width, w.height = width, height
	w.calls++
}

func (w *fakeWindow) SetTitle(title string) {
	w.title = title
}

func (w *fakeWindow) SetTPS(tps int) {
	w.tps = tps
}

// drawOp is one recorded canvas call.
type drawOp struct {
	kind       string // clear, fill, stroke, text, texture
	x, y, w, h float64
	thickness  float64
	size       float64
	text       string
	color      color.Color
	tex        Texture
}

// recorder is a Canvas that keeps every call.
type recorder struct {
	ops []drawOp
}

func (r *recorder) Clear(c color.Color) {
	r.ops = append(r.ops, drawOp{kind: "clear", color: c})
}

func (r *recorder) FillRect(x, y, w, h float32, c color.Color) {
	r.ops = append(r.ops, drawOp{kind: "fill", x: float64(x), y: float64(y), w: float64(w), h: float64(h), color: c})
}

func (r *recorder) StrokeRect(x, y, w, h, thickness float32, c color.Color) {
	r.ops = append(r.ops, drawOp{kind: "stroke", x: float64(x), y: float64(y), w: float64(w), h: float64(h), thickness: float64(thickness), color: c})
}

func (r *recorder) DrawText(s string, x, y int, size float64, c color.Color) {
	r.ops = append(r.ops, drawOp{kind: "text", text: s, x: float64(x), y: float64(y), size: size, color: c})
}

func (r *recorder) DrawTexture(t Texture, x, y float64) {
	r.ops = append(r.ops, drawOp{kind: "texture", tex: t, x: x, y: y})
}

func (r *recorder) filter(kind string) []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *recorder) texts() []string {
	var out []string
	for _, op := range r.filter("text") {
		out = append(out, op.text)
	}
	return out
}

func (r *recorder) hasText(s string) bool {
	for _, t := range r.texts() {
		if t == s {
			return true
		}
	}
	return false
}

// newReadyRenderer returns a renderer that went through InitializeWindow.
func newReadyRenderer(t *testing.T) (*Renderer, *fakeLoader) {
	t.Helper()
	loader := &fakeLoader{}
	r := NewRenderer(DefaultLayout(), loader)
	if err := r.InitializeWindow(&fakeWindow{}); err != nil {
		t.Fatalf("InitializeWindow: %v", err)
	}
	return r, loader
}
