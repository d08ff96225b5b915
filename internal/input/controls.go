package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Controls is the input state of one tick.
type Controls struct {
	Typed     []rune
	Backspace bool
	Enter     bool
	Escape    bool
	Left      bool
	Right     bool
	Space     bool
	Mute      bool

	MouseX, MouseY int
	Click          bool // left button went down this tick
}

// Handler polls Ebitengine once per tick and keeps the result.
type Handler struct {
	controls Controls
	chars    []rune
}

// NewHandler creates a new input handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Poll reads the current input state. Call this once per Update.
func (h *Handler) Poll() Controls {
	h.chars = ebiten.AppendInputChars(h.chars[:0])

	h.controls = Controls{
		Typed:     h.chars,
		Backspace: repeating(ebiten.KeyBackspace),
		Enter:     inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Left:      inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		Right:     inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		Space:     inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Mute:      inpututil.IsKeyJustPressed(ebiten.KeyM),
		Click:     inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	h.controls.MouseX, h.controls.MouseY = ebiten.CursorPosition()

	return h.controls
}

// repeating reports a key press on the first tick and then at a steady
// rate while the key is held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= 30 && (d-30)%4 == 0
}

// InBounds returns true if the mouse is within the given rectangle.
func (c Controls) InBounds(x, y, w, h int) bool {
	return c.MouseX >= x && c.MouseX < x+w && c.MouseY >= y && c.MouseY < y+h
}

// ClickedInBounds returns true if the mouse was just clicked within the given rectangle.
func (c Controls) ClickedInBounds(x, y, w, h int) bool {
	return c.Click && c.InBounds(x, y, w, h)
}
