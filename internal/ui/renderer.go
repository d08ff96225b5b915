package ui

import (
	"errors"
	"fmt"
	"image"
	"strconv"

	"github.com/hailam/chessframe/internal/board"
)

var (
	// ErrNotReady is returned by draw calls before the textures are
	// loaded or after they were unloaded.
	ErrNotReady = errors.New("renderer not ready")
	// ErrAlreadyInitialized is returned when the window or textures are
	// initialized a second time.
	ErrAlreadyInitialized = errors.New("renderer already initialized")
	// ErrTextureMissing is returned when a piece has no cached texture.
	ErrTextureMissing = errors.New("texture missing")
)

// Informational strings drawn every frame.
const (
	textInstructions = "Click on the box and write your move in a1a2 form."
	textWhiteTurn    = "WHITE'S TURN"
	textBlackTurn    = "BLACK'S TURN"
	textAutoMove     = "Press SPACE to let the artificial intelligence\nmake the next move."
	textRollback     = "Press LEFT or RIGHT ARROW to rollback and observe\nprevious situations."
	textCurrent      = "Current situation!"
)

const (
	labelSize     = 20
	infoSize      = 20
	turnSize      = 40
	currentSize   = 30
	inputTextSize = 20
	boxLineWidth  = 2
)

// State is the lifecycle state of a Renderer.
type State int

const (
	StateUninitialized State = iota
	StateReady
	StateReleased
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateReady:
		return "Ready"
	case StateReleased:
		return "Released"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Window is the part of the window system the renderer configures.
type Window interface {
	SetSize(width, height int)
	SetTitle(title string)
	SetTPS(tps int)
}

// Renderer handles all drawing operations.
type Renderer struct {
	layout  Layout
	theme   *Theme
	loader  TextureLoader
	cache   *TextureCache
	state   State
	textBox image.Rectangle
}

// NewRenderer creates a renderer that loads its textures through loader.
func NewRenderer(layout Layout, loader TextureLoader) *Renderer {
	return &Renderer{
		layout: layout,
		theme:  DefaultTheme(),
		loader: loader,
		cache:  NewTextureCache(),
	}
}

// InitializeWindow configures the window, positions the input box and
// loads the piece textures. It must be called once, before any drawing.
func (r *Renderer) InitializeWindow(win Window) error {
	if r.state != StateUninitialized {
		return ErrAlreadyInitialized
	}

	win.SetSize(r.layout.ScreenWidth, r.layout.ScreenHeight)
	win.SetTitle(r.layout.Title)
	win.SetTPS(r.layout.FramesPerSecond)

	r.textBox = r.layout.TextBox()

	return r.LoadTextures()
}

// LoadTextures loads the 12 piece textures into the cache. If any asset
// fails, the textures loaded so far are released and the error is
// returned.
func (r *Renderer) LoadTextures() error {
	if r.state != StateUninitialized {
		return ErrAlreadyInitialized
	}

	for _, key := range board.TextureKeys() {
		tex, err := r.loader.Load(key)
		if err != nil {
			r.cache.Clear(r.loader.Unload)
			return fmt.Errorf("load texture %s: %w", key, err)
		}
		r.cache.Put(key, tex)
	}

	r.state = StateReady
	return nil
}

// UnloadTextures releases every cached texture. No drawing is possible
// afterwards.
func (r *Renderer) UnloadTextures() error {
	if r.state != StateReady {
		return ErrNotReady
	}
	r.cache.Clear(r.loader.Unload)
	r.state = StateReleased
	return nil
}

// UpdateWindow draws one complete frame: board, pieces, input box and
// the status text. isCurrent adds the "Current situation!" line.
func (r *Renderer) UpdateWindow(c Canvas, snap board.Snapshot, turn board.Color, isCurrent bool) error {
	if r.state != StateReady {
		return ErrNotReady
	}

	c.Clear(r.theme.Background)
	r.DrawBoard(c)
	if err := r.UpdatePieces(c, snap); err != nil {
		return err
	}

	box := r.textBox
	c.FillRect(float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()), r.theme.TextBox)
	c.StrokeRect(float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()), boxLineWidth, r.theme.TextBoxLine)

	w, h := r.layout.ScreenWidth, r.layout.ScreenHeight
	c.DrawText(textInstructions, 20, h-140, infoSize, r.theme.Info)
	c.DrawText(TurnText(turn), 20, h-70, turnSize, r.theme.Info)
	c.DrawText(textAutoMove, w/2-20, 50, infoSize, r.theme.Info)
	c.DrawText(textRollback, w/2-20, 100, infoSize, r.theme.Info)
	if isCurrent {
		c.DrawText(textCurrent, w/2-20, 150, currentSize, r.theme.Info)
	}

	return nil
}

// TurnText returns the turn banner for the side to move.
func TurnText(turn board.Color) string {
	if turn == board.White {
		return textWhiteTurn
	}
	return textBlackTurn
}

// DrawBoard draws the frame, the 64 squares and the coordinate labels.
func (r *Renderer) DrawBoard(c Canvas) {
	l := r.layout

	frame := l.Frame()
	c.FillRect(float32(frame.Min.X), float32(frame.Min.Y), float32(frame.Dx()), float32(frame.Dy()), r.theme.Frame)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x, y := l.SquareOrigin(row, col)
			c.FillRect(float32(x), float32(y), float32(l.SquareSize), float32(l.SquareSize), r.theme.SquareColor(row, col))
		}
	}

	// Rank numbers, 8 at the top, on both sides
	for row := 0; row < 8; row++ {
		label := strconv.Itoa(8 - row)
		y := l.BoardY + row*l.SquareSize + l.SquareSize/2 - 10
		c.DrawText(label, l.BoardX-l.FrameSize+5, y, labelSize, r.theme.Label)
		c.DrawText(label, l.BoardX+l.SquareSize*8+l.FrameSize-15, y, labelSize, r.theme.Label)
	}

	// File letters above and below
	for col := 0; col < 8; col++ {
		label := string(rune('A' + col))
		x := l.BoardX + col*l.SquareSize + l.SquareSize/2 - 5
		c.DrawText(label, x, l.BoardY-l.FrameSize+5, labelSize, r.theme.Label)
		c.DrawText(label, x, l.BoardY+l.SquareSize*8+l.FrameSize-20, labelSize, r.theme.Label)
	}
}

// UpdatePieces draws every piece of the snapshot. Empty squares and
// passant markers are skipped; a piece without a texture stops drawing
// and returns ErrTextureMissing.
func (r *Renderer) UpdatePieces(c Canvas, snap board.Snapshot) error {
	if r.state != StateReady {
		return ErrNotReady
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := snap[row][col]
			if piece.Kind == board.Empty || piece.Kind == board.Passant {
				continue
			}

			tex, err := r.GetPieceTexture(r.BuildString(piece))
			if err != nil {
				return fmt.Errorf("square %s: %w", board.Square{Row: row, Col: col}, err)
			}

			x, y := r.layout.PiecePosition(row, col)
			c.DrawTexture(tex, x, y)
		}
	}
	return nil
}

// BuildString returns the texture key of a piece, e.g. "b_rook".
func (r *Renderer) BuildString(p board.Piece) string {
	return p.Key()
}

// GetPieceTexture returns the cached texture for key.
func (r *Renderer) GetPieceTexture(key string) (Texture, error) {
	tex, ok := r.cache.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTextureMissing, key)
	}
	return tex, nil
}

// UpdateTextBox draws the text being typed inside the input box.
func (r *Renderer) UpdateTextBox(c Canvas, text string) error {
	if r.state != StateReady {
		return ErrNotReady
	}
	c.DrawText(text, r.textBox.Min.X+5, r.textBox.Min.Y+15, inputTextSize, r.theme.InputText)
	return nil
}

// State returns the lifecycle state.
func (r *Renderer) State() State {
	return r.state
}

// Layout returns the window geometry.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// TextBox returns the input box rectangle. It is empty until
// InitializeWindow has run.
func (r *Renderer) TextBox() image.Rectangle {
	return r.textBox
}

// Cache returns the texture cache.
func (r *Renderer) Cache() *TextureCache {
	return r.cache
}
