package ui

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessframe/internal/board"
	"github.com/hailam/chessframe/internal/input"
	"github.com/hailam/chessframe/internal/storage"
)

// Position is the game-state collaborator the window displays.
type Position interface {
	Snapshot() board.Snapshot
	Turn() board.Color
	IsCurrent() bool
	Submit(text string) error
	AutoMove() error
	Back() bool
	Forward() bool
	Ply() (viewed, total int)
	Outcome() string
	LastMove() string
}

// Game implements ebiten.Game interface.
type Game struct {
	renderer *Renderer
	position Position

	// Input state
	input   *input.Handler
	text    *input.TextBuffer
	focused bool

	feedback *FeedbackManager
	sounds   Sounder
	storage  *storage.Storage
	prefs    *storage.UIPreferences

	outcome string
	err     error // first draw failure, returned from Update
}

// NewGame creates the game loop around an initialized renderer.
// sounds may be nil.
func NewGame(renderer *Renderer, position Position, sounds Sounder) *Game {
	return &Game{
		renderer: renderer,
		position: position,
		input:    input.NewHandler(),
		text:     input.NewTextBuffer(input.MaxInputChars),
		feedback: NewFeedbackManager(sounds),
		sounds:   sounds,
	}
}

// SetStorage hands the preference store to the game. Runtime changes to
// prefs are saved there, and Close releases it.
func (g *Game) SetStorage(s *storage.Storage, prefs *storage.UIPreferences) {
	g.storage = s
	g.prefs = prefs
}

// Update handles game logic updates.
func (g *Game) Update() error {
	return g.step(g.input.Poll())
}

// step applies one tick of input. It returns the stored draw error, which
// makes Ebitengine stop the loop.
func (g *Game) step(c input.Controls) error {
	if g.err != nil {
		return g.err
	}

	g.feedback.Update()

	box := g.renderer.TextBox()
	if c.Click {
		g.focused = c.ClickedInBounds(box.Min.X, box.Min.Y, box.Dx(), box.Dy())
	}

	if g.focused {
		g.handleTyping(c)
		return nil
	}

	if c.Left && g.position.Back() {
		viewed, total := g.position.Ply()
		g.feedback.OnRollback(true, viewed, total)
	}
	if c.Right && g.position.Forward() {
		viewed, total := g.position.Ply()
		g.feedback.OnRollback(false, viewed, total)
	}
	if c.Mute {
		g.toggleSound()
	}
	if c.Space {
		if err := g.position.AutoMove(); err != nil {
			g.feedback.OnInvalidMove(err)
		} else {
			log.Printf("[MOVE] auto: %s", g.position.LastMove())
			g.feedback.OnMoveMade(g.position.LastMove())
			g.checkGameEnd()
		}
	}

	return nil
}

// soundSwitch is implemented by sound players that can be muted.
type soundSwitch interface {
	SetEnabled(enabled bool)
	IsEnabled() bool
}

// toggleSound flips muting and saves the choice.
func (g *Game) toggleSound() {
	sw, ok := g.sounds.(soundSwitch)
	if !ok {
		return
	}
	enabled := !sw.IsEnabled()
	sw.SetEnabled(enabled)
	g.feedback.OnSoundToggled(enabled)

	if g.storage == nil || g.prefs == nil {
		return
	}
	g.prefs.SoundEnabled = enabled
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// handleTyping edits the move buffer while the box has focus.
func (g *Game) handleTyping(c input.Controls) {
	for _, r := range c.Typed {
		g.text.Append(r)
	}
	if c.Backspace {
		g.text.Backspace()
	}
	if c.Enter {
		g.submit()
	}
	if c.Escape {
		g.focused = false
	}
}

// submit hands the typed move to the position.
func (g *Game) submit() {
	move := g.text.String()
	if move == "" {
		return
	}

	if err := g.position.Submit(move); err != nil {
		log.Printf("[MOVE] rejected %q: %v", move, err)
		g.feedback.OnInvalidMove(err)
		return
	}

	log.Printf("[MOVE] %s -> %s", move, g.position.Snapshot().Placement())
	g.text.Clear()
	g.feedback.OnMoveMade(g.position.LastMove())
	g.checkGameEnd()
}

// checkGameEnd announces the outcome once.
func (g *Game) checkGameEnd() {
	outcome := g.position.Outcome()
	if outcome == "" || outcome == g.outcome {
		return
	}
	g.outcome = outcome
	log.Printf("[GAME] over: %s", outcome)
	g.feedback.OnGameEnd(outcome)
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.draw(NewScreenCanvas(screen))
}

func (g *Game) draw(c Canvas) {
	if g.err != nil {
		return
	}

	snap := g.position.Snapshot()
	err := g.renderer.UpdateWindow(c, snap, g.position.Turn(), g.position.IsCurrent())
	if err == nil {
		err = g.renderer.UpdateTextBox(c, g.text.String())
	}
	if err != nil {
		log.Printf("ERROR: draw failed: %v", err)
		g.err = err
		return
	}

	l := g.renderer.Layout()
	g.feedback.Notices().Draw(c, l.ScreenWidth/2-20, 220, g.renderer.Theme())
}

// Layout returns the game's screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	l := g.renderer.Layout()
	return l.ScreenWidth, l.ScreenHeight
}

// Err returns the error that stopped drawing, if any.
func (g *Game) Err() error {
	return g.err
}

// Focused reports whether the move box has keyboard focus.
func (g *Game) Focused() bool {
	return g.focused
}

// Text returns the contents of the move box.
func (g *Game) Text() string {
	return g.text.String()
}

// Close releases the textures and the preference store.
func (g *Game) Close() error {
	var errs []error
	if g.renderer.State() == StateReady {
		errs = append(errs, g.renderer.UnloadTextures())
	}
	if g.storage != nil {
		errs = append(errs, g.storage.Close())
		g.storage = nil
	}
	return errors.Join(errs...)
}
