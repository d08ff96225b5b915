package ui

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hailam/chessframe/internal/session"
)

// NoticeKind represents the type of a notice.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// Notice is a timed status message.
type Notice struct {
	Message   string
	Kind      NoticeKind
	StartTime time.Time
	Duration  time.Duration
}

// Notices keeps the most recent status messages.
type Notices struct {
	items    []*Notice
	maxStack int
	now      func() time.Time
}

// NewNotices creates an empty notice stack.
func NewNotices() *Notices {
	return &Notices{
		maxStack: 3,
		now:      time.Now,
	}
}

// Show adds a notice. The oldest one is dropped past three.
func (n *Notices) Show(message string, kind NoticeKind, duration time.Duration) {
	n.items = append(n.items, &Notice{
		Message:   message,
		Kind:      kind,
		StartTime: n.now(),
		Duration:  duration,
	})
	if len(n.items) > n.maxStack {
		n.items = n.items[1:]
	}
}

// Update removes expired notices.
func (n *Notices) Update() {
	now := n.now()
	active := n.items[:0]
	for _, it := range n.items {
		if now.Sub(it.StartTime) < it.Duration {
			active = append(active, it)
		}
	}
	n.items = active
}

// Active returns the notices currently shown, oldest first.
func (n *Notices) Active() []Notice {
	out := make([]Notice, 0, len(n.items))
	for _, it := range n.items {
		out = append(out, *it)
	}
	return out
}

// Draw renders the notices as a column of lines starting at x, y.
func (n *Notices) Draw(c Canvas, x, y int, theme *Theme) {
	now := n.now()
	for _, it := range n.items {
		base := theme.Info
		if it.Kind == NoticeError {
			base = theme.Error
		}

		// Fade out during the last 300ms
		alpha := 1.0
		if left := it.Duration - now.Sub(it.StartTime); left < 300*time.Millisecond {
			alpha = float64(left) / float64(300*time.Millisecond)
			if alpha < 0 {
				alpha = 0
			}
		}

		c.DrawText(it.Message, x, y, noticeSize, fade(base, alpha))
		y += noticeSize + 8
	}
}

// fade multiplies every channel, alpha included, by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

const noticeSize = 20

// Sounder plays sound effects.
type Sounder interface {
	Play(sound SoundType)
}

// FeedbackManager coordinates notices and sounds.
type FeedbackManager struct {
	notices *Notices
	audio   Sounder
}

// NewFeedbackManager creates a feedback manager. audio may be nil.
func NewFeedbackManager(audio Sounder) *FeedbackManager {
	return &FeedbackManager{
		notices: NewNotices(),
		audio:   audio,
	}
}

// Update prunes expired notices.
func (fm *FeedbackManager) Update() {
	fm.notices.Update()
}

// Notices returns the notice stack.
func (fm *FeedbackManager) Notices() *Notices {
	return fm.notices
}

func (fm *FeedbackManager) play(s SoundType) {
	if fm.audio != nil {
		fm.audio.Play(s)
	}
}

// OnInvalidMove reports a rejected move.
func (fm *FeedbackManager) OnInvalidMove(err error) {
	var message string
	switch {
	case errors.Is(err, session.ErrViewingHistory):
		message = "Return to the current situation first"
	case errors.Is(err, session.ErrGameOver):
		message = "The game is over"
	case errors.Is(err, session.ErrIllegalMove):
		message = "Illegal move"
	default:
		message = err.Error()
	}

	fm.notices.Show(message, NoticeError, 2*time.Second)
	fm.play(SoundInvalid)
}

// OnMoveMade handles a successful move.
func (fm *FeedbackManager) OnMoveMade(move string) {
	if move != "" {
		fm.notices.Show("Played "+move, NoticeInfo, 1500*time.Millisecond)
	}
	fm.play(SoundMove)
}

// OnRollback handles a step through the history. back is the direction;
// viewed and total are the displayed ply and the number of moves played.
func (fm *FeedbackManager) OnRollback(back bool, viewed, total int) {
	if viewed == total {
		fm.notices.Show("Back to the current situation", NoticeInfo, time.Second)
	} else {
		fm.notices.Show(fmt.Sprintf("Viewing move %d of %d", viewed, total), NoticeInfo, time.Second)
	}
	if back {
		fm.play(SoundRollback)
	} else {
		fm.play(SoundForward)
	}
}

// OnGameEnd handles the end of the game. Draws ("1/2-1/2") get their
// own sound.
func (fm *FeedbackManager) OnGameEnd(outcome string) {
	fm.notices.Show("Game over: "+outcome, NoticeInfo, 10*time.Second)
	if strings.HasPrefix(outcome, "1/2") {
		fm.play(SoundDraw)
		return
	}
	fm.play(SoundGameEnd)
}

// OnSoundToggled confirms a runtime mute change. It is shown even when
// sound is off.
func (fm *FeedbackManager) OnSoundToggled(enabled bool) {
	msg := "Sound off"
	if enabled {
		msg = "Sound on"
	}
	fm.notices.Show(msg, NoticeInfo, time.Second)
}
