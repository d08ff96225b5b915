// Package session keeps the live game and the history the player can
// roll back through. Chess rules come from github.com/notnil/chess.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/notnil/chess"

	"github.com/hailam/chessframe/internal/board"
)

var (
	// ErrViewingHistory is returned when a move is submitted while an
	// earlier position is displayed.
	ErrViewingHistory = errors.New("viewing an earlier position")
	// ErrGameOver is returned when a move is submitted after the game ended.
	ErrGameOver = errors.New("game is over")
	// ErrIllegalMove wraps the rules library's rejection of a move.
	ErrIllegalMove = errors.New("illegal move")
)

// Session is the game-state collaborator of the renderer.
type Session struct {
	game   *chess.Game
	cursor int // index into game.Positions() of the displayed position
	intn   func(n int) int
}

// New starts a session from a FEN string, or from the standard starting
// position when fen is empty.
func New(fen string) (*Session, error) {
	opts := []func(*chess.Game){chess.UseNotation(chess.UCINotation{})}
	if fen != "" {
		f, err := chess.FEN(fen)
		if err != nil {
			return nil, fmt.Errorf("parse FEN: %w", err)
		}
		opts = append(opts, f)
	}

	s := &Session{
		game: chess.NewGame(opts...),
		intn: rand.Intn,
	}
	s.cursor = s.last()
	return s, nil
}

func (s *Session) last() int {
	return len(s.game.Positions()) - 1
}

func (s *Session) viewed() *chess.Position {
	return s.game.Positions()[s.cursor]
}

// Snapshot returns the displayed position in renderer form. The en
// passant target square, if any, holds a Passant marker.
func (s *Session) Snapshot() board.Snapshot {
	snap, err := board.ParsePlacement(s.viewed().String())
	if err != nil {
		// The rules library always emits well-formed FEN.
		panic(fmt.Sprintf("session: unexpected FEN %q: %v", s.viewed().String(), err))
	}
	return snap
}

// Turn returns the side to move in the live position.
func (s *Session) Turn() board.Color {
	if s.game.Position().Turn() == chess.Black {
		return board.Black
	}
	return board.White
}

// IsCurrent reports whether the live position is displayed.
func (s *Session) IsCurrent() bool {
	return s.cursor == s.last()
}

// Back steps the display one position into the past.
func (s *Session) Back() bool {
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

// Forward steps the display one position towards the live one.
func (s *Session) Forward() bool {
	if s.IsCurrent() {
		return false
	}
	s.cursor++
	return true
}

// Ply returns the index of the displayed position and the number of
// moves played.
func (s *Session) Ply() (viewed, total int) {
	return s.cursor, s.last()
}

// Submit plays a move written in coordinate form, e.g. "e2e4" or "e7e8q".
func (s *Session) Submit(text string) error {
	if err := s.canMove(); err != nil {
		return err
	}

	move := strings.ToLower(strings.TrimSpace(text))
	if err := s.game.MoveStr(move); err != nil {
		return fmt.Errorf("%w %q: %v", ErrIllegalMove, text, err)
	}
	s.cursor = s.last()
	return nil
}

// AutoMove plays a random legal move for the side to move.
func (s *Session) AutoMove() error {
	if err := s.canMove(); err != nil {
		return err
	}

	moves := s.game.ValidMoves()
	if len(moves) == 0 {
		return ErrGameOver
	}
	if err := s.game.Move(moves[s.intn(len(moves))]); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	s.cursor = s.last()
	return nil
}

func (s *Session) canMove() error {
	if !s.IsCurrent() {
		return ErrViewingHistory
	}
	if s.game.Outcome() != chess.NoOutcome {
		return ErrGameOver
	}
	return nil
}

// Outcome returns "" while the game is in progress, otherwise the result
// and how it was reached, e.g. "0-1 (Checkmate)".
func (s *Session) Outcome() string {
	if s.game.Outcome() == chess.NoOutcome {
		return ""
	}
	return fmt.Sprintf("%s (%s)", s.game.Outcome(), s.game.Method())
}

// LastMove returns the last move played in UCI form, or "".
func (s *Session) LastMove() string {
	moves := s.game.Moves()
	if len(moves) == 0 {
		return ""
	}
	return moves[len(moves)-1].String()
}
