// Package board describes the board snapshot handed to the renderer each frame.
package board

import "fmt"

// Square addresses one cell of a Snapshot.
// Row 0 is rank 8 (top of the screen), Col 0 is file A.
type Square struct {
	Row, Col int
}

// NoSquare is returned for invalid coordinates.
var NoSquare = Square{Row: -1, Col: -1}

// NewSquare creates a square from file and rank (0-indexed, rank 0 = rank 1).
func NewSquare(file, rank int) Square {
	return Square{Row: 7 - rank, Col: file}
}

// File returns the file (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return sq.Col
}

// Rank returns the rank (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return 7 - sq.Row
}

// IsValid returns true if the square lies on the board.
func (sq Square) IsValid() bool {
	return sq.Row >= 0 && sq.Row < 8 && sq.Col >= 0 && sq.Col < 8
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(file, rank), nil
}
