package board

import "strings"

// Snapshot is the 8x8 occupancy of the board for one frame.
// Indexed [row][col]; row 0 is rank 8.
type Snapshot [8][8]Piece

// At returns the piece on the square, or NoPiece off the board.
func (s Snapshot) At(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return s[sq.Row][sq.Col]
}

// Set places a piece on the square. Invalid squares are ignored.
func (s *Snapshot) Set(sq Square, p Piece) {
	if !sq.IsValid() {
		return
	}
	s[sq.Row][sq.Col] = p
}

// Count returns the number of drawable pieces.
func (s Snapshot) Count() int {
	n := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if !s[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// String renders the snapshot as eight text lines, rank 8 first.
func (s Snapshot) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := s[row][col]
			if p.Kind == Empty {
				sb.WriteByte('-')
			} else {
				sb.WriteString(p.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
