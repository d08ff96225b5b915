package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartPlacement is the piece placement field of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// StartSnapshot returns the starting position.
func StartSnapshot() Snapshot {
	s, _ := ParsePlacement(StartPlacement)
	return s
}

// ParsePlacement parses the piece placement field of a FEN string.
// Additional FEN fields are ignored, except that a valid en passant
// field marks its square with a Passant occupant.
func ParsePlacement(fen string) (Snapshot, error) {
	var s Snapshot

	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return s, fmt.Errorf("invalid FEN: empty")
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return s, fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for row, rankStr := range ranks {
		col := 0

		for _, c := range rankStr {
			if col > 7 {
				return s, fmt.Errorf("too many squares in rank %d", 8-row)
			}

			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return s, fmt.Errorf("invalid piece character: %c", c)
			}
			s[row][col] = piece
			col++
		}

		if col != 8 {
			return s, fmt.Errorf("invalid number of squares in rank %d: got %d", 8-row, col)
		}
	}

	if len(parts) > 3 && parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return s, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		if s.At(sq).Kind == Empty {
			s.Set(sq, NewPiece(Passant, NoColor))
		}
	}

	return s, nil
}

// Placement returns the FEN piece placement field for the snapshot.
// Passant markers are written as empty squares.
func (s Snapshot) Placement() string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			piece := s[row][col]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
