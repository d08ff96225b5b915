package board

// Color represents the color of a piece or player.
// Values other than Black and White carry no color.
type Color uint8

const (
	Black Color = iota
	White
	NoColor Color = 2
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Prefix returns the texture key prefix for the color ("b_", "w_" or "").
func (c Color) Prefix() string {
	switch c {
	case Black:
		return "b_"
	case White:
		return "w_"
	default:
		return ""
	}
}

// Kind represents what occupies a square.
type Kind uint8

const (
	Empty Kind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	Pawn
	// Passant marks the en passant target square. It is not a piece and
	// is never drawn.
	Passant
)

var kindNames = [...]string{
	Empty:   "",
	Rook:    "rook",
	Knight:  "knight",
	Bishop:  "bishop",
	Queen:   "queen",
	King:    "king",
	Pawn:    "pawn",
	Passant: "",
}

// Name returns the texture name of the kind. Empty, Passant and values
// outside the enumeration map to "".
func (k Kind) Name() string {
	if int(k) >= len(kindNames) {
		return ""
	}
	return kindNames[k]
}

// String returns a readable kind name.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Passant:
		return "Passant"
	}
	if n := k.Name(); n != "" {
		return n
	}
	return "Unknown"
}

// IsPiece reports whether the kind is a real chess piece.
func (k Kind) IsPiece() bool {
	return k >= Rook && k <= Pawn
}

// Kinds lists the six drawable piece kinds.
var Kinds = [6]Kind{Rook, Knight, Bishop, Queen, King, Pawn}

// Piece describes the occupant of one square.
// The zero value is an empty square.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is an empty square.
var NoPiece = Piece{}

// NewPiece creates a Piece from kind and color.
func NewPiece(k Kind, c Color) Piece {
	return Piece{Kind: k, Color: c}
}

// IsEmpty returns true if nothing drawable occupies the square.
func (p Piece) IsEmpty() bool {
	return !p.Kind.IsPiece()
}

// Key returns the texture key for the piece, e.g. "w_knight".
// Unknown colors contribute an empty prefix and non-pieces an empty name.
func (p Piece) Key() string {
	return p.Color.Prefix() + p.Kind.Name()
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black, '.' for passant, ' ' otherwise.
func (p Piece) String() string {
	if p.Kind == Passant {
		return "."
	}
	if !p.Kind.IsPiece() {
		return " "
	}
	c := "rnbqkp"[p.Kind-Rook]
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return NewPiece(Pawn, White)
	case 'N':
		return NewPiece(Knight, White)
	case 'B':
		return NewPiece(Bishop, White)
	case 'R':
		return NewPiece(Rook, White)
	case 'Q':
		return NewPiece(Queen, White)
	case 'K':
		return NewPiece(King, White)
	case 'p':
		return NewPiece(Pawn, Black)
	case 'n':
		return NewPiece(Knight, Black)
	case 'b':
		return NewPiece(Bishop, Black)
	case 'r':
		return NewPiece(Rook, Black)
	case 'q':
		return NewPiece(Queen, Black)
	case 'k':
		return NewPiece(King, Black)
	default:
		return NoPiece
	}
}

// TextureKeys returns the 12 canonical texture keys, black pieces first.
func TextureKeys() []string {
	keys := make([]string, 0, 12)
	for _, c := range []Color{Black, White} {
		for _, k := range Kinds {
			keys = append(keys, NewPiece(k, c).Key())
		}
	}
	return keys
}
