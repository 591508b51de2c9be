// Package chess provides the core chess types: sides, pieces, coordinates,
// squares, moves and the board placement that the engine operates on.
package chess

// Side represents the colour of a piece or player.
type Side int

const (
	Black Side = iota
	White
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opponent of s.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Letter returns the FEN side-to-move letter.
func (s Side) Letter() byte {
	if s == White {
		return 'w'
	}
	return 'b'
}

// Forward returns +1 for White, -1 for Black (pawn advance direction).
func (s Side) Forward() int {
	if s == White {
		return 1
	}
	return -1
}

// BackRank returns the rank index the side's pieces start on.
func (s Side) BackRank() int {
	if s == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index the side's pawns start on.
func (s Side) PawnRank() int {
	return s.BackRank() + s.Forward()
}

// PromotionRank returns the farthest rank for the side's pawns.
func (s Side) PromotionRank() int {
	return s.Opposite().BackRank()
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter of a piece kind.
func (k PieceKind) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// CanPromoteTo reports whether a pawn may be promoted to k.
func (k PieceKind) CanPromoteTo() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// PieceKindFromLetter converts a piece letter, in either case, to a kind.
func PieceKindFromLetter(c byte) (PieceKind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return NoPiece, false
}

// PlacedPiece is a piece of a given side. Its square is the key it is
// stored under on a Board.
type PlacedPiece struct {
	Side Side
	Kind PieceKind
}

// String returns e.g. "White Knight".
func (p PlacedPiece) String() string {
	return p.Side.String() + " " + p.Kind.String()
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p PlacedPiece) FENLetter() byte {
	letter := p.Kind.Letter()
	if p.Side == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromFENLetter converts a FEN piece letter to a placed piece.
func PieceFromFENLetter(c byte) (PlacedPiece, bool) {
	kind, ok := PieceKindFromLetter(c)
	if !ok {
		return PlacedPiece{}, false
	}
	side := White
	if c >= 'a' && c <= 'z' {
		side = Black
	}
	return PlacedPiece{Side: side, Kind: kind}, true
}
