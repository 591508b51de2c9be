package chess

import "strings"

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Has reports whether side may still castle on the given wing.
func (r CastlingRights) Has(side Side, kind MoveKind) bool {
	switch {
	case side == White && kind == CastleKingside:
		return r.WhiteKingside
	case side == White && kind == CastleQueenside:
		return r.WhiteQueenside
	case side == Black && kind == CastleKingside:
		return r.BlackKingside
	case side == Black && kind == CastleQueenside:
		return r.BlackQueenside
	}
	return false
}

// Revoke clears one flag.
func (r *CastlingRights) Revoke(side Side, kind MoveKind) {
	switch {
	case side == White && kind == CastleKingside:
		r.WhiteKingside = false
	case side == White && kind == CastleQueenside:
		r.WhiteQueenside = false
	case side == Black && kind == CastleKingside:
		r.BlackKingside = false
	case side == Black && kind == CastleQueenside:
		r.BlackQueenside = false
	}
}

// RevokeAll clears both of side's flags.
func (r *CastlingRights) RevokeAll(side Side) {
	r.Revoke(side, CastleKingside)
	r.Revoke(side, CastleQueenside)
}

// String returns the FEN castling field, "-" when no right remains.
func (r CastlingRights) String() string {
	var sb strings.Builder
	if r.WhiteKingside {
		sb.WriteByte('K')
	}
	if r.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if r.BlackKingside {
		sb.WriteByte('k')
	}
	if r.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Located pairs a piece with the square it stands on.
type Located struct {
	Piece  PlacedPiece
	Square Square
}

// Board is one position: placement, side to move and castling rights.
// An absent key in the placement map is an empty square.
type Board struct {
	// Who has the next move.
	ToMove Side

	Castling CastlingRights

	pieces map[Square]PlacedPiece
}

// NewBoard creates an empty board with White to move and no castling rights.
func NewBoard() *Board {
	return &Board{
		ToMove: White,
		pieces: make(map[Square]PlacedPiece),
	}
}

// NewStartingBoard creates the standard starting position.
func NewStartingBoard() *Board {
	b := NewBoard()
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range backRank {
		b.pieces[Square(file)] = PlacedPiece{White, kind}
		b.pieces[Square(BoardSize+file)] = PlacedPiece{White, Pawn}
		b.pieces[Square(6*BoardSize+file)] = PlacedPiece{Black, Pawn}
		b.pieces[Square(7*BoardSize+file)] = PlacedPiece{Black, kind}
	}
	b.Castling = AllCastlingRights()
	return b
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (PlacedPiece, bool) {
	p, ok := b.pieces[sq]
	return p, ok
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	_, ok := b.pieces[sq]
	return !ok
}

// Place puts p on sq, replacing whatever was there.
// Invalid squares are ignored.
func (b *Board) Place(sq Square, p PlacedPiece) {
	if !sq.Valid() {
		return
	}
	b.pieces[sq] = p
}

// Remove clears sq and returns the piece that stood there.
func (b *Board) Remove(sq Square) (PlacedPiece, bool) {
	p, ok := b.pieces[sq]
	if ok {
		delete(b.pieces, sq)
	}
	return p, ok
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.pieces)
}

// PiecesOf returns every piece of side with its square, in square order.
func (b *Board) PiecesOf(side Side) []Located {
	var result []Located
	for sq := A1; sq <= H8; sq++ {
		if p, ok := b.pieces[sq]; ok && p.Side == side {
			result = append(result, Located{Piece: p, Square: sq})
		}
	}
	return result
}

// PiecesOfKind returns the squares holding side's pieces of kind.
func (b *Board) PiecesOfKind(side Side, kind PieceKind) []Square {
	var result []Square
	want := PlacedPiece{side, kind}
	for sq := A1; sq <= H8; sq++ {
		if p, ok := b.pieces[sq]; ok && p == want {
			result = append(result, sq)
		}
	}
	return result
}

// PiecesInFile returns the squares in file holding side's pieces of kind.
func (b *Board) PiecesInFile(side Side, kind PieceKind, file int) []Square {
	var result []Square
	want := PlacedPiece{side, kind}
	for rank := 0; rank < BoardSize; rank++ {
		sq, ok := NewSquare(file, rank)
		if !ok {
			return nil
		}
		if p, ok := b.pieces[sq]; ok && p == want {
			result = append(result, sq)
		}
	}
	return result
}

// KingSquare returns the square of side's king.
func (b *Board) KingSquare(side Side) (Square, bool) {
	kings := b.PiecesOfKind(side, King)
	if len(kings) == 0 {
		return NoSquare, false
	}
	return kings[0], true
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{
		ToMove:   b.ToMove,
		Castling: b.Castling,
		pieces:   make(map[Square]PlacedPiece, len(b.pieces)),
	}
	for sq, p := range b.pieces {
		newBoard.pieces[sq] = p
	}
	return newBoard
}

// Equal reports whether two boards hold the same position.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.ToMove != o.ToMove || b.Castling != o.Castling || len(b.pieces) != len(o.pieces) {
		return false
	}
	for sq, p := range b.pieces {
		if q, ok := o.pieces[sq]; !ok || q != p {
			return false
		}
	}
	return true
}
