package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN creates a game whose starting position and counters come from a
// six-field FEN string. Any structural problem fails the whole parse with
// an error wrapping errors.ErrInvalidFEN.
func ParseFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fenError(fen, 0, "6 fields", strconv.Itoa(len(fields)))
	}

	board := chess.NewBoard()

	if err := parsePlacement(board, fen, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return nil, fenError(fen, 2, "w or b", fields[1])
	}

	rights, ok := parseCastlingRights(fields[2])
	if !ok {
		return nil, fenError(fen, 3, "castling rights in KQkq order or -", fields[2])
	}
	board.Castling = rights

	ep, ok := parseEnPassant(fields[3], board.ToMove)
	if !ok {
		return nil, fenError(fen, 4, "en passant square or -", fields[3])
	}

	halfMove, ok := parseCounter(fields[4])
	if !ok {
		return nil, fenError(fen, 5, "non-negative half-move clock", fields[4])
	}

	fullMove, ok := parseCounter(fields[5])
	if !ok || fullMove < 1 {
		return nil, fenError(fen, 6, "positive full-move number", fields[5])
	}

	return newGameState(board, ep, halfMove, fullMove), nil
}

func fenError(fen string, field int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// parsePlacement parses the piece placement field, rank 8 first.
func parsePlacement(board *chess.Board, fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, 1, "8 ranks", strconv.Itoa(len(ranks)))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromFENLetter(c)
			if !ok {
				return fenError(fen, 1, "piece letter or digit", string(c))
			}
			sq, ok := chess.NewSquare(file, rank)
			if !ok {
				return fenError(fen, 1, "8 files in rank "+string(chess.RankDigit(rank)), "more")
			}
			board.Place(sq, piece)
			file++
		}
		if file != chess.BoardSize {
			return fenError(fen, 1, "8 files in rank "+string(chess.RankDigit(rank)), strconv.Itoa(file))
		}
	}
	return nil
}

// parseCastlingRights accepts "-" or a non-empty subsequence of "KQkq".
func parseCastlingRights(field string) (chess.CastlingRights, bool) {
	var rights chess.CastlingRights
	if field == "-" {
		return rights, true
	}

	const order = "KQkq"
	next := 0
	for i := 0; i < len(field); i++ {
		idx := strings.IndexByte(order[next:], field[i])
		if idx < 0 {
			return rights, false
		}
		next += idx + 1
		switch field[i] {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		}
	}
	return rights, field != ""
}

// parseEnPassant accepts "-" or a square on the rank a pawn of the side
// that just moved would have skipped.
func parseEnPassant(field string, toMove chess.Side) (chess.Square, bool) {
	if field == "-" {
		return chess.NoSquare, true
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return chess.NoSquare, false
	}
	mover := toMove.Opposite()
	if sq.Rank() != mover.PawnRank()+mover.Forward() {
		return chess.NoSquare, false
	}
	return sq, true
}

func parseCounter(field string) (int, bool) {
	if field == "" || field[0] < '0' || field[0] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// FEN serializes the current position and counters.
func (g *GameState) FEN() string {
	b := g.current()

	var sb strings.Builder
	writePlacement(&sb, b)
	sb.WriteByte(' ')
	sb.WriteByte(b.ToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(b.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(g.epSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.fullMoveNumber))
	return sb.String()
}

// PlacementFEN returns only the piece placement field for b.
func PlacementFEN(b *chess.Board) string {
	var sb strings.Builder
	writePlacement(&sb, b)
	return sb.String()
}

// writePlacement writes the piece placement section of a FEN string.
func writePlacement(sb *strings.Builder, b *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			sq, _ := chess.NewSquare(file, rank)
			piece, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
