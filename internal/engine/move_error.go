package engine

import "github.com/lgbarn/chess-rules-go/internal/errors"

// MoveError is the reason PerformMove rejected a move. Every value matches
// errors.ErrIllegalMove with errors.Is.
type MoveError int

const (
	TileFromIsEmpty MoveError = iota + 1
	TileFromIsEnemyPiece
	PieceDoesNotMoveLikeThat
	PromotionPieceNotSpecified
	PromotionNotLegal
	PromotionWrongPiece
	CastlingNoRights
	CastlingTilesInBetweenNotFree
	CastlingThroughCheck
	InCheck
)

var moveErrorText = map[MoveError]struct{ name, message string }{
	TileFromIsEmpty:               {"TileFromIsEmpty", "there is nothing at that tile"},
	TileFromIsEnemyPiece:          {"TileFromIsEnemyPiece", "you can only move your own pieces"},
	PieceDoesNotMoveLikeThat:      {"PieceDoesNotMoveLikeThat", "that piece does not move that way"},
	PromotionPieceNotSpecified:    {"PromotionPieceNotSpecified", "you must specify the promotion piece, e.g. e8=Q"},
	PromotionNotLegal:             {"PromotionNotLegal", "the pawn has to reach the back rank to promote"},
	PromotionWrongPiece:           {"PromotionWrongPiece", "you can't promote to a pawn or a king"},
	CastlingNoRights:              {"CastlingNoRights", "can't castle: no castling rights"},
	CastlingTilesInBetweenNotFree: {"CastlingTilesInBetweenNotFree", "can't castle: the squares in between are not free"},
	CastlingThroughCheck:          {"CastlingThroughCheck", "can't castle while in or through check"},
	InCheck:                       {"InCheck", "your king would be in check"},
}

// Error returns a message suitable for showing to the player.
func (e MoveError) Error() string {
	if t, ok := moveErrorText[e]; ok {
		return t.message
	}
	return "illegal move"
}

// Name returns the identifier of the error, e.g. "InCheck".
func (e MoveError) Name() string {
	if t, ok := moveErrorText[e]; ok {
		return t.name
	}
	return "Unknown"
}

// Is makes every MoveError match errors.ErrIllegalMove.
func (e MoveError) Is(target error) bool {
	return target == errors.ErrIllegalMove
}
