package parser

import "github.com/lgbarn/chess-rules-go/internal/errors"

// MoveParseError is the reason move text could not be turned into a move.
// Every value matches errors.ErrParseFailure with errors.Is.
type MoveParseError int

const (
	// Ambiguous means more than one piece of the given kind can make the move.
	Ambiguous MoveParseError = iota + 1
	// NoPiece means no piece of the given kind can make the move.
	NoPiece
	// NoDestination means the destination square is incomplete.
	NoDestination
	// CantParse means the text matches no notation form.
	CantParse
)

var parseErrorText = map[MoveParseError]struct{ name, message string }{
	Ambiguous:     {"Ambiguous", "move is ambiguous: more than one of that piece type can move there, specify the file and/or rank of the piece"},
	NoPiece:       {"NoPiece", "no piece of that type can make that move"},
	NoDestination: {"NoDestination", "destination square is incomplete"},
	CantParse:     {"CantParse", "move could not be parsed"},
}

// Error returns a message suitable for showing to the player.
func (e MoveParseError) Error() string {
	if t, ok := parseErrorText[e]; ok {
		return t.message
	}
	return "move could not be parsed"
}

// Name returns the identifier of the error, e.g. "Ambiguous".
func (e MoveParseError) Name() string {
	if t, ok := parseErrorText[e]; ok {
		return t.name
	}
	return "Unknown"
}

// Is makes every MoveParseError match errors.ErrParseFailure.
func (e MoveParseError) Is(target error) bool {
	return target == errors.ErrParseFailure
}
