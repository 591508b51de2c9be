// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrParseFailure indicates move text that could not be turned into a move.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrNotYourTurn indicates a move submitted by the side not to move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrTooManyGames indicates the game service is at its game limit.
	ErrTooManyGames = errors.New("too many games")
)

// GameError wraps errors with game context: the game id or batch line,
// the ply position, and the move text. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Game identifier (if known)
	PlyNum   int    // 1-based ply where the error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	Source   string // Input file name (if known)
	Line     int    // Line number in the input file (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.Source != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.Source, e.Line))
		} else {
			parts = append(parts, e.Source)
		}
	}

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to parse text input (FEN fields,
// configuration values) with the position of the offending part.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Field    int    // 1-based field or column number (0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Field > 0 {
			loc += fmt.Sprintf(" field %d", e.Field)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
