// Package errors provides sentinel errors and error types for the pgn-tree
// module. It defines the failure conditions of the lexer, reader, and game
// tree as structured types that preserve context while allowing inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedToken indicates the lexer could not match any token
	// pattern at the current position.
	ErrMalformedToken = errors.New("malformed token")

	// ErrUnexpectedHeader indicates a header token after movetext began.
	ErrUnexpectedHeader = errors.New("unexpected header")

	// ErrUnexpectedBeginVariation indicates a '(' at the start of a fresh
	// variation, with nothing between the two openers.
	ErrUnexpectedBeginVariation = errors.New("unexpected begin of variation")

	// ErrUnexpectedEndVariation indicates a ')' with no open variation.
	ErrUnexpectedEndVariation = errors.New("unexpected end of variation")

	// ErrUnexpectedEndGame indicates an end-of-game marker while a
	// variation is still open.
	ErrUnexpectedEndGame = errors.New("unexpected end of game")

	// ErrUnexpectedEndText indicates the input ran out with a game in
	// progress.
	ErrUnexpectedEndText = errors.New("unexpected end of text")

	// ErrInvalidMove indicates the engine rejected a notated move.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidFEN indicates a malformed or illegal FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrVariantWithoutFEN indicates a Variant header without the FEN the
	// variant requires.
	ErrVariantWithoutFEN = errors.New("variant without FEN")

	// ErrIllegalArgument indicates an out-of-range index, malformed tag
	// key, malformed NAG value, or an operation on an empty variation.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrIndexOutOfRange indicates database access beyond the game count.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ParseError represents a lexical or grammatical error with its location in
// the input text. Offset is the byte offset of the offending text, Line is
// 1-based.
type ParseError struct {
	Err    error  // The underlying sentinel or engine error
	Text   string // The offending text, if any
	Offset int    // Byte offset in the input
	Line   int    // Line number (1-based)
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d, offset %d", e.Line, e.Offset))
	}
	if e.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Text))
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	if context != "" {
		return context
	}
	return "parse error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ParseError wrapper.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError builds a ParseError from a sentinel, offending text, and a
// location.
func NewParseError(err error, text string, offset, line int) *ParseError {
	return &ParseError{Err: err, Text: text, Offset: offset, Line: line}
}

// GameError wraps an error with the index of the game within a database.
type GameError struct {
	Err     error // The underlying error
	GameNum int   // 0-based game index in the database
}

// Error returns a formatted message including the game index.
func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("game %d: %v", e.GameNum, e.Err)
	}
	return fmt.Sprintf("game %d", e.GameNum)
}

// Unwrap returns the underlying error.
func (e *GameError) Unwrap() error {
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

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target's type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
