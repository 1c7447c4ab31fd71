package errors

import (
	"strings"
	"testing"
)

func TestParseErrorFormatAndUnwrap(t *testing.T) {
	err := NewParseError(ErrMalformedToken, "e9x", 42, 3)
	msg := err.Error()
	for _, want := range []string{"line 3", "offset 42", `"e9x"`, "malformed token"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
	if !Is(err, ErrMalformedToken) {
		t.Error("ParseError does not unwrap to its sentinel")
	}
}

func TestGameErrorUnwrap(t *testing.T) {
	inner := NewParseError(ErrInvalidMove, "Qd9", 7, 2)
	err := &GameError{Err: inner, GameNum: 4}
	if !strings.Contains(err.Error(), "game 4") {
		t.Errorf("Error() = %q, missing game index", err.Error())
	}
	if !Is(err, ErrInvalidMove) {
		t.Error("GameError does not unwrap through ParseError")
	}
	var parseErr *ParseError
	if !As(err, &parseErr) {
		t.Fatal("As failed to find the ParseError")
	}
	if parseErr.Offset != 7 || parseErr.Line != 2 {
		t.Errorf("location = offset %d line %d, want 7 and 2", parseErr.Offset, parseErr.Line)
	}
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrapf(ErrIllegalArgument, "slot %d", 9)
	if !Is(err, ErrIllegalArgument) {
		t.Error("Wrapf broke the error chain")
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) must be nil")
	}
}
