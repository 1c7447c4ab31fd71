package engine

import (
	"testing"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name string
		want Variant
		ok   bool
	}{
		{"", Standard, true},
		{"Standard", Standard, true},
		{"chess960", Chess960, true},
		{"Fischerandom", Chess960, true},
		{"Antichess", Antichess, true},
		{"suicide", Antichess, true},
		{"HORDE", Horde, true},
		{"bughouse", Standard, false},
	}
	for _, tt := range tests {
		got, ok := ParseVariant(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseVariant(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStartingBoards(t *testing.T) {
	if got := FormatFEN(StartingBoard(Standard)); got != InitialFEN {
		t.Errorf("standard start = %q", got)
	}
	for _, v := range []Variant{Standard, Chess960, Antichess, Horde} {
		board := StartingBoard(v)
		if got := FormatFEN(board); got != StartFEN(v) {
			t.Errorf("%s: StartingBoard FEN %q != StartFEN %q", v, got, StartFEN(v))
		}
		if err := ValidateForVariant(board, v); err != nil {
			t.Errorf("%s: canonical start invalid: %v", v, err)
		}
	}
}

func TestValidateForVariant(t *testing.T) {
	kingless := mustFEN(t, "8/8/8/8/8/8/8/8 w - - 0 1")
	if err := ValidateForVariant(kingless, Standard); !errors.Is(err, errors.ErrInvalidFEN) {
		t.Errorf("kingless standard error = %v, want ErrInvalidFEN", err)
	}
	if err := ValidateForVariant(kingless, Antichess); err != nil {
		t.Errorf("kingless antichess error = %v, want nil", err)
	}

	pawnOnEighth := mustFEN(t, "P3k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err := ValidateForVariant(pawnOnEighth, Standard); !errors.Is(err, errors.ErrInvalidFEN) {
		t.Errorf("pawn on eighth error = %v, want ErrInvalidFEN", err)
	}

	// The side not to move may not be in check.
	impossible := mustFEN(t, "4k3/4R3/8/8/8/8/8/4K3 b - - 0 1")
	if err := ValidateForVariant(impossible, Standard); err != nil {
		t.Errorf("checked side to move should be fine: %v", err)
	}
	impossible.ToMove = impossible.ToMove.Opposite()
	if err := ValidateForVariant(impossible, Standard); !errors.Is(err, errors.ErrInvalidFEN) {
		t.Errorf("side not to move in check error = %v, want ErrInvalidFEN", err)
	}
}
