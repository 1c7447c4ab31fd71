package game_test

import (
	"testing"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
	"github.com/lgbarn/pgn-tree-go/internal/game"
	"github.com/lgbarn/pgn-tree-go/internal/testutil"
)

func TestResultRoundTrip(t *testing.T) {
	for _, text := range []string{"1-0", "0-1", "1/2-1/2", "*"} {
		r, ok := game.ParseResult(text)
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, r.String(), text)
	}
	if _, ok := game.ParseResult("2-0"); ok {
		t.Error("ParseResult accepted 2-0")
	}
}

func TestDateString(t *testing.T) {
	tests := []struct {
		date game.Date
		want string
	}{
		{game.Date{}, "????.??.??"},
		{game.Date{Year: 1972, Month: 7, Day: 11}, "1972.07.11"},
		{game.Date{Year: 1972}, "1972.??.??"},
		{game.Date{Year: 2001, Month: 12}, "2001.12.??"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, tt.date.String(), tt.want)
	}
}

func TestParseDateIsLenient(t *testing.T) {
	tests := []struct {
		text string
		want game.Date
	}{
		{"1972.07.11", game.Date{Year: 1972, Month: 7, Day: 11}},
		{"????.??.??", game.Date{}},
		{"1985.??.??", game.Date{Year: 1985}},
		{"1985", game.Date{Year: 1985}},
		{"19xx.01.01", game.Date{Month: 1, Day: 1}},
		{"", game.Date{}},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, game.ParseDate(tt.text), tt.want)
	}
}

func TestRoundString(t *testing.T) {
	var h game.Headers
	testutil.AssertEqual(t, h.RoundString(), "?")

	testutil.AssertNoError(t, h.SetRoundString("4.2"))
	testutil.AssertEqual(t, h.Round, 4)
	testutil.AssertEqual(t, h.SubRound, 2)
	testutil.AssertEqual(t, h.RoundString(), "4.2")

	testutil.AssertNoError(t, h.SetRoundString("4.2.1"))
	testutil.AssertEqual(t, h.SubRound, 2)
	testutil.AssertEqual(t, h.SubSubRound, 1)
	testutil.AssertEqual(t, h.RoundString(), "4.2.1")

	testutil.AssertNoError(t, h.SetRoundString("7"))
	testutil.AssertEqual(t, h.RoundString(), "7")
	testutil.AssertEqual(t, h.SubSubRound, 0)

	for _, unknown := range []string{"?", "-", ""} {
		testutil.AssertNoError(t, h.SetRoundString(unknown))
		testutil.AssertEqual(t, h.RoundString(), "?")
	}

	testutil.AssertErrorIs(t, h.SetRoundString("one"), errors.ErrIllegalArgument)
	testutil.AssertErrorIs(t, h.SetRoundString("4.x"), errors.ErrIllegalArgument)
	testutil.AssertErrorIs(t, h.SetRoundString("1.2.3.4"), errors.ErrIllegalArgument)
}
