package pgn_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
	"github.com/lgbarn/pgn-tree-go/internal/game"
	"github.com/lgbarn/pgn-tree-go/internal/pgn"
	"github.com/lgbarn/pgn-tree-go/internal/testutil"
)

const twoGames = `[Event "one"]
[White "Adams"]

1. e4 e5 1-0

[Event "two"]
[White "Baker"]

1. d4 d5 0-1
`

func TestDatabaseSplitsGames(t *testing.T) {
	db, err := pgn.NewDatabase(twoGames)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, db.Count(), 2)

	first, err := db.Game(0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, first.Headers.White, "Adams")
	testutil.AssertEqual(t, first.Headers.Result, game.ResultWhiteWins)

	second, err := db.Game(1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, second.Headers.White, "Baker")
	testutil.AssertEqual(t, second.MainVariation().First().Move().Text, "d4")
}

func TestDatabaseSplitsGamesWithoutEndMarkers(t *testing.T) {
	// A header block after movetext still starts a new span; the
	// truncated first game then fails on access while the second stays
	// readable.
	db, err := pgn.NewDatabase("[Event \"one\"]\n1. e4 e5\n[Event \"two\"]\n1. d4 *\n")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, db.Count(), 2)

	_, err = db.Game(0)
	testutil.AssertErrorIs(t, err, errors.ErrUnexpectedEndText)

	g, err := db.Game(1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Headers.Event, "two")
}

func TestDatabaseBounds(t *testing.T) {
	db, err := pgn.NewDatabase(twoGames)
	testutil.AssertNoError(t, err)

	_, err = db.Game(2)
	testutil.AssertErrorIs(t, err, errors.ErrIndexOutOfRange)
	_, err = db.Game(-1)
	testutil.AssertErrorIs(t, err, errors.ErrIndexOutOfRange)
	_, err = db.Source(2)
	testutil.AssertErrorIs(t, err, errors.ErrIndexOutOfRange)
}

func TestDatabaseSource(t *testing.T) {
	db, err := pgn.NewDatabase(twoGames)
	testutil.AssertNoError(t, err)

	src, err := db.Source(1)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, src, "[Event \"two\"]")
	testutil.AssertContains(t, src, "1. d4 d5 0-1")
}

func TestDatabaseParsesLazily(t *testing.T) {
	// The middle game is broken; scanning still succeeds and the error
	// surfaces only when that game is accessed.
	src := "[Event \"one\"]\n\n1. e4 *\n\n[Event \"bad\"]\n\n1. Qd5 *\n\n[Event \"two\"]\n\n1. d4 *\n"
	db, err := pgn.NewDatabase(src)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, db.Count(), 3)

	_, err = db.Game(0)
	testutil.AssertNoError(t, err)
	_, err = db.Game(2)
	testutil.AssertNoError(t, err)

	_, err = db.Game(1)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)

	var gameErr *errors.GameError
	if !errors.As(err, &gameErr) {
		t.Fatalf("got %T, want *GameError", err)
	}
	testutil.AssertEqual(t, gameErr.GameNum, 1)

	// Locations inside a later game are absolute in the source.
	var parseErr *errors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v, want a wrapped *ParseError", err)
	}
	testutil.AssertEqual(t, parseErr.Text, "Qd5")
	testutil.AssertEqual(t, parseErr.Line, 7)
}

func TestDatabaseGameReturnsFreshTrees(t *testing.T) {
	db, err := pgn.NewDatabase(twoGames)
	testutil.AssertNoError(t, err)

	g, err := db.Game(0)
	testutil.AssertNoError(t, err)
	g.MainVariation().ClearMoves()

	again, err := db.Game(0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, again.MainVariation().Length(), 2)
}

func TestDatabaseEachSkipsBrokenGames(t *testing.T) {
	src := "[Event \"one\"]\n\n1. e4 *\n\n[Event \"bad\"]\n\n1. Qd5 *\n\n[Event \"two\"]\n\n1. d4 *\n"
	db, err := pgn.NewDatabase(src, pgn.WithLogger(zap.NewNop()))
	testutil.AssertNoError(t, err)

	var events []string
	db.Each(func(i int, g *game.Game) bool {
		events = append(events, g.Headers.Event)
		return true
	})
	testutil.AssertEqual(t, events, []string{"one", "two"})
}

func TestDatabaseEachStopsEarly(t *testing.T) {
	db, err := pgn.NewDatabase(twoGames)
	testutil.AssertNoError(t, err)

	calls := 0
	db.Each(func(i int, g *game.Game) bool {
		calls++
		return false
	})
	testutil.AssertEqual(t, calls, 1)
}

func TestDatabaseEmptySource(t *testing.T) {
	db, err := pgn.NewDatabase("\n\n% nothing here\n")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, db.Count(), 0)
}
