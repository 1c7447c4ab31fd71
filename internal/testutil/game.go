package testutil

import (
	"testing"

	"github.com/lgbarn/pgn-tree-go/internal/game"
	"github.com/lgbarn/pgn-tree-go/internal/pgn"
)

// MustParseGame reads the first game from src and aborts the test if the
// source does not parse.
func MustParseGame(t *testing.T, src string) *game.Game {
	t.Helper()
	db, err := pgn.NewDatabase(src)
	if err != nil {
		t.Fatalf("failed to scan test games:\n%s\nerror: %v", src, err)
	}
	if db.Count() == 0 {
		t.Fatalf("no games in test source:\n%s", src)
	}
	g, err := db.Game(0)
	if err != nil {
		t.Fatalf("failed to parse test game:\n%s\nerror: %v", src, err)
	}
	return g
}

// MustParseGames reads every game from src and aborts the test on any
// parse failure.
func MustParseGames(t *testing.T, src string) []*game.Game {
	t.Helper()
	db, err := pgn.NewDatabase(src)
	if err != nil {
		t.Fatalf("failed to scan test games:\n%s\nerror: %v", src, err)
	}
	games := make([]*game.Game, 0, db.Count())
	for i := 0; i < db.Count(); i++ {
		g, err := db.Game(i)
		if err != nil {
			t.Fatalf("failed to parse game %d:\n%s\nerror: %v", i, src, err)
		}
		games = append(games, g)
	}
	return games
}

// MustPlay appends the given moves to a variation and aborts the test on
// an illegal move.
func MustPlay(t *testing.T, v *game.Variation, moves ...string) *game.Node {
	t.Helper()
	if len(moves) == 0 {
		t.Fatal("MustPlay called without moves")
	}
	node, err := v.Play(moves[0])
	if err != nil {
		t.Fatalf("playing %q: %v", moves[0], err)
	}
	for _, san := range moves[1:] {
		node, err = node.Play(san)
		if err != nil {
			t.Fatalf("playing %q: %v", san, err)
		}
	}
	return node
}
