package worker_test

import (
	"testing"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
	"github.com/lgbarn/pgn-tree-go/internal/pgn"
	"github.com/lgbarn/pgn-tree-go/internal/testutil"
	"github.com/lgbarn/pgn-tree-go/internal/worker"
)

const poolSource = `[Event "one"]

1. e4 e5 *

[Event "bad"]

1. Qd5 *

[Event "two"]

1. d4 d5 *
`

func TestParseAllKeepsGameOrder(t *testing.T) {
	db, err := pgn.NewDatabase(poolSource)
	testutil.AssertNoError(t, err)

	results := worker.ParseAll(db, 4)
	testutil.AssertEqual(t, len(results), 3)

	for i, r := range results {
		testutil.AssertEqual(t, r.Index, i)
	}
	testutil.AssertNoError(t, results[0].Err)
	testutil.AssertEqual(t, results[0].Game.Headers.Event, "one")
	testutil.AssertErrorIs(t, results[1].Err, errors.ErrInvalidMove)
	testutil.AssertNil(t, results[1].Game)
	testutil.AssertEqual(t, results[2].Game.Headers.Event, "two")
}

func TestParseAllSingleWorker(t *testing.T) {
	db, err := pgn.NewDatabase(poolSource)
	testutil.AssertNoError(t, err)

	results := worker.ParseAll(db, 1)
	testutil.AssertEqual(t, len(results), 3)
	testutil.AssertNoError(t, results[2].Err)
}

func TestPoolReportsEveryGameOnce(t *testing.T) {
	db, err := pgn.NewDatabase(poolSource)
	testutil.AssertNoError(t, err)

	p := worker.NewPool(db, worker.WithWorkers(2))
	p.Start()

	seen := make(map[int]int)
	for r := range p.Results() {
		seen[r.Index]++
	}
	testutil.AssertEqual(t, seen, map[int]int{0: 1, 1: 1, 2: 1})
}

func TestPoolOverEmptyDatabase(t *testing.T) {
	db, err := pgn.NewDatabase("")
	testutil.AssertNoError(t, err)

	results := worker.ParseAll(db, 2)
	testutil.AssertEqual(t, len(results), 0)
}
