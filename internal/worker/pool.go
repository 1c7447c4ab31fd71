// Package worker parses the games of a database concurrently. Parsing a
// game tree is independent per game, so a database scan fans out across a
// fixed set of workers.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/pgn-tree-go/internal/game"
	"github.com/lgbarn/pgn-tree-go/internal/pgn"
)

// Result is the outcome of parsing one game of a database.
type Result struct {
	Index int
	Game  *game.Game
	Err   error
}

// Pool parses games from a database across a fixed number of workers.
type Pool struct {
	workers  int
	work     chan int
	results  chan Result
	db       *pgn.Database
	wg       sync.WaitGroup
	stopFlag int32
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// NewPool creates a pool over db. The default is a single worker.
func NewPool(db *pgn.Database, opts ...Option) *Pool {
	p := &Pool{workers: 1, db: db}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan int, p.workers)
	p.results = make(chan Result, p.workers)
	return p
}

// Start launches the workers and begins feeding them every game index.
// The results channel is closed once all games are done or the pool is
// stopped.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	go func() {
		for i := 0; i < p.db.Count(); i++ {
			if p.stopped() {
				break
			}
			p.work <- i
		}
		close(p.work)
		p.wg.Wait()
		close(p.results)
	}()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for i := range p.work {
		if p.stopped() {
			continue
		}
		g, err := p.db.Game(i)
		p.results <- Result{Index: i, Game: g, Err: err}
	}
}

// Stop makes the workers drain their queue without parsing further games.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

func (p *Pool) stopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Results returns the channel of per-game outcomes. Order follows worker
// completion, not game order; use Result.Index to correlate.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// ParseAll parses every game of db across the given number of workers and
// returns the outcomes in game order.
func ParseAll(db *pgn.Database, workers int) []Result {
	p := NewPool(db, WithWorkers(workers))
	p.Start()
	results := make([]Result, db.Count())
	for r := range p.Results() {
		results[r.Index] = r
	}
	return results
}
