package pgn

import (
	"go.uber.org/zap"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
	"github.com/lgbarn/pgn-tree-go/internal/game"
)

// span is the byte range of one game in a database source, together with
// the 1-based line number it starts on.
type span struct {
	start int
	end   int
	line  int
}

// Database is a multi-game PGN source. Constructing one only scans the
// lexical structure to find game boundaries; each game is parsed into a
// tree on first access.
type Database struct {
	src   string
	spans []span
	log   *zap.Logger
}

// Option configures a Database.
type Option func(*Database)

// WithLogger attaches a logger used to report games skipped during
// iteration.
func WithLogger(log *zap.Logger) Option {
	return func(db *Database) {
		db.log = log
	}
}

// NewDatabase scans src for game boundaries. Games are not parsed; a
// database over a source with broken games is still constructed, and the
// errors surface when the broken games are accessed.
func NewDatabase(src string, opts ...Option) (*Database, error) {
	db := &Database{src: src, log: zap.NewNop()}
	for _, opt := range opts {
		opt(db)
	}
	lx := newLexer(src)
	for {
		lx.skipSpace()
		start, line := lx.pos, lx.line
		if !lx.skipGame() {
			break
		}
		db.spans = append(db.spans, span{start: start, end: lx.pos, line: line})
	}
	return db, nil
}

// Count returns the number of games in the database.
func (db *Database) Count() int {
	return len(db.spans)
}

// Source returns the raw text of game i.
func (db *Database) Source(i int) (string, error) {
	if i < 0 || i >= len(db.spans) {
		return "", errors.Wrapf(errors.ErrIndexOutOfRange, "game %d of %d", i, len(db.spans))
	}
	s := db.spans[i]
	return db.src[s.start:s.end], nil
}

// Game parses game i into a tree. Parsing happens on every call; games are
// never cached, so edits to a returned game do not leak into later reads.
// Errors are reported with the game's index and absolute source location.
func (db *Database) Game(i int) (*game.Game, error) {
	if i < 0 || i >= len(db.spans) {
		return nil, errors.Wrapf(errors.ErrIndexOutOfRange, "game %d of %d", i, len(db.spans))
	}
	s := db.spans[i]
	g, err := readGame(newLexerAt(db.src, s.start, s.end, s.line))
	if err != nil {
		return nil, &errors.GameError{Err: err, GameNum: i}
	}
	return g, nil
}

// Each calls fn for every game that parses, in order, skipping games that
// fail and logging each failure. Iteration stops early when fn returns
// false.
func (db *Database) Each(fn func(i int, g *game.Game) bool) {
	for i := range db.spans {
		g, err := db.Game(i)
		if err != nil {
			db.log.Warn("skipping unparsable game",
				zap.Int("game", i),
				zap.Error(err))
			continue
		}
		if !fn(i, g) {
			return
		}
	}
}
