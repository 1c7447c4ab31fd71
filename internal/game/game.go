package game

import (
	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// Game is a complete game document: typed headers, an initial position
// with its variant, and a tree of moves rooted at the main variation.
type Game struct {
	Headers Headers

	variant engine.Variant
	initial *chess.Board
	main    *Variation
}

// NewGame creates an empty standard game starting from the canonical
// initial position.
func NewGame() *Game {
	return NewGameVariant(engine.Standard)
}

// NewGameVariant creates an empty game of the given variant, starting from
// the variant's canonical initial position.
func NewGameVariant(variant engine.Variant) *Game {
	g := &Game{
		variant: variant,
		initial: engine.StartingBoard(variant),
	}
	g.resetTree()
	return g
}

// resetTree discards all moves and installs a fresh main variation. The
// main variation is long so that nested long flags can take effect.
func (g *Game) resetTree() {
	g.main = &Variation{game: g, long: true}
}

// Variant returns the game's variant.
func (g *Game) Variant() engine.Variant {
	return g.variant
}

// MainVariation returns the game's main variation.
func (g *Game) MainVariation() *Variation {
	return g.main
}

// InitialBoard returns a copy of the initial position.
func (g *Game) InitialBoard() *chess.Board {
	return g.initial.Copy()
}

// InitialFEN returns the initial position in FEN form.
func (g *Game) InitialFEN() string {
	return engine.FormatFEN(g.initial)
}

// HasCanonicalStart reports whether the game starts from the variant's
// canonical initial position.
func (g *Game) HasCanonicalStart() bool {
	return engine.FormatFEN(g.initial) == engine.StartFEN(g.variant)
}

// SetInitialPosition replaces the initial position with a copy of board
// and discards the entire move tree. The position must be valid for the
// game's variant.
func (g *Game) SetInitialPosition(board *chess.Board) error {
	if err := engine.ValidateForVariant(board, g.variant); err != nil {
		return err
	}
	g.initial = board.Copy()
	g.resetTree()
	return nil
}

// SetInitialFEN parses fen strictly and installs it as the initial position,
// discarding the move tree.
func (g *Game) SetInitialFEN(fen string) error {
	board, err := engine.ParseFEN(fen, true)
	if err != nil {
		return err
	}
	return g.SetInitialPosition(board)
}

// SetVariant changes the game's variant, resets the initial position to
// the variant's canonical start, and discards the move tree.
func (g *Game) SetVariant(variant engine.Variant) {
	g.variant = variant
	g.initial = engine.StartingBoard(variant)
	g.resetTree()
}

// FinalBoard returns the position after the last move of the main
// variation.
func (g *Game) FinalBoard() (*chess.Board, error) {
	return g.main.FinalBoard()
}

// RemovePrecedingMoves makes node the first move of the main variation and
// turns the position before it into the game's new initial position. All
// earlier moves and the variations branching from them are discarded. The
// node must belong to the main variation.
func (g *Game) RemovePrecedingMoves(node *Node) error {
	if node == nil || node.parent != g.main {
		return errors.Wrap(errors.ErrIllegalArgument, "node is not in the main variation")
	}
	board, err := node.BoardBefore()
	if err != nil {
		return err
	}
	g.initial = board
	g.main.first = node
	return nil
}
