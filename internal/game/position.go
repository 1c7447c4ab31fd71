package game

import (
	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// Positions are never cached on the tree. Every query replays the stored
// moves from the nearest anchor (the game's initial position) down to the
// requested point and returns a fresh copy, so edits can never leave a
// stale position behind.

// hop is one replay step: play v's moves from the start up to, but not
// including, until. A nil until plays the whole variation.
type hop struct {
	v     *Variation
	until *Node
}

// replayHops plays the hops outermost-first on a copy of the game's
// initial position. Hops are ordered innermost first, as pathTo builds
// them.
func replayHops(game *Game, hops []hop) (*chess.Board, error) {
	board := game.initial.Copy()
	for i := len(hops) - 1; i >= 0; i-- {
		h := hops[i]
		for n := h.v.first; n != h.until; n = n.next {
			if n == nil {
				return nil, errors.Wrap(errors.ErrIllegalArgument, "node is not in its variation")
			}
			if err := engine.Apply(board, n.move); err != nil {
				return nil, err
			}
		}
	}
	return board, nil
}

// pathTo collects the replay hops leading to the start of v, innermost
// first.
func pathTo(v *Variation) ([]hop, *Game) {
	var hops []hop
	cur := v
	for cur.parent != nil {
		branch := cur.parent
		hops = append(hops, hop{v: branch.parent, until: branch})
		cur = branch.parent
	}
	return hops, cur.game
}

// StartBoard returns a copy of the position at the start of the variation,
// before its first move.
func (v *Variation) StartBoard() (*chess.Board, error) {
	hops, game := pathTo(v)
	return replayHops(game, hops)
}

// FinalBoard returns a copy of the position after the variation's last
// move. For an empty variation it equals the start position.
func (v *Variation) FinalBoard() (*chess.Board, error) {
	hops, game := pathTo(v)
	hops = append([]hop{{v: v, until: nil}}, hops...)
	return replayHops(game, hops)
}

// BoardBefore returns a copy of the position before the node's move.
func (n *Node) BoardBefore() (*chess.Board, error) {
	hops, game := pathTo(n.parent)
	hops = append([]hop{{v: n.parent, until: n}}, hops...)
	return replayHops(game, hops)
}

// BoardAfter returns a copy of the position after the node's move.
func (n *Node) BoardAfter() (*chess.Board, error) {
	board, err := n.BoardBefore()
	if err != nil {
		return nil, err
	}
	if err := engine.Apply(board, n.move); err != nil {
		return nil, err
	}
	return board, nil
}
