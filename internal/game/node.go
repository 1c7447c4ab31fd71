package game

import (
	"github.com/lgbarn/pgn-tree-go/internal/chess"
)

// Node is a single played move in a game tree. It records the move, the
// full-move number and the colour that played it, and carries annotations
// and the alternative variations branching from the position before the
// move.
type Node struct {
	Annotations

	parent     *Variation
	next       *Node
	variations []*Variation

	move       *chess.Move
	moveNumber uint
	colour     chess.Colour
}

// Move returns the move descriptor. The caller must not modify it.
func (n *Node) Move() *chess.Move {
	return n.move
}

// MoveNumber returns the full-move number of the node's move.
func (n *Node) MoveNumber() uint {
	return n.moveNumber
}

// Colour returns the colour that is to move in the position before this
// node, which is the colour that played the node's move.
func (n *Node) Colour() chess.Colour {
	return n.colour
}

// Parent returns the variation the node belongs to.
func (n *Node) Parent() *Variation {
	return n.parent
}

// Next returns the following node in the same variation, or nil at the end
// of the line.
func (n *Node) Next() *Node {
	return n.next
}

// VariationCount returns the number of alternative variations branching
// from the position before this node.
func (n *Node) VariationCount() int {
	return len(n.variations)
}

// Variation returns the i-th alternative variation, or nil if the index is
// out of range.
func (n *Node) Variation(i int) *Variation {
	if i < 0 || i >= len(n.variations) {
		return nil
	}
	return n.variations[i]
}

// Variations returns the alternative variations in slot order. The returned
// slice is a copy.
func (n *Node) Variations() []*Variation {
	if len(n.variations) == 0 {
		return nil
	}
	return append([]*Variation(nil), n.variations...)
}

// game walks up to the owning game.
func (n *Node) game() *Game {
	return n.parent.game
}
