package game

import (
	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// newNode parses san against board and wraps the move in a node owned by v.
func newNode(v *Variation, board *chess.Board, san string) (*Node, error) {
	move, err := engine.ParseSAN(board, san)
	if err != nil {
		return nil, err
	}
	return &Node{
		parent:     v,
		move:       move,
		moveNumber: board.MoveNumber,
		colour:     board.ToMove,
	}, nil
}

// Play makes san the first move of the variation, discarding any moves the
// variation already contained.
func (v *Variation) Play(san string) (*Node, error) {
	board, err := v.StartBoard()
	if err != nil {
		return nil, err
	}
	node, err := newNode(v, board, san)
	if err != nil {
		return nil, err
	}
	v.first = node
	return node, nil
}

// Play makes san the continuation of the node, discarding any moves that
// previously followed it.
func (n *Node) Play(san string) (*Node, error) {
	board, err := n.BoardAfter()
	if err != nil {
		return nil, err
	}
	next, err := newNode(n.parent, board, san)
	if err != nil {
		return nil, err
	}
	n.next = next
	return next, nil
}

// AddVariation appends a new empty variation to the node's slot list and
// returns it. The variation starts from the position before the node's
// move; fill it with Play.
func (n *Node) AddVariation(long bool) *Variation {
	v := &Variation{game: n.game(), parent: n, long: long}
	n.variations = append(n.variations, v)
	return v
}

// RemoveVariation removes the variation at slot i.
func (n *Node) RemoveVariation(i int) error {
	if i < 0 || i >= len(n.variations) {
		return errors.Wrapf(errors.ErrIllegalArgument, "variation slot %d of %d", i, len(n.variations))
	}
	n.variations = append(n.variations[:i], n.variations[i+1:]...)
	return nil
}

// SwapVariations exchanges the variations at slots i and j.
func (n *Node) SwapVariations(i, j int) error {
	if i < 0 || i >= len(n.variations) {
		return errors.Wrapf(errors.ErrIllegalArgument, "variation slot %d of %d", i, len(n.variations))
	}
	if j < 0 || j >= len(n.variations) {
		return errors.Wrapf(errors.ErrIllegalArgument, "variation slot %d of %d", j, len(n.variations))
	}
	n.variations[i], n.variations[j] = n.variations[j], n.variations[i]
	return nil
}

// PromoteVariation exchanges the line at slot i with the rest of the
// node's own line: the variation's moves become the continuation of the
// parent line, and the node with its following moves becomes the content
// of the same slot. The two head nodes also exchange their slot lists, so
// promoting the same slot again restores the previous structure exactly.
//
// Promoting an empty variation is rejected, since the parent line would
// lose its moves without the slot gaining any.
func (n *Node) PromoteVariation(i int) error {
	if i < 0 || i >= len(n.variations) {
		return errors.Wrapf(errors.ErrIllegalArgument, "variation slot %d of %d", i, len(n.variations))
	}
	v := n.variations[i]
	if v.first == nil {
		return errors.Wrap(errors.ErrIllegalArgument, "cannot promote an empty variation")
	}

	parent := n.parent
	promoted := v.first

	// Splice the promoted chain into the parent line in place of n.
	if parent.first == n {
		parent.first = promoted
	} else {
		prev := parent.first
		for prev != nil && prev.next != n {
			prev = prev.next
		}
		if prev == nil {
			return errors.Wrap(errors.ErrIllegalArgument, "node is not in its variation")
		}
		prev.next = promoted
	}
	for cur := promoted; cur != nil; cur = cur.next {
		cur.parent = parent
	}

	// The demoted chain takes over the slot.
	v.first = n
	v.parent = promoted
	for cur := n; cur != nil; cur = cur.next {
		cur.parent = v
	}

	// The heads exchange slot lists; both start from the same position,
	// so every sibling stays a legal alternative.
	n.variations, promoted.variations = promoted.variations, n.variations
	for _, sibling := range promoted.variations {
		sibling.parent = promoted
	}
	for _, sibling := range n.variations {
		sibling.parent = n
	}
	return nil
}

// RemoveFollowingMoves drops every move after the node in its variation.
// The node itself and its variations are kept.
func (n *Node) RemoveFollowingMoves() {
	n.next = nil
}

// ClearMoves empties the variation, discarding its moves and everything
// nested under them.
func (v *Variation) ClearMoves() {
	v.first = nil
}
