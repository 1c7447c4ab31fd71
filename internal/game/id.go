package game

import (
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
)

// IDs are derived from tree structure, never stored. A node's ID is its
// enclosing variation's prefix followed by its full-move number and the
// letter of the colour that moved, e.g. "1w", "12b", or "3b-v0-4w" for a
// node inside the first variation attached to node "3b". A variation's ID
// is its prefix followed by "start"; the main variation is just "start".
//
// Because IDs are derived, they survive edits that do not move the entity
// and change consistently when slots are reordered.

const variationStartID = "start"

// idPrefix returns the prefix shared by the variation's own ID and the IDs
// of the nodes it contains.
func (v *Variation) idPrefix() string {
	if v.parent == nil {
		return ""
	}
	return v.parent.ID() + "-v" + strconv.Itoa(v.slot()) + "-"
}

// ID returns the variation's derived ID.
func (v *Variation) ID() string {
	return v.idPrefix() + variationStartID
}

// ID returns the node's derived ID.
func (n *Node) ID() string {
	return n.parent.idPrefix() +
		strconv.FormatUint(uint64(n.moveNumber), 10) +
		string(n.colour.Letter())
}

// parseNodeSegment splits a node ID segment such as "12b" into its move
// number and colour.
func parseNodeSegment(seg string) (uint, chess.Colour, bool) {
	if len(seg) < 2 {
		return 0, 0, false
	}
	var colour chess.Colour
	switch seg[len(seg)-1] {
	case 'w':
		colour = chess.White
	case 'b':
		colour = chess.Black
	default:
		return 0, 0, false
	}
	num, err := strconv.ParseUint(seg[:len(seg)-1], 10, 32)
	if err != nil || num == 0 {
		return 0, 0, false
	}
	return uint(num), colour, true
}

// resolveID walks the tree along the segments of id. Exactly one of the
// returned node and variation is non-nil on success.
func (g *Game) resolveID(id string) (*Node, *Variation, bool) {
	if id == "" {
		return nil, nil, false
	}
	segments := strings.Split(id, "-")
	variation := g.main
	var node *Node
	for i, seg := range segments {
		last := i == len(segments)-1
		switch {
		case seg == variationStartID:
			if !last || node != nil {
				return nil, nil, false
			}
			return nil, variation, true
		case node != nil:
			// After a node segment only "start" or a slot segment
			// may follow.
			if len(seg) < 2 || seg[0] != 'v' {
				return nil, nil, false
			}
			slot, err := strconv.Atoi(seg[1:])
			if err != nil || slot < 0 || slot >= len(node.variations) {
				return nil, nil, false
			}
			variation = node.variations[slot]
			node = nil
		default:
			num, colour, ok := parseNodeSegment(seg)
			if !ok {
				return nil, nil, false
			}
			for cand := variation.first; cand != nil; cand = cand.next {
				if cand.moveNumber == num && cand.colour == colour {
					node = cand
					break
				}
			}
			if node == nil {
				return nil, nil, false
			}
			if last {
				return node, nil, true
			}
		}
	}
	return nil, nil, false
}

// FindNodeByID locates a node by its derived ID.
func (g *Game) FindNodeByID(id string) (*Node, bool) {
	node, _, ok := g.resolveID(id)
	if !ok || node == nil {
		return nil, false
	}
	return node, true
}

// FindVariationByID locates a variation by its derived ID.
func (g *Game) FindVariationByID(id string) (*Variation, bool) {
	_, variation, ok := g.resolveID(id)
	if !ok || variation == nil {
		return nil, false
	}
	return variation, true
}
