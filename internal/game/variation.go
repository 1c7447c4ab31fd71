package game

// Variation is a line of play: a chain of nodes starting from a fixed
// position. The main variation starts from the game's initial position;
// every other variation branches from the position before its parent
// node's move and represents an alternative to that move.
type Variation struct {
	Annotations

	game   *Game
	parent *Node // nil for the main variation
	first  *Node
	long   bool
}

// Parent returns the node this variation is an alternative to, or nil for
// the main variation.
func (v *Variation) Parent() *Node {
	return v.parent
}

// First returns the first node of the variation, or nil if it is empty.
func (v *Variation) First() *Node {
	return v.first
}

// Last returns the final node of the variation, or nil if it is empty.
func (v *Variation) Last() *Node {
	last := v.first
	if last == nil {
		return nil
	}
	for last.next != nil {
		last = last.next
	}
	return last
}

// IsEmpty reports whether the variation contains no moves.
func (v *Variation) IsEmpty() bool {
	return v.first == nil
}

// Length returns the number of nodes in the variation, not counting nested
// variations.
func (v *Variation) Length() int {
	length := 0
	for n := v.first; n != nil; n = n.next {
		length++
	}
	return length
}

// IsMain reports whether this is the game's main variation.
func (v *Variation) IsMain() bool {
	return v.parent == nil
}

// IsLong returns the variation's own long flag.
func (v *Variation) IsLong() bool {
	return v.long
}

// SetLong sets the variation's own long flag. Whether the variation is
// actually rendered long also depends on its ancestors; see EffectiveLong.
func (v *Variation) SetLong(long bool) {
	v.long = long
}

// EffectiveLong reports whether the variation renders as a long variation:
// its own flag and the flags of all enclosing variations must all be set.
// A long variation nested inside an inline one cannot break onto its own
// lines, so the flag only takes effect when the whole chain agrees.
func (v *Variation) EffectiveLong() bool {
	for cur := v; cur != nil; {
		if !cur.long {
			return false
		}
		if cur.parent == nil {
			return true
		}
		cur = cur.parent.parent
	}
	return true
}

// slot returns v's index in its parent node's variation list, or -1 for
// the main variation.
func (v *Variation) slot() int {
	if v.parent == nil {
		return -1
	}
	for i, sibling := range v.parent.variations {
		if sibling == v {
			return i
		}
	}
	return -1
}
