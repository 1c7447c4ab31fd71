package chess

// Move is a validated move descriptor. It records everything needed to
// re-apply the move to the position it was validated against; it carries
// no tree structure and no annotations.
type Move struct {
	// The move text as given in the source (e.g., "Nf3", "e4", "O-O").
	Text string

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// Source square.
	FromCol  Col
	FromRank Rank

	// Destination square.
	ToCol  Col
	ToRank Rank

	// The piece being moved.
	PieceToMove Piece

	// The piece captured (Empty if no capture).
	CapturedPiece Piece

	// The piece promoted to (Empty if not a promotion).
	PromotedPiece Piece

	// Rook source and destination columns, filled in for castling moves.
	RookFromCol Col
	RookToCol   Col

	// Whether this move gives check or checkmate.
	CheckStatus CheckStatus
}

// NewMove creates a new empty move.
func NewMove() *Move {
	return &Move{
		CapturedPiece: Empty,
		PromotedPiece: Empty,
		CheckStatus:   NoCheck,
	}
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return m.CapturedPiece != Empty || m.Class == EnPassantPawnMove
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// IsEnPassant returns true if this move is an en passant capture.
func (m *Move) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsNull returns true if this is a null move.
func (m *Move) IsNull() bool {
	return m.Class == NullMove
}

// Copy returns an independent copy of the move.
func (m *Move) Copy() *Move {
	c := *m
	return &c
}
