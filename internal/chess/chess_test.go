package chess

import "testing"

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite is not an involution")
	}
	if White.Letter() != 'w' || Black.Letter() != 'b' {
		t.Errorf("letters = %c %c", White.Letter(), Black.Letter())
	}
}

func TestColouredPieces(t *testing.T) {
	for _, piece := range []Piece{Pawn, Knight, Bishop, Rook, Queen, King} {
		for _, colour := range []Colour{White, Black} {
			cp := MakeColouredPiece(colour, piece)
			if ExtractPiece(cp) != piece {
				t.Errorf("ExtractPiece(%v) = %v, want %v", cp, ExtractPiece(cp), piece)
			}
			if ExtractColour(cp) != colour {
				t.Errorf("ExtractColour(%v) = %v, want %v", cp, ExtractColour(cp), colour)
			}
		}
	}
	if W(King) == B(King) {
		t.Error("white and black kings encode identically")
	}
}

func TestSetupInitialPosition(t *testing.T) {
	board := NewBoard()
	board.SetupInitialPosition()

	if got := board.Get('e', '1'); got != W(King) {
		t.Errorf("e1 = %v, want white king", got)
	}
	if got := board.Get('d', '8'); got != B(Queen) {
		t.Errorf("d8 = %v, want black queen", got)
	}
	for col := Col('a'); col <= 'h'; col++ {
		if board.Get(col, '2') != W(Pawn) || board.Get(col, '7') != B(Pawn) {
			t.Fatalf("pawn ranks not filled at file %c", col)
		}
		if board.Get(col, '4') != Empty {
			t.Fatalf("%c4 not empty", col)
		}
	}
	if board.WKingCastle != 'h' || board.WQueenCastle != 'a' {
		t.Error("white castling rooks not set")
	}
	if col, rank := board.KingSquare(Black); col != 'e' || rank != '8' {
		t.Errorf("black king at %c%c", col, rank)
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	board := NewBoard()
	board.SetupInitialPosition()
	clone := board.Copy()
	clone.Set('e', '2', Empty)
	clone.ToMove = Black
	if board.Get('e', '2') != W(Pawn) || board.ToMove != White {
		t.Error("mutating the copy changed the original")
	}
}

func TestMovePredicates(t *testing.T) {
	move := NewMove()
	move.Class = PawnMove
	if move.IsCapture() || move.IsPromotion() || move.IsCastle() || move.IsNull() {
		t.Error("fresh pawn move claims capture, promotion, castle, or null")
	}
	move.CapturedPiece = Knight
	if !move.IsCapture() {
		t.Error("capture not detected")
	}
	move.Class = EnPassantPawnMove
	if !move.IsEnPassant() {
		t.Error("en passant not detected")
	}
	move.Class = NullMove
	if !move.IsNull() {
		t.Error("null move not detected")
	}
}

func TestSevenTagRoster(t *testing.T) {
	for _, name := range SevenTagRoster {
		if !IsSevenTagRosterTag(name) {
			t.Errorf("%s not recognized as roster tag", name)
		}
	}
	if IsSevenTagRosterTag(TagECO) {
		t.Error("ECO wrongly in the roster")
	}
}
