package engine

import (
	"testing"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

func mustFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := ParseFEN(fen, false)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return board
}

func TestParseSANOpening(t *testing.T) {
	board := NewInitialBoard()
	for _, san := range []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "Ba4", "Nf6", "O-O"} {
		move, err := ParseSAN(board, san)
		if err != nil {
			t.Fatalf("ParseSAN(%q): %v", san, err)
		}
		if move.Text != san {
			t.Errorf("ParseSAN(%q).Text = %q", san, move.Text)
		}
		if err := Apply(board, move); err != nil {
			t.Fatalf("Apply(%q): %v", san, err)
		}
	}

	// After 5.O-O the white king and rook have swapped to g1/f1.
	if got := board.Get('g', '1'); got != chess.W(chess.King) {
		t.Errorf("g1 = %v, want white king", got)
	}
	if got := board.Get('f', '1'); got != chess.W(chess.Rook) {
		t.Errorf("f1 = %v, want white rook", got)
	}
	if board.ToMove != chess.Black || board.MoveNumber != 5 {
		t.Errorf("ToMove %v MoveNumber %d, want Black 5", board.ToMove, board.MoveNumber)
	}
	if board.WKingCastle != 0 || board.WQueenCastle != 0 {
		t.Error("white castling rights not cleared")
	}
}

func TestParseSANDoublePushSetsEnPassant(t *testing.T) {
	board := NewInitialBoard()
	move, err := ParseSAN(board, "e4")
	if err != nil {
		t.Fatalf("ParseSAN: %v", err)
	}
	if err := Apply(board, move); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !board.EnPassant || board.EPCol != 'e' || board.EPRank != '3' {
		t.Errorf("en passant state = %v %c%c, want e3",
			board.EnPassant, board.EPCol, board.EPRank)
	}
	// No black pawn stands next to e4, so the FEN field stays '-'.
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"
	if got := FormatFEN(board); got != want {
		t.Errorf("FormatFEN = %q, want %q", got, want)
	}

	// With a black pawn on d4 the square is recorded.
	board = mustFEN(t, "rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 2")
	move, err = ParseSAN(board, "e4")
	if err != nil {
		t.Fatalf("ParseSAN: %v", err)
	}
	if err := Apply(board, move); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want = "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2"
	if got := FormatFEN(board); got != want {
		t.Errorf("FormatFEN = %q, want %q", got, want)
	}
}

func TestParseSANCanonicalizes(t *testing.T) {
	tests := []struct {
		fen  string
		in   string
		want string
	}{
		// Redundant disambiguation is dropped.
		{InitialFEN, "Ngf3", "Nf3"},
		// A missing check mark is added.
		{"4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8=Q", "a8=Q+"},
	}
	for _, tt := range tests {
		board := mustFEN(t, tt.fen)
		move, err := ParseSAN(board, tt.in)
		if err != nil {
			t.Errorf("ParseSAN(%q): %v", tt.in, err)
			continue
		}
		if move.Text != tt.want {
			t.Errorf("ParseSAN(%q).Text = %q, want %q", tt.in, move.Text, tt.want)
		}
	}

	board := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	move, err := ParseSAN(board, "0-0-0")
	if err != nil {
		t.Fatalf("ParseSAN(0-0-0): %v", err)
	}
	if move.Text != "O-O-O" {
		t.Errorf("Text = %q, want O-O-O", move.Text)
	}
}

func TestParseSANDisambiguation(t *testing.T) {
	board := mustFEN(t, "4k3/8/8/8/8/2N1N3/8/4K3 w - - 0 1")

	if _, err := ParseSAN(board, "Nd5"); !errors.Is(err, errors.ErrInvalidMove) {
		t.Errorf("ambiguous Nd5 error = %v, want ErrInvalidMove", err)
	}

	move, err := ParseSAN(board, "Ncd5")
	if err != nil {
		t.Fatalf("ParseSAN(Ncd5): %v", err)
	}
	if move.Text != "Ncd5" || move.FromCol != 'c' || move.FromRank != '3' {
		t.Errorf("got Text %q from %c%c", move.Text, move.FromCol, move.FromRank)
	}
}

func TestParseSANEnPassant(t *testing.T) {
	board := mustFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	move, err := ParseSAN(board, "exd6")
	if err != nil {
		t.Fatalf("ParseSAN(exd6): %v", err)
	}
	if move.Class != chess.EnPassantPawnMove {
		t.Errorf("Class = %v, want EnPassantPawnMove", move.Class)
	}
	if err := Apply(board, move); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if board.Get('d', '5') != chess.Empty {
		t.Error("captured pawn still on d5")
	}
	if board.Get('d', '6') != chess.W(chess.Pawn) {
		t.Error("capturing pawn not on d6")
	}
}

func TestParseSANPromotionRequired(t *testing.T) {
	board := mustFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if _, err := ParseSAN(board, "a8"); !errors.Is(err, errors.ErrInvalidMove) {
		t.Errorf("promotion-less a8 error = %v, want ErrInvalidMove", err)
	}
	move, err := ParseSAN(board, "a8=N")
	if err != nil {
		t.Fatalf("ParseSAN(a8=N): %v", err)
	}
	if move.PromotedPiece != chess.Knight {
		t.Errorf("PromotedPiece = %v, want Knight", move.PromotedPiece)
	}
}

func TestParseSANRejectsIllegal(t *testing.T) {
	board := NewInitialBoard()
	for _, san := range []string{"e5", "Ke2", "Nf4", "O-O", "exd5", "xyzzy"} {
		if _, err := ParseSAN(board, san); !errors.Is(err, errors.ErrInvalidMove) {
			t.Errorf("ParseSAN(%q) error = %v, want ErrInvalidMove", san, err)
		}
	}
}

func TestParseSANPawnGeometry(t *testing.T) {
	// Fully specified notation must obey push geometry too.
	for _, san := range []string{"e2e5", "e2d3", "e2e1", "a2c2"} {
		board := NewInitialBoard()
		if _, err := ParseSAN(board, san); !errors.Is(err, errors.ErrInvalidMove) {
			t.Errorf("ParseSAN(%q) error = %v, want ErrInvalidMove", san, err)
		}
	}

	board := NewInitialBoard()
	move, err := ParseSAN(board, "e2e4")
	if err != nil {
		t.Fatalf("ParseSAN(e2e4): %v", err)
	}
	if move.FromRank != '2' || move.ToRank != '4' {
		t.Errorf("got %c%c-%c%c", move.FromCol, move.FromRank, move.ToCol, move.ToRank)
	}

	// A double push through an occupied square is rejected.
	blocked := mustFEN(t, "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
	if _, err := ParseSAN(blocked, "e2e4"); !errors.Is(err, errors.ErrInvalidMove) {
		t.Errorf("blocked e2e4 error = %v, want ErrInvalidMove", err)
	}

	// A double push from anywhere but the home rank is rejected.
	advanced := mustFEN(t, "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1")
	if _, err := ParseSAN(advanced, "e3e5"); !errors.Is(err, errors.ErrInvalidMove) {
		t.Errorf("e3e5 error = %v, want ErrInvalidMove", err)
	}
}

func TestParseSANNullMove(t *testing.T) {
	board := NewInitialBoard()
	for _, san := range []string{"--", "Z0"} {
		move, err := ParseSAN(board, san)
		if err != nil {
			t.Fatalf("ParseSAN(%q): %v", san, err)
		}
		if move.Class != chess.NullMove || move.Text != chess.NullMoveString {
			t.Errorf("got class %v text %q", move.Class, move.Text)
		}
	}
	move, _ := ParseSAN(board, "--")
	if err := Apply(board, move); err != nil {
		t.Fatalf("Apply null: %v", err)
	}
	if board.ToMove != chess.Black || board.MoveNumber != 1 {
		t.Errorf("after null: ToMove %v MoveNumber %d", board.ToMove, board.MoveNumber)
	}

	// A null move is not available while in check.
	checked := mustFEN(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if _, err := ParseSAN(checked, "--"); !errors.Is(err, errors.ErrInvalidMove) {
		t.Errorf("null in check error = %v, want ErrInvalidMove", err)
	}
}

func TestParseSANCheckmate(t *testing.T) {
	// Scholar's mate after 1.e4 e5 2.Qh5 Nc6 3.Bc4.
	board := mustFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 4 3")
	move, err := ParseSAN(board, "Nf6")
	if err != nil {
		t.Fatalf("ParseSAN(Nf6): %v", err)
	}
	if err := Apply(board, move); err != nil {
		t.Fatalf("Apply(Nf6): %v", err)
	}
	move, err = ParseSAN(board, "Qxf7")
	if err != nil {
		t.Fatalf("ParseSAN(Qxf7): %v", err)
	}
	if move.CheckStatus != chess.Checkmate {
		t.Errorf("CheckStatus = %v, want Checkmate", move.CheckStatus)
	}
	if move.Text != "Qxf7#" {
		t.Errorf("Text = %q, want Qxf7#", move.Text)
	}
}
