// Package engine provides the position collaborator consumed by the game
// tree and the PGN reader/writer: FEN encoding and decoding, SAN parsing
// and rendering, and move application.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// SANPieceLetter returns the SAN letter for a piece.
func SANPieceLetter(piece chess.Piece) byte {
	if c, ok := sanPieceChars[piece]; ok {
		return c
	}
	return '?'
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	piece := chess.ExtractPiece(colouredPiece)
	letter := SANPieceLetter(piece)
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// fenCharToPiece converts a FEN character to a piece type.
func fenCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// ParseFEN creates a board from a FEN string. In strict mode all six fields
// must be present and well-formed; in lenient mode missing trailing fields
// get their conventional defaults.
func ParseFEN(fen string, strict bool) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}
	if strict && len(parts) != 6 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "expected 6 fields, got %d", len(parts))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts, strict); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts, strict); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts, strict); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts, strict); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.Rank('8')
	col := chess.Col('a')

	for _, c := range positions {
		switch {
		case c == '/':
			if col != 'h'+1 {
				return errors.Wrapf(errors.ErrInvalidFEN, "short rank before %q", string(c))
			}
			rank--
			col = 'a'
		case c >= '1' && c <= '8':
			col += chess.Col(c - '0')
			if col > 'h'+1 {
				return errors.Wrap(errors.ErrInvalidFEN, "rank overflow")
			}
		default:
			piece := fenCharToPiece(byte(c))
			if piece == chess.Empty {
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character %q", string(c))
			}
			if col > 'h' || rank < '1' {
				return errors.Wrap(errors.ErrInvalidFEN, "position out of bounds")
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			board.Set(col, rank, chess.MakeColouredPiece(colour, piece))

			if piece == chess.King {
				if colour == chess.White {
					board.WKingCol, board.WKingRank = col, rank
				} else {
					board.BKingCol, board.BKingRank = col, rank
				}
			}
			col++
		}
	}
	if rank != '1' || col != 'h'+1 {
		return errors.Wrap(errors.ErrInvalidFEN, "incomplete piece placement")
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string, strict bool) error {
	if len(parts) < 2 {
		if strict {
			return errors.Wrap(errors.ErrInvalidFEN, "missing side to move")
		}
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move %q", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field, including
// X-FEN file letters for Chess960.
func parseCastlingRights(board *chess.Board, parts []string, strict bool) error {
	board.WKingCastle = 0
	board.WQueenCastle = 0
	board.BKingCastle = 0
	board.BQueenCastle = 0

	if len(parts) < 3 {
		if strict {
			return errors.Wrap(errors.ErrInvalidFEN, "missing castling field")
		}
		return nil
	}
	if parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.WKingCastle = 'h'
		case 'Q':
			board.WQueenCastle = 'a'
		case 'k':
			board.BKingCastle = 'h'
		case 'q':
			board.BQueenCastle = 'a'
		default:
			if !parseCastling960(board, c) {
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid castling character %q", string(c))
			}
		}
	}
	return nil
}

// parseCastling960 handles X-FEN castling notation: the file letter of the
// rook, uppercase for White.
func parseCastling960(board *chess.Board, c rune) bool {
	if c >= 'A' && c <= 'H' {
		col := chess.Col(unicode.ToLower(c))
		if col > board.WKingCol {
			board.WKingCastle = col
		} else {
			board.WQueenCastle = col
		}
		return true
	}
	if c >= 'a' && c <= 'h' {
		col := chess.Col(c)
		if col > board.BKingCol {
			board.BKingCastle = col
		} else {
			board.BQueenCastle = col
		}
		return true
	}
	return false
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string, strict bool) error {
	board.EnPassant = false
	if len(parts) < 4 {
		if strict {
			return errors.Wrap(errors.ErrInvalidFEN, "missing en passant field")
		}
		return nil
	}
	if parts[3] == "-" {
		return nil
	}
	if len(parts[3]) != 2 ||
		parts[3][0] < 'a' || parts[3][0] > 'h' ||
		(parts[3][1] != '3' && parts[3][1] != '6') {
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid en passant square %q", parts[3])
	}
	board.EnPassant = true
	board.EPCol = chess.Col(parts[3][0])
	board.EPRank = chess.Rank(parts[3][1])
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string, strict bool) error {
	if len(parts) >= 5 {
		if _, err := fmt.Sscanf(parts[4], "%d", &board.HalfmoveClock); err != nil {
			return errors.Wrapf(errors.ErrInvalidFEN, "invalid halfmove clock %q", parts[4])
		}
	} else if strict {
		return errors.Wrap(errors.ErrInvalidFEN, "missing halfmove clock")
	}
	if len(parts) >= 6 {
		if _, err := fmt.Sscanf(parts[5], "%d", &board.MoveNumber); err != nil || board.MoveNumber == 0 {
			return errors.Wrapf(errors.ErrInvalidFEN, "invalid fullmove number %q", parts[5])
		}
	} else if strict {
		return errors.Wrap(errors.ErrInvalidFEN, "missing fullmove number")
	}
	return nil
}

// FormatFEN converts a board to a FEN string, using X-FEN file letters for
// castling rights whenever the rook columns are not the standard a/h files.
func FormatFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		emptyCount := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling field, preferring KQkq letters
// for standard rook columns and X-FEN file letters otherwise.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	start := sb.Len()
	if board.WKingCastle != 0 {
		if board.WKingCastle == 'h' {
			sb.WriteByte('K')
		} else {
			sb.WriteByte(byte(unicode.ToUpper(rune(board.WKingCastle))))
		}
	}
	if board.WQueenCastle != 0 {
		if board.WQueenCastle == 'a' {
			sb.WriteByte('Q')
		} else {
			sb.WriteByte(byte(unicode.ToUpper(rune(board.WQueenCastle))))
		}
	}
	if board.BKingCastle != 0 {
		if board.BKingCastle == 'h' {
			sb.WriteByte('k')
		} else {
			sb.WriteByte(byte(board.BKingCastle))
		}
	}
	if board.BQueenCastle != 0 {
		if board.BQueenCastle == 'a' {
			sb.WriteByte('q')
		} else {
			sb.WriteByte(byte(board.BQueenCastle))
		}
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant field. Following X-FEN, the square
// is recorded only when a pawn of the side to move stands ready to capture
// on it; an idle double push renders as '-'.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if !board.EnPassant || !enPassantCapturable(board) {
		sb.WriteByte('-')
		return
	}
	sb.WriteByte(byte(board.EPCol))
	sb.WriteByte(byte(board.EPRank))
}

// enPassantCapturable reports whether a pawn of the side to move is placed
// next to the double-pushed pawn.
func enPassantCapturable(board *chess.Board) bool {
	rank := chess.Rank('4')
	if board.ToMove == chess.White {
		rank = '5'
	}
	pawn := chess.MakeColouredPiece(board.ToMove, chess.Pawn)
	return board.Get(board.EPCol-1, rank) == pawn ||
		board.Get(board.EPCol+1, rank) == pawn
}

// NewInitialBoard creates a board set up with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
