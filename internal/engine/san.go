package engine

import (
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return c >= chess.FirstCol && c <= chess.LastCol
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= chess.FirstRank && c <= chess.LastRank
}

// pieceLetter returns the piece named by a leading SAN letter.
func pieceLetter(c byte) chess.Piece {
	switch c {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'N':
		return chess.Knight
	case 'B':
		return chess.Bishop
	default:
		return chess.Empty
	}
}

// isCaptureChar returns true if c is a capture or separator character.
func isCaptureChar(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheckChar returns true if c is a check indicator.
func isCheckChar(c byte) bool {
	return c == '+' || c == '#'
}

// decodeSAN parses a move string into an unresolved descriptor: squares
// that the notation leaves implicit remain zero. The class is UnknownMove
// when the text matches no recognized pattern.
func decodeSAN(text string) *chess.Move {
	move := chess.NewMove()
	move.Text = text

	var fromRank, toRank chess.Rank
	var fromCol, toCol chess.Col
	class := chess.UnknownMove
	pieceToMove := chess.Empty
	promotedPiece := chess.Empty
	ok := true

	pos := 0
	cur := func() byte {
		if pos >= len(text) {
			return 0
		}
		return text[pos]
	}
	advance := func() {
		if pos < len(text) {
			pos++
		}
	}

	switch {
	case isCol(cur()):
		// Pawn move: e4, exd5, e2e4, e8=Q
		class = chess.PawnMove
		pieceToMove = chess.Pawn
		col := chess.Col(cur())
		advance()

		if isRank(cur()) {
			rank := chess.Rank(cur())
			advance()
			if isCaptureChar(cur()) {
				advance()
			}
			if isCol(cur()) {
				// Fully specified: e2e4, e4xd5
				fromCol, fromRank = col, rank
				toCol = chess.Col(cur())
				advance()
				if isRank(cur()) {
					toRank = chess.Rank(cur())
					advance()
				} else {
					ok = false
				}
			} else {
				toCol, toRank = col, rank
			}
		} else {
			if isCaptureChar(cur()) {
				advance()
			}
			if isCol(cur()) {
				// exd5 or the abbreviated ed
				fromCol = col
				toCol = chess.Col(cur())
				advance()
				if isRank(cur()) {
					toRank = chess.Rank(cur())
					advance()
				}
				if fromCol != chess.Col(byte(toCol)+1) && fromCol != chess.Col(byte(toCol)-1) {
					ok = false
				}
			} else {
				ok = false
			}
		}

		if ok {
			if cur() == '=' {
				advance()
			}
			if piece := pieceLetter(cur()); piece != chess.Empty {
				class = chess.PawnMoveWithPromotion
				promotedPiece = piece
				advance()
			}
		}

	case pieceLetter(cur()) != chess.Empty:
		class = chess.PieceMove
		pieceToMove = pieceLetter(cur())
		advance()

		if isRank(cur()) {
			// Disambiguating rank: R1e1, R1xe3
			fromRank = chess.Rank(cur())
			advance()
			if isCaptureChar(cur()) {
				advance()
			}
			if isCol(cur()) {
				toCol = chess.Col(cur())
				advance()
				if isRank(cur()) {
					toRank = chess.Rank(cur())
					advance()
				} else {
					ok = false
				}
			} else {
				ok = false
			}
		} else if isCaptureChar(cur()) {
			// Rxe1
			advance()
			if isCol(cur()) {
				toCol = chess.Col(cur())
				advance()
				if isRank(cur()) {
					toRank = chess.Rank(cur())
					advance()
				} else {
					ok = false
				}
			} else {
				ok = false
			}
		} else if isCol(cur()) {
			col := chess.Col(cur())
			advance()
			if isCaptureChar(cur()) {
				advance()
			}
			if isRank(cur()) {
				rank := chess.Rank(cur())
				advance()
				if isCaptureChar(cur()) {
					advance()
				}
				if isCol(cur()) {
					// Fully specified: Re1d1
					fromCol, fromRank = col, rank
					toCol = chess.Col(cur())
					advance()
					if isRank(cur()) {
						toRank = chess.Rank(cur())
						advance()
					} else {
						ok = false
					}
				} else {
					toCol, toRank = col, rank
				}
			} else if isCol(cur()) {
				// Disambiguating file: Rae1
				fromCol = col
				toCol = chess.Col(cur())
				advance()
				if isRank(cur()) {
					toRank = chess.Rank(cur())
					advance()
				} else {
					ok = false
				}
			} else {
				ok = false
			}
		} else {
			ok = false
		}

	case isCastlingChar(cur()):
		advance()
		if cur() == '-' {
			advance()
		}
		if isCastlingChar(cur()) {
			advance()
			if cur() == '-' {
				advance()
			}
			if isCastlingChar(cur()) {
				class = chess.QueensideCastle
				advance()
			} else {
				class = chess.KingsideCastle
			}
			pieceToMove = chess.King
		} else {
			ok = false
		}

	case text == chess.NullMoveString || text == "Z0":
		class = chess.NullMove

	default:
		ok = false
	}

	if ok && class != chess.NullMove {
		for isCheckChar(cur()) {
			advance()
		}
		rest := text[pos:]
		switch {
		case rest == "":
		case (rest == "ep" || rest == "e.p.") && class == chess.PawnMove:
			class = chess.EnPassantPawnMove
		default:
			ok = false
		}
	}

	if !ok {
		class = chess.UnknownMove
	}

	move.Class = class
	move.PieceToMove = pieceToMove
	move.PromotedPiece = promotedPiece
	move.FromCol = fromCol
	move.FromRank = fromRank
	move.ToCol = toCol
	move.ToRank = toRank
	return move
}

// ParseSAN validates a SAN string against the board and returns a fully
// resolved move descriptor; the board is not modified. The descriptor's
// Text is the canonical SAN rendering, which may differ from the input in
// redundant disambiguation or missing check marks.
func ParseSAN(board *chess.Board, text string) (*chess.Move, error) {
	move := decodeSAN(text)
	if move.Class == chess.UnknownMove {
		return nil, errors.Wrapf(errors.ErrInvalidMove, "unrecognized notation %q", text)
	}

	var err error
	switch move.Class {
	case chess.NullMove:
		if !NullMoveLegal(board) {
			return nil, errors.Wrapf(errors.ErrInvalidMove, "null move while in check")
		}
		move.Text = chess.NullMoveString
		return move, nil
	case chess.KingsideCastle, chess.QueensideCastle:
		err = resolveCastle(board, move)
	case chess.PawnMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		err = resolvePawn(board, move)
	case chess.PieceMove:
		err = resolvePiece(board, move)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%q", text)
	}

	move.CheckStatus = checkStatusAfter(board, move)
	move.Text = SAN(board, move)
	return move, nil
}

// checkStatusAfter applies the move to a copy and classifies the resulting
// check state for the opponent.
func checkStatusAfter(board *chess.Board, move *chess.Move) chess.CheckStatus {
	after := board.Copy()
	if Apply(after, move) != nil {
		return chess.NoCheck
	}
	if !IsInCheck(after, after.ToMove) {
		return chess.NoCheck
	}
	if !HasLegalMoves(after, after.ToMove) {
		return chess.Checkmate
	}
	return chess.Check
}

// resolveCastle fills in the king and rook squares for a castling move and
// verifies the castling is legal from this position.
func resolveCastle(board *chess.Board, move *chess.Move) error {
	colour := board.ToMove
	var rank chess.Rank
	var kingFromCol, rookFromCol, kingToCol, rookToCol chess.Col

	kingside := move.Class == chess.KingsideCastle
	if colour == chess.White {
		rank = '1'
		kingFromCol = board.WKingCol
		if kingside {
			rookFromCol = board.WKingCastle
		} else {
			rookFromCol = board.WQueenCastle
		}
	} else {
		rank = '8'
		kingFromCol = board.BKingCol
		if kingside {
			rookFromCol = board.BKingCastle
		} else {
			rookFromCol = board.BQueenCastle
		}
	}
	if kingside {
		kingToCol, rookToCol = 'g', 'f'
	} else {
		kingToCol, rookToCol = 'c', 'd'
	}

	if rookFromCol == 0 {
		return errors.Wrap(errors.ErrInvalidMove, "castling right lost")
	}
	if IsInCheck(board, colour) {
		return errors.Wrap(errors.ErrInvalidMove, "cannot castle out of check")
	}
	if err := checkCastlePath(board, colour, rank, kingFromCol, kingToCol, rookFromCol, rookToCol); err != nil {
		return err
	}

	move.FromCol = kingFromCol
	move.FromRank = rank
	move.ToCol = kingToCol
	move.ToRank = rank
	move.RookFromCol = rookFromCol
	move.RookToCol = rookToCol
	move.PieceToMove = chess.King
	return nil
}

// checkCastlePath verifies that the king and rook destinations are free
// (squares vacated by the two castling pieces count as free, which matters
// for Chess960) and that the king never crosses an attacked square.
func checkCastlePath(board *chess.Board, colour chess.Colour, rank chess.Rank, kingFrom, kingTo, rookFrom, rookTo chess.Col) error {
	free := func(col chess.Col) bool {
		if col == kingFrom || col == rookFrom {
			return true
		}
		return board.Get(col, rank) == chess.Empty
	}

	for col := minCol(kingFrom, kingTo); col <= maxCol(kingFrom, kingTo); col++ {
		if !free(col) {
			return errors.Wrap(errors.ErrInvalidMove, "castling path blocked")
		}
		if isSquareAttacked(board, col, rank, colour.Opposite()) {
			return errors.Wrap(errors.ErrInvalidMove, "castling through check")
		}
	}
	for col := minCol(rookFrom, rookTo); col <= maxCol(rookFrom, rookTo); col++ {
		if !free(col) {
			return errors.Wrap(errors.ErrInvalidMove, "castling path blocked")
		}
	}
	return nil
}

func minCol(a, b chess.Col) chess.Col {
	if a < b {
		return a
	}
	return b
}

func maxCol(a, b chess.Col) chess.Col {
	if a > b {
		return a
	}
	return b
}

// resolvePawn finds the source square of a pawn move and classifies en
// passant captures and promotions.
func resolvePawn(board *chess.Board, move *chess.Move) error {
	colour := board.ToMove
	pawn := chess.MakeColouredPiece(colour, chess.Pawn)
	direction := chess.ColourOffset(colour)

	if move.ToRank == 0 {
		// Abbreviated capture like "ed": the rank comes from the en
		// passant square or the unique capture available.
		return errors.Wrap(errors.ErrInvalidMove, "destination rank missing")
	}

	if move.FromRank == 0 {
		fromRank := chess.Rank(int(move.ToRank) - direction)
		if move.FromCol != 0 {
			// Capture: source file was given.
			if board.Get(move.FromCol, fromRank) != pawn {
				return errors.Wrap(errors.ErrInvalidMove, "no pawn to capture with")
			}
			move.FromRank = fromRank
		} else {
			// Push: same file, one or two ranks back.
			if board.Get(move.ToCol, fromRank) == pawn {
				move.FromCol = move.ToCol
				move.FromRank = fromRank
			} else if (colour == chess.White && move.ToRank == '4') ||
				(colour == chess.Black && move.ToRank == '5') {
				fromRank2 := chess.Rank(int(move.ToRank) - 2*direction)
				if board.Get(move.ToCol, fromRank2) == pawn &&
					board.Get(move.ToCol, fromRank) == chess.Empty {
					move.FromCol = move.ToCol
					move.FromRank = fromRank2
				}
			}
			if move.FromRank == 0 {
				return errors.Wrap(errors.ErrInvalidMove, "no pawn can reach the square")
			}
		}
	} else if board.Get(move.FromCol, move.FromRank) != pawn {
		return errors.Wrap(errors.ErrInvalidMove, "no pawn on the source square")
	}

	// The source is settled; check the step itself. Fully specified
	// notation like e2e5 must not bypass push geometry.
	colDiff := int(move.ToCol) - int(move.FromCol)
	if colDiff < 0 {
		colDiff = -colDiff
	}
	rankDiff := int(move.ToRank) - int(move.FromRank)
	switch {
	case colDiff == 0:
		if rankDiff != direction {
			homeRank := chess.Rank('2')
			if colour == chess.Black {
				homeRank = '7'
			}
			mid := chess.Rank(int(move.FromRank) + direction)
			if rankDiff != 2*direction || move.FromRank != homeRank ||
				board.Get(move.FromCol, mid) != chess.Empty {
				return errors.Wrap(errors.ErrInvalidMove, "pawn cannot reach the square")
			}
		}
	case colDiff == 1:
		if rankDiff != direction {
			return errors.Wrap(errors.ErrInvalidMove, "pawn cannot reach the square")
		}
	default:
		return errors.Wrap(errors.ErrInvalidMove, "pawn cannot reach the square")
	}

	target := board.Get(move.ToCol, move.ToRank)
	isCapture := move.FromCol != move.ToCol
	switch {
	case isCapture && target == chess.Empty:
		if board.EnPassant && move.ToCol == board.EPCol && move.ToRank == board.EPRank {
			move.Class = chess.EnPassantPawnMove
			move.CapturedPiece = chess.Pawn
		} else {
			return errors.Wrap(errors.ErrInvalidMove, "nothing to capture")
		}
	case isCapture:
		if chess.ExtractColour(target) == colour {
			return errors.Wrap(errors.ErrInvalidMove, "cannot capture own piece")
		}
		move.CapturedPiece = chess.ExtractPiece(target)
	case target != chess.Empty:
		return errors.Wrap(errors.ErrInvalidMove, "destination square occupied")
	}

	// Promotions are mandatory on the last rank.
	lastRank := chess.Rank('8')
	if colour == chess.Black {
		lastRank = '1'
	}
	if move.ToRank == lastRank && move.Class != chess.PawnMoveWithPromotion {
		return errors.Wrap(errors.ErrInvalidMove, "promotion required")
	}
	if move.ToRank != lastRank && move.Class == chess.PawnMoveWithPromotion {
		return errors.Wrap(errors.ErrInvalidMove, "promotion off the last rank")
	}

	if !tryMove(board, move.FromCol, move.FromRank, move.ToCol, move.ToRank, colour) {
		return errors.Wrap(errors.ErrInvalidMove, "leaves the king in check")
	}
	return nil
}

// resolvePiece finds the source square of a piece move, honouring any
// disambiguation present in the notation and filtering pinned pieces.
func resolvePiece(board *chess.Board, move *chess.Move) error {
	colour := board.ToMove
	piece := chess.MakeColouredPiece(colour, move.PieceToMove)

	target := board.Get(move.ToCol, move.ToRank)
	if target != chess.Empty && chess.ExtractColour(target) == colour {
		return errors.Wrap(errors.ErrInvalidMove, "cannot capture own piece")
	}

	var foundCol chess.Col
	var foundRank chess.Rank
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if board.Get(col, rank) != piece {
				continue
			}
			if move.FromCol != 0 && col != move.FromCol {
				continue
			}
			if move.FromRank != 0 && rank != move.FromRank {
				continue
			}
			if !canPieceMove(board, move.PieceToMove, col, rank, move.ToCol, move.ToRank) {
				continue
			}
			if !tryMove(board, col, rank, move.ToCol, move.ToRank, colour) {
				continue
			}
			if foundCol != 0 {
				return errors.Wrap(errors.ErrInvalidMove, "ambiguous move")
			}
			foundCol, foundRank = col, rank
		}
	}
	if foundCol == 0 {
		return errors.Wrap(errors.ErrInvalidMove, "no piece can reach the square")
	}

	move.FromCol = foundCol
	move.FromRank = foundRank
	if target != chess.Empty {
		move.CapturedPiece = chess.ExtractPiece(target)
	}
	return nil
}

// SAN renders a resolved move descriptor as minimal Standard Algebraic
// Notation for the position it was validated against.
func SAN(board *chess.Board, move *chess.Move) string {
	var sb strings.Builder

	switch move.Class {
	case chess.NullMove:
		return chess.NullMoveString
	case chess.KingsideCastle:
		sb.WriteString("O-O")
	case chess.QueensideCastle:
		sb.WriteString("O-O-O")
	case chess.PawnMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		if move.IsCapture() {
			sb.WriteByte(byte(move.FromCol))
			sb.WriteByte('x')
		}
		sb.WriteByte(byte(move.ToCol))
		sb.WriteByte(byte(move.ToRank))
		if move.Class == chess.PawnMoveWithPromotion {
			sb.WriteByte('=')
			sb.WriteByte(SANPieceLetter(move.PromotedPiece))
		}
	case chess.PieceMove:
		sb.WriteByte(SANPieceLetter(move.PieceToMove))
		sb.WriteString(pieceDisambiguation(board, move))
		if move.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteByte(byte(move.ToCol))
		sb.WriteByte(byte(move.ToRank))
	}

	switch move.CheckStatus {
	case chess.Check:
		sb.WriteByte('+')
	case chess.Checkmate:
		sb.WriteByte('#')
	}
	return sb.String()
}

// pieceDisambiguation computes the minimal file/rank prefix needed to make
// a piece move unambiguous.
func pieceDisambiguation(board *chess.Board, move *chess.Move) string {
	colour := chess.ExtractColour(board.Get(move.FromCol, move.FromRank))
	piece := chess.MakeColouredPiece(colour, move.PieceToMove)

	others := 0
	sameFile, sameRank := false, false
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if col == move.FromCol && rank == move.FromRank {
				continue
			}
			if board.Get(col, rank) != piece {
				continue
			}
			if !canPieceMove(board, move.PieceToMove, col, rank, move.ToCol, move.ToRank) {
				continue
			}
			if !tryMove(board, col, rank, move.ToCol, move.ToRank, colour) {
				continue
			}
			others++
			if col == move.FromCol {
				sameFile = true
			}
			if rank == move.FromRank {
				sameRank = true
			}
		}
	}

	switch {
	case others == 0:
		return ""
	case !sameFile:
		return string(move.FromCol)
	case !sameRank:
		return string(move.FromRank)
	default:
		return string(move.FromCol) + string(move.FromRank)
	}
}
