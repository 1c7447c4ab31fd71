package engine

import (
	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// Apply plays a validated move descriptor on the board, updating piece
// placement, castling rights, en passant state, the halfmove clock, the
// move number, and the side to move.
func Apply(board *chess.Board, move *chess.Move) error {
	if move == nil {
		return errors.Wrap(errors.ErrInvalidMove, "nil move")
	}

	switch move.Class {
	case chess.NullMove:
		board.EnPassant = false
		board.HalfmoveClock++
		finishMove(board)
		return nil

	case chess.KingsideCastle, chess.QueensideCastle:
		return applyCastle(board, move)

	case chess.PawnMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		return applyPawnMove(board, move)

	case chess.PieceMove:
		return applyPieceMove(board, move)

	default:
		return errors.Wrapf(errors.ErrInvalidMove, "unknown move class %d", move.Class)
	}
}

// finishMove advances the move number after Black's move and flips the side
// to move.
func finishMove(board *chess.Board) {
	if board.ToMove == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = board.ToMove.Opposite()
}

// applyCastle applies a castling move using the rook columns recorded on
// the descriptor (which accommodate Chess960 rook placements).
func applyCastle(board *chess.Board, move *chess.Move) error {
	colour := board.ToMove
	rank := move.FromRank

	king := board.Get(move.FromCol, rank)
	rook := board.Get(move.RookFromCol, rank)
	if chess.ExtractPiece(king) != chess.King || chess.ExtractPiece(rook) != chess.Rook {
		return errors.Wrap(errors.ErrInvalidMove, "castling pieces not in place")
	}

	// Clear both squares first: in Chess960 the king may land on the
	// rook's origin square and vice versa.
	board.Set(move.FromCol, rank, chess.Empty)
	board.Set(move.RookFromCol, rank, chess.Empty)
	board.Set(move.ToCol, rank, king)
	board.Set(move.RookToCol, rank, rook)

	if colour == chess.White {
		board.WKingCol = move.ToCol
		board.WKingRank = rank
		board.WKingCastle = 0
		board.WQueenCastle = 0
	} else {
		board.BKingCol = move.ToCol
		board.BKingRank = rank
		board.BKingCastle = 0
		board.BQueenCastle = 0
	}

	board.EnPassant = false
	board.HalfmoveClock++
	finishMove(board)
	return nil
}

// applyPawnMove applies a pawn move, promotion, or en passant capture.
func applyPawnMove(board *chess.Board, move *chess.Move) error {
	colour := board.ToMove
	pawn := board.Get(move.FromCol, move.FromRank)
	if chess.ExtractPiece(pawn) != chess.Pawn {
		return errors.Wrapf(errors.ErrInvalidMove, "no pawn on %c%c", move.FromCol, move.FromRank)
	}

	if move.Class == chess.EnPassantPawnMove {
		capturedRank := chess.Rank(int(move.ToRank) - chess.ColourOffset(colour))
		board.Set(move.ToCol, capturedRank, chess.Empty)
	}

	captured := board.Get(move.ToCol, move.ToRank)
	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(captured), move.ToCol, move.ToRank)
	}

	board.Set(move.FromCol, move.FromRank, chess.Empty)
	if move.Class == chess.PawnMoveWithPromotion {
		promoted := move.PromotedPiece
		if promoted == chess.Empty {
			promoted = chess.Queen
		}
		board.Set(move.ToCol, move.ToRank, chess.MakeColouredPiece(colour, promoted))
	} else {
		board.Set(move.ToCol, move.ToRank, pawn)
	}

	// A double push exposes the passed-over square to en passant capture.
	board.EnPassant = false
	if colour == chess.White && move.FromRank == '2' && move.ToRank == '4' {
		board.EnPassant = true
		board.EPCol = move.ToCol
		board.EPRank = '3'
	} else if colour == chess.Black && move.FromRank == '7' && move.ToRank == '5' {
		board.EnPassant = true
		board.EPCol = move.ToCol
		board.EPRank = '6'
	}

	board.HalfmoveClock = 0
	finishMove(board)
	return nil
}

// applyPieceMove applies a non-pawn, non-castling move.
func applyPieceMove(board *chess.Board, move *chess.Move) error {
	colour := board.ToMove
	piece := board.Get(move.FromCol, move.FromRank)
	if chess.ExtractPiece(piece) != move.PieceToMove {
		return errors.Wrapf(errors.ErrInvalidMove, "no %s on %c%c",
			move.PieceToMove, move.FromCol, move.FromRank)
	}

	captured := board.Get(move.ToCol, move.ToRank)

	board.Set(move.FromCol, move.FromRank, chess.Empty)
	board.Set(move.ToCol, move.ToRank, piece)

	if move.PieceToMove == chess.King {
		if colour == chess.White {
			board.WKingCol = move.ToCol
			board.WKingRank = move.ToRank
			board.WKingCastle = 0
			board.WQueenCastle = 0
		} else {
			board.BKingCol = move.ToCol
			board.BKingRank = move.ToRank
			board.BKingCastle = 0
			board.BQueenCastle = 0
		}
	}

	if move.PieceToMove == chess.Rook {
		updateCastlingRightsForRook(board, colour, move.FromCol, move.FromRank)
	}
	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(captured), move.ToCol, move.ToRank)
	}

	board.EnPassant = false
	if captured != chess.Empty {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	finishMove(board)
	return nil
}

// updateCastlingRightsForRook clears a castling right when its rook moves
// or is captured.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, col chess.Col, rank chess.Rank) {
	if colour == chess.White && rank == '1' {
		if col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	} else if colour == chess.Black && rank == '8' {
		if col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}

// NullMoveLegal reports whether a null move may be played: the side to move
// must not be in check.
func NullMoveLegal(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove)
}
