package engine

import "github.com/lgbarn/pgn-tree-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check. A position
// without a king of that colour (antichess, horde) is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingCol, kingRank := board.KingSquare(colour)
	if kingCol == 0 || kingRank == 0 {
		kingCol, kingRank = findKing(board, colour)
		if kingCol == 0 {
			return false
		}
	}
	return isSquareAttacked(board, kingCol, kingRank, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Col, chess.Rank) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if board.Get(col, rank) == king {
				return col, rank
			}
		}
	}
	return 0, 0
}

// isSquareAttacked returns true if the square is attacked by the given colour.
func isSquareAttacked(board *chess.Board, col chess.Col, rank chess.Rank, byColour chess.Colour) bool {
	// Pawn attacks
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRank := chess.Rank(int(rank) - chess.ColourOffset(byColour))
	if pawnRank >= '1' && pawnRank <= '8' {
		if col > 'a' && board.Get(col-1, pawnRank) == pawn {
			return true
		}
		if col < 'h' && board.Get(col+1, pawnRank) == pawn {
			return true
		}
	}

	// Knight attacks
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	knightMoves := [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	for _, delta := range knightMoves {
		c := chess.Col(int(col) + delta[0])
		r := chess.Rank(int(rank) + delta[1])
		if c >= 'a' && c <= 'h' && r >= '1' && r <= '8' && board.Get(c, r) == knight {
			return true
		}
	}

	// King attacks
	king := chess.MakeColouredPiece(byColour, chess.King)
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			c := chess.Col(int(col) + dc)
			r := chess.Rank(int(rank) + dr)
			if c >= 'a' && c <= 'h' && r >= '1' && r <= '8' && board.Get(c, r) == king {
				return true
			}
		}
	}

	// Sliding pieces along diagonals
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	diagonalDirs := [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	for _, dir := range diagonalDirs {
		if slideHits(board, col, rank, dir, bishop, queen) {
			return true
		}
	}

	// Sliding pieces along straight lines
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	straightDirs := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, dir := range straightDirs {
		if slideHits(board, col, rank, dir, rook, queen) {
			return true
		}
	}

	return false
}

// slideHits walks from a square in one direction and reports whether the
// first occupied square holds one of the two given pieces.
func slideHits(board *chess.Board, col chess.Col, rank chess.Rank, dir [2]int, a, b chess.Piece) bool {
	c := chess.Col(int(col) + dir[0])
	r := chess.Rank(int(rank) + dir[1])
	for c >= 'a' && c <= 'h' && r >= '1' && r <= '8' {
		piece := board.Get(c, r)
		if piece != chess.Empty {
			return piece == a || piece == b
		}
		c = chess.Col(int(c) + dir[0])
		r = chess.Rank(int(r) + dir[1])
	}
	return false
}

// canPieceMove checks if a piece can move from one square to another,
// considering only geometry and blocking pieces.
func canPieceMove(board *chess.Board, pieceType chess.Piece, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	colDiff := abs(int(toCol) - int(fromCol))
	rankDiff := abs(int(toRank) - int(fromRank))

	switch pieceType {
	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		return colDiff == rankDiff && colDiff > 0 &&
			isPathClear(board, fromCol, fromRank, toCol, toRank)

	case chess.Rook:
		return (colDiff == 0) != (rankDiff == 0) &&
			isPathClear(board, fromCol, fromRank, toCol, toRank)

	case chess.Queen:
		if colDiff != rankDiff && colDiff != 0 && rankDiff != 0 {
			return false
		}
		return (colDiff > 0 || rankDiff > 0) &&
			isPathClear(board, fromCol, fromRank, toCol, toRank)

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1 && colDiff+rankDiff > 0
	}

	return false
}

// isPathClear checks that every square strictly between from and to along a
// straight or diagonal line is empty.
func isPathClear(board *chess.Board, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	colDir := sign(int(toCol) - int(fromCol))
	rankDir := sign(int(toRank) - int(fromRank))

	col := chess.Col(int(fromCol) + colDir)
	rank := chess.Rank(int(fromRank) + rankDir)

	for col != toCol || rank != toRank {
		if board.Get(col, rank) != chess.Empty {
			return false
		}
		col = chess.Col(int(col) + colDir)
		rank = chess.Rank(int(rank) + rankDir)
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
