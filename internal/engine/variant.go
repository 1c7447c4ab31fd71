package engine

import (
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// Variant identifies the chess variant a game is played under. Only
// variants with a canonical start position are supported without an
// explicit FEN header.
type Variant int

const (
	Standard Variant = iota
	Chess960
	Antichess
	Horde
)

var variantNames = [...]string{
	Standard:  "Standard",
	Chess960:  "Chess960",
	Antichess: "Antichess",
	Horde:     "Horde",
}

// String returns the canonical variant name as written in a Variant header.
func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "Unknown"
}

// ParseVariant maps a Variant header value to a Variant. The empty string
// is Standard. Common aliases are accepted case-insensitively.
func ParseVariant(name string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "standard", "chess", "normal":
		return Standard, true
	case "chess960", "chess 960", "fischerandom", "fischerrandom", "fischer random":
		return Chess960, true
	case "antichess", "anti chess", "giveaway", "suicide":
		return Antichess, true
	case "horde":
		return Horde, true
	default:
		return Standard, false
	}
}

// Canonical start FENs for non-standard variants.
const (
	antichessStartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
	hordeStartFEN     = "rnbqkbnr/pppppppp/8/1PP2PP1/PPPPPPPP/PPPPPPPP/PPPPPPPP/PPPPPPPP w kq - 0 1"
)

// StartingBoard returns the canonical start position for the variant.
// Chess960 shares the standard placement; a concrete Chess960 game will
// normally override it with a FEN header.
func StartingBoard(v Variant) *chess.Board {
	switch v {
	case Antichess:
		board, _ := ParseFEN(antichessStartFEN, true)
		return board
	case Horde:
		board, _ := ParseFEN(hordeStartFEN, true)
		return board
	default:
		return NewInitialBoard()
	}
}

// StartFEN returns the canonical start FEN for the variant.
func StartFEN(v Variant) string {
	switch v {
	case Antichess:
		return antichessStartFEN
	case Horde:
		return hordeStartFEN
	default:
		return InitialFEN
	}
}

// ValidateForVariant checks that a parsed position is plausible under the
// given variant: king counts, pawn ranks, and the side not to move not
// being in check. It does not attempt full retrograde legality.
func ValidateForVariant(board *chess.Board, v Variant) error {
	whiteKings, blackKings := 0, 0
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}
			pieceType := chess.ExtractPiece(piece)
			colour := chess.ExtractColour(piece)

			if pieceType == chess.King {
				if colour == chess.White {
					whiteKings++
				} else {
					blackKings++
				}
			}
			if pieceType == chess.Pawn {
				if rank == '8' {
					return errors.Wrap(errors.ErrInvalidFEN, "pawn on the eighth rank")
				}
				// Horde allows White pawns on the first rank.
				if rank == '1' && !(v == Horde && colour == chess.White) {
					return errors.Wrap(errors.ErrInvalidFEN, "pawn on the first rank")
				}
			}
		}
	}

	switch v {
	case Antichess:
		// Kings are ordinary pieces; any count is fine.
	case Horde:
		if whiteKings != 0 || blackKings != 1 {
			return errors.Wrap(errors.ErrInvalidFEN, "horde requires exactly one black king and no white king")
		}
	default:
		if whiteKings != 1 || blackKings != 1 {
			return errors.Wrap(errors.ErrInvalidFEN, "each side must have exactly one king")
		}
		if IsInCheck(board, board.ToMove.Opposite()) {
			return errors.Wrap(errors.ErrInvalidFEN, "side not to move is in check")
		}
	}
	return nil
}
