package pgn

import (
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/errors"
	"github.com/lgbarn/pgn-tree-go/internal/game"
)

// ReadGame parses the first game in src into a game tree.
func ReadGame(src string) (*game.Game, error) {
	return readGame(newLexer(src))
}

// headerState accumulates the headers that influence how the movetext is
// interpreted, before the first move is parsed.
type headerState struct {
	fen        string
	fenTok     Token
	variant    engine.Variant
	variantSet bool
	hasResult  bool
}

// readGame parses one game from the lexer: a header section followed by
// movetext. Variations are tracked with an explicit stack, so arbitrarily
// deep nesting cannot overflow the call stack.
func readGame(lx *lexer) (*game.Game, error) {
	g := game.NewGame()
	var hdr headerState

	tok, err := lx.next()
	if err != nil {
		return nil, err
	}
	for tok.Type == HeaderToken {
		applyHeader(g, &hdr, tok)
		if tok, err = lx.next(); err != nil {
			return nil, err
		}
	}
	if err := installStart(g, &hdr); err != nil {
		return nil, err
	}

	type frame struct {
		v    *game.Variation
		node *game.Node
	}
	var stack []frame
	cur := frame{v: g.MainVariation()}

	for {
		switch tok.Type {
		case MoveToken:
			var node *game.Node
			var err error
			if cur.node == nil {
				node, err = cur.v.Play(tok.Text)
			} else {
				node, err = cur.node.Play(tok.Text)
			}
			if err != nil {
				return nil, errors.NewParseError(err, tok.Text, tok.Offset, tok.Line)
			}
			cur.node = node

		case NAGToken:
			if cur.node == nil {
				_ = cur.v.AddNAG(tok.NAG)
			} else {
				_ = cur.node.AddNAG(tok.NAG)
			}

		case CommentToken:
			if cur.node == nil {
				attachComment(&cur.v.Annotations, tok)
			} else {
				attachComment(&cur.node.Annotations, tok)
			}

		case BeginVariationToken:
			if cur.node == nil {
				return nil, errors.NewParseError(errors.ErrUnexpectedBeginVariation, "(", tok.Offset, tok.Line)
			}
			v := cur.node.AddVariation(tok.BlankBefore)
			stack = append(stack, cur)
			cur = frame{v: v}

		case EndVariationToken:
			if len(stack) == 0 {
				return nil, errors.NewParseError(errors.ErrUnexpectedEndVariation, ")", tok.Offset, tok.Line)
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

		case ResultToken:
			if len(stack) != 0 {
				return nil, errors.NewParseError(errors.ErrUnexpectedEndGame, tok.Text, tok.Offset, tok.Line)
			}
			// The movetext marker wins over the header unless it is
			// the unknown marker and the header had a real result.
			if r, ok := game.ParseResult(tok.Text); ok {
				if r != game.ResultUnknown || !hdr.hasResult {
					g.Headers.Result = r
				}
			}
			return g, nil

		case HeaderToken:
			return nil, errors.NewParseError(errors.ErrUnexpectedHeader, tok.Name, tok.Offset, tok.Line)

		case EOFToken:
			// The grammar demands an end marker; a truncated game is
			// never returned as a partial success.
			return nil, errors.NewParseError(errors.ErrUnexpectedEndText, "", tok.Offset, tok.Line)
		}

		if tok, err = lx.next(); err != nil {
			return nil, err
		}
	}
}

// attachComment merges a comment token into an entity's annotations.
func attachComment(a *game.Annotations, tok Token) {
	text := tok.Text
	if existing := a.Comment(); existing != "" && text != "" {
		text = existing + " " + text
	} else if existing != "" {
		text = existing
	}
	a.SetComment(text, a.IsLongComment() || tok.BlankBefore)
	for key, value := range tok.Tags {
		_ = a.SetTag(key, value)
	}
}

// applyHeader stores one header in the game's typed headers. Values that
// fail to parse as their typed form are kept verbatim in Extra instead of
// failing the game.
func applyHeader(g *game.Game, hdr *headerState, tok Token) {
	h := &g.Headers
	switch tok.Name {
	case chess.TagEvent:
		h.Event = tok.Value
	case chess.TagSite:
		h.Site = tok.Value
	case chess.TagDate:
		h.Date = game.ParseDate(tok.Value)
	case chess.TagRound:
		if err := h.SetRoundString(tok.Value); err != nil {
			h.SetExtra(tok.Name, tok.Value)
		}
	case chess.TagWhite:
		h.White = tok.Value
	case chess.TagBlack:
		h.Black = tok.Value
	case chess.TagResult:
		if r, ok := game.ParseResult(tok.Value); ok {
			h.Result = r
			hdr.hasResult = r != game.ResultUnknown
		}
	case chess.TagWhiteElo:
		h.WhiteElo = parseElo(tok.Value)
	case chess.TagBlackElo:
		h.BlackElo = parseElo(tok.Value)
	case chess.TagWhiteTitle:
		h.WhiteTitle = tok.Value
	case chess.TagBlackTitle:
		h.BlackTitle = tok.Value
	case chess.TagAnnotator:
		h.Annotator = tok.Value
	case chess.TagECO:
		h.ECO = tok.Value
	case chess.TagOpening:
		h.Opening = tok.Value
	case chess.TagVariation:
		h.Variation = tok.Value
	case chess.TagSubVariation:
		h.SubVariation = tok.Value
	case chess.TagTermination:
		h.Termination = tok.Value
	case chess.TagFEN:
		hdr.fen = tok.Value
		hdr.fenTok = tok
	case chess.TagSetUp:
		// Implied by the presence or absence of FEN.
	case chess.TagVariant:
		if v, ok := engine.ParseVariant(tok.Value); ok {
			hdr.variant = v
			hdr.variantSet = true
		} else {
			h.SetExtra(tok.Name, tok.Value)
		}
	default:
		h.SetExtra(tok.Name, tok.Value)
	}
}

func parseElo(value string) int {
	elo, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || elo < 0 {
		return 0
	}
	return elo
}

// installStart resolves the Variant and FEN headers into the game's
// variant and initial position, before any move is interpreted.
func installStart(g *game.Game, hdr *headerState) error {
	if hdr.variantSet {
		g.SetVariant(hdr.variant)
	}
	if hdr.fen == "" {
		// Every supported variant has a canonical start to fall back
		// on; Chess960 defaults to the standard placement.
		return nil
	}
	board, err := engine.ParseFEN(hdr.fen, false)
	if err != nil {
		return errors.NewParseError(err, hdr.fen, hdr.fenTok.Offset, hdr.fenTok.Line)
	}
	if err := g.SetInitialPosition(board); err != nil {
		return errors.NewParseError(err, hdr.fen, hdr.fenTok.Offset, hdr.fenTok.Line)
	}
	return nil
}
