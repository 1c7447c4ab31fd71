package pgn

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/chess"
	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/game"
)

// DefaultLineWidth is the soft wrap column for movetext.
const DefaultLineWidth = 80

// Writer renders games back to PGN in normalized form: headers in a fixed
// order, canonical SAN, NAGs in numeric form, and movetext wrapped at
// token boundaries.
type Writer struct {
	// LineWidth is the soft wrap column; tokens longer than a line are
	// never split. Zero means DefaultLineWidth.
	LineWidth int
}

// WriteGame renders g with default settings.
func WriteGame(w io.Writer, g *game.Game) error {
	return (&Writer{}).Write(w, g)
}

// FormatGame renders g to a string with default settings.
func FormatGame(g *game.Game) string {
	var sb strings.Builder
	_ = (&Writer{}).Write(&sb, g)
	return sb.String()
}

// Write renders one complete game: the header section, a blank line, then
// the movetext terminated by the result marker.
func (wr *Writer) Write(w io.Writer, g *game.Game) error {
	width := wr.LineWidth
	if width <= 0 {
		width = DefaultLineWidth
	}
	var sb strings.Builder
	writeHeaders(&sb, g)
	sb.WriteByte('\n')
	writeMovetext(&sb, g, width)
	_, err := io.WriteString(w, sb.String())
	return err
}

// escapeValue escapes backslashes and quotes in a header value.
func escapeValue(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}

func writeHeader(sb *strings.Builder, name, value string) {
	sb.WriteByte('[')
	sb.WriteString(name)
	sb.WriteString(` "`)
	sb.WriteString(escapeValue(value))
	sb.WriteString("\"]\n")
}

// writeHeaders emits the seven tag roster with placeholder defaults, the
// optional known tags in their fixed order, position tags when the game
// does not start from the canonical position, and finally any extra tags
// alphabetically.
func writeHeaders(sb *strings.Builder, g *game.Game) {
	h := &g.Headers
	orDefault := func(s string) string {
		if s == "" {
			return "?"
		}
		return s
	}

	writeHeader(sb, chess.TagEvent, orDefault(h.Event))
	writeHeader(sb, chess.TagSite, orDefault(h.Site))
	writeHeader(sb, chess.TagDate, h.Date.String())
	writeHeader(sb, chess.TagRound, h.RoundString())
	writeHeader(sb, chess.TagWhite, orDefault(h.White))
	writeHeader(sb, chess.TagBlack, orDefault(h.Black))
	writeHeader(sb, chess.TagResult, h.Result.String())

	for _, name := range chess.OptionalTagOrder {
		if value := optionalValue(h, name); value != "" {
			writeHeader(sb, name, value)
		}
	}

	if g.Variant() != engine.Standard {
		writeHeader(sb, chess.TagVariant, g.Variant().String())
	}
	if !g.HasCanonicalStart() {
		writeHeader(sb, chess.TagSetUp, "1")
		writeHeader(sb, chess.TagFEN, g.InitialFEN())
	}

	if len(h.Extra) > 0 {
		keys := make([]string, 0, len(h.Extra))
		for key := range h.Extra {
			if !writtenTag(key) {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			writeHeader(sb, key, h.Extra[key])
		}
	}
}

// optionalValue returns the rendering of a known optional tag, or "" when
// it is unset.
func optionalValue(h *game.Headers, name string) string {
	switch name {
	case chess.TagAnnotator:
		return h.Annotator
	case chess.TagBlackElo:
		if h.BlackElo > 0 {
			return strconv.Itoa(h.BlackElo)
		}
	case chess.TagBlackTitle:
		return h.BlackTitle
	case chess.TagECO:
		return h.ECO
	case chess.TagOpening:
		return h.Opening
	case chess.TagSubVariation:
		return h.SubVariation
	case chess.TagTermination:
		return h.Termination
	case chess.TagVariation:
		return h.Variation
	case chess.TagWhiteElo:
		if h.WhiteElo > 0 {
			return strconv.Itoa(h.WhiteElo)
		}
	case chess.TagWhiteTitle:
		return h.WhiteTitle
	}
	return ""
}

// writtenTag reports whether name is emitted through a typed header and
// must not be duplicated from Extra.
func writtenTag(name string) bool {
	if chess.IsSevenTagRosterTag(name) {
		return true
	}
	for _, known := range chess.OptionalTagOrder {
		if name == known {
			return true
		}
	}
	switch name {
	case chess.TagSetUp, chess.TagFEN, chess.TagVariant:
		return true
	}
	return false
}

// emitter lays movetext tokens out with a soft wrap column.
type emitter struct {
	sb  *strings.Builder
	col int
	max int
}

// token writes s preceded by a space, breaking the line first when s would
// cross the wrap column.
func (e *emitter) token(s string) {
	if e.col > 0 && e.col+1+len(s) > e.max {
		e.sb.WriteByte('\n')
		e.col = 0
	} else if e.col > 0 {
		e.sb.WriteByte(' ')
		e.col++
	}
	e.sb.WriteString(s)
	e.col += len(s)
}

// breakLine forces the next token onto a fresh line.
func (e *emitter) breakLine() {
	if e.col > 0 {
		e.sb.WriteByte('\n')
		e.col = 0
	}
}

// escapeComment escapes the characters that cannot appear raw in a brace
// comment.
func escapeComment(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	return strings.ReplaceAll(text, "}", `\}`)
}

// commentParts renders an annotation's tag pairs and comment text as
// wrappable parts, with braces attached to the first and last part. Tag
// pairs are kept whole so a wrap never falls inside one.
func commentParts(a *game.Annotations) []string {
	var parts []string
	for _, key := range a.TagKeys() {
		parts = append(parts, "[%"+key+" "+a.Tag(key)+"]")
	}
	if text := escapeComment(a.Comment()); text != "" {
		parts = append(parts, strings.Fields(text)...)
	}
	if len(parts) == 0 {
		return nil
	}
	parts[0] = "{" + parts[0]
	parts[len(parts)-1] += "}"
	return parts
}

// emitAnnotations writes an entity's NAGs and comment block. Long comments
// are set apart on their own lines when the enclosing variation chain
// renders long. It reports whether anything was written.
func emitAnnotations(e *emitter, a *game.Annotations, effLong bool) bool {
	wrote := false
	for _, nag := range a.NAGs() {
		e.token("$" + strconv.Itoa(nag))
		wrote = true
	}
	parts := commentParts(a)
	if len(parts) == 0 {
		return wrote
	}
	long := a.IsLongComment() && effLong
	if long {
		e.breakLine()
	}
	for _, part := range parts {
		e.token(part)
	}
	if long {
		e.breakLine()
	}
	return true
}

// wframe is one level of the movetext walk.
type wframe struct {
	next       *game.Node // next node to emit; nil closes the variation
	varOwner   *game.Node // node whose variation slots are being emitted
	slot       int
	needNumber bool
	effLong    bool
}

// writeMovetext walks the tree with an explicit stack and emits the main
// line with its nested variations, ending with the result marker.
func writeMovetext(sb *strings.Builder, g *game.Game, width int) {
	e := &emitter{sb: sb, max: width}

	main := g.MainVariation()
	var stack []wframe
	cur := wframe{next: main.First(), needNumber: true, effLong: main.EffectiveLong()}
	if emitAnnotations(e, &main.Annotations, cur.effLong) {
		cur.needNumber = true
	}

	for {
		switch {
		case cur.varOwner != nil && cur.slot < cur.varOwner.VariationCount():
			v := cur.varOwner.Variation(cur.slot)
			cur.slot++
			cur.needNumber = true
			effLong := v.EffectiveLong()
			if effLong {
				e.breakLine()
			}
			e.token("(")
			stack = append(stack, cur)
			cur = wframe{next: v.First(), needNumber: true, effLong: effLong}
			emitAnnotations(e, &v.Annotations, cur.effLong)

		case cur.varOwner != nil:
			cur.varOwner = nil

		case cur.next != nil:
			node := cur.next
			if node.Colour() == chess.White {
				e.token(strconv.FormatUint(uint64(node.MoveNumber()), 10) + ".")
			} else if cur.needNumber {
				e.token(strconv.FormatUint(uint64(node.MoveNumber()), 10) + "...")
			}
			e.token(node.Move().Text)
			cur.needNumber = emitAnnotations(e, &node.Annotations, cur.effLong)
			cur.next = node.Next()
			if node.VariationCount() > 0 {
				cur.varOwner = node
				cur.slot = 0
			}

		case len(stack) > 0:
			effLong := cur.effLong
			e.token(")")
			if effLong {
				e.breakLine()
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

		default:
			e.token(g.Headers.Result.String())
			e.breakLine()
			return
		}
	}
}
