// Package pgn reads and writes games in Portable Game Notation. The
// reader produces game trees with all annotations preserved, the writer
// renders them back in normalized form, and Database exposes a multi-game
// source with lazy per-game parsing.
package pgn

// TokenType identifies a lexical token in a PGN source.
type TokenType int

const (
	EOFToken TokenType = iota
	HeaderToken
	MoveToken
	NAGToken
	CommentToken
	BeginVariationToken
	EndVariationToken
	ResultToken
)

var tokenNames = map[TokenType]string{
	EOFToken:            "EOF",
	HeaderToken:         "Header",
	MoveToken:           "Move",
	NAGToken:            "NAG",
	CommentToken:        "Comment",
	BeginVariationToken: "BeginVariation",
	EndVariationToken:   "EndVariation",
	ResultToken:         "Result",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Token is a lexical token together with its source location. Offset is a
// byte offset into the source and Line is 1-based.
type Token struct {
	Type TokenType

	// Text holds the SAN text of a move, the marker of a result, or the
	// cleaned text of a comment.
	Text string

	// Name and Value are set for header tokens.
	Name  string
	Value string

	// NAG is the glyph number of a NAG token.
	NAG int

	// Tags holds the [%key value] pairs extracted from a comment.
	Tags map[string]string

	Offset int
	Line   int

	// BlankBefore is set when at least one empty line separates the
	// token from the preceding content. It is the only signal used to
	// mark comments and variations as long.
	BlankBefore bool
}

// Character classes for the first byte of a token.
type charClass byte

const (
	chInvalid charClass = iota
	chSpace
	chDigit
	chMove     // starts a SAN move
	chNAG      // '$'
	chSymbolic // symbolic annotation glyph
	chComment  // '{'
	chBegin    // '('
	chEnd      // ')'
	chHeader   // '['
	chStar     // '*'
	chSemi     // ';' rest-of-line comment
)

var chTab [256]charClass

func init() {
	for c := 'a'; c <= 'z'; c++ {
		chTab[c] = chMove
	}
	for c := 'A'; c <= 'Z'; c++ {
		chTab[c] = chMove
	}
	for c := '0'; c <= '9'; c++ {
		chTab[c] = chDigit
	}
	for _, c := range " \t\r\n" {
		chTab[c] = chSpace
	}
	for _, c := range "!?+=~-" {
		chTab[c] = chSymbolic
	}
	chTab['$'] = chNAG
	chTab['{'] = chComment
	chTab['('] = chBegin
	chTab[')'] = chEnd
	chTab['['] = chHeader
	chTab['*'] = chStar
	chTab[';'] = chSemi
}

// symbolicNAGs maps annotation glyph spellings to their numeric NAGs.
// Single letters are only treated as glyphs when they form a whole word.
var symbolicNAGs = map[string]int{
	"!":   1,
	"?":   2,
	"!!":  3,
	"??":  4,
	"!?":  5,
	"?!":  6,
	"=":   10,
	"~":   13,
	"+/=": 14,
	"=/+": 15,
	"+/-": 16,
	"-/+": 17,
	"+-":  18,
	"-+":  19,
	"N":   146,
	"D":   220,
}
