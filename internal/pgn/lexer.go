package pgn

import (
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// lexer is a lazy scanner over a PGN source string. It tracks byte offsets
// and 1-based line numbers so every error can point at its exact location,
// and reports blank-line separation on each token.
type lexer struct {
	src  string
	pos  int
	end  int
	line int
}

func newLexer(src string) *lexer {
	return newLexerAt(src, 0, len(src), 1)
}

// newLexerAt scans src between start and end, with line giving the 1-based
// line number at start. Databases use it to lex one game's byte range with
// absolute locations.
func newLexerAt(src string, start, end, line int) *lexer {
	return &lexer{src: src, pos: start, end: end, line: line}
}

func (l *lexer) malformed(text string, offset int) error {
	return errors.NewParseError(errors.ErrMalformedToken, text, offset, l.line)
}

// atLineStart reports whether pos is the first byte of a line.
func (l *lexer) atLineStart() bool {
	return l.pos == 0 || l.src[l.pos-1] == '\n'
}

// skipSpace consumes whitespace and '%' escape lines, returning true when
// at least one empty line was crossed.
func (l *lexer) skipSpace() bool {
	newlines := 0
	for l.pos < l.end {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.line++
			newlines++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '%' && l.atLineStart():
			for l.pos < l.end && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return newlines >= 2
		}
	}
	return newlines >= 2
}

func isTagNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_'
}

func isMoveChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '=' || c == '+' || c == '#' || c == ':' || c == 'x' || c == '-'
}

func isSymbolicChar(c byte) bool {
	switch c {
	case '!', '?', '+', '=', '~', '-', '/':
		return true
	}
	return false
}

// next returns the next token. Move numbers, dots, semicolon comments, and
// escape lines are consumed silently.
func (l *lexer) next() (Token, error) {
	blank := false
	for {
		if l.skipSpace() {
			blank = true
		}
		if l.pos >= l.end {
			return Token{Type: EOFToken, Offset: l.pos, Line: l.line, BlankBefore: blank}, nil
		}

		start := l.pos
		tok := Token{Offset: start, Line: l.line, BlankBefore: blank}
		c := l.src[l.pos]

		switch chTab[c] {
		case chSemi:
			for l.pos < l.end && l.src[l.pos] != '\n' {
				l.pos++
			}
			continue

		case chHeader:
			return l.scanHeader(tok)

		case chComment:
			return l.scanComment(tok)

		case chBegin:
			l.pos++
			tok.Type = BeginVariationToken
			return tok, nil

		case chEnd:
			l.pos++
			tok.Type = EndVariationToken
			return tok, nil

		case chStar:
			l.pos++
			tok.Type = ResultToken
			tok.Text = "*"
			return tok, nil

		case chNAG:
			l.pos++
			digits := l.pos
			for l.pos < l.end && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
				l.pos++
			}
			if l.pos == digits {
				return tok, l.malformed("$", start)
			}
			nag, err := strconv.Atoi(l.src[digits:l.pos])
			if err != nil {
				return tok, l.malformed(l.src[start:l.pos], start)
			}
			tok.Type = NAGToken
			tok.NAG = nag
			return tok, nil

		case chDigit:
			done, t, err := l.scanNumeric(tok)
			if err != nil {
				return tok, err
			}
			if done {
				return t, nil
			}
			continue // move number, keep scanning

		case chSymbolic:
			for l.pos < l.end && isSymbolicChar(l.src[l.pos]) {
				l.pos++
			}
			text := l.src[start:l.pos]
			if text == "--" {
				tok.Type = MoveToken
				tok.Text = text
				return tok, nil
			}
			if nag, ok := symbolicNAGs[text]; ok {
				tok.Type = NAGToken
				tok.NAG = nag
				return tok, nil
			}
			return tok, l.malformed(text, start)

		case chMove:
			for l.pos < l.end && isMoveChar(l.src[l.pos]) {
				l.pos++
			}
			text := l.src[start:l.pos]
			if nag, ok := symbolicNAGs[text]; ok && len(text) == 1 {
				tok.Type = NAGToken
				tok.NAG = nag
				return tok, nil
			}
			tok.Type = MoveToken
			tok.Text = text
			return tok, nil

		default:
			l.pos++
			return tok, l.malformed(l.src[start:l.pos], start)
		}
	}
}

// scanNumeric handles tokens starting with a digit: game results, castling
// written with zeros, and plain move numbers. Move numbers are consumed
// together with their dots and reported as not-done so the caller keeps
// scanning.
func (l *lexer) scanNumeric(tok Token) (bool, Token, error) {
	start := l.pos
	for l.pos < l.end && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
		l.pos++
	}
	if l.pos < l.end && (l.src[l.pos] == '-' || l.src[l.pos] == '/') {
		for l.pos < l.end && (l.src[l.pos] >= '0' && l.src[l.pos] <= '9' ||
			l.src[l.pos] == '-' || l.src[l.pos] == '/') {
			l.pos++
		}
		text := l.src[start:l.pos]
		switch text {
		case "1-0", "0-1", "1/2-1/2", "1/2":
			if text == "1/2" {
				text = "1/2-1/2"
			}
			tok.Type = ResultToken
			tok.Text = text
			return true, tok, nil
		case "0-0", "0-0-0":
			// Castling spelled with zeros; checks may follow.
			for l.pos < l.end && (l.src[l.pos] == '+' || l.src[l.pos] == '#') {
				l.pos++
			}
			tok.Type = MoveToken
			tok.Text = strings.ReplaceAll(text, "0", "O") + l.src[start+len(text):l.pos]
			return true, tok, nil
		}
		return true, tok, l.malformed(text, start)
	}
	// A plain move number. Its dots are part of the token.
	for l.pos < l.end && l.src[l.pos] == '.' {
		l.pos++
	}
	return false, tok, nil
}

// scanHeader reads a header token of the form [Name "value"].
func (l *lexer) scanHeader(tok Token) (Token, error) {
	start := l.pos
	l.pos++ // '['
	l.skipSpace()

	nameStart := l.pos
	for l.pos < l.end && isTagNameChar(l.src[l.pos]) {
		l.pos++
	}
	if l.pos == nameStart {
		return tok, l.malformed(l.src[start:min(l.pos+1, l.end)], start)
	}
	tok.Name = l.src[nameStart:l.pos]

	l.skipSpace()
	if l.pos >= l.end || l.src[l.pos] != '"' {
		return tok, l.malformed(tok.Name, start)
	}
	l.pos++

	var value strings.Builder
	for {
		if l.pos >= l.end || l.src[l.pos] == '\n' {
			return tok, l.malformed(tok.Name, start)
		}
		c := l.src[l.pos]
		if c == '"' {
			l.pos++
			break
		}
		if c == '\\' && l.pos+1 < l.end {
			next := l.src[l.pos+1]
			if next == '"' || next == '\\' {
				value.WriteByte(next)
				l.pos += 2
				continue
			}
		}
		value.WriteByte(c)
		l.pos++
	}
	tok.Value = value.String()

	l.skipSpace()
	if l.pos >= l.end || l.src[l.pos] != ']' {
		return tok, l.malformed(tok.Name, start)
	}
	l.pos++
	tok.Type = HeaderToken
	return tok, nil
}

// scanComment reads a brace comment, honoring the \\, \", and \} escapes,
// and splits embedded [%key value] pairs out of the text.
func (l *lexer) scanComment(tok Token) (Token, error) {
	start := l.pos
	l.pos++ // '{'

	var raw strings.Builder
	for {
		if l.pos >= l.end {
			return tok, l.malformed(l.src[start:min(start+16, l.end)], start)
		}
		c := l.src[l.pos]
		if c == '}' {
			l.pos++
			break
		}
		if c == '\n' {
			l.line++
		}
		if c == '\\' && l.pos+1 < l.end {
			next := l.src[l.pos+1]
			if next == '}' || next == '\\' || next == '"' {
				raw.WriteByte(next)
				l.pos += 2
				continue
			}
		}
		raw.WriteByte(c)
		l.pos++
	}

	text, tags := splitCommentTags(raw.String())
	tok.Type = CommentToken
	tok.Text = text
	tok.Tags = tags
	return tok, nil
}

// splitCommentTags removes [%key value] pairs from a comment body and
// returns the remaining text with whitespace collapsed.
func splitCommentTags(raw string) (string, map[string]string) {
	var tags map[string]string
	var text strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] == '[' && i+1 < len(raw) && raw[i+1] == '%' {
			close := strings.IndexByte(raw[i:], ']')
			if close > 0 {
				pair := raw[i+2 : i+close]
				key, value, _ := strings.Cut(pair, " ")
				if key != "" {
					if tags == nil {
						tags = make(map[string]string)
					}
					tags[key] = strings.TrimSpace(value)
				}
				i += close + 1
				continue
			}
		}
		text.WriteByte(raw[i])
		i++
	}
	return strings.Join(strings.Fields(text.String()), " "), tags
}

// skipGame advances past one game without building anything, honoring
// quoted header values, brace comments, and escape lines. It returns false
// when no game content remained. Afterwards pos sits at the start of the
// next game, or at end.
func (l *lexer) skipGame() bool {
	sawAny := false
	movetext := false
	for {
		l.skipSpace()
		if l.pos >= l.end {
			return sawAny
		}
		c := l.src[l.pos]
		switch c {
		case '[':
			if movetext {
				return sawAny
			}
			sawAny = true
			l.skipHeaderFast()
		case '{':
			sawAny, movetext = true, true
			l.skipCommentFast()
		case ';':
			for l.pos < l.end && l.src[l.pos] != '\n' {
				l.pos++
			}
		case '*':
			l.pos++
			l.skipSpace()
			return true
		case '(', ')', '}', ']':
			sawAny, movetext = true, true
			l.pos++
		default:
			sawAny, movetext = true, true
			start := l.pos
			for l.pos < l.end && !isBreakByte(l.src[l.pos]) {
				l.pos++
			}
			switch l.src[start:l.pos] {
			case "1-0", "0-1", "1/2-1/2", "1/2":
				l.skipSpace()
				return true
			}
		}
	}
}

// isBreakByte reports whether c terminates a bare movetext word.
func isBreakByte(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '[', ']', '{', '}', '(', ')', ';':
		return true
	}
	return false
}

// skipHeaderFast consumes a header token without interpreting it.
func (l *lexer) skipHeaderFast() {
	l.pos++ // '['
	inString := false
	for l.pos < l.end {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.line++
			if !inString {
				l.pos++
				return
			}
			l.pos++
		case c == '\\' && inString && l.pos+1 < l.end:
			l.pos += 2
		case c == '"':
			inString = !inString
			l.pos++
		case c == ']' && !inString:
			l.pos++
			return
		default:
			l.pos++
		}
	}
}

// skipCommentFast consumes a brace comment without interpreting it.
func (l *lexer) skipCommentFast() {
	l.pos++ // '{'
	for l.pos < l.end {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.line++
			l.pos++
		case c == '\\' && l.pos+1 < l.end:
			l.pos += 2
		case c == '}':
			l.pos++
			return
		default:
			l.pos++
		}
	}
}
