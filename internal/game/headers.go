package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
)

// Result is the game outcome as it appears in the result header and the
// movetext end marker.
type Result int

const (
	ResultUnknown Result = iota
	ResultWhiteWins
	ResultBlackWins
	ResultDraw
)

// String returns the PGN rendering of the result.
func (r Result) String() string {
	switch r {
	case ResultWhiteWins:
		return "1-0"
	case ResultBlackWins:
		return "0-1"
	case ResultDraw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// ParseResult maps a PGN result marker to a Result.
func ParseResult(text string) (Result, bool) {
	switch text {
	case "1-0":
		return ResultWhiteWins, true
	case "0-1":
		return ResultBlackWins, true
	case "1/2-1/2":
		return ResultDraw, true
	case "*":
		return ResultUnknown, true
	}
	return ResultUnknown, false
}

// Date is a game date where any component may be unknown (zero).
type Date struct {
	Year  int
	Month int
	Day   int
}

// String renders the date in PGN form, with '?' placeholders for unknown
// components, e.g. "1972.07.11" or "????.??.??".
func (d Date) String() string {
	var sb strings.Builder
	if d.Year > 0 {
		fmt.Fprintf(&sb, "%04d", d.Year)
	} else {
		sb.WriteString("????")
	}
	sb.WriteByte('.')
	if d.Month > 0 {
		fmt.Fprintf(&sb, "%02d", d.Month)
	} else {
		sb.WriteString("??")
	}
	sb.WriteByte('.')
	if d.Day > 0 {
		fmt.Fprintf(&sb, "%02d", d.Day)
	} else {
		sb.WriteString("??")
	}
	return sb.String()
}

// IsZero reports whether every component is unknown.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// ParseDate reads a PGN date string. Unknown components may be written as
// any run of '?' characters. Components that fail to parse are treated as
// unknown rather than rejected, since real archives are full of loose
// date spellings.
func ParseDate(text string) Date {
	var d Date
	parts := strings.Split(text, ".")
	read := func(i int) int {
		if i >= len(parts) {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 {
			return 0
		}
		return n
	}
	d.Year = read(0)
	d.Month = read(1)
	d.Day = read(2)
	return d
}

// Headers holds the typed game metadata carried by the header section of a
// game. Zero values mean "unknown" and render as PGN placeholders. Tags
// outside the typed set are preserved in Extra for lossless round-trips.
type Headers struct {
	Event string
	Site  string
	Date  Date
	// Round, SubRound, and SubSubRound form the dotted round spelling
	// "4.2.1"; zero components are unknown and render as "?".
	Round       int
	SubRound    int
	SubSubRound int

	White      string
	Black      string
	WhiteElo   int
	BlackElo   int
	WhiteTitle string
	BlackTitle string

	Result Result

	Annotator    string
	ECO          string
	Opening      string
	Variation    string
	SubVariation string
	Termination  string

	Extra map[string]string
}

// RoundString renders the round header value, e.g. "3", "4.2", "4.2.1",
// or "?".
func (h *Headers) RoundString() string {
	if h.Round == 0 {
		return "?"
	}
	s := strconv.Itoa(h.Round)
	if h.SubRound != 0 || h.SubSubRound != 0 {
		s += "." + strconv.Itoa(h.SubRound)
	}
	if h.SubSubRound != 0 {
		s += "." + strconv.Itoa(h.SubSubRound)
	}
	return s
}

// SetRoundString parses a dotted round value of up to three components.
// "?" and "-" mean unknown.
func (h *Headers) SetRoundString(text string) error {
	h.Round, h.SubRound, h.SubSubRound = 0, 0, 0
	text = strings.TrimSpace(text)
	if text == "" || text == "?" || text == "-" {
		return nil
	}
	parts := strings.Split(text, ".")
	if len(parts) > 3 {
		return errors.Wrapf(errors.ErrIllegalArgument, "malformed round %q", text)
	}
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return errors.Wrapf(errors.ErrIllegalArgument, "malformed round %q", text)
		}
		nums[i] = n
	}
	h.Round, h.SubRound, h.SubSubRound = nums[0], nums[1], nums[2]
	return nil
}

// SetExtra records a tag outside the typed header set.
func (h *Headers) SetExtra(key, value string) {
	if h.Extra == nil {
		h.Extra = make(map[string]string)
	}
	h.Extra[key] = value
}
