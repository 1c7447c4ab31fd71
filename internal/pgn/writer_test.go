package pgn_test

import (
	"strings"
	"testing"

	"github.com/lgbarn/pgn-tree-go/internal/engine"
	"github.com/lgbarn/pgn-tree-go/internal/pgn"
	"github.com/lgbarn/pgn-tree-go/internal/testutil"
)

func TestFormatGameNormalizes(t *testing.T) {
	g := testutil.MustParseGame(t, "[Event \"Test\"]\n\n1.e4 ( 1.d4 d5 ) e5 *\n")
	want := `[Event "Test"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "?"]
[Black "?"]
[Result "*"]

1. e4 ( 1. d4 d5 ) 1... e5 *
`
	testutil.AssertEqual(t, pgn.FormatGame(g), want)
}

func TestFormatGameIsAFixedPoint(t *testing.T) {
	g := testutil.MustParseGame(t, `[Event "Rich"]
[White "A"]
[Black "B"]
[Result "1-0"]

1. e4 $1 {[%clk 0:05:00] sharp} e5 (1... c5 2. Nf3) 2. Nf3 1-0
`)
	first := pgn.FormatGame(g)
	again, err := pgn.ReadGame(first)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pgn.FormatGame(again), first)
}

func TestFormatGameAnnotations(t *testing.T) {
	g := testutil.MustParseGame(t, "1. e4 $1 $13 {[%clk 0:05:00] sharp} e5 *\n")
	out := pgn.FormatGame(g)
	testutil.AssertContains(t, out, "1. e4 $1 $13 {[%clk 0:05:00] sharp} 1... e5 *")
}

func TestFormatGameLongVariation(t *testing.T) {
	g := testutil.MustParseGame(t, `1. e4 e5

(1... c5)

2. Nf3 *
`)
	out := pgn.FormatGame(g)
	testutil.AssertContains(t, out, "1. e4 e5\n( 1... c5 )\n2. Nf3 *")
}

func TestFormatGameLongComment(t *testing.T) {
	g := testutil.MustParseGame(t, `1. e4 e5

{The open games lead to classical piece play.} 2. Nf3 *
`)
	out := pgn.FormatGame(g)
	testutil.AssertContains(t, out,
		"1. e4 e5\n{The open games lead to classical piece play.}\n2. Nf3 *")
}

func TestFormatGamePositionHeaders(t *testing.T) {
	g := testutil.MustParseGame(t, `[SetUp "1"]
[FEN "4k3/8/8/8/8/8/4P3/4K3 w - - 0 40"]

40. e4 *
`)
	out := pgn.FormatGame(g)
	testutil.AssertContains(t, out, "[SetUp \"1\"]\n[FEN \"4k3/8/8/8/8/8/4P3/4K3 w - - 0 40\"]\n")
	testutil.AssertContains(t, out, "40. e4 *")
}

func TestFormatGameVariantHeader(t *testing.T) {
	g := testutil.MustParseGame(t, "[Variant \"Antichess\"]\n\n1. e3 *\n")
	testutil.AssertEqual(t, g.Variant(), engine.Antichess)
	testutil.AssertContains(t, pgn.FormatGame(g), "[Variant \"Antichess\"]\n")
}

func TestFormatGameRoundHeader(t *testing.T) {
	// All three round components survive a read/write cycle.
	g := testutil.MustParseGame(t, "[Round \"4.2.1\"]\n\n1. e4 *\n")
	testutil.AssertEqual(t, g.Headers.Round, 4)
	testutil.AssertEqual(t, g.Headers.SubRound, 2)
	testutil.AssertEqual(t, g.Headers.SubSubRound, 1)
	testutil.AssertContains(t, pgn.FormatGame(g), "[Round \"4.2.1\"]\n")
}

func TestFormatGameEscapesHeaderValues(t *testing.T) {
	g := testutil.MustParseGame(t, `[Event "A \"B\" \\ C"]

*
`)
	out := pgn.FormatGame(g)
	testutil.AssertContains(t, out, `[Event "A \"B\" \\ C"]`)

	again, err := pgn.ReadGame(out)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, again.Headers.Event, `A "B" \ C`)
}

func TestWriterWrapsAtLineWidth(t *testing.T) {
	g := testutil.MustParseGame(t,
		"1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Ba4 Nf6 5. O-O Be7 6. Re1 b5 7. Bb3 d6 8. c3 O-O *\n")

	var sb strings.Builder
	wr := &pgn.Writer{LineWidth: 20}
	testutil.AssertNoError(t, wr.Write(&sb, g))

	_, movetext, found := strings.Cut(sb.String(), "\n\n")
	testutil.AssertTrue(t, found)
	for _, line := range strings.Split(strings.TrimRight(movetext, "\n"), "\n") {
		if len(line) > 20 {
			t.Errorf("line exceeds wrap column: %q", line)
		}
	}

	again, err := pgn.ReadGame(sb.String())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, again.MainVariation().Length(), 16)
}
