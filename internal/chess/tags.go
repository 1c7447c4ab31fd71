package chess

// Standard PGN tag names used by the headers and the writer.
const (
	TagAnnotator    = "Annotator"
	TagBlack        = "Black"
	TagBlackElo     = "BlackElo"
	TagBlackTitle   = "BlackTitle"
	TagDate         = "Date"
	TagECO          = "ECO"
	TagEvent        = "Event"
	TagFEN          = "FEN"
	TagOpening      = "Opening"
	TagResult       = "Result"
	TagRound        = "Round"
	TagSetUp        = "SetUp"
	TagSite         = "Site"
	TagSubVariation = "SubVariation"
	TagTermination  = "Termination"
	TagVariant      = "Variant"
	TagVariation    = "Variation"
	TagWhite        = "White"
	TagWhiteElo     = "WhiteElo"
	TagWhiteTitle   = "WhiteTitle"
)

// SevenTagRoster contains the seven mandatory PGN tags in their required
// output order.
var SevenTagRoster = []string{
	TagEvent,
	TagSite,
	TagDate,
	TagRound,
	TagWhite,
	TagBlack,
	TagResult,
}

// OptionalTagOrder is the fixed order in which optional tags are written
// after the seven tag roster.
var OptionalTagOrder = []string{
	TagAnnotator,
	TagBlackElo,
	TagBlackTitle,
	TagECO,
	TagOpening,
	TagSubVariation,
	TagTermination,
	TagVariation,
	TagWhiteElo,
	TagWhiteTitle,
}

// IsSevenTagRosterTag returns true if name is one of the seven mandatory tags.
func IsSevenTagRosterTag(name string) bool {
	for _, tag := range SevenTagRoster {
		if tag == name {
			return true
		}
	}
	return false
}
