package layout

import (
	"strings"

	"golang.org/x/image/font"
)

// Geometry collects every visual tuning constant for the card layout so
// the card dimensions can be changed without touching composition code.
type Geometry struct {
	CardWidth  int
	CardHeight int

	PhotoMarginX int
	PhotoMarginY int
	PhotoGap     int
	MaxPhotos    int

	// Avatar diameter as a fraction of card height. PairScale is the
	// extra reduction applied when two photos share the row.
	SingleScale float64
	PairScale   float64

	TitleX          int
	TitleWidthInset int
	TitleLineHeight int
	TitleAnchorY    int
	MaxTitleLines   int

	MaxNames          int
	NameSeparator     string
	NamesBottomOffset int

	TextColor       string
	BackgroundColor string
}

func Default() Geometry {
	return Geometry{
		CardWidth:  1200,
		CardHeight: 630,

		PhotoMarginX: 40,
		PhotoMarginY: 50,
		PhotoGap:     20,
		MaxPhotos:    2,

		SingleScale: 0.495,
		PairScale:   0.67,

		TitleX:          40,
		TitleWidthInset: 80,
		TitleLineHeight: 60,
		TitleAnchorY:    540,
		MaxTitleLines:   5,

		MaxNames:          3,
		NameSeparator:     " • ",
		NamesBottomOffset: 80,

		TextColor:       "#ffffff",
		BackgroundColor: "#7B3F99",
	}
}

// TitleMaxWidth is the pixel budget for wrapped title lines.
func (g Geometry) TitleMaxWidth() int {
	return g.CardWidth - g.TitleWidthInset
}

// AvatarDiameter returns the avatar size for the given number of
// resolved photos. Two photos are shrunk so they cannot collide.
func (g Geometry) AvatarDiameter(photoCount int) int {
	d := float64(g.CardHeight) * g.SingleScale
	if photoCount == 2 {
		d *= g.PairScale
	}
	return int(d)
}

// TitleTop returns the y coordinate of the title block's first line such
// that the block's bottom edge lands on TitleAnchorY. Lines beyond
// MaxTitleLines do not count: they are dropped, not squeezed in.
func (g Geometry) TitleTop(lineCount int) int {
	if lineCount > g.MaxTitleLines {
		lineCount = g.MaxTitleLines
	}
	return g.TitleAnchorY - lineCount*g.TitleLineHeight
}

// Wrap splits text into lines whose rendered width stays within
// maxWidth. Greedy: words are appended to the current line until one no
// longer fits. A single word wider than the budget gets its own line and
// is allowed to overflow; words are never split.
func Wrap(text string, face font.Face, maxWidth int) []string {
	var lines []string
	var current []string

	for _, word := range strings.Fields(text) {
		candidate := strings.Join(append(current, word), " ")
		if font.MeasureString(face, candidate).Round() <= maxWidth {
			current = append(current, word)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
		current = []string{word}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}
