package text

import (
	"fmt"
	"image/color"
	"regexp"
	"strings"
	"unicode"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Placeholders drawn when a fallback tier strips the text down to nothing.
const (
	placeholderSpecial = "[Content with special characters]"
	placeholderASCII   = "[Special content]"
	placeholderMinimal = "[Text]"
)

var (
	unsafeChars = regexp.MustCompile(`[^\w\s\-.,!?:;()[\]{}"'\\/]`)
	spaceRuns   = regexp.MustCompile(`\s+`)
)

// ParseHex parses a "#rrggbb" or "rrggbb" color string.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// CleanASCII strips every rune that is not an ASCII letter, digit,
// whitespace, or punctuation. Session titles can carry emoji and other
// Unicode the card fonts cannot shape.
func CleanASCII(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > unicode.MaxASCII {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) ||
			unicode.IsPunct(r) || unicode.IsSymbol(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripUnsafe keeps only word characters, whitespace and common
// punctuation, collapsing whitespace runs.
func stripUnsafe(s string) string {
	s = unsafeChars.ReplaceAllString(s, " ")
	return strings.TrimSpace(spaceRuns.ReplaceAllString(s, " "))
}

// forceASCII drops every non-ASCII byte.
func forceASCII(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// attempt is one tier of the rendering cascade: a text variant plus the
// face to draw it with.
type attempt struct {
	text string
	face font.Face
}

// Draw renders text with its baseline at (x, y) and never fails: if a
// tier cannot be drawn, the next more conservative one is tried, ending
// with a fixed placeholder under a built-in face. Truetype faces can
// panic on glyphs the font cannot index, so each tier runs under recover.
func Draw(dc *gg.Context, s string, x, y float64, face font.Face, col color.Color) {
	s = CleanASCII(s)

	tiers := []func() attempt{
		func() attempt { return attempt{s, face} },
		func() attempt {
			t := stripUnsafe(s)
			if t == "" {
				t = placeholderSpecial
			}
			return attempt{t, face}
		},
		func() attempt {
			t := forceASCII(s)
			if t == "" {
				t = placeholderASCII
			}
			return attempt{t, face}
		},
		func() attempt {
			t := forceASCII(s)
			if t == "" {
				t = placeholderASCII
			}
			return attempt{t, basicfont.Face7x13}
		},
		func() attempt { return attempt{placeholderMinimal, basicfont.Face7x13} },
	}

	for _, tier := range tiers {
		a := tier()
		if tryDraw(dc, a.text, x, y, a.face, col) == nil {
			return
		}
	}
}

func tryDraw(dc *gg.Context, s string, x, y float64, face font.Face, col color.Color) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("draw %q: %v", s, r)
		}
	}()
	dc.SetFontFace(face)
	dc.SetColor(col)
	dc.DrawString(s, x, y)
	return nil
}
