package layout

import (
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face7x13 advances 7px per glyph, which makes widths exact in tests.
var face = basicfont.Face7x13

func lineWidth(s string) int {
	return font.MeasureString(face, s).Round()
}

func TestWrapRespectsBudget(t *testing.T) {
	texts := []string{
		"Intro to Graph Databases",
		"a b c d e f g h i j k l m n o p",
		"one",
		"several words of moderately varying length assembled here",
	}
	budgets := []int{50, 100, 200, 1000}

	for _, text := range texts {
		for _, budget := range budgets {
			for _, line := range Wrap(text, face, budget) {
				if lineWidth(line) <= budget {
					continue
				}
				// Overflow is only allowed for a single over-wide word.
				if strings.ContainsRune(line, ' ') {
					t.Errorf("Wrap(%q, %d): line %q exceeds budget", text, budget, line)
				}
			}
		}
	}
}

func TestWrapOverwideWordAlone(t *testing.T) {
	lines := Wrap("hi incomprehensibilities by", face, 70)
	want := []string{"hi", "incomprehensibilities", "by"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %q", len(lines), lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapNeverSplitsWords(t *testing.T) {
	text := "antidisestablishmentarianism tiny"
	for _, line := range Wrap(text, face, 40) {
		for _, word := range strings.Fields(line) {
			if !strings.Contains(text, word) {
				t.Errorf("word %q was split or altered", word)
			}
		}
	}
}

func TestWrapEmpty(t *testing.T) {
	if lines := Wrap("", face, 100); len(lines) != 0 {
		t.Errorf("Wrap of empty text returned %q", lines)
	}
	if lines := Wrap("   \t  ", face, 100); len(lines) != 0 {
		t.Errorf("Wrap of blank text returned %q", lines)
	}
}

func TestAvatarDiameterPairSmaller(t *testing.T) {
	g := Default()
	single := g.AvatarDiameter(1)
	pair := g.AvatarDiameter(2)
	if pair >= single {
		t.Errorf("pair diameter %d not smaller than single %d", pair, single)
	}
	if none := g.AvatarDiameter(0); none != single {
		t.Errorf("zero-photo diameter %d differs from single %d", none, single)
	}
}

func TestAvatarDiameterValues(t *testing.T) {
	g := Default()
	if got := g.AvatarDiameter(1); got != 311 {
		t.Errorf("single diameter = %d, want 311", got)
	}
	if got := g.AvatarDiameter(2); got != 208 {
		t.Errorf("pair diameter = %d, want 208", got)
	}
}

func TestTitleTop(t *testing.T) {
	g := Default()
	tests := []struct {
		lines int
		want  int
	}{
		{1, 480},
		{3, 360},
		{5, 240},
		{9, 240}, // capped at MaxTitleLines
	}
	for _, tt := range tests {
		if got := g.TitleTop(tt.lines); got != tt.want {
			t.Errorf("TitleTop(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

func TestTitleMaxWidth(t *testing.T) {
	if got := Default().TitleMaxWidth(); got != 1120 {
		t.Errorf("TitleMaxWidth = %d, want 1120", got)
	}
}
