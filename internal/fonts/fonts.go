package fonts

import (
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Well-known font locations, first existing one wins.
var systemFontPaths = []string{
	"/System/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

const (
	titleSize     = 46
	subtitleSize  = 28
	smallSize     = 24
	eventInfoSize = 42
)

// Set holds the faces used on a card.
type Set struct {
	Title     font.Face
	Subtitle  font.Face
	Small     font.Face
	EventInfo font.Face
}

// Load resolves a font from the system paths, falling back to the
// embedded Go Regular font. Never fails: worst case is the minimal
// built-in bitmap face.
func Load() *Set {
	return LoadFrom(systemFontPaths)
}

func LoadFrom(paths []string) *Set {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fnt, err := truetype.Parse(data)
		if err != nil {
			log.Printf("Skipping font %s: %v", path, err)
			continue
		}
		return newSet(fnt)
	}

	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("Warning: using minimal built-in font, text may not render as expected: %v", err)
		return &Set{
			Title:     basicfont.Face7x13,
			Subtitle:  basicfont.Face7x13,
			Small:     basicfont.Face7x13,
			EventInfo: basicfont.Face7x13,
		}
	}
	log.Printf("Warning: no system font found, using embedded Go Regular")
	return newSet(fnt)
}

func newSet(fnt *truetype.Font) *Set {
	face := func(size float64) font.Face {
		return truetype.NewFace(fnt, &truetype.Options{Size: size})
	}
	return &Set{
		Title:     face(titleSize),
		Subtitle:  face(subtitleSize),
		Small:     face(smallSize),
		EventInfo: face(eventInfoSize),
	}
}
