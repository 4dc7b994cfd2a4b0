package cards

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"socialcards/internal/fonts"
	"socialcards/internal/layout"
	"socialcards/internal/models"
	"socialcards/internal/photos"
	"socialcards/internal/text"
)

// DefaultCardName is the filename of the fallback card used by session
// pages that have no card of their own. Session ids never collide with
// it because session cards are named {id}.png.
const DefaultCardName = "social_card_default.png"

// ErrTemplateMissing is the one unrecoverable error: without the
// background template no card can be composed.
var ErrTemplateMissing = errors.New("card template not found")

// Config carries the composer's collaborators. The speaker index and
// photo fetcher are injected so their lifetime is scoped to one run.
type Config struct {
	Speakers     map[string]models.Speaker
	Fetcher      *photos.Fetcher
	Fonts        *fonts.Set
	Geometry     layout.Geometry
	TemplatePath string
	OutputDir    string
	PhotoBaseURL string
	EventTitle   string
}

// Composer produces one social card per session plus the default card.
type Composer struct {
	cfg        Config
	textColor  color.RGBA
	background color.RGBA
}

func NewComposer(cfg Config) (*Composer, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	textColor, err := text.ParseHex(cfg.Geometry.TextColor)
	if err != nil {
		return nil, err
	}
	background, err := text.ParseHex(cfg.Geometry.BackgroundColor)
	if err != nil {
		return nil, err
	}

	return &Composer{cfg: cfg, textColor: textColor, background: background}, nil
}

func (c *Composer) loadTemplate() (image.Image, error) {
	img, err := imaging.Open(c.cfg.TemplatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, c.cfg.TemplatePath)
		}
		return nil, fmt.Errorf("failed to load template %s: %w", c.cfg.TemplatePath, err)
	}
	return img, nil
}

// resolvePhotos downloads photos for the session's first MaxPhotos
// speakers. Unknown speakers, speakers without a picture, and failed
// downloads are skipped.
func (c *Composer) resolvePhotos(s models.Session) []image.Image {
	ids := s.SpeakerIDs
	if len(ids) > c.cfg.Geometry.MaxPhotos {
		ids = ids[:c.cfg.Geometry.MaxPhotos]
	}

	var imgs []image.Image
	for _, id := range ids {
		sp, ok := c.cfg.Speakers[id]
		if !ok || sp.Picture == "" {
			continue
		}
		if img := c.cfg.Fetcher.Fetch(c.cfg.PhotoBaseURL + sp.Picture); img != nil {
			imgs = append(imgs, img)
		}
	}
	return imgs
}

func (c *Composer) speakerNames(s models.Session) []string {
	ids := s.SpeakerIDs
	if len(ids) > c.cfg.Geometry.MaxNames {
		ids = ids[:c.cfg.Geometry.MaxNames]
	}

	var names []string
	for _, id := range ids {
		if sp, ok := c.cfg.Speakers[id]; ok {
			names = append(names, sp.Name)
		}
	}
	return names
}

// CreateSessionCard composes and writes {session.ID}.png.
func (c *Composer) CreateSessionCard(s models.Session) error {
	tpl, err := c.loadTemplate()
	if err != nil {
		return err
	}

	geo := c.cfg.Geometry
	b := tpl.Bounds()
	w, h := b.Dx(), b.Dy()

	// Flatten the template onto opaque white so the output has no alpha.
	canvas := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
	canvas = imaging.Overlay(canvas, tpl, image.Point{}, 1.0)
	dc := gg.NewContextForImage(canvas)

	imgs := c.resolvePhotos(s)
	diameter := geo.AvatarDiameter(len(imgs))
	x := geo.PhotoMarginX
	for _, img := range imgs {
		dc.DrawImage(photos.Circle(img, diameter), x, geo.PhotoMarginY)
		x += diameter + geo.PhotoGap
	}

	lines := layout.Wrap(s.Title, c.cfg.Fonts.Title, geo.TitleMaxWidth())
	if len(lines) > geo.MaxTitleLines {
		lines = lines[:geo.MaxTitleLines]
	}
	top := geo.TitleTop(len(lines))
	ascent := c.cfg.Fonts.Title.Metrics().Ascent.Ceil()
	for i, line := range lines {
		y := float64(top + i*geo.TitleLineHeight + ascent)
		text.Draw(dc, line, float64(geo.TitleX), y, c.cfg.Fonts.Title, c.textColor)
	}

	if names := c.speakerNames(s); len(names) > 0 {
		joined := strings.Join(names, geo.NameSeparator)
		y := float64(h - geo.NamesBottomOffset + c.cfg.Fonts.Subtitle.Metrics().Ascent.Ceil())
		text.Draw(dc, joined, float64(geo.TitleX), y, c.cfg.Fonts.Subtitle, c.textColor)
	}

	return dc.SavePNG(filepath.Join(c.cfg.OutputDir, s.ID+".png"))
}

// CreateDefaultCard writes the fallback card: the template as-is when
// present, otherwise a solid background with the event title centered.
func (c *Composer) CreateDefaultCard() error {
	outPath := filepath.Join(c.cfg.OutputDir, DefaultCardName)

	if tpl, err := imaging.Open(c.cfg.TemplatePath); err == nil {
		return imaging.Save(tpl, outPath)
	}

	geo := c.cfg.Geometry
	dc := gg.NewContext(geo.CardWidth, geo.CardHeight)
	dc.SetColor(c.background)
	dc.Clear()
	dc.SetFontFace(c.cfg.Fonts.Title)
	dc.SetColor(c.textColor)
	dc.DrawStringAnchored(c.cfg.EventTitle, float64(geo.CardWidth)/2, float64(geo.CardHeight)/2, 0.5, 0.5)
	return dc.SavePNG(outPath)
}

// GenerateAll produces one card per session in input order, then the
// default card. Per-session failures are logged and counted but do not
// stop the batch; only a missing template aborts the whole run, before
// any card is written.
func (c *Composer) GenerateAll(sessions []models.Session) error {
	if _, err := os.Stat(c.cfg.TemplatePath); err != nil {
		return fmt.Errorf("%w: %s", ErrTemplateMissing, c.cfg.TemplatePath)
	}

	generated, failed := 0, 0
	for i, s := range sessions {
		if err := c.createSessionCardSafe(s); err != nil {
			failed++
			log.Printf("[%d/%d] Failed to generate %s: %v", i+1, len(sessions), s.ID, err)
			continue
		}
		generated++
		fmt.Printf("[%d/%d] Generated %s\n", i+1, len(sessions), s.ID)
	}

	if err := c.CreateDefaultCard(); err != nil {
		log.Printf("Failed to generate default card: %v", err)
	} else {
		fmt.Println("Generated default card")
	}

	fmt.Printf("Generated %d cards, %d failed\n", generated, failed)
	return nil
}

func (c *Composer) createSessionCardSafe(s models.Session) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c.CreateSessionCard(s)
}
