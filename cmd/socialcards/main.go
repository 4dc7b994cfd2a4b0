package main

import (
	"flag"
	"fmt"
	"log"

	"socialcards/internal/cards"
	"socialcards/internal/fonts"
	"socialcards/internal/layout"
	"socialcards/internal/models"
	"socialcards/internal/photos"
)

func main() {
	sessionsFile := flag.String("sessions", "_data/sessions.json", "Path to sessions JSON file")
	speakersFile := flag.String("speakers", "_data/speakers.json", "Path to speakers JSON file")
	outputDir := flag.String("output", "images/social", "Output directory for generated cards")
	cacheDir := flag.String("cache", ".speaker_photo_cache", "Directory for cached speaker photos")
	templatePath := flag.String("template", "images/social/social_card_speaker_template_v2.png", "Path to the card background template")
	photoBase := flag.String("photo-base", "https://cfp.pydata.org/", "Base URL prepended to speaker picture paths")
	eventTitle := flag.String("event", "PyData Berlin 2025", "Event title shown on the fallback default card")
	flag.Parse()

	if err := run(*sessionsFile, *speakersFile, *outputDir, *cacheDir, *templatePath, *photoBase, *eventTitle); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(sessionsFile, speakersFile, outputDir, cacheDir, templatePath, photoBase, eventTitle string) error {
	sessions, err := models.LoadSessions(sessionsFile)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}
	fmt.Printf("Loaded %d sessions from %s\n", len(sessions), sessionsFile)

	speakers, err := models.LoadSpeakers(speakersFile)
	if err != nil {
		return fmt.Errorf("failed to load speakers: %w", err)
	}
	fmt.Printf("Loaded %d speakers from %s\n", len(speakers), speakersFile)

	fetcher, err := photos.NewFetcher(cacheDir)
	if err != nil {
		return fmt.Errorf("failed to set up photo cache: %w", err)
	}

	composer, err := cards.NewComposer(cards.Config{
		Speakers:     speakers,
		Fetcher:      fetcher,
		Fonts:        fonts.Load(),
		Geometry:     layout.Default(),
		TemplatePath: templatePath,
		OutputDir:    outputDir,
		PhotoBaseURL: photoBase,
		EventTitle:   eventTitle,
	})
	if err != nil {
		return err
	}

	return composer.GenerateAll(sessions)
}
