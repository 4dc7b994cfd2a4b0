package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// LocalizedString accepts either a bare string or an object of the form
// {"en": "..."} — the export format uses both for the same fields.
type LocalizedString string

func (l *LocalizedString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = LocalizedString(s)
		return nil
	}
	var obj struct {
		En string `json:"en"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("localized string: %w", err)
	}
	*l = LocalizedString(obj.En)
	return nil
}

func (l LocalizedString) String() string { return string(l) }

// Session is one conference session as exported by the CfP system.
// Loaded once per run and never mutated.
type Session struct {
	ID           string          `json:"ID"`
	Title        string          `json:"Proposal title"`
	SessionType  LocalizedString `json:"Session type"`
	Track        LocalizedString `json:"Track"`
	Abstract     string          `json:"Abstract"`
	Description  string          `json:"Description"`
	SpeakerIDs   []string        `json:"Speaker IDs"`
	SpeakerNames []string        `json:"Speaker names"`
	Room         LocalizedString `json:"Room"`
	Start        string          `json:"Start"`
}

// Speaker is one speaker record. Picture is a path fragment relative to
// the CfP host, empty when the speaker uploaded no photo.
type Speaker struct {
	ID          string   `json:"ID"`
	Name        string   `json:"Name"`
	Biography   string   `json:"Biography"`
	Picture     string   `json:"Picture"`
	ProposalIDs []string `json:"Proposal IDs"`
	Position    string   `json:"Position / Job"`
	Homepage    string   `json:"Homepage"`
	LinkedIn    string   `json:"LinkedIn"`
	Github      string   `json:"Github"`
	Mastodon    string   `json:"Mastodon"`
	Bluesky     string   `json:"Bluesky"`
	Twitter     string   `json:"X / Twitter"`
}

func LoadSessions(path string) ([]Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sessions []Session
	if err := json.NewDecoder(f).Decode(&sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions from %s: %w", path, err)
	}
	return sessions, nil
}

// LoadSpeakers returns the speakers indexed by ID.
func LoadSpeakers(path string) (map[string]Speaker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var speakers []Speaker
	if err := json.NewDecoder(f).Decode(&speakers); err != nil {
		return nil, fmt.Errorf("failed to decode speakers from %s: %w", path, err)
	}

	byID := make(map[string]Speaker, len(speakers))
	for _, sp := range speakers {
		byID[sp.ID] = sp
	}
	return byID, nil
}
