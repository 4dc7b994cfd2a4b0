package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSessions(t *testing.T) {
	path := writeFile(t, "sessions.json", `[
		{
			"ID": "ABC123",
			"Proposal title": "Intro to Graph Databases",
			"Session type": {"en": "Talk"},
			"Track": "Databases",
			"Abstract": "Short version.",
			"Description": "Long version.",
			"Speaker IDs": ["sp1", "sp2"],
			"Speaker names": ["Ada", "Grace"],
			"Room": {"en": "Main Hall"},
			"Start": "2025-09-01T10:00:00"
		}
	]`)

	got, err := LoadSessions(path)
	if err != nil {
		t.Fatalf("LoadSessions: %v", err)
	}

	want := []Session{{
		ID:           "ABC123",
		Title:        "Intro to Graph Databases",
		SessionType:  "Talk",
		Track:        "Databases",
		Abstract:     "Short version.",
		Description:  "Long version.",
		SpeakerIDs:   []string{"sp1", "sp2"},
		SpeakerNames: []string{"Ada", "Grace"},
		Room:         "Main Hall",
		Start:        "2025-09-01T10:00:00",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sessions mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSessionsMissingFile(t *testing.T) {
	if _, err := LoadSessions(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadSpeakers(t *testing.T) {
	path := writeFile(t, "speakers.json", `[
		{"ID": "sp1", "Name": "Ada", "Picture": "media/ada.jpg", "Proposal IDs": ["ABC123"]},
		{"ID": "sp2", "Name": "Grace", "Proposal IDs": ["ABC123"]}
	]`)

	got, err := LoadSpeakers(path)
	if err != nil {
		t.Fatalf("LoadSpeakers: %v", err)
	}

	want := map[string]Speaker{
		"sp1": {ID: "sp1", Name: "Ada", Picture: "media/ada.jpg", ProposalIDs: []string{"ABC123"}},
		"sp2": {ID: "sp2", Name: "Grace", ProposalIDs: []string{"ABC123"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("speakers mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalizedStringForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want LocalizedString
	}{
		{"bare string", `"Talk"`, "Talk"},
		{"object", `{"en": "Workshop"}`, "Workshop"},
		{"empty object", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got LocalizedString
			if err := got.UnmarshalJSON([]byte(tt.in)); err != nil {
				t.Fatalf("UnmarshalJSON(%s): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
