package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{0.0, "00:00:00,000"},
		{2.5, "00:00:02,500"},
		{59.999, "00:00:59,999"},
		{3661.5, "01:01:01,500"},
		// truncation, not rounding
		{0.9999, "00:00:00,999"},
		{1.0009, "00:00:01,000"},
		// hours grow past two digits instead of clamping
		{360000.0, "100:00:00,000"},
	}

	for _, tt := range tests {
		got := formatTimestamp(tt.sec, ",")
		if got != tt.want {
			t.Errorf("formatTimestamp(%v) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}

func TestRenderSingleCue(t *testing.T) {
	track := &Track{Cues: []Cue{
		{Index: 1, Start: 0, End: 2.5, Text: "Hi"},
	}}

	got, err := track.Render(FormatSRT)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:02,500\nHi\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderSeparatesBlocksWithBlankLine(t *testing.T) {
	track := &Track{Cues: []Cue{
		{Index: 1, Start: 0, End: 1.5, Text: "Hello"},
		{Index: 2, Start: 1.5, End: 3, Text: "world."},
	}}

	got, err := track.Render(FormatSRT)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:01,500\nHello\n" +
		"\n" +
		"2\n00:00:01,500 --> 00:00:03,000\nworld.\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderVTT(t *testing.T) {
	track := &Track{Cues: []Cue{
		{Index: 1, Start: 0, End: 2.5, Text: "Hi"},
	}}

	got, err := track.Render(FormatVTT)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := "WEBVTT\n\n1\n00:00:00.000 --> 00:00:02.500\nHi\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderEmptyTrack(t *testing.T) {
	track := &Track{}

	got, err := track.Render(FormatSRT)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty document, got %q", got)
	}
}

func TestRenderRejectsInvalidTimes(t *testing.T) {
	tests := []struct {
		name string
		cue  Cue
	}{
		{"negative start", Cue{Index: 1, Start: -1, End: 2, Text: "x"}},
		{"negative end", Cue{Index: 1, Start: 0, End: -2, Text: "x"}},
		{"end before start", Cue{Index: 1, Start: 3, End: 2, Text: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := &Track{Cues: []Cue{tt.cue}}
			if _, err := track.Render(FormatSRT); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "out.srt")

	track := &Track{Cues: []Cue{
		{Index: 1, Start: 0, End: 1, Text: "こんにちは"},
	}}

	if err := WriteFile(track, path, FormatSRT); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(content), "こんにちは") {
		t.Errorf("non-ASCII text not preserved, got %q", content)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"srt", FormatSRT, false},
		{"SRT", FormatSRT, false},
		{" vtt ", FormatVTT, false},
		{"ass", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
