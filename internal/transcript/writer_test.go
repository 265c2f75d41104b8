package transcript

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mgpai22/whisperscribe/internal/subtitle"
)

func TestSaveTranscript(t *testing.T) {
	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "output")
	now := time.Date(2024, 3, 9, 14, 5, 33, 0, time.UTC)

	path, err := SaveTranscript("Hello, 世界.", outDir, now)
	if err != nil {
		t.Fatalf("SaveTranscript failed: %v", err)
	}

	want := filepath.Join(outDir, "20240309_140533_output.txt")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read transcript: %v", err)
	}
	if string(content) != "Hello, 世界." {
		t.Errorf("content = %q, want %q", content, "Hello, 世界.")
	}
}

func TestSaveTranscriptIsIdempotentOnExistingDir(t *testing.T) {
	tmpDir := t.TempDir()
	now := time.Date(2024, 3, 9, 14, 5, 33, 0, time.UTC)

	if _, err := SaveTranscript("first", tmpDir, now); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if _, err := SaveTranscript("second", tmpDir, now.Add(time.Second)); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 files, got %d", len(entries))
	}
}

func TestArtifactPathsShareNaming(t *testing.T) {
	now := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)

	srt := SubtitlePath("out", now, subtitle.FormatSRT)
	if srt != filepath.Join("out", "20251231_235959_output.srt") {
		t.Errorf("SubtitlePath = %q", srt)
	}

	vtt := SubtitlePath("out", now, subtitle.FormatVTT)
	if vtt != filepath.Join("out", "20251231_235959_output.vtt") {
		t.Errorf("SubtitlePath = %q", vtt)
	}

	sum := SummaryPath("out", now)
	if sum != filepath.Join("out", "20251231_235959_summary.txt") {
		t.Errorf("SummaryPath = %q", sum)
	}
}
