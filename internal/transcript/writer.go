package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mgpai22/whisperscribe/internal/subtitle"
)

// wall-clock prefix keeping repeated runs from colliding
const timestampLayout = "20060102_150405"

// writes the transcript to <dir>/<YYYYMMDD_HHMMSS>_output.txt, creating the
// directory if needed, and returns the path written
func SaveTranscript(text, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, now.Format(timestampLayout)+"_output.txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to write transcript: %w", err)
	}

	return path, nil
}

// subtitle path matching the transcript naming scheme
func SubtitlePath(dir string, now time.Time, format subtitle.Format) string {
	name := now.Format(timestampLayout) + "_output" + subtitle.ExtensionForFormat(format)
	return filepath.Join(dir, name)
}

// summary path matching the transcript naming scheme
func SummaryPath(dir string, now time.Time) string {
	return filepath.Join(dir, now.Format(timestampLayout)+"_summary.txt")
}
