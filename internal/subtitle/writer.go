package subtitle

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// renders the track as a complete subtitle document.
//
// Each cue becomes one block:
//
//	<index>
//	<start> --> <end>
//	<text>
//
// Blocks are separated by a single blank line. The document does not end
// with a blank line; the last block ends with one newline after its text.
func (t *Track) Render(format Format) (string, error) {
	blocks := make([]string, 0, len(t.Cues))

	for _, cue := range t.Cues {
		if cue.Start < 0 || cue.End < 0 {
			return "", fmt.Errorf(
				"cue %d has negative time span %f..%f",
				cue.Index, cue.Start, cue.End,
			)
		}
		if cue.End < cue.Start {
			return "", fmt.Errorf(
				"cue %d ends at %f before it starts at %f",
				cue.Index, cue.End, cue.Start,
			)
		}
		blocks = append(blocks, renderBlock(cue, format))
	}

	doc := strings.Join(blocks, "\n")
	if format == FormatVTT {
		doc = "WEBVTT\n\n" + doc
	}

	return doc, nil
}

func renderBlock(cue Cue, format Format) string {
	sep := ","
	if format == FormatVTT {
		sep = "."
	}

	return fmt.Sprintf("%d\n%s --> %s\n%s\n",
		cue.Index,
		formatTimestamp(cue.Start, sep),
		formatTimestamp(cue.End, sep),
		cue.Text,
	)
}

// formats seconds as HH:MM:SS<sep>mmm, truncating at every unit boundary.
// Hours are not clamped; values past 99 hours simply use more digits.
// The caller guarantees sec is non-negative.
func formatTimestamp(sec float64, sep string) string {
	return fmt.Sprintf("%02d:%02d:%02d%s%03d",
		int(sec/3600),
		int(math.Mod(sec, 3600)/60),
		int(math.Mod(sec, 60)),
		sep,
		int(math.Mod(sec, 1)*1000),
	)
}

// renders the track and writes it to path, creating the parent directory
// if needed
func WriteFile(track *Track, path string, format Format) error {
	doc, err := track.Render(format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return os.WriteFile(path, []byte(doc), 0644)
}
