package subtitle

import (
	"fmt"
	"strings"
)

// represents single subtitle cue
type Cue struct {
	Index int
	Start float64 // seconds from the beginning of the audio
	End   float64
	Text  string
}

// represents complete subtitle track
type Track struct {
	Cues     []Cue
	Language string
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "srt":
		return FormatSRT, nil
	case "vtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use srt or vtt", s)
	}
}

// file extension for a format
func ExtensionForFormat(format Format) string {
	switch format {
	case FormatVTT:
		return ".vtt"
	default:
		return ".srt"
	}
}
