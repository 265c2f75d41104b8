package transcript

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mgpai22/whisperscribe/internal/engine"
	"github.com/mgpai22/whisperscribe/internal/subtitle"
)

var ErrNonMonotonic = errors.New("segment end precedes running start")

// holds the artifacts of one full pass over a segment stream
type Result struct {
	Transcript string
	Cues       []subtitle.Cue
}

// Accumulate consumes the segment stream in a single forward pass and builds
// the transcript plus the cue list. Cues are numbered from 1; each cue starts
// where the previous one ended, with the first starting at 0. onProgress, if
// set, receives the seconds of audio newly covered by each segment.
//
// Any stream error aborts the pass; nothing accumulated so far is returned.
func Accumulate(stream engine.Stream, onProgress func(delta float64)) (*Result, error) {
	var (
		fragments []string
		cues      []subtitle.Cue
		start     float64
	)

	for index := 1; ; index++ {
		seg, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if seg.End < start {
			return nil, fmt.Errorf(
				"%w: segment %d ends at %f but the previous cue ended at %f",
				ErrNonMonotonic, index, seg.End, start,
			)
		}

		cues = append(cues, subtitle.Cue{
			Index: index,
			Start: start,
			End:   seg.End,
			Text:  seg.Text,
		})
		fragments = append(fragments, seg.Text)

		if onProgress != nil {
			onProgress(seg.End - start)
		}
		start = seg.End
	}

	return &Result{
		Transcript: strings.Join(fragments, " "),
		Cues:       cues,
	}, nil
}
