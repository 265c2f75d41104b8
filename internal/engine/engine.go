package engine

import (
	"context"
	"fmt"
)

// Segment is one decoded span of speech. Start offsets are not reported by
// every backend, so consumers derive them from the previous segment's end.
type Segment struct {
	End  float64 // seconds from the beginning of the audio
	Text string
}

// Stream is a lazy, single-pass source of segments. Next returns io.EOF when
// decoding has finished and any other error when the backend fails
// mid-stream. A Stream is not safe for re-iteration.
type Stream interface {
	Next() (Segment, error)
	Close() error
}

// Info is the metadata a backend reports alongside the segment stream.
type Info struct {
	Duration float64 // total audio duration in seconds
	Language string
}

// Engine is the recognition boundary. Transcribe starts decoding the given
// audio file and returns the segment stream plus metadata. The stream must be
// fully consumed or closed.
type Engine interface {
	Transcribe(ctx context.Context, audioPath string) (Stream, *Info, error)
}

// transcription engine provider
type Provider string

const (
	ProviderFasterWhisper Provider = "fasterwhisper"
	ProviderOpenAI        Provider = "openai"
	ProviderGemini        Provider = "gemini"
)

// decoding options
type Options struct {
	Model    string
	Device   string // auto|cpu|cuda
	Language string
	BeamSize int
	APIKey   string
	Prompt   string
}

// creates an engine based on provider
func Factory(ctx context.Context, provider Provider, opts Options) (Engine, error) {
	switch provider {
	case ProviderFasterWhisper:
		return NewFasterWhisperEngine(opts)
	case ProviderOpenAI:
		return NewOpenAIEngine(opts)
	case ProviderGemini:
		return NewGeminiEngine(ctx, opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
