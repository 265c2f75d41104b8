package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// implements Engine using the OpenAI audio API
type OpenAIEngine struct {
	client  openai.Client
	model   string
	options Options
}

// segment from the Whisper verbose_json response
type whisperSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// verbose_json response structure from Whisper
type whisperVerboseResponse struct {
	Text     string           `json:"text"`
	Segments []whisperSegment `json:"segments"`
	Language string           `json:"language"`
	Duration float64          `json:"duration"`
}

func NewOpenAIEngine(opts Options) (*OpenAIEngine, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(opts.APIKey))

	model := opts.Model
	if model == "" {
		model = "whisper-1"
	}

	return &OpenAIEngine{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

// The API returns the whole response at once, so the stream handed back is a
// slice adapter rather than a live decode feed.
func (e *OpenAIEngine) Transcribe(
	ctx context.Context,
	audioPath string,
) (Stream, *Info, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	params := openai.AudioTranscriptionNewParams{
		File:                   file,
		Model:                  openai.AudioModel(e.model),
		ResponseFormat:         openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []string{"segment"},
	}

	if e.options.Language != "" {
		params.Language = openai.String(e.options.Language)
	}
	if e.options.Prompt != "" {
		params.Prompt = openai.String(e.options.Prompt)
	}

	resp, err := e.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("transcription failed: %w", err)
	}

	segments, info, err := parseVerboseJSON(resp.RawJSON())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse verbose_json response: %w", err)
	}

	return NewSliceStream(segments), info, nil
}

func parseVerboseJSON(rawJSON string) ([]Segment, *Info, error) {
	if rawJSON == "" {
		return nil, nil, fmt.Errorf("empty response")
	}

	var resp whisperVerboseResponse
	if err := json.Unmarshal([]byte(rawJSON), &resp); err != nil {
		return nil, nil, err
	}

	info := &Info{Duration: resp.Duration, Language: resp.Language}

	if len(resp.Segments) == 0 {
		if resp.Text == "" {
			return nil, nil, fmt.Errorf("no segments or text in response")
		}
		// single-segment fallback covering the whole file
		return []Segment{{End: resp.Duration, Text: resp.Text}}, info, nil
	}

	segments := make([]Segment, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		segments = append(segments, Segment{End: seg.End, Text: seg.Text})
	}

	return segments, info, nil
}
