package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"google.golang.org/genai"
)

// implements Engine using Google Gemini
type GeminiEngine struct {
	client  *genai.Client
	model   string
	options Options
}

// segment from Gemini's JSON response
type geminiSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

func NewGeminiEngine(ctx context.Context, opts Options) (*GeminiEngine, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: opts.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiEngine{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (e *GeminiEngine) Transcribe(
	ctx context.Context,
	audioPath string,
) (Stream, *Info, error) {
	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("audio file not found: %s", audioPath)
	}

	uploadedFile, err := e.client.Files.UploadFromPath(ctx, audioPath, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to upload audio file: %w", err)
	}

	defer func() {
		_, _ = e.client.Files.Delete(ctx, uploadedFile.Name, nil)
	}()

	parts := []*genai.Part{
		genai.NewPartFromText(e.buildTranscriptionPrompt()),
		genai.NewPartFromURI(uploadedFile.URI, uploadedFile.MIMEType),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("transcription failed: %w", err)
	}

	segments, err := e.parseTranscriptionResponse(result)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse transcription: %w", err)
	}

	info := &Info{Language: e.options.Language}
	if len(segments) > 0 {
		// Gemini reports no duration; the last segment end is the best bound
		info.Duration = segments[len(segments)-1].End
	}

	return NewSliceStream(segments), info, nil
}

// creates the prompt for transcription
func (e *GeminiEngine) buildTranscriptionPrompt() string {
	var sb strings.Builder

	sb.WriteString("Generate a detailed transcript of this audio. ")
	sb.WriteString("For each sentence or phrase, provide the start timestamp, end timestamp, and the exact text spoken. ")
	sb.WriteString("Format your response as a JSON array with objects containing 'start', 'end', and 'text' fields, ")
	sb.WriteString("where 'start' and 'end' are timestamps in seconds (as numbers). ")

	if e.options.Language != "" {
		sb.WriteString(fmt.Sprintf("The audio is in %s. ", e.options.Language))
	}

	if e.options.Prompt != "" {
		sb.WriteString(e.options.Prompt)
		sb.WriteString(" ")
	}

	sb.WriteString("Return ONLY the JSON array, no other text or markdown formatting.")

	return sb.String()
}

// parses Gemini's response into segments
func (e *GeminiEngine) parseTranscriptionResponse(
	result *genai.GenerateContentResponse,
) ([]Segment, error) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	var responseText string
	for _, candidate := range result.Candidates {
		if candidate.Content != nil {
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					responseText += part.Text
				}
			}
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text in Gemini response")
	}

	responseText = cleanJSONResponse(responseText)

	var parsed []geminiSegment
	if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
		return nil, fmt.Errorf(
			"failed to parse JSON response: %w (response: %s)",
			err,
			truncateString(responseText, 200),
		)
	}

	segments := make([]Segment, len(parsed))
	for i, seg := range parsed {
		segments[i] = Segment{End: seg.End, Text: seg.Text}
	}

	return segments, nil
}

// removes markdown formatting from the response
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)

	// remove ```json and ``` markers
	jsonBlockRegex := regexp.MustCompile("```(?:json)?\\s*")
	s = jsonBlockRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")

	return strings.TrimSpace(s)
}

// truncates a string to maxLen characters
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
