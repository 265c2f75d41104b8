package summary

import (
	"context"
	"fmt"
	"strings"
)

// interface for transcript summarization
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

type Options struct {
	Model  string
	Prompt string
}

// BuildPrompt creates the summarization prompt for LLM providers
func BuildPrompt(opts Options, transcript string) string {
	var sb strings.Builder

	sb.WriteString("Summarize the following audio transcript.\n\n")
	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("1. Capture the main topics and any decisions or action items.\n")
	sb.WriteString("2. Keep the summary under 300 words.\n")
	sb.WriteString("3. Return ONLY the summary as plain text.\n")
	sb.WriteString("4. Do not add any preamble or markdown formatting.\n\n")

	if opts.Prompt != "" {
		sb.WriteString(fmt.Sprintf("Additional instructions: %s\n\n", opts.Prompt))
	}

	sb.WriteString("Transcript:\n")
	sb.WriteString(transcript)

	return sb.String()
}
