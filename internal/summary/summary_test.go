package summary

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(Options{}, "We agreed to ship on Friday.")

	if !strings.Contains(prompt, "We agreed to ship on Friday.") {
		t.Error("prompt does not contain the transcript")
	}
	if !strings.Contains(prompt, "plain text") {
		t.Error("prompt does not ask for plain text output")
	}
	if strings.Contains(prompt, "Additional instructions") {
		t.Error("prompt contains additional instructions when none were given")
	}
}

func TestBuildPromptWithExtraInstructions(t *testing.T) {
	prompt := BuildPrompt(
		Options{Prompt: "Focus on action items."},
		"transcript body",
	)

	if !strings.Contains(prompt, "Additional instructions: Focus on action items.") {
		t.Error("prompt does not include the extra instructions")
	}
}
