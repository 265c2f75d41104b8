package cli

import (
	"testing"

	"github.com/mgpai22/whisperscribe/internal/engine"
)

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-openai")
	t.Setenv("GEMINI_API_KEY", "env-gemini")

	tests := []struct {
		name     string
		provider engine.Provider
		flagKey  string
		want     string
	}{
		{"flag wins", engine.ProviderOpenAI, "flag-key", "flag-key"},
		{"openai env fallback", engine.ProviderOpenAI, "", "env-openai"},
		{"gemini env fallback", engine.ProviderGemini, "", "env-gemini"},
		{"local needs no key", engine.ProviderFasterWhisper, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveAPIKey(tt.provider, tt.flagKey)
			if got != tt.want {
				t.Errorf("resolveAPIKey(%q, %q) = %q, want %q",
					tt.provider, tt.flagKey, got, tt.want)
			}
		})
	}
}
