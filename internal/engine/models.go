package engine

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownModel = errors.New("unknown model size")

// DefaultModel is the smallest English-only variant.
const DefaultModel = "tiny.en"

// model sizes accepted by the local Whisper backend
var availableModels = []string{
	"tiny.en",
	"tiny",
	"base.en",
	"base",
	"small.en",
	"small",
	"medium.en",
	"medium",
	"large",
	"large-v2",
	"large-v3",
}

func AvailableModels() []string {
	models := make([]string, len(availableModels))
	copy(models, availableModels)
	return models
}

// checks the model identifier before any engine is constructed
func ValidateModel(model string) error {
	for _, m := range availableModels {
		if m == model {
			return nil
		}
	}
	return fmt.Errorf(
		"%w %q: choose one of %s",
		ErrUnknownModel,
		model,
		strings.Join(availableModels, ", "),
	)
}
