package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mgpai22/whisperscribe/internal/audio"
	"github.com/mgpai22/whisperscribe/internal/engine"
	"github.com/mgpai22/whisperscribe/internal/subtitle"
	"github.com/mgpai22/whisperscribe/internal/summary"
	"github.com/mgpai22/whisperscribe/internal/transcript"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe a local audio file",
	Long: `Transcribe the specified audio file and write the transcript to a
timestamped file in the output directory.

With --srt a subtitle track is written next to the transcript. With
--summarize a Claude-generated summary is written as well.

Examples:
  whisperscribe transcribe --filename meeting.mp3
  whisperscribe transcribe --filename talk.wav --model base.en --srt
  whisperscribe transcribe --filename talk.wav --provider openai --api-key KEY
  whisperscribe transcribe --filename standup.mp3 --srt --summarize`,
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)

	transcribeCmd.Flags().
		String("filename", "", "Local audio file path (required)")
	transcribeCmd.Flags().
		String("model", engine.DefaultModel, "Model size for transcription")
	transcribeCmd.Flags().
		String("output-dir", "./output", "Directory to save transcription output")
	transcribeCmd.Flags().
		String("provider", "fasterwhisper", "Transcription provider (fasterwhisper, openai, gemini)")
	transcribeCmd.Flags().
		StringP("api-key", "k", "", "API key for remote providers (or OPENAI_API_KEY / GEMINI_API_KEY)")
	transcribeCmd.Flags().
		String("device", "auto", "Decoding device for the local provider (auto, cpu, cuda)")
	transcribeCmd.Flags().
		Int("beam-size", 5, "Beam size for the local provider")
	transcribeCmd.Flags().
		StringP("language", "l", "", "Language code of the audio (e.g. en, es)")
	transcribeCmd.Flags().
		Bool("srt", false, "Also write a subtitle track")
	transcribeCmd.Flags().
		StringP("format", "f", "srt", "Subtitle format (srt, vtt)")
	transcribeCmd.Flags().
		Bool("summarize", false, "Also write a Claude-generated summary")
	transcribeCmd.Flags().
		String("summary-model", "", "Claude model for the summary")

	transcribeCmd.MarkFlagRequired("filename")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	filename, _ := cmd.Flags().GetString("filename")
	model, _ := cmd.Flags().GetString("model")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	providerStr, _ := cmd.Flags().GetString("provider")
	apiKey, _ := cmd.Flags().GetString("api-key")
	device, _ := cmd.Flags().GetString("device")
	beamSize, _ := cmd.Flags().GetInt("beam-size")
	language, _ := cmd.Flags().GetString("language")
	writeSRT, _ := cmd.Flags().GetBool("srt")
	formatStr, _ := cmd.Flags().GetString("format")
	summarize, _ := cmd.Flags().GetBool("summarize")
	summaryModel, _ := cmd.Flags().GetString("summary-model")

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", filename)
	}

	format, err := subtitle.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	provider := engine.Provider(strings.ToLower(providerStr))
	opts := engine.Options{
		Model:    model,
		Device:   device,
		Language: language,
		BeamSize: beamSize,
		APIKey:   resolveAPIKey(provider, apiKey),
	}
	if provider == engine.ProviderFasterWhisper {
		if err := engine.ValidateModel(model); err != nil {
			return err
		}
	} else if model == engine.DefaultModel {
		// remote providers take their own model names; let the backend pick
		// its default unless one was set explicitly
		opts.Model = ""
	}

	eng, err := engine.Factory(ctx, provider, opts)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	logger.Infow("Starting transcription",
		"input", filename,
		"provider", providerStr,
		"model", model,
		"output_dir", outputDir,
	)

	stream, info, err := eng.Transcribe(ctx, filename)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}
	defer stream.Close()

	total := info.Duration
	if total <= 0 {
		if probed, err := audio.Duration(filename); err == nil {
			total = probed
		}
	}

	bar := newProgressBar(total)
	result, err := transcript.Accumulate(stream, func(delta float64) {
		_ = bar.Add64(int64(delta * 1000))
	})
	bar.Finish()
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	now := time.Now()

	txtPath, err := transcript.SaveTranscript(result.Transcript, outputDir, now)
	if err != nil {
		return err
	}
	logger.Infow("Transcription saved", "path", txtPath)

	var srtPath string
	if writeSRT {
		track := &subtitle.Track{Cues: result.Cues, Language: info.Language}
		srtPath = transcript.SubtitlePath(outputDir, now, format)
		if err := subtitle.WriteFile(track, srtPath, format); err != nil {
			return fmt.Errorf("failed to write subtitles: %w", err)
		}
		logger.Infow("Subtitles saved", "path", srtPath)
	}

	var summaryPath string
	if summarize {
		summaryPath, err = writeSummary(ctx, result.Transcript, outputDir, now, summaryModel)
		if err != nil {
			return err
		}
		logger.Infow("Summary saved", "path", summaryPath)
	}

	absTxt, _ := filepath.Abs(txtPath)
	fmt.Printf("Transcription complete: %s\n", absTxt)
	fmt.Printf("  Segments: %d\n", len(result.Cues))
	if srtPath != "" {
		fmt.Printf("  Subtitles: %s\n", srtPath)
	}
	if summaryPath != "" {
		fmt.Printf("  Summary: %s\n", summaryPath)
	}

	return nil
}

// progress over audio seconds, tracked in milliseconds
func newProgressBar(totalSeconds float64) *progressbar.ProgressBar {
	total := int64(totalSeconds * 1000)
	if total <= 0 {
		total = -1 // spinner when the engine reports no duration
	}

	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription("transcribing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish(),
	)
}

func writeSummary(
	ctx context.Context,
	text, outputDir string,
	now time.Time,
	model string,
) (string, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("summarization requires the ANTHROPIC_API_KEY environment variable")
	}

	summarizer, err := summary.NewAnthropicSummarizer(apiKey, summary.Options{Model: model})
	if err != nil {
		return "", fmt.Errorf("failed to create summarizer: %w", err)
	}

	text, err = summarizer.Summarize(ctx, text)
	if err != nil {
		return "", err
	}

	path := transcript.SummaryPath(outputDir, now)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}

	return path, nil
}

func resolveAPIKey(provider engine.Provider, flagKey string) string {
	if flagKey != "" {
		return flagKey
	}
	switch provider {
	case engine.ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case engine.ProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	default:
		return ""
	}
}
