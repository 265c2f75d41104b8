package cli

import (
	"github.com/mgpai22/whisperscribe/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "whisperscribe",
	Short: "Audio transcription and subtitle generator",
	Long: `Whisperscribe transcribes local audio files into plain-text
transcripts and SubRip subtitle tracks.

It runs faster-whisper locally by default and also supports the OpenAI
and Gemini transcription APIs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
