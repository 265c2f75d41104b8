package engine

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

//go:embed assets/faster_whisper.py
var helperScript []byte

// runs faster-whisper locally through an embedded Python helper. The helper
// emits one JSON object per line: an info header first, then a segment per
// decoded unit, so the stream stays lazy while decoding is still running.
type FasterWhisperEngine struct {
	options Options
}

type helperLine struct {
	Type     string  `json:"type"`
	Duration float64 `json:"duration"`
	Language string  `json:"language"`
	End      float64 `json:"end"`
	Text     string  `json:"text"`
}

func NewFasterWhisperEngine(opts Options) (*FasterWhisperEngine, error) {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if err := ValidateModel(opts.Model); err != nil {
		return nil, err
	}
	if opts.Device == "" {
		opts.Device = "auto"
	}
	if opts.BeamSize <= 0 {
		opts.BeamSize = 5
	}

	return &FasterWhisperEngine{options: opts}, nil
}

func (e *FasterWhisperEngine) Transcribe(
	ctx context.Context,
	audioPath string,
) (Stream, *Info, error) {
	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("audio file not found: %s", audioPath)
	}

	scriptPath := filepath.Join(os.TempDir(), "whisperscribe_helper.py")
	if err := os.WriteFile(scriptPath, helperScript, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to write helper script: %w", err)
	}

	python := os.Getenv("WHISPERSCRIBE_PYTHON")
	if python == "" {
		python = "python3"
	}

	args := []string{
		scriptPath,
		"--audio", audioPath,
		"--model", e.options.Model,
		"--device", e.options.Device,
		"--beam-size", strconv.Itoa(e.options.BeamSize),
	}
	if e.options.Language != "" {
		args = append(args, "--language", e.options.Language)
	}

	cmd := exec.CommandContext(ctx, python, args...)
	cmd.Env = os.Environ()

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open helper stdout: %w", err)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("failed to start helper: %w", err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	stream := &helperStream{
		cmd:        cmd,
		scanner:    scanner,
		stderr:     &stderr,
		scriptPath: scriptPath,
	}

	info, err := stream.readInfo()
	if err != nil {
		stream.Close()
		return nil, nil, err
	}

	return stream, info, nil
}

// reads helper output line by line, surfacing the process exit status as the
// stream's terminal error
type helperStream struct {
	cmd        *exec.Cmd
	scanner    *bufio.Scanner
	stderr     *bytes.Buffer
	scriptPath string
	done       bool
}

func (s *helperStream) readInfo() (*Info, error) {
	line, err := s.nextLine()
	if err != nil {
		return nil, fmt.Errorf("helper produced no metadata: %w", err)
	}
	if line.Type != "info" {
		return nil, fmt.Errorf("helper sent %q before metadata", line.Type)
	}
	return &Info{Duration: line.Duration, Language: line.Language}, nil
}

func (s *helperStream) Next() (Segment, error) {
	line, err := s.nextLine()
	if err != nil {
		return Segment{}, err
	}
	if line.Type != "segment" {
		return Segment{}, fmt.Errorf("unexpected helper message %q", line.Type)
	}
	return Segment{End: line.End, Text: line.Text}, nil
}

func (s *helperStream) nextLine() (helperLine, error) {
	if s.done {
		return helperLine{}, io.EOF
	}

	if !s.scanner.Scan() {
		s.done = true
		if err := s.scanner.Err(); err != nil {
			s.cmd.Process.Kill()
			s.cmd.Wait()
			return helperLine{}, fmt.Errorf("failed to read helper output: %w", err)
		}
		if err := s.cmd.Wait(); err != nil {
			return helperLine{}, fmt.Errorf(
				"faster-whisper failed: %s",
				strings.TrimSpace(s.stderr.String()),
			)
		}
		return helperLine{}, io.EOF
	}

	var line helperLine
	if err := json.Unmarshal(s.scanner.Bytes(), &line); err != nil {
		return helperLine{}, fmt.Errorf("failed to parse helper output: %w", err)
	}
	return line, nil
}

func (s *helperStream) Close() error {
	defer os.Remove(s.scriptPath)
	if s.done {
		return nil
	}
	s.done = true
	s.cmd.Process.Kill()
	s.cmd.Wait()
	return nil
}
