package transcript

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/domain/entities"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/executor"
)

// Transcriber is the external speech-to-text dependency
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, modelSize string) (string, error)
}

// Input is one meeting record to normalize: either a file path or pasted
// text. Text wins when both are set. ModelSize optionally overrides the
// configured speech model for this input.
type Input struct {
	Path      string
	Text      string
	ModelSize string
}

// Source normalizes an uploaded file or pasted text into a Transcript.
// Plain text is read as-is; .wav is transcribed directly; .mp3 is transcoded
// to 16kHz mono WAV first. It performs no length validation; that belongs to
// the pipeline.
type Source struct {
	transcriber Transcriber
	exec        executor.Executor
	ffmpegBin   string
	scratchDir  string
	modelSize   string
	logger      *zap.Logger
}

// NewSource constructs a transcript source
func NewSource(transcriber Transcriber, exec executor.Executor, ffmpegBin, scratchDir, modelSize string, logger *zap.Logger) *Source {
	if ffmpegBin == "" {
		ffmpegBin = "ffmpeg"
	}
	return &Source{
		transcriber: transcriber,
		exec:        exec,
		ffmpegBin:   ffmpegBin,
		scratchDir:  scratchDir,
		modelSize:   modelSize,
		logger:      logger,
	}
}

// Load produces the transcript for one input
func (s *Source) Load(ctx context.Context, in Input) (entities.Transcript, error) {
	if in.Text != "" {
		return entities.NewTranscript(in.Text), nil
	}

	modelSize := in.ModelSize
	if modelSize == "" {
		modelSize = s.modelSize
	}

	ext := strings.ToLower(filepath.Ext(in.Path))
	switch ext {
	case ".txt":
		data, err := os.ReadFile(in.Path)
		if err != nil {
			return entities.Transcript{}, fmt.Errorf("read transcript file: %w", err)
		}
		return entities.NewTranscript(string(data)), nil

	case ".wav":
		return s.transcribe(ctx, in.Path, modelSize)

	case ".mp3":
		return s.transcodeAndTranscribe(ctx, in.Path, modelSize)

	default:
		return entities.Transcript{}, fmt.Errorf("%w: %s", entities.ErrUnsupportedFormat, ext)
	}
}

// transcodeAndTranscribe converts the MP3 to a scratch WAV, transcribes it,
// and removes the scratch file on every exit path. The scratch name is
// invocation-unique so concurrent invocations never see each other's files.
func (s *Source) transcodeAndTranscribe(ctx context.Context, mp3Path, modelSize string) (entities.Transcript, error) {
	wavPath := filepath.Join(s.scratchDir, uuid.NewString()+".wav")

	// -ar 16000 -ac 1 -c:a pcm_s16le: 16kHz mono PCM, the format the
	// transcriber handles best.
	args := []string{
		"-i", mp3Path,
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := s.exec.Execute(ctx, s.ffmpegBin, args...); err != nil {
		s.cleanupTempFile(wavPath)
		return entities.Transcript{}, fmt.Errorf("%w: transcode mp3: %v", entities.ErrTranscriptionFailed, err)
	}
	defer s.cleanupTempFile(wavPath)

	return s.transcribe(ctx, wavPath, modelSize)
}

func (s *Source) transcribe(ctx context.Context, audioPath, modelSize string) (entities.Transcript, error) {
	if s.transcriber == nil {
		return entities.Transcript{}, fmt.Errorf("%w: no transcriber configured", entities.ErrTranscriptionFailed)
	}

	text, err := s.transcriber.Transcribe(ctx, audioPath, modelSize)
	if err != nil {
		return entities.Transcript{}, fmt.Errorf("%w: %v", entities.ErrTranscriptionFailed, err)
	}

	if s.logger != nil {
		s.logger.Info("audio transcribed",
			zap.String("audio_path", audioPath),
			zap.Int("transcript_chars", len(text)),
		)
	}
	return entities.NewTranscript(text), nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (s *Source) cleanupTempFile(filePath string) {
	if err := os.Remove(filePath); err != nil {
		if !os.IsNotExist(err) && s.logger != nil {
			s.logger.Warn("failed to cleanup temp file",
				zap.String("path", filePath),
				zap.Error(err),
			)
		}
		return
	}
	if s.logger != nil {
		s.logger.Debug("cleaned up temp file", zap.String("path", filePath))
	}
}
