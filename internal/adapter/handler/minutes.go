package handler

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/errors"
	minutesdto "github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/adapter/dto/minutes"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/domain/entities"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/infrastructure/storage"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/minutes"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/pipeline"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/summarize"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/transcript"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/config"
)

// Generator runs one minutes-generation invocation
type Generator interface {
	Run(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

// MinutesController handles minutes generation and artifact download
type MinutesController struct {
	generator Generator
	store     storage.ArtifactStore
	cfg       *config.Config
	logger    *zap.Logger
}

// NewMinutesController creates a new minutes controller
func NewMinutesController(generator Generator, store storage.ArtifactStore, cfg *config.Config, logger *zap.Logger) *MinutesController {
	return &MinutesController{generator: generator, store: store, cfg: cfg, logger: logger}
}

// Generate runs the minutes pipeline for an uploaded file or pasted text
// @Summary      Generate meeting minutes
// @Description  Turns an uploaded meeting record (txt/wav/mp3) or pasted transcript into structured minutes
// @Tags         Minutes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file          formData  file    false  "Meeting file (.txt, .wav, .mp3)"
// @Param        transcript    formData  string  false  "Pasted transcript text"
// @Param        participants  formData  string  false  "Comma-separated participant names"
// @Param        model         formData  string  false  "Summarization model"
// @Param        max_length    formData  int     false  "Max summary length (50-400)"
// @Param        min_length    formData  int     false  "Min summary length (10-100)"
// @Param        model_size    formData  string  false  "Speech model size (best or nano)"
// @Success      200  {object}  map[string]interface{}  "Generated minutes"
// @Failure      400  {object}  map[string]interface{}  "Invalid input or unsupported format"
// @Failure      503  {object}  map[string]interface{}  "External model unavailable"
// @Router       /minutes [post]
func (mc *MinutesController) Generate(c echo.Context) error {
	var req minutesdto.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidPayload())
	}
	req.ApplyDefaults(
		mc.cfg.Pipeline.DefaultModel,
		mc.cfg.Pipeline.DefaultMaxLength,
		mc.cfg.Pipeline.DefaultMinLength,
	)
	if err := c.Validate(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidParameters(err))
	}

	input, cleanup, err := mc.resolveInput(c, req.Transcript)
	if err != nil {
		return HandleError(mc.logger, c, err)
	}
	defer cleanup()
	input.ModelSize = req.ModelSize

	result, err := mc.generator.Run(c.Request().Context(), pipeline.Request{
		Input:        input,
		Participants: minutes.SplitParticipants(req.Participants),
		Params: summarize.Params{
			Model:     req.Model,
			MaxLength: req.MaxLength,
			MinLength: req.MinLength,
		},
	})
	if err != nil {
		return HandleError(mc.logger, c, toAppError(err))
	}

	if err := mc.store.SaveMinutes(c.Request().Context(), result.ArtifactName, result.Rendered); err != nil {
		return HandleError(mc.logger, c, errors.ErrStorageFailed("save minutes", err))
	}

	return HandleSuccess(mc.logger, c, minutesdto.GenerateResponse{
		InvocationID: result.InvocationID.String(),
		Minutes:      result.Minutes,
		Rendered:     result.Rendered,
		ArtifactName: result.ArtifactName,
	})
}

// Download returns a previously generated minutes artifact
// @Summary      Download minutes artifact
// @Tags         Minutes
// @Produce      plain
// @Param        name  path  string  true  "Artifact name"
// @Success      200  {string}  string  "Minutes text"
// @Failure      404  {object}  map[string]interface{}  "Artifact not found"
// @Router       /artifacts/{name} [get]
func (mc *MinutesController) Download(c echo.Context) error {
	name := filepath.Base(c.Param("name"))
	content, err := mc.store.ReadMinutes(c.Request().Context(), name)
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrNotFound("artifact"))
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(200, "text/plain; charset=utf-8", []byte(content))
}

// Models lists the supported summarization models and parameter ranges
// @Summary      List summarization models
// @Tags         Minutes
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Supported models"
// @Router       /minutes/models [get]
func (mc *MinutesController) Models(c echo.Context) error {
	return HandleSuccess(mc.logger, c, minutesdto.ModelsResponse{
		Models:    summarize.SupportedModels,
		MaxLength: minutesdto.RangeBounds{Min: 50, Max: 400, Default: mc.cfg.Pipeline.DefaultMaxLength},
		MinLength: minutesdto.RangeBounds{Min: 10, Max: 100, Default: mc.cfg.Pipeline.DefaultMinLength},
	})
}

// resolveInput turns the request into a pipeline input. Uploaded files are
// staged under an invocation-unique scratch name; the returned cleanup
// removes the staged copy on every exit path.
func (mc *MinutesController) resolveInput(c echo.Context, pasted string) (transcript.Input, func(), error) {
	noop := func() {}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		// No file uploaded; fall back to pasted text.
		if pasted == "" {
			return transcript.Input{}, noop, errors.ErrInvalidArgument("provide a meeting file or pasted transcript")
		}
		return transcript.Input{Text: pasted}, noop, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return transcript.Input{}, noop, errors.ErrInternal(err)
	}
	defer src.Close()

	scratchPath := filepath.Join(
		mc.cfg.Storage.ScratchDir,
		uuid.NewString()+"_"+filepath.Base(fileHeader.Filename),
	)
	dst, err := os.Create(scratchPath)
	if err != nil {
		return transcript.Input{}, noop, errors.ErrInternal(err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(scratchPath)
		return transcript.Input{}, noop, errors.ErrInternal(err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(scratchPath)
		return transcript.Input{}, noop, errors.ErrInternal(err)
	}

	cleanup := func() {
		if err := os.Remove(scratchPath); err != nil && mc.logger != nil {
			mc.logger.Warn("failed to cleanup staged upload",
				zap.String("path", scratchPath),
				zap.Error(err),
			)
		}
	}
	return transcript.Input{Path: scratchPath}, cleanup, nil
}

// toAppError maps domain errors to the application error taxonomy
func toAppError(err error) error {
	var tooShort *entities.TranscriptTooShortError
	switch {
	case stdErrors.Is(err, entities.ErrUnsupportedFormat):
		return errors.ErrUnsupportedFormat(extensionFrom(err)).WithDetail("cause", err.Error())
	case stdErrors.Is(err, entities.ErrTranscriptionFailed):
		return errors.ErrTranscriptionFailed(err)
	case stdErrors.As(err, &tooShort):
		return errors.ErrTranscriptTooShort(tooShort.Length, tooShort.Minimum)
	case stdErrors.Is(err, entities.ErrTranscriptTooShort):
		return errors.ErrTranscriptTooShort(0, entities.MinTranscriptChars).WithDetail("cause", err.Error())
	case stdErrors.Is(err, entities.ErrInvalidParameters):
		return errors.ErrInvalidParameters(err)
	case stdErrors.Is(err, entities.ErrInputTooLong):
		return errors.ErrInputTooLong(0, 0).WithDetail("cause", err.Error())
	case stdErrors.Is(err, entities.ErrAnalyzerUnavailable):
		return errors.ErrAnalyzerUnavailable(err)
	case stdErrors.Is(err, entities.ErrSummarizerUnavailable):
		return errors.ErrSummarizerUnavailable(err)
	default:
		return errors.ErrInternal(err)
	}
}

// extensionFrom recovers the rejected extension from the source error,
// which always ends with ": {ext}"
func extensionFrom(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return ""
}
