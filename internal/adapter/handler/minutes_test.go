package handler

import (
	"bytes"
	"context"
	stdErrors "errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/errors"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/domain/entities"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/pipeline"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/config"
	pkgvalidator "github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/validator"
)

type fakeGenerator struct {
	result  *pipeline.Result
	err     error
	calls   int
	lastReq pipeline.Request
}

func (f *fakeGenerator) Run(ctx context.Context, req pipeline.Request) (*pipeline.Result, error) {
	f.calls++
	f.lastReq = req
	return f.result, f.err
}

type fakeStore struct {
	saved map[string]string
	err   error
}

func (f *fakeStore) SaveMinutes(ctx context.Context, name, content string) error {
	if f.err != nil {
		return f.err
	}
	if f.saved == nil {
		f.saved = make(map[string]string)
	}
	f.saved[name] = content
	return nil
}

func (f *fakeStore) ReadMinutes(ctx context.Context, name string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	content, ok := f.saved[name]
	if !ok {
		return "", fmt.Errorf("no artifact %s", name)
	}
	return content, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Pipeline: config.PipelineConfig{
			DefaultModel:     "facebook/bart-large-cnn",
			DefaultMaxLength: 180,
			DefaultMinLength: 30,
		},
		Storage: config.StorageConfig{ScratchDir: t.TempDir()},
	}
}

func newFormContext(e *echo.Echo, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/v1/minutes", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGenerate_PastedTranscript(t *testing.T) {
	e := echo.New()
	e.Validator = pkgvalidator.New()

	gen := &fakeGenerator{result: &pipeline.Result{
		Rendered:     "Meeting Title: t\n",
		ArtifactName: "minutes_t.txt",
	}}
	store := &fakeStore{}
	mc := NewMinutesController(gen, store, testConfig(t), nil)

	form := url.Values{}
	form.Set("transcript", "A transcript long enough to pass validation.")
	form.Set("participants", "Bob, Carol")
	c, rec := newFormContext(e, form)

	if err := mc.Generate(c); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if gen.calls != 1 {
		t.Fatalf("generator calls = %d, want 1", gen.calls)
	}
	if gen.lastReq.Input.Text != "A transcript long enough to pass validation." {
		t.Errorf("unexpected pipeline input %+v", gen.lastReq.Input)
	}
	if len(gen.lastReq.Participants) != 2 || gen.lastReq.Participants[1] != "Carol" {
		t.Errorf("unexpected participants %v", gen.lastReq.Participants)
	}
	// Defaults applied when the form omits model and bounds.
	if gen.lastReq.Params.Model != "facebook/bart-large-cnn" ||
		gen.lastReq.Params.MaxLength != 180 || gen.lastReq.Params.MinLength != 30 {
		t.Errorf("defaults not applied: %+v", gen.lastReq.Params)
	}
	if store.saved["minutes_t.txt"] != "Meeting Title: t\n" {
		t.Error("rendered minutes not persisted")
	}
}

func TestGenerate_ForwardsModelSize(t *testing.T) {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	gen := &fakeGenerator{result: &pipeline.Result{ArtifactName: "minutes_t.txt"}}
	mc := NewMinutesController(gen, &fakeStore{}, testConfig(t), nil)

	form := url.Values{}
	form.Set("transcript", "A transcript long enough to pass validation.")
	form.Set("model_size", "nano")
	c, rec := newFormContext(e, form)

	if err := mc.Generate(c); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if gen.lastReq.Input.ModelSize != "nano" {
		t.Fatalf("model size not forwarded: got %q", gen.lastReq.Input.ModelSize)
	}
}

func TestGenerate_MultipartUploadStagedAndCleaned(t *testing.T) {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	gen := &fakeGenerator{result: &pipeline.Result{
		Rendered:     "Meeting Title: t\n",
		ArtifactName: "minutes_t.txt",
	}}
	cfg := testConfig(t)
	mc := NewMinutesController(gen, &fakeStore{}, cfg, nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "meeting.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte("A transcript long enough to pass validation.")); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/minutes", &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()

	if err := mc.Generate(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	staged := gen.lastReq.Input.Path
	if staged == "" {
		t.Fatal("pipeline did not receive a staged file path")
	}
	if filepath.Dir(staged) != cfg.Storage.ScratchDir {
		t.Fatalf("upload staged outside scratch dir: %s", staged)
	}
	if !strings.HasSuffix(staged, "_meeting.txt") {
		t.Errorf("staged name does not keep the original filename: %s", staged)
	}

	// The staged copy must be gone once the handler returns.
	if _, err := os.Stat(staged); !os.IsNotExist(err) {
		t.Fatalf("staged upload not cleaned up: %v", err)
	}
}

func TestGenerate_NoInputRejected(t *testing.T) {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	gen := &fakeGenerator{}
	mc := NewMinutesController(gen, &fakeStore{}, testConfig(t), nil)

	c, rec := newFormContext(e, url.Values{})
	if err := mc.Generate(c); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if gen.calls != 0 {
		t.Error("generator called without input")
	}
}

func TestGenerate_InvalidParameters(t *testing.T) {
	cases := []struct {
		name string
		form url.Values
	}{
		{"unsupported model", url.Values{"transcript": {"long enough transcript"}, "model": {"gpt-4"}}},
		{"max out of range", url.Values{"transcript": {"long enough transcript"}, "max_length": {"500"}}},
		{"min above max", url.Values{"transcript": {"long enough transcript"}, "max_length": {"50"}, "min_length": {"60"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			e.Validator = pkgvalidator.New()
			gen := &fakeGenerator{}
			mc := NewMinutesController(gen, &fakeStore{}, testConfig(t), nil)

			c, rec := newFormContext(e, tc.form)
			if err := mc.Generate(c); err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
			if gen.calls != 0 {
				t.Error("generator called despite invalid parameters")
			}
		})
	}
}

func TestGenerate_PipelineErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		pipelineEr error
		wantStatus int
	}{
		{"short transcript", fmt.Errorf("%w: 3 chars", entities.ErrTranscriptTooShort), http.StatusBadRequest},
		{"unsupported format", fmt.Errorf("%w: .pdf", entities.ErrUnsupportedFormat), http.StatusBadRequest},
		{"summarizer down", fmt.Errorf("x: %w", entities.ErrSummarizerUnavailable), http.StatusServiceUnavailable},
		{"analyzer down", fmt.Errorf("x: %w", entities.ErrAnalyzerUnavailable), http.StatusServiceUnavailable},
		{"input too long", fmt.Errorf("%w: 30000 runes", entities.ErrInputTooLong), http.StatusRequestEntityTooLarge},
		{"transcription failed", fmt.Errorf("%w: upload", entities.ErrTranscriptionFailed), http.StatusInternalServerError},
		{"unknown", stdErrors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			e.Validator = pkgvalidator.New()
			gen := &fakeGenerator{err: tc.pipelineEr}
			mc := NewMinutesController(gen, &fakeStore{}, testConfig(t), nil)

			form := url.Values{"transcript": {"A transcript long enough to pass validation."}}
			c, rec := newFormContext(e, form)
			if err := mc.Generate(c); err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestModels(t *testing.T) {
	e := echo.New()
	mc := NewMinutesController(&fakeGenerator{}, &fakeStore{}, testConfig(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/minutes/models", nil)
	rec := httptest.NewRecorder()
	if err := mc.Models(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Models returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"facebook/bart-large-cnn", "t5-small"} {
		if !strings.Contains(body, want) {
			t.Errorf("models response missing %q: %s", want, body)
		}
	}
}

func TestDownload(t *testing.T) {
	e := echo.New()
	store := &fakeStore{saved: map[string]string{"minutes_t.txt": "the minutes"}}
	mc := NewMinutesController(&fakeGenerator{}, store, testConfig(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/artifacts/minutes_t.txt", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("minutes_t.txt")

	if err := mc.Download(c); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "the minutes" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(got, "minutes_t.txt") {
		t.Errorf("unexpected content disposition %q", got)
	}
}

func TestDownload_Missing(t *testing.T) {
	e := echo.New()
	mc := NewMinutesController(&fakeGenerator{}, &fakeStore{}, testConfig(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/artifacts/missing.txt", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("missing.txt")

	if err := mc.Download(c); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestToAppError_Codes(t *testing.T) {
	cases := []struct {
		err  error
		code errors.ErrorCode
	}{
		{fmt.Errorf("%w: .pdf", entities.ErrUnsupportedFormat), errors.ErrorCode_UNSUPPORTED_FORMAT},
		{fmt.Errorf("x: %w", entities.ErrTranscriptionFailed), errors.ErrorCode_TRANSCRIPTION_FAILED},
		{fmt.Errorf("x: %w", entities.ErrTranscriptTooShort), errors.ErrorCode_TRANSCRIPT_TOO_SHORT},
		{fmt.Errorf("x: %w", entities.ErrInvalidParameters), errors.ErrorCode_INVALID_PARAMETERS},
		{fmt.Errorf("x: %w", entities.ErrInputTooLong), errors.ErrorCode_INPUT_TOO_LONG},
		{fmt.Errorf("x: %w", entities.ErrAnalyzerUnavailable), errors.ErrorCode_ANALYZER_UNAVAILABLE},
		{fmt.Errorf("x: %w", entities.ErrSummarizerUnavailable), errors.ErrorCode_SUMMARIZER_UNAVAILABLE},
		{stdErrors.New("boom"), errors.ErrorCode_INTERNAL},
	}
	for _, c := range cases {
		var appErr errors.AppError
		if !stdErrors.As(toAppError(c.err), &appErr) {
			t.Fatalf("toAppError(%v) did not return an AppError", c.err)
		}
		if appErr.Code != c.code {
			t.Errorf("toAppError(%v).Code = %s, want %s", c.err, appErr.Code, c.code)
		}
	}
}

func TestToAppError_TooShortCarriesLength(t *testing.T) {
	err := fmt.Errorf("run: %w", &entities.TranscriptTooShortError{Length: 5, Minimum: entities.MinTranscriptChars})

	var appErr errors.AppError
	if !stdErrors.As(toAppError(err), &appErr) {
		t.Fatal("expected an AppError")
	}
	if appErr.Code != errors.ErrorCode_TRANSCRIPT_TOO_SHORT {
		t.Fatalf("code = %s", appErr.Code)
	}
	if appErr.Details["length"] != "5" {
		t.Errorf("length detail = %q, want 5", appErr.Details["length"])
	}
	if appErr.Details["minimum"] != "10" {
		t.Errorf("minimum detail = %q, want 10", appErr.Details["minimum"])
	}
}

func TestExtensionFrom(t *testing.T) {
	err := fmt.Errorf("%w: .pdf", entities.ErrUnsupportedFormat)
	if got := extensionFrom(err); got != ".pdf" {
		t.Fatalf("extensionFrom = %q, want .pdf", got)
	}
}
