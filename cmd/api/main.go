package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/validator"

	_ "github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/docs"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/adapter/handler"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/infrastructure/cache"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/infrastructure/storage"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/extract"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/pipeline"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/summarize"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/transcript"
	pkgai "github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/ai"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/config"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/executor"
)

// @title           Meeting Minutes Generator API
// @version         1.0
// @description     API for generating structured meeting minutes from transcripts or recorded audio

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	log.Println("🔧 Initializing dependencies...")

	// Scratch directory for staged uploads and transcoded audio
	if err := os.MkdirAll(cfg.Storage.ScratchDir, 0o755); err != nil {
		log.Fatalf("Failed to create scratch dir: %v", err)
	}

	// Initialize artifact store
	log.Println("📦 Initializing artifact store...")
	var store storage.ArtifactStore
	if cfg.Storage.Type == "minio" {
		minioStore, err := storage.NewMinIOStore(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO store: %v", err)
		}
		store = minioStore
		log.Printf("✅ MinIO store connected: %s/%s", cfg.Storage.Endpoint, cfg.Storage.BucketName)
	} else {
		localStore, err := storage.NewLocalStore(cfg.Storage.LocalDir)
		if err != nil {
			log.Fatalf("Failed to initialize local store: %v", err)
		}
		store = localStore
	}

	// Initialize external model clients
	log.Println("🤖 Initializing AI components...")
	transcriberClient := pkgai.NewAssemblyAIClient(&cfg.Transcriber, logger)
	summarizerClient := pkgai.NewSummarizerClient(&cfg.Summarizer)
	analyzerClient := pkgai.NewAnalyzerClient(&cfg.Analyzer)

	// Build the pipeline
	source := transcript.NewSource(
		transcriberClient,
		executor.New(),
		cfg.Transcriber.FFmpegBinaryPath,
		cfg.Storage.ScratchDir,
		cfg.Transcriber.ModelSize,
		logger,
	)
	adapter := summarize.NewAdapter(
		summarizerClient,
		cache.NewWarm(),
		cfg.Summarizer.MaxInputRunes,
		cfg.Summarizer.TruncateLongInput,
		logger,
	)
	extractor := extract.NewExtractor(analyzerClient, logger)
	pipe := pipeline.New(source, adapter, extractor, logger)

	// Initialize handlers and routes
	log.Println("🛣️  Setting up routes...")
	minutesController := handler.NewMinutesController(pipe, store, cfg, logger)
	router := handler.NewRouter(cfg, minutesController)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
