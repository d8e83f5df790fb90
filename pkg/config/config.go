package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server      ServerConfig
	Transcriber TranscriberConfig
	Summarizer  SummarizerConfig
	Analyzer    AnalyzerConfig
	Storage     StorageConfig
	Watcher     WatcherConfig
	Pipeline    PipelineConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// TranscriberConfig holds AssemblyAI transcription configuration
type TranscriberConfig struct {
	APIKey           string `envconfig:"ASSEMBLYAI_API_KEY"`
	ModelSize        string `envconfig:"TRANSCRIBER_MODEL_SIZE" default:"best"`
	PollInitialSecs  int    `envconfig:"TRANSCRIBER_POLL_INITIAL_SECS" default:"2"`
	PollTimeoutSecs  int    `envconfig:"TRANSCRIBER_POLL_TIMEOUT_SECS" default:"600"`
	FFmpegBinaryPath string `envconfig:"FFMPEG_BINARY" default:"ffmpeg"`
}

// SummarizerConfig holds external summarizer configuration
type SummarizerConfig struct {
	BaseURL string `envconfig:"SUMMARIZER_API_URL" default:"https://api-inference.huggingface.co"`
	APIKey  string `envconfig:"SUMMARIZER_API_KEY"`
	// MaxInputRunes is the input capacity of the underlying models.
	MaxInputRunes int `envconfig:"SUMMARIZER_MAX_INPUT_RUNES" default:"20000"`
	// TruncateLongInput selects the over-capacity policy: true truncates
	// deterministically at MaxInputRunes, false rejects with INPUT_TOO_LONG.
	// Fixed at process start so the choice is consistent across calls.
	TruncateLongInput bool `envconfig:"SUMMARIZER_TRUNCATE_LONG_INPUT" default:"true"`
}

// AnalyzerConfig holds the linguistic analyzer sidecar configuration
type AnalyzerConfig struct {
	BaseURL string `envconfig:"ANALYZER_API_URL" default:"http://localhost:8090"`
}

// StorageConfig holds storage configuration
type StorageConfig struct {
	Type            string `envconfig:"STORAGE_TYPE" default:"local"` // "local" or "minio"
	LocalDir        string `envconfig:"STORAGE_LOCAL_DIR" default:"data/minutes"`
	ScratchDir      string `envconfig:"STORAGE_SCRATCH_DIR" default:"data/scratch"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-minutes"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// WatcherConfig holds inbox watch-mode configuration
type WatcherConfig struct {
	InputDir      string `envconfig:"WATCHER_INPUT_DIR" default:"data/inbox"`
	OutputDir     string `envconfig:"WATCHER_OUTPUT_DIR" default:"data/minutes"`
	Participants  string `envconfig:"WATCHER_PARTICIPANTS"`
	MaxConcurrent int    `envconfig:"WATCHER_MAX_CONCURRENT" default:"2"`
}

// PipelineConfig holds default generation parameters
type PipelineConfig struct {
	DefaultModel     string `envconfig:"PIPELINE_DEFAULT_MODEL" default:"facebook/bart-large-cnn"`
	DefaultMaxLength int    `envconfig:"PIPELINE_DEFAULT_MAX_LENGTH" default:"180"`
	DefaultMinLength int    `envconfig:"PIPELINE_DEFAULT_MIN_LENGTH" default:"30"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Summarizer.MaxInputRunes <= 0 {
		return fmt.Errorf("SUMMARIZER_MAX_INPUT_RUNES must be positive")
	}
	if c.Watcher.MaxConcurrent <= 0 {
		c.Watcher.MaxConcurrent = 2
	}
	return nil
}

// GetServerAddr returns the host:port the server listens on
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
