package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Whisper  WhisperConfig
	Assembly AssemblyAIConfig
	JobStore JobStoreConfig
	Redis    RedisConfig
	Storage  StorageConfig
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"8080"`
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// UploadConfig holds upload and output folder configuration.
type UploadConfig struct {
	UploadDir    string `envconfig:"UPLOAD_DIR" default:"data/uploaded_audio"`
	OutputDir    string `envconfig:"OUTPUT_DIR" default:"outputs"`
	TempAudioDir string `envconfig:"TEMP_AUDIO_DIR" default:"temp_audio"`
	MaxBytes     int64  `envconfig:"MAX_UPLOAD_BYTES" default:"1073741824"` // 1 GiB
	Extensions   string `envconfig:"ALLOWED_EXTENSIONS" default:"mp3,wav,ogg,flac,m4a,mp4"`
}

// WhisperConfig holds transcription backend settings.
type WhisperConfig struct {
	Backend   string `envconfig:"WHISPER_BACKEND" default:"local"` // "local" or "assemblyai"
	Binary    string `envconfig:"WHISPER_BINARY" default:"whisper"`
	ModelSize string `envconfig:"WHISPER_MODEL_SIZE" default:"base"`
	Language  string `envconfig:"WHISPER_LANGUAGE" default:"en"`
}

// AssemblyAIConfig holds AssemblyAI transcription settings.
type AssemblyAIConfig struct {
	APIKey   string `envconfig:"ASSEMBLYAI_API_KEY"`
	Language string `envconfig:"ASSEMBLYAI_LANGUAGE" default:"en"`
}

// JobStoreConfig selects the job store driver.
type JobStoreConfig struct {
	Driver   string `envconfig:"JOBSTORE_DRIVER" default:"memory"` // "memory" or "redis"
	TTLHours int    `envconfig:"JOBSTORE_TTL_HOURS" default:"24"`
}

// RedisConfig holds Redis configuration for the redis job store driver.
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds optional object-storage archive configuration.
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-minutes"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// Load loads configuration from environment variables, reading a .env file
// first when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.JobStore.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("JOBSTORE_DRIVER must be \"memory\" or \"redis\", got %q", c.JobStore.Driver)
	}

	switch c.Whisper.Backend {
	case "local":
	case "assemblyai":
		if c.Assembly.APIKey == "" {
			return fmt.Errorf("ASSEMBLYAI_API_KEY is required when WHISPER_BACKEND=assemblyai")
		}
	default:
		return fmt.Errorf("WHISPER_BACKEND must be \"local\" or \"assemblyai\", got %q", c.Whisper.Backend)
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// GetRedisAddr returns the Redis address.
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// AllowedExtensions returns the upload extension allow-list as a set.
func (c *Config) AllowedExtensions() map[string]bool {
	allowed := make(map[string]bool)
	for _, ext := range strings.Split(c.Upload.Extensions, ",") {
		ext = strings.TrimSpace(strings.ToLower(ext))
		if ext != "" {
			allowed[ext] = true
		}
	}
	return allowed
}

// AllowedOriginList returns the CORS origin list.
func (c *Config) AllowedOriginList() []string {
	var origins []string
	for _, o := range strings.Split(c.Server.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
