package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/muhammedmuflih/meeting-minutes-generator/pkg/validator"

	"github.com/muhammedmuflih/meeting-minutes-generator/internal/adapter/handler"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/infrastructure/jobstore"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/infrastructure/media"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/infrastructure/storage"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/minutes"
	"github.com/muhammedmuflih/meeting-minutes-generator/internal/usecase/job"
	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/config"
	"github.com/muhammedmuflih/meeting-minutes-generator/pkg/transcribe"
)

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
		AllowOrigins: cfg.AllowedOriginList(),
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Reject oversized uploads before handlers see them
	e.Use(middleware.BodyLimit(fmt.Sprintf("%d", cfg.Upload.MaxBytes)))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize job store
	jobTTL := time.Duration(cfg.JobStore.TTLHours) * time.Hour
	var store jobstore.Store
	switch cfg.JobStore.Driver {
	case "redis":
		log.Println("📦 Connecting to Redis job store...")
		redisStore, err := jobstore.NewRedisStore(cfg, jobTTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
	default:
		log.Println("📦 Using in-memory job store...")
		store = jobstore.NewMemoryStore(jobTTL)
	}

	// Initialize audio converter
	log.Println("🎛️  Initializing audio converter...")
	converter := media.NewConverter()
	deps := converter.CheckDependencies(context.Background())
	for bin, ok := range deps {
		if !ok {
			log.Printf("⚠️  External tool %q not found, audio processing will fail", bin)
		}
	}

	// Initialize transcription backend
	var backend transcribe.Backend
	switch cfg.Whisper.Backend {
	case "assemblyai":
		log.Println("🎙️  Using AssemblyAI transcription backend...")
		backend = transcribe.NewAssemblyAIBackend(&cfg.Assembly, logger)
	default:
		log.Println("🎙️  Using local whisper transcription backend...")
		backend = transcribe.NewWhisperBackend(&cfg.Whisper, logger)
	}

	// Initialize minutes generator
	log.Println("📝 Initializing minutes generator...")
	splitter := minutes.DefaultSplitter()
	log.Printf("✂️  Sentence splitter: %s", splitter.Name())
	generator := minutes.NewGenerator(splitter, logger)

	// Initialize optional object-storage archive
	var archive *storage.MinIOArchive
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage archive...")
		archive, err = storage.NewMinIOArchive(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
	}

	// Initialize job service
	log.Println("⚙️  Initializing job service...")
	jobService := job.NewService(store, converter, backend, generator, archive, cfg.Upload, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	uploadHandler := handler.NewUpload(jobService, cfg, logger)
	jobHandler := handler.NewJob(jobService, logger)
	downloadHandler := handler.NewDownload(cfg, logger)
	minutesHandler := handler.NewMinutes(generator, logger)

	router := handler.NewRouter(cfg, uploadHandler, jobHandler, downloadHandler, minutesHandler, converter)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

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
