package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/middleware"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	services.InitStopwords()
	log.Println("✅ Stopwords loaded")

	ctx := context.Background()

	// Object storage is optional
	var loader services.DocumentLoader
	if cfg.ObjectStorageEnabled() {
		store, err := services.NewObjectStore(ctx, services.S3Options{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			MaxBytes:  cfg.Storage.MaxFileSize,
		})
		if err != nil {
			log.Fatalf("❌ Failed to initialize object storage: %v", err)
		}
		loader = services.NewDocumentLoader(store, cfg.Storage.MaxFileSize)
		log.Println("✅ Object storage initialized")
	}

	analyzer := services.NewAnalyzerService(cfg.Analyzer.TopN)
	fetcher := services.NewJobDescriptionFetcher(cfg.Fetch.Timeout, cfg.Fetch.MaxBytes)
	log.Println("✅ Services initialized successfully")

	pool := services.NewAnalysisPool(analyzer, cfg.Worker.Concurrency, cfg.Worker.QueueSize)
	pool.Start(ctx)

	analyzeHandler := handlers.NewAnalyzeHandler(pool, fetcher, loader, cfg.Storage.MaxFileSize)
	log.Println("✅ Handlers initialized")

	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.RegisterRoutes(app, analyzeHandler,
		middleware.RateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window),
	)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		pool.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
