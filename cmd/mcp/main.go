// Command mcp serves the analyze_resume tool over stdio.
package main

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/services"
	"alfredoptarigan/resume-analyzer/internal/toolserver"
)

var version = "dev"

func main() {
	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	cfg := config.Load()
	services.InitStopwords()
	ctx := context.Background()

	var store services.ObjectStore
	if cfg.ObjectStorageEnabled() {
		s, err := services.NewObjectStore(ctx, services.S3Options{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			MaxBytes:  cfg.Storage.MaxFileSize,
		})
		if err != nil {
			log.Fatalf("❌ Failed to initialize object storage: %v", err)
		}
		store = s
	}

	tools := &toolserver.Tools{
		Analyzer: services.NewAnalyzerService(cfg.Analyzer.TopN),
		Loader:   services.NewDocumentLoader(store, cfg.Storage.MaxFileSize),
		Fetcher:  services.NewJobDescriptionFetcher(cfg.Fetch.Timeout, cfg.Fetch.MaxBytes),
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "resume-analyzer",
		Version: version,
	}, nil)
	tools.Register(server)

	log.Println("🚀 resume-analyzer MCP server running on stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("❌ MCP server failed: %v", err)
	}
}
