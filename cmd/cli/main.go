package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	resumePath := flag.String("resume", "", "resume file (.pdf, .docx, .txt) or s3://bucket/key")
	resumeTextFlag := flag.String("resume-text", "", "resume as plain text")
	jdPath := flag.String("jd", "", "job description text file")
	jdText := flag.String("jd-text", "", "job description as plain text")
	jdURL := flag.String("jd-url", "", "job posting URL")
	topN := flag.Int("top", 0, "number of keywords per text (default TOP_N or 20)")
	asJSON := flag.Bool("json", false, "print the result as JSON")
	flag.Parse()

	// -resume-text "" is an empty resume, not a missing one.
	var resumeText *string
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "resume-text" {
			resumeText = resumeTextFlag
		}
	})

	log.SetFlags(0)
	cfg := config.Load()
	services.InitStopwords()
	ctx := context.Background()

	resume, err := loadResume(ctx, cfg, *resumePath, resumeText)
	if err != nil {
		fail(err)
	}

	jobDescription, err := loadJobDescription(ctx, cfg, *jdPath, *jdText, *jdURL)
	if err != nil {
		fail(err)
	}

	analyzer := services.NewAnalyzerService(cfg.Analyzer.TopN)
	result, err := analyzer.Analyze(ctx, resume, jobDescription, *topN)
	if err != nil {
		fail(err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(models.NewAnalyzeResponse(result)); err != nil {
			fail(err)
		}
		return
	}

	printResult(result)
}

func loadResume(ctx context.Context, cfg *config.Config, path string, text *string) (models.RawDocument, error) {
	if path == "" {
		if text == nil {
			return models.RawDocument{}, fmt.Errorf("%w: -resume or -resume-text is required", services.ErrInvalidInput)
		}
		return models.PlainText(*text), nil
	}

	var store services.ObjectStore
	if services.IsObjectURI(path) {
		s, err := services.NewObjectStore(ctx, services.S3Options{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			MaxBytes:  cfg.Storage.MaxFileSize,
		})
		if err != nil {
			return models.RawDocument{}, err
		}
		store = s
	}

	return services.NewDocumentLoader(store, cfg.Storage.MaxFileSize).Load(ctx, path)
}

func loadJobDescription(ctx context.Context, cfg *config.Config, path, text, url string) (string, error) {
	switch {
	case text != "":
		return text, nil
	case path != "":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(b), nil
	case url != "":
		return services.NewJobDescriptionFetcher(cfg.Fetch.Timeout, cfg.Fetch.MaxBytes).Fetch(ctx, url)
	}
	return "", fmt.Errorf("%w: -jd, -jd-text or -jd-url is required", services.ErrInvalidInput)
}

func printResult(result *models.AnalysisResult) {
	fmt.Printf("Match Score: %.2f%%\n\n", result.Score)

	fmt.Println("Matching Keywords:")
	printKeywords(result.MatchedKeywords, "No strong keyword matches found.")

	fmt.Println("Missing Keywords:")
	printKeywords(result.MissingKeywords, "No missing skills detected.")

	fmt.Println("Top Keywords in Resume:")
	printKeywords(result.ResumeKeywords, "None.")
}

func printKeywords(set models.KeywordSet, empty string) {
	if set.Len() == 0 {
		fmt.Printf("  %s\n\n", empty)
		return
	}
	fmt.Printf("  %s\n\n", strings.Join(set.Sorted(), ", "))
}

func fail(err error) {
	var extractionErr *services.ExtractionError
	if errors.As(err, &extractionErr) {
		log.Printf("❌ could not read resume: %v", extractionErr.Err)
	} else {
		log.Printf("❌ %v", err)
	}
	os.Exit(1)
}
