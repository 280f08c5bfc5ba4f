package toolserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeResumeInput struct {
	ResumeText        *string `json:"resume_text,omitempty" jsonschema:"resume as plain text, may be empty"`
	ResumePath        string  `json:"resume_path,omitempty" jsonschema:"path to a .pdf, .docx or .txt resume, or an s3://bucket/key URI"`
	JobDescription    string  `json:"job_description,omitempty" jsonschema:"job description text"`
	JobDescriptionURL string  `json:"job_description_url,omitempty" jsonschema:"URL of the job posting, used when job_description is empty"`
	TopN              int     `json:"top_n,omitempty" jsonschema:"keywords kept per text, default 20"`
}

type AnalyzeResumeOutput struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	ResumeKeywords  []string `json:"resume_keywords"`
	JobKeywords     []string `json:"job_keywords"`
	Summary         string   `json:"summary"`
}

// Tools holds what the analyze_resume tool needs. Loader and Fetcher may be
// nil, which disables resume_path and job_description_url respectively.
type Tools struct {
	Analyzer services.AnalyzerService
	Loader   services.DocumentLoader
	Fetcher  services.JobDescriptionFetcher
}

func (t *Tools) Register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_resume",
		Description: "Compare a resume with a job description using TF-IDF cosine similarity. Returns a match score (0-100) and sorted lists of matching and missing keywords.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.analyzeResume)
}

func (t *Tools) analyzeResume(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeResumeInput) (*mcp.CallToolResult, AnalyzeResumeOutput, error) {
	var resume models.RawDocument
	switch {
	case input.ResumePath != "":
		if t.Loader == nil {
			return nil, AnalyzeResumeOutput{}, fmt.Errorf("resume_path is not supported")
		}
		doc, err := t.Loader.Load(ctx, input.ResumePath)
		if err != nil {
			return nil, AnalyzeResumeOutput{}, err
		}
		resume = doc
	case input.ResumeText != nil:
		resume = models.PlainText(*input.ResumeText)
	default:
		return nil, AnalyzeResumeOutput{}, fmt.Errorf("resume_text or resume_path is required")
	}

	jobDescription := input.JobDescription
	if strings.TrimSpace(jobDescription) == "" && input.JobDescriptionURL != "" {
		if t.Fetcher == nil {
			return nil, AnalyzeResumeOutput{}, fmt.Errorf("job_description_url is not supported")
		}
		text, err := t.Fetcher.Fetch(ctx, input.JobDescriptionURL)
		if err != nil {
			return nil, AnalyzeResumeOutput{}, err
		}
		jobDescription = text
	}

	result, err := t.Analyzer.Analyze(ctx, resume, jobDescription, input.TopN)
	if err != nil {
		var extractionErr *services.ExtractionError
		if errors.As(err, &extractionErr) {
			return nil, AnalyzeResumeOutput{}, fmt.Errorf("could not read resume: %w", extractionErr.Err)
		}
		return nil, AnalyzeResumeOutput{}, err
	}

	return nil, AnalyzeResumeOutput{
		Score:           result.Score,
		MatchedKeywords: result.MatchedKeywords.Sorted(),
		MissingKeywords: result.MissingKeywords.Sorted(),
		ResumeKeywords:  result.ResumeKeywords.Sorted(),
		JobKeywords:     result.JobKeywords.Sorted(),
		Summary: fmt.Sprintf("Match score %.2f/100. %d of %d job keywords found in the resume.",
			result.Score, result.MatchedKeywords.Len(), result.JobKeywords.Len()),
	}, nil
}
