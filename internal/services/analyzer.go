package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, resume models.RawDocument, jobDescription string, topN int) (*models.AnalysisResult, error)
}

type analyzerService struct {
	extractor   TextExtractor
	normalizer  Normalizer
	scorer      SimilarityScorer
	keywords    KeywordExtractor
	defaultTopN int
}

func NewAnalyzerService(defaultTopN int) AnalyzerService {
	if defaultTopN <= 0 {
		defaultTopN = DefaultTopN
	}

	return &analyzerService{
		extractor:   NewTextExtractor(),
		normalizer:  NewNormalizer(),
		scorer:      NewSimilarityScorer(),
		keywords:    NewKeywordExtractor(),
		defaultTopN: defaultTopN,
	}
}

// Analyze compares a resume with a job description. Text that is empty after
// cleaning is not an error: it scores 0 and contributes no keywords. Only a
// resume that cannot be read at all fails, with an *ExtractionError.
func (a *analyzerService) Analyze(ctx context.Context, resume models.RawDocument, jobDescription string, topN int) (*models.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if resume.IsZero() {
		return nil, fmt.Errorf("%w: resume is required", ErrInvalidInput)
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}
	if topN <= 0 {
		topN = a.defaultTopN
	}

	resumeText, err := a.extractor.Extract(resume)
	if err != nil {
		return nil, err
	}

	resumeClean := a.normalizer.Clean(resumeText)
	jobClean := a.normalizer.Clean(jobDescription)

	score := a.scorer.Score(resumeClean, jobClean)

	resumeKeywords := a.keywords.TopKeywords(resumeClean, topN)
	jobKeywords := a.keywords.TopKeywords(jobClean, topN)
	matched, missing := Compare(resumeKeywords, jobKeywords)

	return &models.AnalysisResult{
		ID:              uuid.New(),
		Score:           score,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		ResumeKeywords:  resumeKeywords,
		JobKeywords:     jobKeywords,
		TopN:            topN,
		CreatedAt:       time.Now(),
	}, nil
}
