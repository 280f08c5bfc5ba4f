package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisResult is the outcome of comparing one resume with one job
// description. It is built once per request and not modified afterwards.
//
// MatchedKeywords = ResumeKeywords ∩ JobKeywords and
// MissingKeywords = JobKeywords − ResumeKeywords.
type AnalysisResult struct {
	ID              uuid.UUID  `json:"id"`
	Score           float64    `json:"score"`
	MatchedKeywords KeywordSet `json:"matched_keywords"`
	MissingKeywords KeywordSet `json:"missing_keywords"`
	ResumeKeywords  KeywordSet `json:"resume_keywords"`
	JobKeywords     KeywordSet `json:"job_keywords"`
	TopN            int        `json:"top_n"`
	CreatedAt       time.Time  `json:"created_at"`
}
