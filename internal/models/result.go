package models

import "time"

// AnalyzeRequest.ResumeText is a pointer so an explicit empty resume can be
// told apart from a missing one.
type AnalyzeRequest struct {
	ResumeText        *string `json:"resume_text"`
	ResumeURL         string  `json:"resume_url"`
	JobDescription    string  `json:"job_description"`
	JobDescriptionURL string  `json:"job_description_url"`
	TopN              int     `json:"top_n"`
}

type AnalyzeResponse struct {
	ID              string    `json:"id"`
	Score           float64   `json:"score"`
	MatchedKeywords []string  `json:"matched_keywords"`
	MissingKeywords []string  `json:"missing_keywords"`
	ResumeKeywords  []string  `json:"resume_keywords"`
	JobKeywords     []string  `json:"job_keywords"`
	TopN            int       `json:"top_n"`
	CreatedAt       time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// NewAnalyzeResponse flattens a result into sorted keyword lists.
func NewAnalyzeResponse(result *AnalysisResult) AnalyzeResponse {
	return AnalyzeResponse{
		ID:              result.ID.String(),
		Score:           result.Score,
		MatchedKeywords: result.MatchedKeywords.Sorted(),
		MissingKeywords: result.MissingKeywords.Sorted(),
		ResumeKeywords:  result.ResumeKeywords.Sorted(),
		JobKeywords:     result.JobKeywords.Sorted(),
		TopN:            result.TopN,
		CreatedAt:       result.CreatedAt,
	}
}
