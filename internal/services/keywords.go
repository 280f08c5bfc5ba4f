package services

import "alfredoptarigan/resume-analyzer/internal/models"

const DefaultTopN = 20

type KeywordExtractor interface {
	TopKeywords(cleanedText string, n int) models.KeywordSet
}

type keywordExtractor struct{}

func NewKeywordExtractor() KeywordExtractor {
	InitStopwords()
	return &keywordExtractor{}
}

// TopKeywords fits a vectorizer on the single text and keeps its n most
// frequent terms. With one document idf is constant, so this is the TF-IDF
// ranking. Ties go to the alphabetically smaller term.
func (k *keywordExtractor) TopKeywords(cleanedText string, n int) models.KeywordSet {
	if n <= 0 {
		n = DefaultTopN
	}

	vectorizer := NewTFIDFVectorizer()
	vectorizer.MaxFeatures = n
	vectorizer.StopWords = KeywordStopwords()

	if err := vectorizer.Fit([]string{cleanedText}); err != nil {
		return models.NewKeywordSet()
	}

	return models.NewKeywordSet(vectorizer.FeatureNames()...)
}

// Compare returns the job keywords the resume covers and the ones it lacks.
func Compare(resumeKeywords, jobKeywords models.KeywordSet) (matched, missing models.KeywordSet) {
	return resumeKeywords.Intersect(jobKeywords), jobKeywords.Difference(resumeKeywords)
}
