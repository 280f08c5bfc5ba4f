package services

import "math"

type SimilarityScorer interface {
	Score(cleanedResume, cleanedJobDescription string) float64
}

type similarityScorer struct{}

func NewSimilarityScorer() SimilarityScorer {
	return &similarityScorer{}
}

// Score fits a fresh vectorizer on exactly the two texts and returns their
// cosine similarity as a percentage rounded to two decimals. Texts with no
// usable terms score 0.
func (s *similarityScorer) Score(cleanedResume, cleanedJobDescription string) float64 {
	vectorizer := NewTFIDFVectorizer()
	rows, err := vectorizer.FitTransform([]string{cleanedResume, cleanedJobDescription})
	if err != nil {
		return 0
	}

	return roundScore(CosineSimilarity(rows[0], rows[1]) * 100)
}

func roundScore(score float64) float64 {
	score = math.Round(score*100) / 100
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	}
	return score
}
