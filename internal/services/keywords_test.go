package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/resume-analyzer/internal/models"
)

func TestKeywordExtractor_TopKeywords(t *testing.T) {
	k := NewKeywordExtractor()

	tests := []struct {
		name string
		text string
		n    int
		want []string
	}{
		{"most frequent terms", "rust rust rust python python java scala", 2, []string{"python", "rust"}},
		{"ties broken alphabetically", "beta alpha", 1, []string{"alpha"}},
		{"fewer terms than n", "kubernetes helm", 20, []string{"helm", "kubernetes"}},
		{"keyword stopwords removed", "system design system", 5, []string{"design"}},
		{"empty text", "", 20, []string{}},
		{"single letters ignored", "c r golang", 20, []string{"golang"}},
		{"only keyword stopwords", "go system", 20, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := k.TopKeywords(tt.text, tt.n)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestKeywordExtractor_Bound(t *testing.T) {
	k := NewKeywordExtractor()

	var words []string
	for i := 0; i < 50; i++ {
		words = append(words, fmt.Sprintf("term%c%c", 'a'+i%26, 'a'+i/26))
	}
	text := strings.Join(words, " ")

	assert.Equal(t, 20, k.TopKeywords(text, 0).Len())
	assert.Equal(t, 7, k.TopKeywords(text, 7).Len())
	assert.Equal(t, 50, k.TopKeywords(text, 100).Len())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		resume models.KeywordSet
		job    models.KeywordSet
	}{
		{"overlap", models.NewKeywordSet("python", "aws", "docker"), models.NewKeywordSet("python", "aws", "experience")},
		{"disjoint", models.NewKeywordSet("go"), models.NewKeywordSet("java")},
		{"empty resume", models.NewKeywordSet(), models.NewKeywordSet("python", "required")},
		{"empty job", models.NewKeywordSet("python"), models.NewKeywordSet()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, missing := Compare(tt.resume, tt.job)

			assert.True(t, matched.Union(missing).Equal(tt.job))
			assert.Zero(t, matched.Intersect(missing).Len())
			assert.True(t, matched.Equal(tt.resume.Intersect(tt.job)))
		})
	}
}
