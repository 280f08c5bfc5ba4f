package services

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var cleanedShape = regexp.MustCompile(`^([a-z]+( [a-z]+)*)?$`)

func TestNormalizer_Clean(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercases and drops stopwords", "The Python Developer", "python developer"},
		{"punctuation and digits become spaces", "Go1.22, AWS/GCP & Docker!", "go aws gcp docker"},
		{"accented letters are dropped not transliterated", "café résumé", "caf r sum"},
		{"newlines and tabs", "Kubernetes\n\tTerraform", "kubernetes terraform"},
		{"only stopwords", "and the of with", ""},
		{"order preserved", "zebra apple mango", "zebra apple mango"},
		{"apostrophes split tokens", "don't stop", "stop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Clean(tt.input))
		})
	}
}

func TestNormalizer_CleanProperties(t *testing.T) {
	n := NewNormalizer()

	inputs := []string{
		"Experienced Python developer with AWS and Docker skills",
		"  Looking for a   Python developer with AWS experience!!! ",
		"Résumé — Senior Go Engineer (2019–2024), 5+ years; CI/CD & k8s",
		"I am the one who is here",
		"ÀÉÎÕÜ 12345 ###",
	}

	for _, in := range inputs {
		cleaned := n.Clean(in)

		assert.Regexp(t, cleanedShape, cleaned, "input %q", in)
		for _, tok := range strings.Fields(cleaned) {
			assert.False(t, IsStopword(tok), "stopword %q left in %q", tok, cleaned)
		}
		assert.Equal(t, cleaned, n.Clean(cleaned), "clean is not idempotent for %q", in)
	}
}

func TestInitStopwords_Idempotent(t *testing.T) {
	InitStopwords()
	InitStopwords()

	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("and"))
	assert.False(t, IsStopword("python"))
	assert.Len(t, stopwords, 179)

	kw := KeywordStopwords()
	assert.Contains(t, kw, "system")
	assert.NotContains(t, kw, "developer")
}
