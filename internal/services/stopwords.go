package services

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed data/stopwords.txt
var stopwordsData string

//go:embed data/keyword_stopwords.txt
var keywordStopwordsData string

var (
	stopwordsOnce    sync.Once
	stopwords        map[string]struct{}
	keywordStopwords map[string]struct{}
)

// InitStopwords loads the embedded word lists. Calling it more than once is a no-op.
func InitStopwords() {
	stopwordsOnce.Do(func() {
		stopwords = parseWordList(stopwordsData)
		keywordStopwords = parseWordList(keywordStopwordsData)
	})
}

// IsStopword reports whether word is in the English list used while cleaning text.
func IsStopword(word string) bool {
	InitStopwords()
	_, ok := stopwords[word]
	return ok
}

// KeywordStopwords returns the list applied on top of cleaning when picking keywords.
// The map is shared and must not be modified.
func KeywordStopwords() map[string]struct{} {
	InitStopwords()
	return keywordStopwords
}

func parseWordList(data string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, line := range strings.Split(data, "\n") {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words[word] = struct{}{}
	}
	return words
}
