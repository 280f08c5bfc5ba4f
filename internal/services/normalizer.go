package services

import "strings"

type Normalizer interface {
	Clean(text string) string
}

type normalizer struct{}

func NewNormalizer() Normalizer {
	InitStopwords()
	return &normalizer{}
}

// Clean lowercases text, turns every character outside [a-z ] into a space
// and drops stopwords. Surviving tokens keep their order, joined by single spaces.
func (n *normalizer) Clean(text string) string {
	lowered := strings.ToLower(text)

	replaced := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			return r
		}
		return ' '
	}, lowered)

	words := strings.Fields(replaced)
	kept := words[:0]
	for _, w := range words {
		if IsStopword(w) {
			continue
		}
		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}
