package services

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrEmptyVocabulary = errors.New("empty vocabulary; documents contain no terms")

// TFIDFVectorizer turns a small corpus into L2-normalised TF-IDF rows over a
// shared vocabulary. A vectorizer is fit once and belongs to a single request.
//
// Tokens are runs of letters, digits or underscores at least two characters
// long. Weights are raw counts times the smoothed idf ln((1+n)/(1+df)) + 1.
type TFIDFVectorizer struct {
	// MaxFeatures keeps only the terms with the highest corpus counts. Zero keeps all.
	MaxFeatures int
	StopWords   map[string]struct{}

	vocabulary map[string]int
	terms      []string
	idf        []float64
}

func NewTFIDFVectorizer() *TFIDFVectorizer {
	return &TFIDFVectorizer{}
}

func (v *TFIDFVectorizer) Fit(docs []string) error {
	_, err := v.FitTransform(docs)
	return err
}

func (v *TFIDFVectorizer) FitTransform(docs []string) ([][]float64, error) {
	counts := make([]map[string]int, len(docs))
	totals := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		counts[i] = make(map[string]int)
		for _, tok := range v.tokenize(doc) {
			counts[i][tok]++
			totals[tok]++
		}
		for tok := range counts[i] {
			docFreq[tok]++
		}
	}

	if len(totals) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(totals))
	for t := range totals {
		terms = append(terms, t)
	}

	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if totals[terms[i]] != totals[terms[j]] {
				return totals[terms[i]] > totals[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.MaxFeatures]
	}
	sort.Strings(terms)

	v.terms = terms
	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(docs))
	for i, t := range terms {
		v.vocabulary[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}

	rows := make([][]float64, len(docs))
	for i := range docs {
		row := make([]float64, len(terms))
		for tok, c := range counts[i] {
			if j, ok := v.vocabulary[tok]; ok {
				row[j] = float64(c) * v.idf[j]
			}
		}
		normalize(row)
		rows[i] = row
	}

	return rows, nil
}

// FeatureNames returns the fitted vocabulary in ascending order.
func (v *TFIDFVectorizer) FeatureNames() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

func (v *TFIDFVectorizer) tokenize(doc string) []string {
	fields := strings.FieldsFunc(strings.ToLower(doc), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})

	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) < 2 {
			continue
		}
		if _, stop := v.StopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func normalize(row []float64) {
	var sum float64
	for _, x := range row {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range row {
		row[i] /= norm
	}
}

// CosineSimilarity returns 0 when either vector has no magnitude.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
