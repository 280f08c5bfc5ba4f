package models

import (
	"encoding/json"
	"sort"
)

// KeywordSet is an unordered set of terms. Use Sorted for display.
type KeywordSet map[string]struct{}

func NewKeywordSet(terms ...string) KeywordSet {
	s := make(KeywordSet, len(terms))
	for _, t := range terms {
		s[t] = struct{}{}
	}
	return s
}

func (s KeywordSet) Add(term string) {
	s[term] = struct{}{}
}

func (s KeywordSet) Contains(term string) bool {
	_, ok := s[term]
	return ok
}

func (s KeywordSet) Len() int {
	return len(s)
}

// Sorted returns the terms in ascending order.
func (s KeywordSet) Sorted() []string {
	terms := make([]string, 0, len(s))
	for t := range s {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// Intersect returns the terms present in both s and other.
func (s KeywordSet) Intersect(other KeywordSet) KeywordSet {
	out := make(KeywordSet)
	for t := range s {
		if other.Contains(t) {
			out.Add(t)
		}
	}
	return out
}

// Difference returns the terms of s that are not in other.
func (s KeywordSet) Difference(other KeywordSet) KeywordSet {
	out := make(KeywordSet)
	for t := range s {
		if !other.Contains(t) {
			out.Add(t)
		}
	}
	return out
}

func (s KeywordSet) Union(other KeywordSet) KeywordSet {
	out := make(KeywordSet, len(s)+len(other))
	for t := range s {
		out.Add(t)
	}
	for t := range other {
		out.Add(t)
	}
	return out
}

func (s KeywordSet) Equal(other KeywordSet) bool {
	if len(s) != len(other) {
		return false
	}
	for t := range s {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted array so responses are stable.
func (s KeywordSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *KeywordSet) UnmarshalJSON(data []byte) error {
	var terms []string
	if err := json.Unmarshal(data, &terms); err != nil {
		return err
	}
	*s = NewKeywordSet(terms...)
	return nil
}
