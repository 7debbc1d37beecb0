package shared

import (
	"strings"

	"golang.org/x/text/cases"
)

// SearchTerm is a case-folded free-text query.
type SearchTerm struct {
	folded string
}

// NewSearchTerm folds query for case-insensitive matching.
func NewSearchTerm(query string) SearchTerm {
	return SearchTerm{folded: fold(query)}
}

// Empty reports whether the term matches everything.
func (t SearchTerm) Empty() bool {
	return t.folded == ""
}

// MatchAny reports whether the term is a substring of any field. Empty
// fields stand for absent values and never match a non-empty term.
func (t SearchTerm) MatchAny(fields ...string) bool {
	if t.Empty() {
		return true
	}
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(fold(field), t.folded) {
			return true
		}
	}
	return false
}

// Deref returns the pointed-to string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// cases.Caser is stateful, so a fresh one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
