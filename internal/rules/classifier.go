package rules

import (
	"strings"

	"golang.org/x/text/cases"
)

// Evaluate returns the names of all rules whose needle occurs in content,
// in rule-table order. Every rule is evaluated; a file may match several.
// Evaluate is pure and deterministic.
func (s *Set) Evaluate(content string) []string {
	var (
		matched       []string
		foldedContent string
		folded        bool
	)

	for i, r := range s.rules {
		haystack, needle := content, r.Needle
		if !r.CaseSensitive {
			if !folded {
				foldedContent = fold(content)
				folded = true
			}
			haystack, needle = foldedContent, s.folded[i]
		}
		if strings.Contains(haystack, needle) {
			matched = append(matched, r.Name)
		}
	}

	return matched
}

// fold applies Unicode full case folding. A Caser is stateful, so each call
// gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
