package rules

import (
	"fmt"

	"github.com/vvka-141/secretscan/pkg/secretscan"
)

// builtin is the fixed detection table. Adding a rule is a data change:
// the classifier iterates the table generically.
var builtin = []secretscan.Rule{
	{
		Name:          "aws_key",
		Needle:        "AKIA",
		CaseSensitive: true,
		Description:   "Found potential AWS key (AKIA...).",
	},
	{
		Name:        "password",
		Needle:      "password",
		Description: `Found potential "password" pattern.`,
	},
	{
		Name:        "secret",
		Needle:      "secret",
		Description: `Found potential "secret" pattern.`,
	},
}

var defaultSet = mustNewSet(builtin...)

// Set is an immutable, ordered collection of detection rules.
// Set is safe for concurrent use by multiple goroutines.
type Set struct {
	rules  []secretscan.Rule
	folded []string
	byName map[string]int
}

// Default returns the built-in rule set.
func Default() *Set {
	return defaultSet
}

// NewSet validates the given rules and returns them as a Set.
// Rule order is preserved and determines the order of reported matches.
func NewSet(rules ...secretscan.Rule) (*Set, error) {
	s := &Set{
		rules:  make([]secretscan.Rule, 0, len(rules)),
		folded: make([]string, 0, len(rules)),
		byName: make(map[string]int, len(rules)),
	}
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byName[r.Name]; dup {
			return nil, fmt.Errorf("duplicate rule name %q: %w", r.Name, secretscan.ErrInvalidRule)
		}
		s.byName[r.Name] = len(s.rules)
		s.rules = append(s.rules, r)
		s.folded = append(s.folded, fold(r.Needle))
	}
	return s, nil
}

func mustNewSet(rules ...secretscan.Rule) *Set {
	s, err := NewSet(rules...)
	if err != nil {
		panic(err)
	}
	return s
}

// Rules returns a copy of the rules in table order.
func (s *Set) Rules() []secretscan.Rule {
	out := make([]secretscan.Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Lookup returns the rule with the given name.
func (s *Set) Lookup(name string) (secretscan.Rule, bool) {
	i, ok := s.byName[name]
	if !ok {
		return secretscan.Rule{}, false
	}
	return s.rules[i], true
}

// Len returns the number of rules.
func (s *Set) Len() int {
	return len(s.rules)
}
