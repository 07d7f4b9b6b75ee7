// Package faq holds the scripted answer layer. Rules are evaluated in declared
// order against the raw user text and the first satisfied rule wins, so the
// high-frequency questions never cost a model call.
package faq

import "regexp"

// Answer is a tagged variant: either static text or a function of the input
// text.
type Answer struct {
	static  string
	compute func(input string) string
}

func Static(text string) Answer {
	return Answer{static: text}
}

func Computed(fn func(input string) string) Answer {
	return Answer{compute: fn}
}

// Resolve produces the answer text for the given input.
func (a Answer) Resolve(input string) string {
	if a.compute != nil {
		return a.compute(input)
	}
	return a.static
}

// Rule is satisfied when any one of its patterns matches.
type Rule struct {
	ID       string
	Patterns []*regexp.Regexp
	Answer   Answer
}

// Matcher evaluates the fixed rule list. It is immutable after construction
// and safe for concurrent use.
type Matcher struct {
	rules []Rule
}

func NewMatcher() *Matcher {
	return &Matcher{rules: rules()}
}

// Match returns the first satisfied rule's answer. Empty input never matches.
// Absence of a match is a normal outcome, not an error.
func (m *Matcher) Match(input string) (string, bool) {
	if input == "" {
		return "", false
	}
	for _, rule := range m.rules {
		for _, pattern := range rule.Patterns {
			if pattern.MatchString(input) {
				return rule.Answer.Resolve(input), true
			}
		}
	}
	return "", false
}
