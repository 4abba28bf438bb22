// Package validation provides the credential validation rules.
//
// The validators are total boolean predicates over untyped JSON values:
// request bodies are bound to map[string]any, so a field may hold any shape
// and validation must never panic on non-string input.
package validation

import (
	"regexp"
	"unicode/utf8"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// Username reports whether v is a valid username: a string of 3-20
// characters containing only ASCII letters, digits and underscore.
func Username(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return usernameRe.MatchString(s)
}

// Password reports whether v is a valid password: a string of 6-50
// characters. No charset restriction.
func Password(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	n := utf8.RuneCountInString(s)
	return n >= 6 && n <= 50
}

// RequiredFields reports whether every name in names maps, in fields, to a
// value that is present, non-nil and not the empty string. Falsy-but-present
// values like 0 and false pass. An empty names list is always valid.
func RequiredFields(fields map[string]any, names []string) bool {
	for _, name := range names {
		v, ok := fields[name]
		if !ok || v == nil || v == "" {
			return false
		}
	}
	return true
}
