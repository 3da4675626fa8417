// Package utils provides small text helpers shared by the normalizers.
package utils

import (
	"strings"
	"unicode"
)

// StringHelper cleans free-text fields. Separators given to NewStringHelper are
// treated as whitespace.
type StringHelper struct {
	separators *strings.Replacer
}

// NewStringHelper creates a helper that blanks out each of separators.
func NewStringHelper(separators ...string) *StringHelper {
	pairs := make([]string, 0, 2*len(separators))
	for _, sep := range separators {
		pairs = append(pairs, sep, " ")
	}

	return &StringHelper{separators: strings.NewReplacer(pairs...)}
}

// NormalizeWhitespace replaces multiple whitespace with single space.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// CollapseSeparators turns every separator into a space and then normalizes whitespace.
func (s *StringHelper) CollapseSeparators(str string) string {
	return s.NormalizeWhitespace(s.separators.Replace(str))
}

// Digits returns only the ASCII digits of str.
func (s *StringHelper) Digits(str string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}

		return -1
	}, str)
}

// FitWidth right-pads str with pad, or truncates it, to exactly width bytes.
func (s *StringHelper) FitWidth(str string, width int, pad byte) string {
	if len(str) >= width {
		return str[:width]
	}

	return str + strings.Repeat(string(pad), width-len(str))
}
