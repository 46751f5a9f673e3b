package html

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize collapses every run of whitespace, newlines included, into a
// single space and trims the result. Normalize is idempotent.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// markdownSpecial lists the characters Escape prefixes with a backslash.
const markdownSpecial = "\\*_`[]()#+-=|{}.!"

// Escape prefixes every markdown control character in text with a backslash.
// Escape is a single left-to-right pass and must not be applied twice to the
// same text.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(markdownSpecial, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// runeLen counts characters, not bytes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// inline collapses whitespace in text like Normalize but keeps a single
// space at either edge when the raw text had one, so adjacent inline
// fragments do not run together.
func inline(raw, normalized string) string {
	if normalized == "" {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(raw)
	last, _ := utf8.DecodeLastRuneInString(raw)
	if unicode.IsSpace(first) {
		normalized = " " + normalized
	}
	if unicode.IsSpace(last) {
		normalized += " "
	}
	return normalized
}

// wrap surrounds the trimmed inner text with open and close markers and
// moves edge whitespace outside the markers.
func wrap(open, inner, close string) string {
	trimmed := strings.TrimSpace(inner)
	if trimmed == "" {
		return ""
	}
	var lead, trail string
	if trimmed != inner {
		if strings.TrimLeftFunc(inner, unicode.IsSpace) != inner {
			lead = " "
		}
		if strings.TrimRightFunc(inner, unicode.IsSpace) != inner {
			trail = " "
		}
	}
	return lead + open + trimmed + close + trail
}
