// Package parsing provides skill-name normalization used by the matching core.
package parsing

import (
	"strings"
	"unicode"
)

// NormalizeSkillName normalizes a skill name for comparison: lower-case,
// strip non-alphanumeric characters, collapse runs of whitespace to a single
// space. Separator punctuation ("/", "-", "_") becomes a space so "AI/ML"
// keeps its word boundary, while joining punctuation is dropped so "Node.js"
// and "NodeJS" agree. Returns "" for names with no alphanumeric content.
func NormalizeSkillName(skillName string) string {
	if skillName == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(skillName))
	for _, r := range strings.ToLower(skillName) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case unicode.IsSpace(r) || r == '/' || r == '-' || r == '_' || r == '\\':
			sb.WriteRune(' ')
		}
		// Remaining punctuation and symbols are stripped
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}
