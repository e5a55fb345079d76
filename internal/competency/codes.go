// Package competency mines discipline and competency-code records out of
// plain-text dumps of competency matrix documents. The documents have no
// grammar: record boundaries are recovered from a disjunction of weak
// textual signals, whichever fires earliest.
package competency

import (
	"regexp"
	"strings"
)

// codeRe matches a competency code token: one of the three code families
// (УК, ОПК, ПК) followed by a dotted numeric suffix of any depth, e.g.
// "УК 5.3.1" or "ПК1.2".
var codeRe = regexp.MustCompile(`(?:УК|ОПК|ПК)\s*\d+(?:\.\d+)*`)

// baseCodeRe captures the family plus the first number only ("УК 5").
var baseCodeRe = regexp.MustCompile(`^(?:УК|ОПК|ПК)\s*\d+`)

var trailingCodeJunkRe = regexp.MustCompile(`[.,;:)\]]+$`)

// NormalizeCode strips the whitespace between the family prefix and the
// digits, producing the canonical map key ("УК 5.3" -> "УК5.3").
func NormalizeCode(code string) string {
	return strings.ReplaceAll(strings.TrimSpace(code), " ", "")
}

// BaseCode reduces a full code to its family plus leading number. Falls
// back to the input when the token does not parse.
func BaseCode(code string) string {
	if m := baseCodeRe.FindString(strings.TrimSpace(code)); m != "" {
		return strings.TrimSpace(m)
	}
	return code
}

// CodesIn returns every competency code token embedded in s, in order.
func CodesIn(s string) []string {
	return codeRe.FindAllString(s, -1)
}

// trimCodeToken cleans a raw code match: surrounding space is trimmed
// first so the anchored junk pattern can see trailing punctuation.
func trimCodeToken(raw string) string {
	return strings.TrimSpace(trailingCodeJunkRe.ReplaceAllString(strings.TrimSpace(raw), ""))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
