package competency

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// The source documents never delimit where a competency description ends.
// The extractor therefore shrinks each candidate span by whichever of a
// set of weak boundary signals fires earliest. The signals live in three
// ordered rule tables below; one generic earliest-match truncation
// routine is applied with each table in turn.

// rule pairs a matcher with the boundary it marks.
type rule struct {
	re   *regexp.Regexp
	note string
}

// stopRules mark the start of an unrelated block inside a span: the next
// discipline row, table headers, organizational-role signatures,
// standards references.
var stopRules = []rule{
	{regexp.MustCompile(`\n\s*Б\d`), "next discipline row"},
	{regexp.MustCompile(`\n\s*№\s`), "table row number"},
	{regexp.MustCompile(`Код и наименование`), "table header"},
	{regexp.MustCompile(`Дисциплины`), "disciplines header"},
	{regexp.MustCompile(`ФГОС`), "standards reference"},
	{regexp.MustCompile(`ПС\s`), "professional standard"},
	{regexp.MustCompile(`Б3ГИА`), "state examination block"},
	{regexp.MustCompile(`Директор`), "signature block"},
	{regexp.MustCompile(`Заведующий`), "signature block"},
	{regexp.MustCompile(`Преподаватель`), "signature block"},
	{regexp.MustCompile(`Связь со стандартами`), "standards header"},
}

// stopSubstrings are literal fragments that truncate a description after
// the code tokens have been stripped out of it.
var stopSubstrings = []string{
	"\nБ", "\n№", "№ ", "Код и наименование", "Дисциплины", "ФГОС", "ПС ",
	"Б3ГИА", "Директор", "Заведующий", "Преподаватель",
	"Связь со стандартами", "ПК-", "УК-", "ОПК-",
}

// artifactRules are known corruption signatures left behind by the
// table-to-text conversion: a closing paren glued to the next row, emoji
// markers from the surrounding application, header fragments.
var artifactRules = []rule{
	{regexp.MustCompile(`\)\s*Б\d`), "paren glued to next row"},
	{regexp.MustCompile(`\)\s*Б`), "paren glued to next row"},
	{regexp.MustCompile(`\)\s*№`), "paren glued to row number"},
	{regexp.MustCompile(`📘`), "book marker"},
	{regexp.MustCompile(`📗`), "book marker"},
	{regexp.MustCompile(`⚠️`), "warning marker"},
	{regexp.MustCompile(`№\s*Код`), "header fragment"},
	{regexp.MustCompile(`ФГОС`), "standards reference"},
	{regexp.MustCompile(`ПС\s*\d`), "professional standard"},
	{regexp.MustCompile(`Б3ГИА`), "state examination block"},
}

// headerLineRe recognizes a line that starts like one of the stop markers;
// such a line and everything after it are dropped from a description.
var headerLineRe = regexp.MustCompile(
	`^(?:Б\d|№\s|Код и наименование|Дисциплины|ФГОС|ПС(?:\s|$)|Б3ГИА|Директор|Заведующий|Преподаватель|Связь со стандартами|ПК-|УК-|ОПК-)`)

var (
	paragraphBreakRe = regexp.MustCompile(`\n\s*\n`)
	sentenceEndRe    = regexp.MustCompile(`[.!?]\s+`)
	leadingSepRe     = regexp.MustCompile(`^[\s:;\-–—]+`)
	trailingSepRe    = regexp.MustCompile(`[\-–—)(\[\]:;.,]+$`)
	tabRunRe         = regexp.MustCompile(`[ \t]+`)
)

const (
	sentenceCapRunes = 200 // sentence-terminator search window
	fallbackRunes    = 400 // wider re-derivation window
	minDescRunes     = 8   // minimum alphanumeric content to accept
	maxDescRunes     = 400 // hard cap on stored descriptions
)

// ExtractCompetencies scans raw competency-document text for code
// occurrences and computes a bounded description for each. Codes whose
// description degenerates to pure punctuation/digits are dropped. When
// the same normalized code occurs more than once the later occurrence
// wins.
func ExtractCompetencies(raw string) map[string]string {
	cleaned := strings.TrimSpace(tabRunRe.ReplaceAllString(strings.ReplaceAll(raw, "\r", ""), " "))
	locs := codeRe.FindAllStringIndex(cleaned, -1)
	out := make(map[string]string, len(locs))
	for i, loc := range locs {
		codeText := trimCodeToken(cleaned[loc[0]:loc[1]])
		start := loc[1]
		end := len(cleaned)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		desc := boundDescription(cleaned[start:end])
		if alnumCount(desc) < minDescRunes {
			if wider := fallbackDescription(cleaned[start:]); alnumCount(wider) >= minDescRunes {
				desc = wider
			}
		}
		if !hasLetter(desc) {
			continue
		}
		out[NormalizeCode(codeText)] = codeText + " — " + capDescription(desc)
	}
	return out
}

// boundDescription applies the full truncation cascade to the span
// between a code and the next code occurrence.
func boundDescription(span string) string {
	span = truncateAtEarliest(span, stopRules)
	if loc := paragraphBreakRe.FindStringIndex(span); loc != nil {
		span = span[:loc[0]]
	}
	// Descriptions are short declarative sentences: a terminator inside
	// the first 200 characters ends the span even without a stop marker.
	if loc := sentenceEndRe.FindStringIndex(span); loc != nil &&
		utf8.RuneCountInString(span[:loc[0]]) < sentenceCapRunes {
		span = span[:loc[1]]
	}
	desc := strings.TrimSpace(span)
	desc = leadingSepRe.ReplaceAllString(desc, "")
	desc = strings.TrimSpace(codeRe.ReplaceAllString(desc, ""))
	desc = strings.TrimSpace(truncateAtFirstSubstring(desc, stopSubstrings))
	desc = dropHeaderLines(desc)
	desc = strings.TrimSpace(truncateAtEarliest(desc, artifactRules))
	return strings.TrimSpace(trailingSepRe.ReplaceAllString(desc, ""))
}

// fallbackDescription re-derives a candidate from a wider window when the
// cascade truncated the span below the acceptance threshold. The sentence
// cap is deliberately not applied here.
func fallbackDescription(rest string) string {
	window := runePrefix(rest, fallbackRunes)
	window = truncateAtEarliest(window, stopRules)
	if loc := paragraphBreakRe.FindStringIndex(window); loc != nil {
		window = window[:loc[0]]
	}
	window = strings.TrimSpace(codeRe.ReplaceAllString(window, ""))
	window = strings.TrimSpace(truncateAtEarliest(window, artifactRules))
	return strings.TrimSpace(trailingSepRe.ReplaceAllString(window, ""))
}

// truncateAtEarliest cuts s at the earliest match among the rules.
func truncateAtEarliest(s string, rules []rule) string {
	cut := -1
	for _, r := range rules {
		if loc := r.re.FindStringIndex(s); loc != nil && (cut < 0 || loc[0] < cut) {
			cut = loc[0]
		}
	}
	if cut >= 0 {
		return s[:cut]
	}
	return s
}

func truncateAtFirstSubstring(s string, subs []string) string {
	cut := -1
	for _, sub := range subs {
		if i := strings.Index(s, sub); i >= 0 && (cut < 0 || i < cut) {
			cut = i
		}
	}
	if cut >= 0 {
		return s[:cut]
	}
	return s
}

// dropHeaderLines keeps description lines up to the first one that looks
// like a table header or marker, joining the survivors with spaces.
func dropHeaderLines(s string) string {
	var kept []string
	for _, ln := range strings.Split(s, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		if headerLineRe.MatchString(ln) {
			break
		}
		kept = append(kept, ln)
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}

// capDescription enforces the length cap, cutting at the last sentence
// boundary inside the cap and marking the truncation with an ellipsis.
func capDescription(desc string) string {
	if utf8.RuneCountInString(desc) <= maxDescRunes {
		return desc
	}
	head := runePrefix(desc, maxDescRunes)
	if i := strings.LastIndex(head, "."); i >= 0 {
		head = head[:i]
	}
	return head + "..."
}

func runePrefix(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

func alnumCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
