package mining

import (
	"regexp"
	"strings"
)

// Extractor turns one section body into question candidates. Extractors
// are pure and never fail: input that matches nothing yields an empty
// slice, which callers report through diagnostics.
type Extractor func(body string) []Candidate

var extractors = map[Category]Extractor{
	SingleChoice: extractChoice(SingleChoice),
	MultiChoice:  extractChoice(MultiChoice),
	ShortAnswer:  extractShortAnswer,
	Matching:     extractMatching,
	OneGap:       extractOneGap,
	TwoGap:       extractTwoGap,
	Nested:       extractNested,
}

// ExtractQuestions normalizes raw document text, segments it and runs
// every category extractor over its section. The section map is returned
// alongside the pools so callers can report section presence.
func ExtractQuestions(raw string) (map[Category][]Candidate, SectionMap) {
	sections := Segment(Normalize(raw))
	pools := make(map[Category][]Candidate, len(Categories))
	for _, cat := range Categories {
		body := sections[cat]
		if strings.TrimSpace(body) == "" {
			continue
		}
		pools[cat] = extractors[cat](body)
	}
	return pools, sections
}

// --- single/multi choice ---

const (
	minOptionLines = 2
	maxOptionLines = 8
	maxOptions     = 4
)

// extractChoice builds the shared extractor for ЕВ and МВ: a line ending
// in "?" followed by a 2–8 line option block. Every qualifying prompt
// line yields a candidate, even one sitting inside a previous candidate's
// option block; overlapping candidates are kept on purpose.
func extractChoice(cat Category) Extractor {
	return func(body string) []Candidate {
		lines := strings.Split(body, "\n")
		var out []Candidate
		for i, line := range lines {
			prompt := strings.TrimSpace(line)
			if len(prompt) < 2 || !strings.HasSuffix(prompt, "?") {
				continue
			}
			block := lines[i+1:]
			if len(block) > maxOptionLines {
				block = block[:maxOptionLines]
			}
			if len(block) < minOptionLines {
				continue
			}
			var opts []string
			for _, o := range block {
				o = strings.TrimSpace(o)
				if o == "" {
					continue
				}
				opts = append(opts, o)
				if len(opts) == maxOptions {
					break
				}
			}
			out = append(out, Candidate{Category: cat, Prompt: prompt, Options: opts})
		}
		return out
	}
}

// --- short answer (ЧВ) ---

var shortAnswerRe = regexp.MustCompile(`([^\n]+?\(Введите[^\n]+?\))\s*\n\s*=\s*([^\n]+)`)

func extractShortAnswer(body string) []Candidate {
	matches := shortAnswerRe.FindAllStringSubmatch(body, -1)
	out := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		out = append(out, Candidate{
			Category: ShortAnswer,
			Prompt:   strings.TrimSpace(m[1]),
			Answer:   strings.TrimSpace(m[2]),
		})
	}
	return out
}

// --- matching (Соответствие) ---

const matchingTrigger = "Установите соответствие"

func extractMatching(body string) []Candidate {
	starts := triggerStarts(body)
	var out []Candidate
	for i, s := range starts {
		end := len(body)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		block := strings.TrimSpace(collapseBlankLines(body[s:end]))
		if block == "" {
			continue
		}
		out = append(out, Candidate{Category: Matching, Text: block})
	}
	return out
}

// triggerStarts finds every occurrence of the matching trigger phrase
// that begins a block: the first occurrence anywhere, subsequent ones
// only at line starts.
func triggerStarts(body string) []int {
	var starts []int
	off := 0
	for {
		i := strings.Index(body[off:], matchingTrigger)
		if i < 0 {
			return starts
		}
		pos := off + i
		if len(starts) == 0 || pos == 0 || body[pos-1] == '\n' {
			starts = append(starts, pos)
		}
		off = pos + len(matchingTrigger)
	}
}

// --- one gap (Одно пропущенное слово) ---

var gapPromptRe = regexp.MustCompile(`[^\n]+?\(Введите[^\n]+?\)`)

// extractOneGap keeps every line carrying the "(Введите …)" instruction,
// with or without a following "=" answer line. Overlap with the
// short-answer pool is intentional.
func extractOneGap(body string) []Candidate {
	matches := gapPromptRe.FindAllString(body, -1)
	out := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		out = append(out, Candidate{Category: OneGap, Text: strings.TrimSpace(m)})
	}
	return out
}

// --- two gaps (Два пропущенных слова) ---

var (
	twoGapLineRe = regexp.MustCompile(`\[\[1\]\][^\n]*\[\[2\]\]`)
	gapOptOneRe  = regexp.MustCompile(`^\s*1\s*=`)
	gapOptTwoRe  = regexp.MustCompile(`^\s*2\s*=`)
	gapOptAnyRe  = regexp.MustCompile(`^\s*\d\s*=`)
)

// extractTwoGap locates each template line containing the ordered [[1]]
// and [[2]] markers and joins it with its "1 = …" / "2 = …" option lines
// (wrapped continuations included). Identical candidates are dropped,
// first occurrence wins.
func extractTwoGap(body string) []Candidate {
	lines := strings.Split(body, "\n")
	var starts []int
	for i, ln := range lines {
		if twoGapLineRe.MatchString(ln) {
			starts = append(starts, i)
		}
	}
	seen := map[string]bool{}
	var out []Candidate
	for bi, s := range starts {
		end := len(lines)
		if bi+1 < len(starts) {
			end = starts[bi+1]
		}
		text := strings.TrimSpace(lines[s])
		if opts := collectGapOptions(lines[s+1 : end]); opts != "" {
			text += "\n" + opts
		}
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		out = append(out, Candidate{Category: TwoGap, Text: text})
	}
	return out
}

// collectGapOptions gathers the "1 = …" block up to the "2 = …" line and
// the "2 = …" block up to the next template. Both blocks must be present
// for the options to count.
func collectGapOptions(lines []string) string {
	i := 0
	for i < len(lines) && !gapOptOneRe.MatchString(lines[i]) {
		i++
	}
	if i == len(lines) {
		return ""
	}
	var buf []string
	buf = append(buf, strings.TrimSpace(lines[i]))
	i++
	for i < len(lines) && !gapOptAnyRe.MatchString(lines[i]) {
		if ln := strings.TrimSpace(lines[i]); ln != "" {
			buf = append(buf, ln)
		}
		i++
	}
	if i == len(lines) || !gapOptTwoRe.MatchString(lines[i]) {
		return ""
	}
	buf = append(buf, strings.TrimSpace(lines[i]))
	i++
	for i < len(lines) && !strings.Contains(lines[i], "[[") {
		if ln := strings.TrimSpace(lines[i]); ln != "" {
			buf = append(buf, ln)
		}
		i++
	}
	return strings.Join(buf, "\n")
}

// --- nested (Вложенные вопросы) ---

var indexMarkerRe = regexp.MustCompile(`^\s*\d+\s*$`)

// extractNested splits the section on bare-integer index lines. The
// marker lines are consumed; each block runs until the next marker or the
// end of the section. Text before the first marker forms a block of its
// own.
func extractNested(body string) []Candidate {
	var out []Candidate
	var cur []string
	flush := func() {
		if len(cur) == 0 {
			return
		}
		block := strings.TrimSpace(collapseBlankLines(strings.Join(cur, "\n")))
		cur = nil
		if block == "" {
			return
		}
		out = append(out, Candidate{Category: Nested, Text: block})
	}
	for _, ln := range strings.Split(body, "\n") {
		if indexMarkerRe.MatchString(ln) {
			flush()
			continue
		}
		cur = append(cur, ln)
	}
	flush()
	return out
}
