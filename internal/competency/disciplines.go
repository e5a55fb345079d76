package competency

import (
	"regexp"
	"strings"
)

// disciplineRe matches one discipline entry: a curriculum code (Б + row
// number, optional sub-label and index), a mixed-script title run, and a
// parenthesized list of competency codes, e.g.
// "Б1Б 4 Безопасность жизнедеятельности (УК 7.3 УК 7.4)".
var disciplineRe = regexp.MustCompile(
	`Б\d{1,2}[А-ЯA-Za-zа-яёЁ]*\s*\d*\s*[А-ЯA-Za-zа-яёЁ0-9,\-–\s]+?\((?:УК|ОПК|ПК)\s*[\d.\sА-Яа-яA-Za-zёЁ]*\)`)

// disciplineNameRe pulls the displayable title out of an entry (code and
// title, without the trailing competency list).
var disciplineNameRe = regexp.MustCompile(`Б\d+[А-ЯA-Za-zа-яёЁ0-9\s,\-–]+`)

// ExtractDisciplines scans raw competency-document text for discipline
// entries and returns them in order of appearance, inner whitespace runs
// collapsed. Duplicates are preserved: entries have no identity beyond
// their literal text.
func ExtractDisciplines(text string) []string {
	matches := disciplineRe.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.Join(strings.Fields(m), " "))
	}
	return out
}

// DisciplineName extracts the title part of a discipline entry for
// display, or a placeholder when the entry does not parse.
func DisciplineName(entry string) string {
	if m := disciplineNameRe.FindString(entry); m != "" {
		return strings.TrimSpace(m)
	}
	return "Неизвестная дисциплина"
}
