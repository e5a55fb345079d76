package competency

import (
	"regexp"
	"strings"
)

// programRe captures the program direction and profile out of a line like
// "по направлению 09.03.01 Информатика и вычислительная техника,
// профиль - ЭВМ, комплексы, системы и сети".
var programRe = regexp.MustCompile(
	`по\s+направлению\s+([\d.]+\s*[А-Яа-яA-Za-zёЁ\s,]+?)\s*,?\s*профиль\s*[-–—]\s*([А-Яа-яA-Za-zёЁ\s,]+)`)

// yearNoiseRe strips "Год набора ..." fragments that bleed into the
// captured groups from adjacent table cells.
var yearNoiseRe = regexp.MustCompile(`(?i)год[^\n]*`)

// ExtractProgramInfo pulls the program direction and profile strings out
// of competency-document text. Best effort: both come back empty when the
// pattern does not match.
func ExtractProgramInfo(text string) (direction, profile string) {
	m := programRe.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	direction = strings.TrimSpace(yearNoiseRe.ReplaceAllString(m[1], ""))
	profile = strings.TrimSpace(yearNoiseRe.ReplaceAllString(m[2], ""))
	return direction, profile
}
