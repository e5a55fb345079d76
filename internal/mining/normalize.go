package mining

import (
	"regexp"
	"strings"
)

var (
	spaceRunRe = regexp.MustCompile(`[ \t]+`)
	blankRunRe = regexp.MustCompile(`\n{2,}`)
)

// Normalize collapses runs of spaces/tabs to a single space and runs of
// two or more newlines to exactly one blank line. Carriage returns are
// dropped. Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	text = spaceRunRe.ReplaceAllString(text, " ")
	return blankRunRe.ReplaceAllString(text, "\n\n")
}

// collapseBlankLines squeezes blank-line runs down to single newlines
// inside an already extracted block.
func collapseBlankLines(s string) string {
	return blankRunRe.ReplaceAllString(s, "\n")
}
