package mining

import "strings"

// SectionMap maps a category to the concatenated body of its section(s).
// A category without a section in the document is simply absent.
type SectionMap map[Category]string

var labelIndex = func() map[string]Category {
	idx := make(map[string]Category, len(categoryLabels))
	for c, l := range categoryLabels {
		idx[l] = c
	}
	return idx
}()

// Segment splits text into per-category section bodies. A line whose
// trimmed content equals a category label opens that section; the heading
// line itself is consumed. Following lines append to the open section
// until the next heading. Lines before the first heading are discarded.
// A repeated heading re-opens its section and keeps accumulating into the
// same body.
func Segment(text string) SectionMap {
	bodies := map[Category]*strings.Builder{}
	current := SingleChoice
	open := false
	for _, line := range strings.Split(text, "\n") {
		if cat, ok := labelIndex[strings.TrimSpace(line)]; ok {
			current = cat
			open = true
			if _, seen := bodies[cat]; !seen {
				bodies[cat] = &strings.Builder{}
			}
			continue
		}
		if !open {
			continue
		}
		bodies[current].WriteString(line)
		bodies[current].WriteByte('\n')
	}
	out := make(SectionMap, len(bodies))
	for c, b := range bodies {
		out[c] = b.String()
	}
	return out
}
