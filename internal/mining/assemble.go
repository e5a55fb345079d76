package mining

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Per-category sampling quotas. They sum to the quiz size cap.
var quotas = map[Category]int{
	SingleChoice: 4,
	MultiChoice:  4,
	ShortAnswer:  2,
	Matching:     1,
	OneGap:       2,
	TwoGap:       1,
	Nested:       1,
}

// MaxQuizSize caps the assembled quiz. The quotas already sum to this;
// the truncation in Assemble is a guard, not the normal path.
const MaxQuizSize = 15

// ErrNoQuestions is returned by Assemble when every pool is empty. The
// report returned alongside it carries the diagnostic trail.
var ErrNoQuestions = errors.New("no questions extracted")

// Item is one rendered quiz entry.
type Item struct {
	Category Category `json:"-"`
	Label    string   `json:"label"`
	Text     string   `json:"text"`
}

// String renders the item prefixed with its category label for display.
func (it Item) String() string { return it.Label + ":\n" + it.Text }

// Report is the diagnostic trail of one assembly run.
type Report struct {
	TextLength   int            `json:"text_length,omitempty"`
	SectionChars map[string]int `json:"section_chars"`
	PoolSizes    map[string]int `json:"pool_sizes"`
	Selected     int            `json:"selected"`
}

// Lines renders the report as human-readable diagnostics.
func (r Report) Lines() []string {
	out := []string{fmt.Sprintf("text length: %d", r.TextLength)}
	for _, cat := range Categories {
		out = append(out, fmt.Sprintf("%s: section %d chars, %d candidates",
			cat.Label(), r.SectionChars[cat.String()], r.PoolSizes[cat.String()]))
	}
	out = append(out, fmt.Sprintf("selected: %d", r.Selected))
	return out
}

// NewRand builds the sampling source. Seed 0 means "not reproducible":
// the current time is used instead.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Assemble draws min(quota, pool) candidates per category without
// replacement, renders them, shuffles the combined list and truncates it
// to MaxQuizSize. An all-empty pool set yields ErrNoQuestions; the report
// is valid either way.
func Assemble(pools map[Category][]Candidate, sections SectionMap, rng *rand.Rand) ([]Item, Report, error) {
	rep := Report{
		SectionChars: make(map[string]int, len(Categories)),
		PoolSizes:    make(map[string]int, len(Categories)),
	}
	for _, cat := range Categories {
		rep.SectionChars[cat.String()] = len(sections[cat])
		rep.PoolSizes[cat.String()] = len(pools[cat])
	}

	var items []Item
	for _, cat := range Categories {
		pool := pools[cat]
		n := quotas[cat]
		if n > len(pool) {
			n = len(pool)
		}
		if n == 0 {
			continue
		}
		for _, i := range rng.Perm(len(pool))[:n] {
			items = append(items, Item{Category: cat, Label: cat.Label(), Text: Render(pool[i])})
		}
	}
	if len(items) == 0 {
		return nil, rep, ErrNoQuestions
	}
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	if len(items) > MaxQuizSize {
		items = items[:MaxQuizSize]
	}
	rep.Selected = len(items)
	return items, rep, nil
}

// Render applies the category's display template to a candidate.
func Render(c Candidate) string {
	switch c.Category {
	case SingleChoice, MultiChoice:
		if len(c.Options) == 0 {
			return c.Prompt
		}
		return c.Prompt + "\n" + strings.Join(c.Options, "\n")
	case ShortAnswer:
		return c.Prompt + "\nОтвет: " + c.Answer
	default:
		return c.Text
	}
}
