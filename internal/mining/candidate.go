package mining

// Category is one of the seven question kinds recognized in source
// question documents. The section headings in the documents are the
// Russian labels returned by Label.
type Category int

const (
	SingleChoice Category = iota // ЕВ: single-choice with options
	MultiChoice                  // МВ: multi-choice with options
	ShortAnswer                  // ЧВ: prompt with an "= answer" line
	Matching                     // Соответствие
	OneGap                       // Одно пропущенное слово
	TwoGap                       // Два пропущенных слова
	Nested                       // Вложенные вопросы
)

// Categories lists every category in the canonical document order.
var Categories = []Category{
	SingleChoice, MultiChoice, ShortAnswer, Matching, OneGap, TwoGap, Nested,
}

var categoryLabels = map[Category]string{
	SingleChoice: "ЕВ",
	MultiChoice:  "МВ",
	ShortAnswer:  "ЧВ",
	Matching:     "Соответствие",
	OneGap:       "Одно пропущенное слово",
	TwoGap:       "Два пропущенных слова",
	Nested:       "Вложенные вопросы",
}

var categoryNames = map[Category]string{
	SingleChoice: "single_choice",
	MultiChoice:  "multi_choice",
	ShortAnswer:  "short_answer",
	Matching:     "matching",
	OneGap:       "one_gap",
	TwoGap:       "two_gap",
	Nested:       "nested",
}

// Label returns the section heading used for this category in source documents.
func (c Category) Label() string { return categoryLabels[c] }

func (c Category) String() string { return categoryNames[c] }

// Candidate is one extracted question. The payload depends on the
// category: choice categories fill Prompt and Options, short-answer fills
// Prompt and Answer, the remaining categories carry an opaque formatted
// block in Text.
type Candidate struct {
	Category Category
	Prompt   string
	Options  []string
	Answer   string
	Text     string
}
