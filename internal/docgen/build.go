package docgen

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/quizforge/quizforge/internal/competency"
	"github.com/quizforge/quizforge/internal/mining"
)

// Input carries everything needed to build one per-discipline document.
type Input struct {
	Discipline   string            // full discipline entry with embedded codes
	Direction    string            // program direction, may be empty
	Profile      string            // program profile, may be empty
	Competencies map[string]string // normalized code -> description
	Pools        map[mining.Category][]mining.Candidate
	Sections     mining.SectionMap
	Rng          *rand.Rand
}

const questionsPerIndicator = 15

// Build assembles the document model for one discipline: the header
// paragraphs, the competency/indicator table and, per indicator, a bold
// competency heading followed by a freshly sampled quiz. Indicators whose
// description cannot be resolved get a marker paragraph instead of
// questions.
func Build(in Input) Document {
	direction := in.Direction
	if direction == "" {
		direction = "Направление не указано"
	}
	profile := in.Profile
	if profile == "" {
		profile = "Профиль не указан"
	}

	name := competency.DisciplineName(in.Discipline)
	codes := competency.CodesIn(in.Discipline)
	shortCode := "Компетенция не указана"
	if len(codes) > 0 {
		shortCode = competency.BaseCode(codes[0])
	}

	doc := Document{Name: Filename(in.Discipline)}
	doc.Blocks = append(doc.Blocks,
		text("Задания для компьютерного тестирования по компетенции "+shortCode),
		text("по дисциплине "+name),
		text("Направление "+direction),
		text("Профиль "+profile),
		blank(),
		Block{Table: indicatorTable(codes, shortCode)},
		blank(),
	)

	counter := 1
	for _, code := range codes {
		desc, err := competency.Resolve(code, in.Competencies)
		if err != nil {
			doc.Blocks = append(doc.Blocks, centered("⚠️ "+code+" — описание не найдено."))
			continue
		}
		doc.Blocks = append(doc.Blocks, boldCentered(code+" — "+stripCodePrefix(desc, code)), blank())

		items, _, err := mining.Assemble(in.Pools, in.Sections, in.Rng)
		if err != nil {
			doc.Blocks = append(doc.Blocks, blank())
			continue
		}
		for _, it := range items {
			doc.Blocks = append(doc.Blocks, text(fmt.Sprintf("%d. %s", counter, it.Text)))
			counter++
		}
		doc.Blocks = append(doc.Blocks, blank())
	}
	return doc
}

// indicatorTable maps each indicator code to its question-number range,
// 15 questions per indicator. Without codes a two-indicator placeholder
// table is produced.
func indicatorTable(codes []string, shortCode string) *Table {
	t := &Table{Rows: [][]string{{"Код компетенции", "Код индикатора", "Номера вопросов"}}}
	if len(codes) == 0 {
		t.Rows = append(t.Rows,
			[]string{shortCode, shortCode + ".1", "1–15"},
			[]string{"", shortCode + ".2", "16–30"},
		)
		return t
	}
	for i, full := range codes {
		base := ""
		if i == 0 {
			base = competency.BaseCode(full)
		}
		t.Rows = append(t.Rows, []string{
			base,
			competency.NormalizeCode(full),
			fmt.Sprintf("%d–%d", i*questionsPerIndicator+1, (i+1)*questionsPerIndicator),
		})
	}
	return t
}

// stripCodePrefix removes the leading "code — " echo from a stored
// description so the heading does not repeat the code twice.
func stripCodePrefix(desc, code string) string {
	d := strings.TrimSpace(desc)
	if strings.HasPrefix(d, code) {
		d = strings.TrimSpace(d[len(code):])
	}
	return strings.TrimSpace(strings.TrimLeft(d, "—–- "))
}

var unsafeNameRe = regexp.MustCompile(`[^A-Za-zА-Яа-я0-9]`)

// Filename derives a safe file name stem from a discipline entry.
func Filename(discipline string) string {
	stem := discipline
	if r := []rune(stem); len(r) > 40 {
		stem = string(r[:40])
	}
	return unsafeNameRe.ReplaceAllString(stem, "_")
}
