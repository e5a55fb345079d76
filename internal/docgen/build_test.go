package docgen

import (
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/mining"
)

func testPools() (map[mining.Category][]mining.Candidate, mining.SectionMap) {
	return mining.ExtractQuestions(strings.Join([]string{
		"ЕВ",
		"Столица Франции?",
		"Париж",
		"Лондон",
		"ЧВ",
		"Чему равно 6*7? (Введите число)",
		"= 42",
	}, "\n"))
}

func TestBuildDocument(t *testing.T) {
	pools, sections := testPools()
	doc := Build(Input{
		Discipline: "Б1Б 4 Безопасность жизнедеятельности (УК 7.3)",
		Direction:  "09.03.01 Информатика",
		Profile:    "Сети и системы",
		Competencies: map[string]string{
			"УК7.3": "УК 7.3 — Поддерживает должный уровень физической подготовленности",
		},
		Pools:    pools,
		Sections: sections,
		Rng:      mining.NewRand(5),
	})

	flat := renderFlat(t, doc)
	if !strings.Contains(flat, "по дисциплине Б1Б 4 Безопасность жизнедеятельности") {
		t.Fatalf("missing discipline line:\n%s", flat)
	}
	if !strings.Contains(flat, "Направление 09.03.01 Информатика") {
		t.Fatalf("missing direction line:\n%s", flat)
	}
	if !strings.Contains(flat, "Код компетенции | Код индикатора | Номера вопросов") {
		t.Fatalf("missing table header:\n%s", flat)
	}
	if !strings.Contains(flat, "УК 7 | УК7.3 | 1–15") {
		t.Fatalf("missing indicator row:\n%s", flat)
	}
	if !strings.Contains(flat, "УК 7.3 — Поддерживает") {
		t.Fatalf("missing competency heading:\n%s", flat)
	}
	if !strings.Contains(flat, "1. ") {
		t.Fatalf("questions not numbered:\n%s", flat)
	}
}

func TestBuildDefaultsAndMissingDescription(t *testing.T) {
	pools, sections := testPools()
	doc := Build(Input{
		Discipline:   "Б1В 2 Программирование (ПК 1.1)",
		Competencies: map[string]string{},
		Pools:        pools,
		Sections:     sections,
		Rng:          mining.NewRand(5),
	})
	flat := renderFlat(t, doc)
	if !strings.Contains(flat, "Направление не указано") || !strings.Contains(flat, "Профиль не указан") {
		t.Fatalf("missing defaults:\n%s", flat)
	}
	if !strings.Contains(flat, "ПК 1.1 — описание не найдено.") {
		t.Fatalf("missing not-found marker:\n%s", flat)
	}
}

func TestBuildPlaceholderTableWithoutCodes(t *testing.T) {
	pools, sections := testPools()
	doc := Build(Input{
		Discipline: "Б1Б 9 Философия ()",
		Pools:      pools,
		Sections:   sections,
		Rng:        mining.NewRand(1),
	})
	flat := renderFlat(t, doc)
	if !strings.Contains(flat, "Компетенция не указана") {
		t.Fatalf("missing placeholder rows:\n%s", flat)
	}
}

func TestFilename(t *testing.T) {
	got := Filename("Б1Б 4 Безопасность жизнедеятельности (УК 7.3)")
	if strings.ContainsAny(got, " ()./") {
		t.Fatalf("unsafe characters in %q", got)
	}
	long := strings.Repeat("и", 60)
	if n := len([]rune(Filename(long))); n != 40 {
		t.Fatalf("length = %d, want 40", n)
	}
}

func TestStripCodePrefix(t *testing.T) {
	if got := stripCodePrefix("УК 7.3 — описание", "УК 7.3"); got != "описание" {
		t.Fatalf("stripCodePrefix = %q", got)
	}
	if got := stripCodePrefix("просто описание", "УК 7.3"); got != "просто описание" {
		t.Fatalf("stripCodePrefix = %q", got)
	}
}

func renderFlat(t *testing.T, doc Document) string {
	t.Helper()
	b, err := PlainWriter{}.Write(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(b)
}
