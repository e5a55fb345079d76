package competency

import (
	"strings"
	"testing"
)

func TestExtractDisciplines(t *testing.T) {
	text := "шапка таблицы\n" +
		"Б1Б 4 Безопасность жизнедеятельности (УК 7.3 УК 7.4)\n" +
		"Б1В 2 Программирование (ПК 1.1)\n"
	got := ExtractDisciplines(text)
	if len(got) != 2 {
		t.Fatalf("disciplines = %d, want 2: %v", len(got), got)
	}
	if !strings.Contains(got[0], "Безопасность жизнедеятельности") {
		t.Fatalf("first entry = %q", got[0])
	}
	if !strings.Contains(got[1], "(ПК 1.1)") {
		t.Fatalf("second entry lost its code list: %q", got[1])
	}
}

func TestExtractDisciplinesCollapsesWhitespace(t *testing.T) {
	text := "Б1Б   4  Безопасность\nжизнедеятельности (УК 7.3)"
	got := ExtractDisciplines(text)
	if len(got) != 1 {
		t.Fatalf("disciplines = %d, want 1", len(got))
	}
	if got[0] != "Б1Б 4 Безопасность жизнедеятельности (УК 7.3)" {
		t.Fatalf("entry = %q", got[0])
	}
}

func TestExtractDisciplinesKeepsDuplicates(t *testing.T) {
	entry := "Б1Б 4 Физика (УК 1.1)\n"
	got := ExtractDisciplines(entry + entry)
	if len(got) != 2 {
		t.Fatalf("duplicates were merged: %v", got)
	}
}

func TestDisciplineName(t *testing.T) {
	if got := DisciplineName("Б1Б 4 Безопасность жизнедеятельности (УК 7.3)"); got != "Б1Б 4 Безопасность жизнедеятельности" {
		t.Fatalf("DisciplineName = %q", got)
	}
	if got := DisciplineName("не дисциплина"); got != "Неизвестная дисциплина" {
		t.Fatalf("fallback = %q", got)
	}
}
