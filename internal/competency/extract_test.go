package competency

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractCompetenciesBasic(t *testing.T) {
	raw := "УК 1 Способен осуществлять поиск информации. Остальной текст таблицы"
	got := ExtractCompetencies(raw)
	want := "УК 1 — Способен осуществлять поиск информации"
	if got["УК1"] != want {
		t.Fatalf("УК1 = %q, want %q", got["УК1"], want)
	}
}

func TestExtractCompetenciesSentenceBoundary(t *testing.T) {
	raw := "ПК 3.1 Разрабатывает программные модули. Дополнительный хвост " +
		"ПК 3.2 Тестирует программное обеспечение."
	got := ExtractCompetencies(raw)
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2: %v", len(got), got)
	}
	if got["ПК3.1"] != "ПК 3.1 — Разрабатывает программные модули" {
		t.Fatalf("ПК3.1 = %q", got["ПК3.1"])
	}
	if strings.Contains(got["ПК3.1"], "хвост") {
		t.Fatalf("text past the sentence boundary leaked: %q", got["ПК3.1"])
	}
	if got["ПК3.2"] != "ПК 3.2 — Тестирует программное обеспечение" {
		t.Fatalf("ПК3.2 = %q", got["ПК3.2"])
	}
}

func TestExtractCompetenciesStopMarker(t *testing.T) {
	raw := "ОПК 2 Понимает принципы работы вычислительных систем\nФГОС высшего образования"
	got := ExtractCompetencies(raw)
	d := got["ОПК2"]
	if d == "" {
		t.Fatalf("ОПК2 missing: %v", got)
	}
	if strings.Contains(d, "ФГОС") {
		t.Fatalf("stop marker leaked into description: %q", d)
	}
}

func TestExtractCompetenciesLastWriteWins(t *testing.T) {
	raw := "УК 1 Первое описание компетенции. потом снова УК 1 Второе описание компетенции"
	got := ExtractCompetencies(raw)
	if !strings.Contains(got["УК1"], "Второе") {
		t.Fatalf("earlier occurrence won: %q", got["УК1"])
	}
}

func TestExtractCompetenciesDropsLetterless(t *testing.T) {
	got := ExtractCompetencies("ПК 9 123.")
	if _, ok := got["ПК9"]; ok {
		t.Fatalf("letterless description kept: %v", got)
	}
}

func TestExtractCompetenciesSanity(t *testing.T) {
	raw := "УК 1 Способен осуществлять критический анализ проблемных ситуаций. " +
		"ОПК 5 Способен разрабатывать алгоритмы и программы.\n\n" +
		"Директор института"
	got := ExtractCompetencies(raw)
	for code, desc := range got {
		if strings.Contains(code, " ") {
			t.Fatalf("key %q not normalized", code)
		}
		if !strings.Contains(desc, " — ") {
			t.Fatalf("entry %q lacks code/description separator", desc)
		}
		if utf8.RuneCountInString(desc) > maxDescRunes+64 {
			t.Fatalf("entry exceeds cap: %d runes", utf8.RuneCountInString(desc))
		}
		if strings.Contains(desc, "Директор") {
			t.Fatalf("signature block leaked: %q", desc)
		}
	}
}

func TestCapDescription(t *testing.T) {
	long := strings.Repeat("слово ", 80) + "конец. хвост " + strings.Repeat("ещё ", 40)
	capped := capDescription(long)
	if utf8.RuneCountInString(capped) > maxDescRunes+3 {
		t.Fatalf("capped length = %d", utf8.RuneCountInString(capped))
	}
	if !strings.HasSuffix(capped, "...") {
		t.Fatalf("no ellipsis: %q", capped[len(capped)-12:])
	}
}

func TestTruncateAtEarliest(t *testing.T) {
	s := "текст ФГОС и ещё\nБ1 хвост"
	out := truncateAtEarliest(s, stopRules)
	if out != "текст " {
		t.Fatalf("truncateAtEarliest = %q", out)
	}
}
