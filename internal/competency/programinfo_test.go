package competency

import "testing"

func TestExtractProgramInfo(t *testing.T) {
	text := "Учебный план по направлению 09.03.01 Информатика и вычислительная техника, " +
		"профиль - ЭВМ, комплексы, системы и сети"
	dir, prof := ExtractProgramInfo(text)
	if dir != "09.03.01 Информатика и вычислительная техника" {
		t.Fatalf("direction = %q", dir)
	}
	if prof != "ЭВМ, комплексы, системы и сети" {
		t.Fatalf("profile = %q", prof)
	}
}

func TestExtractProgramInfoStripsYearNoise(t *testing.T) {
	text := "по направлению 09.03.01 Информатика Год набора, профиль - Сети и системы"
	dir, prof := ExtractProgramInfo(text)
	if dir != "09.03.01 Информатика" {
		t.Fatalf("direction = %q", dir)
	}
	if prof != "Сети и системы" {
		t.Fatalf("profile = %q", prof)
	}
}

func TestExtractProgramInfoNoMatch(t *testing.T) {
	dir, prof := ExtractProgramInfo("произвольный текст без шаблона")
	if dir != "" || prof != "" {
		t.Fatalf("got %q / %q, want empty", dir, prof)
	}
}
