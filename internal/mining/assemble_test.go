package mining

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func bigPools() map[Category][]Candidate {
	pools := map[Category][]Candidate{}
	for _, cat := range Categories {
		for i := 0; i < 10; i++ {
			c := Candidate{Category: cat, Text: fmt.Sprintf("%s question %d", cat, i)}
			if cat == SingleChoice || cat == MultiChoice {
				c.Prompt = c.Text + "?"
				c.Options = []string{"a", "b"}
				c.Text = ""
			}
			pools[cat] = append(pools[cat], c)
		}
	}
	return pools
}

func TestAssembleFillsQuotas(t *testing.T) {
	items, rep, err := Assemble(bigPools(), SectionMap{}, NewRand(7))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(items) != MaxQuizSize {
		t.Fatalf("items = %d, want %d", len(items), MaxQuizSize)
	}
	if rep.Selected != MaxQuizSize {
		t.Fatalf("report selected = %d", rep.Selected)
	}
	counts := map[Category]int{}
	for _, it := range items {
		counts[it.Category]++
	}
	for cat, n := range counts {
		if n > quotas[cat] {
			t.Fatalf("%s: %d items exceeds quota %d", cat, n, quotas[cat])
		}
	}
}

func TestAssembleReproducibleWithSeed(t *testing.T) {
	a, _, err := Assemble(bigPools(), SectionMap{}, NewRand(42))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	b, _, err := Assemble(bigPools(), SectionMap{}, NewRand(42))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different quizzes")
	}
}

func TestAssembleSmallPools(t *testing.T) {
	pools := map[Category][]Candidate{
		Matching: {{Category: Matching, Text: "только одно"}},
	}
	items, _, err := Assemble(pools, SectionMap{}, NewRand(1))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
}

func TestAssembleEmptyPools(t *testing.T) {
	sections := SectionMap{SingleChoice: "пустой текст"}
	_, rep, err := Assemble(map[Category][]Candidate{}, sections, NewRand(1))
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
	if rep.SectionChars["single_choice"] == 0 {
		t.Fatal("report lost section diagnostics")
	}
	if len(rep.Lines()) == 0 {
		t.Fatal("report has no diagnostic lines")
	}
}

func TestRenderByCategory(t *testing.T) {
	choice := Candidate{Category: SingleChoice, Prompt: "Вопрос?", Options: []string{"а", "б"}}
	if got := Render(choice); got != "Вопрос?\nа\nб" {
		t.Fatalf("choice render = %q", got)
	}
	short := Candidate{Category: ShortAnswer, Prompt: "Сколько? (Введите число)", Answer: "4"}
	if got := Render(short); got != "Сколько? (Введите число)\nОтвет: 4" {
		t.Fatalf("short render = %q", got)
	}
	block := Candidate{Category: Nested, Text: "как есть"}
	if got := Render(block); got != "как есть" {
		t.Fatalf("block render = %q", got)
	}
}

func TestItemString(t *testing.T) {
	it := Item{Label: "ЕВ", Text: "Вопрос?\nа"}
	if it.String() != "ЕВ:\nВопрос?\nа" {
		t.Fatalf("String = %q", it.String())
	}
}
