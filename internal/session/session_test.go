package session

import (
	"errors"
	"testing"
)

const compDoc = "по направлению 09.03.01 Информатика, профиль - Сети\n" +
	"Б1Б 4 Безопасность жизнедеятельности (УК 7.3)\n" +
	"УК 7.3 Поддерживает должный уровень физической подготовленности\n"

func TestManagerPutAndStats(t *testing.T) {
	m := NewManager()
	if err := m.Put("u1", KindCompetencies, compDoc); err != nil {
		t.Fatalf("Put: %v", err)
	}
	st := m.Stats("u1")
	if !st.HasCompetencies || st.HasQuestions {
		t.Fatalf("stats = %+v", st)
	}
	if st.Disciplines != 1 || st.Competencies != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestManagerPutUnknownKind(t *testing.T) {
	if err := NewManager().Put("u1", "nonsense", "x"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestManagerSearchResolvesCodes(t *testing.T) {
	m := NewManager()
	_ = m.Put("u1", KindCompetencies, compDoc)
	hits, err := m.Search("u1", "безопасность")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("hits = %d", len(hits))
	}
	refs := hits[0].Competencies
	if len(refs) != 1 || !refs[0].Found || refs[0].Code != "УК 7.3" {
		t.Fatalf("refs = %+v", refs)
	}

	found, err := m.Found("u1")
	if err != nil || len(found) != 1 {
		t.Fatalf("Found = %v, %v", found, err)
	}
}

func TestManagerSearchNoDoc(t *testing.T) {
	if _, err := NewManager().Search("ghost", "x"); !errors.Is(err, ErrNoCompetencyDoc) {
		t.Fatalf("err = %v", err)
	}
}

func TestManagerFoundRequiresSearch(t *testing.T) {
	m := NewManager()
	_ = m.Put("u1", KindCompetencies, compDoc)
	if _, err := m.Found("u1"); !errors.Is(err, ErrNoSearch) {
		t.Fatalf("err = %v", err)
	}
}

func TestManagerReplaceInvalidatesSearch(t *testing.T) {
	m := NewManager()
	_ = m.Put("u1", KindCompetencies, compDoc)
	if _, err := m.Search("u1", ""); err != nil {
		t.Fatalf("Search: %v", err)
	}
	_ = m.Put("u1", KindCompetencies, compDoc)
	if _, err := m.Found("u1"); !errors.Is(err, ErrNoSearch) {
		t.Fatal("replacing the document should clear the last search")
	}
}

func TestManagerQuestionTextAndDelete(t *testing.T) {
	m := NewManager()
	_ = m.Put("u1", KindQuestions, "ЕВ\nВопрос?\nа\nб")
	if txt, err := m.QuestionText("u1"); err != nil || txt == "" {
		t.Fatalf("QuestionText = %q, %v", txt, err)
	}
	if !m.Delete("u1") {
		t.Fatal("Delete reported no session")
	}
	if _, err := m.QuestionText("u1"); !errors.Is(err, ErrNoQuestionDoc) {
		t.Fatalf("err = %v", err)
	}
	if m.Delete("u1") {
		t.Fatal("second Delete reported a session")
	}
}

func TestManagerCompetenciesCopy(t *testing.T) {
	m := NewManager()
	_ = m.Put("u1", KindCompetencies, compDoc)
	a, err := m.Competencies("u1")
	if err != nil {
		t.Fatalf("Competencies: %v", err)
	}
	a["УК7.3"] = "испорчено"
	b, _ := m.Competencies("u1")
	if b["УК7.3"] == "испорчено" {
		t.Fatal("caller mutation leaked into the session")
	}
}
