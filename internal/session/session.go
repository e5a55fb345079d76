// Package session holds per-user document snapshots and the caches
// derived from them. Each user owns an independent state; replacing or
// deleting a document invalidates every cache derived from it.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/quizforge/quizforge/internal/competency"
)

// Document kinds a session can hold.
const (
	KindCompetencies = "competencies"
	KindQuestions    = "questions"
)

var (
	ErrNoCompetencyDoc = errors.New("competency document not loaded")
	ErrNoQuestionDoc   = errors.New("question document not loaded")
	ErrNoSearch        = errors.New("no discipline search performed")
)

// ValidKind reports whether kind names a known document kind.
func ValidKind(kind string) bool {
	return kind == KindCompetencies || kind == KindQuestions
}

// Stats summarizes what a session currently holds.
type Stats struct {
	HasCompetencies bool `json:"has_competencies"`
	HasQuestions    bool `json:"has_questions"`
	Disciplines     int  `json:"disciplines"`
	Competencies    int  `json:"competencies"`
}

// CompRef is one competency code referenced by a discipline, with its
// resolved description when one exists.
type CompRef struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Found       bool   `json:"found"`
}

// DisciplineHit is one discipline entry matched by a search, with its
// competency references resolved against the session's competency map.
type DisciplineHit struct {
	Entry        string    `json:"entry"`
	Competencies []CompRef `json:"competencies"`
}

// state is one user's snapshot. Derived fields are computed lazily from
// competencyText and dropped whenever it changes.
type state struct {
	competencyText string
	questionText   string

	derived      bool
	disciplines  []string
	competencies map[string]string

	found []string // last search hits, consumed by document generation
}

func (s *state) invalidate() {
	s.derived = false
	s.disciplines = nil
	s.competencies = nil
	s.found = nil
}

func (s *state) derive() {
	if s.derived {
		return
	}
	s.disciplines = competency.ExtractDisciplines(s.competencyText)
	s.competencies = competency.ExtractCompetencies(s.competencyText)
	s.derived = true
}

// Manager owns every live session. Sessions never share mutable state,
// so per-user processing is safe to run in parallel.
type Manager struct {
	mu    sync.RWMutex
	users map[string]*state
}

func NewManager() *Manager {
	return &Manager{users: map[string]*state{}}
}

// Put replaces one of the user's documents and invalidates the derived
// caches.
func (m *Manager) Put(userID, kind, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.users[userID]
	if st == nil {
		st = &state{}
		m.users[userID] = st
	}
	switch kind {
	case KindCompetencies:
		st.competencyText = text
		st.invalidate()
	case KindQuestions:
		st.questionText = text
		st.found = nil
	default:
		return fmt.Errorf("unknown document kind %q", kind)
	}
	return nil
}

// Delete drops the user's session entirely. Reports whether one existed.
func (m *Manager) Delete(userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[userID]
	delete(m.users, userID)
	return ok
}

// Has reports whether any session state exists for the user.
func (m *Manager) Has(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[userID] != nil
}

// Stats derives (if needed) and reports the session's extraction counts.
func (m *Manager) Stats(userID string) Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.users[userID]
	if st == nil {
		return Stats{}
	}
	out := Stats{
		HasCompetencies: st.competencyText != "",
		HasQuestions:    st.questionText != "",
	}
	if out.HasCompetencies {
		st.derive()
		out.Disciplines = len(st.disciplines)
		out.Competencies = len(st.competencies)
	}
	return out
}

// Search filters the user's disciplines by case-insensitive substring and
// resolves each hit's competency references. The hit list is remembered
// for a later Generate call. An empty result is a normal outcome.
func (m *Manager) Search(userID, query string) ([]DisciplineHit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.users[userID]
	if st == nil || st.competencyText == "" {
		return nil, ErrNoCompetencyDoc
	}
	st.derive()

	q := strings.ToLower(strings.TrimSpace(query))
	var hits []DisciplineHit
	var found []string
	for _, d := range st.disciplines {
		if q != "" && !strings.Contains(strings.ToLower(d), q) {
			continue
		}
		found = append(found, d)
		hit := DisciplineHit{Entry: d}
		for _, code := range competency.CodesIn(d) {
			ref := CompRef{Code: code}
			if desc, err := competency.Resolve(code, st.competencies); err == nil {
				ref.Description = desc
				ref.Found = true
			}
			hit.Competencies = append(hit.Competencies, ref)
		}
		hits = append(hits, hit)
	}
	if len(found) > 0 {
		st.found = found
	}
	return hits, nil
}

// Found returns the discipline entries matched by the last search.
func (m *Manager) Found(userID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st := m.users[userID]
	if st == nil || len(st.found) == 0 {
		return nil, ErrNoSearch
	}
	out := make([]string, len(st.found))
	copy(out, st.found)
	return out, nil
}

// QuestionText returns the raw question document.
func (m *Manager) QuestionText(userID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st := m.users[userID]
	if st == nil || st.questionText == "" {
		return "", ErrNoQuestionDoc
	}
	return st.questionText, nil
}

// CompetencyText returns the raw competency document.
func (m *Manager) CompetencyText(userID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st := m.users[userID]
	if st == nil || st.competencyText == "" {
		return "", ErrNoCompetencyDoc
	}
	return st.competencyText, nil
}

// Competencies returns a copy of the user's code -> description map.
func (m *Manager) Competencies(userID string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.users[userID]
	if st == nil || st.competencyText == "" {
		return nil, ErrNoCompetencyDoc
	}
	st.derive()
	out := make(map[string]string, len(st.competencies))
	for k, v := range st.competencies {
		out[k] = v
	}
	return out, nil
}
