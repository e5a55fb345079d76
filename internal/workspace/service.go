// Package workspace implements the per-user document workspace: document
// ingest, discipline search, quiz assembly and per-discipline document
// generation, on top of the session cache and the persistence layers.
package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/competency"
	"github.com/quizforge/quizforge/internal/docgen"
	"github.com/quizforge/quizforge/internal/docstore"
	"github.com/quizforge/quizforge/internal/mining"
	"github.com/quizforge/quizforge/internal/session"
)

// DocStore is the persistence surface the workspace needs. Satisfied by
// *docstore.Store; tests substitute fakes.
type DocStore interface {
	PutDocument(ctx context.Context, userID, kind, body string) error
	GetDocument(ctx context.Context, userID, kind string) (string, error)
	DeleteDocuments(ctx context.Context, userID string) (int64, error)
	PutArtifact(ctx context.Context, a docstore.Artifact) error
	ListArtifacts(ctx context.Context, userID string) ([]docstore.Artifact, error)
	AppendEvent(ctx context.Context, e docstore.Event) error
}

// Blobs stores generated artifact bytes. Satisfied by *storage.FSStore.
type Blobs interface {
	Put(key string, r io.Reader) (string, error)
	Get(key string) (io.ReadCloser, error)
	SignedURL(key string) (string, error)
}

type Service struct {
	docs     DocStore
	blobs    Blobs
	sessions *session.Manager
	writer   docgen.Writer
}

func New(docs DocStore, blobs Blobs, sessions *session.Manager, w docgen.Writer) *Service {
	return &Service{docs: docs, blobs: blobs, sessions: sessions, writer: w}
}

// IngestDocument stores a document, refreshes the session snapshot and
// reports the resulting extraction counts.
func (s *Service) IngestDocument(ctx context.Context, userID, kind, body string) (session.Stats, error) {
	if !session.ValidKind(kind) {
		return session.Stats{}, fmt.Errorf("unknown document kind %q", kind)
	}
	if err := s.docs.PutDocument(ctx, userID, kind, body); err != nil {
		return session.Stats{}, err
	}
	if err := s.sessions.Put(userID, kind, body); err != nil {
		return session.Stats{}, err
	}
	s.logEvent(ctx, "DocumentIngested", userID, map[string]any{"kind": kind, "chars": len(body)})
	return s.sessions.Stats(userID), nil
}

// DeleteDocuments drops the user's documents, session and caches.
// Reports whether anything existed.
func (s *Service) DeleteDocuments(ctx context.Context, userID string) (bool, error) {
	n, err := s.docs.DeleteDocuments(ctx, userID)
	if err != nil {
		return false, err
	}
	had := s.sessions.Delete(userID) || n > 0
	if had {
		s.logEvent(ctx, "DocumentsDeleted", userID, map[string]any{"rows": n})
	}
	return had, nil
}

// Status reports what the user's workspace currently holds.
func (s *Service) Status(ctx context.Context, userID string) (session.Stats, error) {
	if err := s.ensure(ctx, userID); err != nil {
		return session.Stats{}, err
	}
	return s.sessions.Stats(userID), nil
}

// Search filters disciplines by substring and resolves their competency
// references. An empty hit list is a normal outcome.
func (s *Service) Search(ctx context.Context, userID, query string) ([]session.DisciplineHit, error) {
	if err := s.ensure(ctx, userID); err != nil {
		return nil, err
	}
	return s.sessions.Search(userID, query)
}

// Quiz assembles a quiz from the user's question document. Seed 0 draws a
// fresh quiz; any other seed makes the result reproducible.
func (s *Service) Quiz(ctx context.Context, userID string, seed int64) ([]mining.Item, mining.Report, error) {
	if err := s.ensure(ctx, userID); err != nil {
		return nil, mining.Report{}, err
	}
	text, err := s.sessions.QuestionText(userID)
	if err != nil {
		return nil, mining.Report{}, err
	}
	pools, sections := mining.ExtractQuestions(text)
	items, rep, err := mining.Assemble(pools, sections, mining.NewRand(seed))
	rep.TextLength = utf8.RuneCountInString(mining.Normalize(text))
	return items, rep, err
}

// Generate builds one output document per discipline found by the last
// search, renders each through the writer and stores it as an artifact.
func (s *Service) Generate(ctx context.Context, userID string, seed int64) ([]docstore.Artifact, error) {
	if err := s.ensure(ctx, userID); err != nil {
		return nil, err
	}
	found, err := s.sessions.Found(userID)
	if err != nil {
		return nil, err
	}
	comps, err := s.sessions.Competencies(userID)
	if err != nil {
		return nil, err
	}
	qtext, err := s.sessions.QuestionText(userID)
	if err != nil {
		return nil, err
	}
	ctext, err := s.sessions.CompetencyText(userID)
	if err != nil {
		return nil, err
	}

	pools, sections := mining.ExtractQuestions(qtext)
	direction, profile := competency.ExtractProgramInfo(ctext)
	rng := mining.NewRand(seed)

	var out []docstore.Artifact
	for _, disc := range found {
		doc := docgen.Build(docgen.Input{
			Discipline:   disc,
			Direction:    direction,
			Profile:      profile,
			Competencies: comps,
			Pools:        pools,
			Sections:     sections,
			Rng:          rng,
		})
		b, err := s.writer.Write(doc)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", doc.Name, err)
		}
		key := path.Join("artifacts", userID, doc.Name+".txt")
		if _, err := s.blobs.Put(key, bytes.NewReader(b)); err != nil {
			return nil, fmt.Errorf("store %s: %w", key, err)
		}
		art := docstore.Artifact{
			ID:         uuid.NewString(),
			UserID:     userID,
			Discipline: disc,
			BlobKey:    key,
		}
		if err := s.docs.PutArtifact(ctx, art); err != nil {
			return nil, err
		}
		out = append(out, art)
	}
	s.logEvent(ctx, "DocsGenerated", userID, map[string]any{"count": len(out)})
	return out, nil
}

// Artifacts lists the user's generated documents, newest first.
func (s *Service) Artifacts(ctx context.Context, userID string) ([]docstore.Artifact, error) {
	return s.docs.ListArtifacts(ctx, userID)
}

// ArtifactURL returns a fetchable location for an artifact's blob, empty
// when the store cannot produce one.
func (s *Service) ArtifactURL(a docstore.Artifact) string {
	u, err := s.blobs.SignedURL(a.BlobKey)
	if err != nil {
		return ""
	}
	return u
}

// OpenArtifact streams one artifact's rendered bytes after checking it
// belongs to the user.
func (s *Service) OpenArtifact(ctx context.Context, userID, id string) (io.ReadCloser, *docstore.Artifact, error) {
	arts, err := s.docs.ListArtifacts(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	for i := range arts {
		if arts[i].ID == id {
			rc, err := s.blobs.Get(arts[i].BlobKey)
			if err != nil {
				return nil, nil, err
			}
			return rc, &arts[i], nil
		}
	}
	return nil, nil, docstore.ErrNotFound
}

// ensure seeds the in-memory session from persisted documents after a
// restart. Missing documents are not an error here; the operations that
// need them report that themselves.
func (s *Service) ensure(ctx context.Context, userID string) error {
	if s.sessions.Has(userID) {
		return nil
	}
	for _, kind := range []string{session.KindCompetencies, session.KindQuestions} {
		body, err := s.docs.GetDocument(ctx, userID, kind)
		if errors.Is(err, docstore.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := s.sessions.Put(userID, kind, body); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) logEvent(ctx context.Context, typ, userID string, data map[string]any) {
	buf, _ := json.Marshal(data)
	// The event log is advisory; failures must not break the operation.
	_ = s.docs.AppendEvent(ctx, docstore.Event{Type: typ, Key: userID, DataJSON: string(buf)})
}
