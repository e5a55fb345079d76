// Package docstore persists raw document text, generated artifacts and
// an append-only event log. The SQL works unchanged on both sqlite and
// postgres as opened by internal/db.
package docstore

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound reports a missing document row.
var ErrNotFound = errors.New("document not found")

// Artifact is one generated output file reference.
type Artifact struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Discipline string `json:"discipline"`
	BlobKey    string `json:"blob_key"`
	CreatedAt  int64  `json:"created_at"`
}

// Event is one append-only log record.
type Event struct {
	SiteID   string
	Type     string // e.g. DocumentIngested, DocumentsDeleted, DocsGenerated
	Key      string // natural key: userID
	DataJSON string
}

type Store struct {
	db *sql.DB
}

func New(dbh *sql.DB) *Store { return &Store{db: dbh} }

// PutDocument upserts one document body for a user/kind pair.
func (s *Store) PutDocument(ctx context.Context, userID, kind, body string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (user_id,kind,body,updated_at) VALUES ($1,$2,$3,$4)
		 ON CONFLICT (user_id,kind) DO UPDATE SET body=EXCLUDED.body, updated_at=EXCLUDED.updated_at`,
		userID, kind, body, time.Now().Unix())
	return err
}

// GetDocument returns the stored body, or ErrNotFound.
func (s *Store) GetDocument(ctx context.Context, userID, kind string) (string, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE user_id=$1 AND kind=$2`, userID, kind).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return body, nil
}

// DeleteDocuments removes every document of a user and returns how many
// rows went away.
func (s *Store) DeleteDocuments(ctx context.Context, userID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE user_id=$1`, userID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (s *Store) PutArtifact(ctx context.Context, a Artifact) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO artifacts (id,user_id,discipline,blob_key,created_at) VALUES ($1,$2,$3,$4,$5)`,
		a.ID, a.UserID, a.Discipline, a.BlobKey, time.Now().Unix())
	return err
}

func (s *Store) ListArtifacts(ctx context.Context, userID string) ([]Artifact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,user_id,discipline,blob_key,created_at FROM artifacts
		 WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Artifact
	for rows.Next() {
		var a Artifact
		if err := rows.Scan(&a.ID, &a.UserID, &a.Discipline, &a.BlobKey, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// AppendEvent writes one record to the event log.
func (s *Store) AppendEvent(ctx context.Context, e Event) error {
	site := e.SiteID
	if site == "" {
		site = "local"
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at) VALUES ($1,$2,$3,$4,$5)`,
		site, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}
