// Package ingest watches a drop directory and feeds text files into the
// workspace. File names follow <user>.<kind>.txt, e.g. "ivanov.questions.txt".
package ingest

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/quizforge/quizforge/internal/session"
)

// Sink receives documents picked up from the inbox. Satisfied by
// *workspace.Service.
type Sink interface {
	IngestDocument(ctx context.Context, userID, kind, body string) (session.Stats, error)
}

type Watcher struct {
	sink Sink
}

func NewWatcher(sink Sink) *Watcher { return &Watcher{sink: sink} }

// Run ingests files already present in dir, then blocks watching for new
// ones until the context is cancelled.
func (w *Watcher) Run(ctx context.Context, dir string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(dir); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			w.ingest(ctx, filepath.Join(dir, e.Name()))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.ingest(ctx, event.Name)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("ingest: watch error: %v", err)
		}
	}
}

func (w *Watcher) ingest(ctx context.Context, path string) {
	userID, kind, ok := splitName(filepath.Base(path))
	if !ok {
		return
	}
	body, err := os.ReadFile(path)
	if err != nil {
		log.Printf("ingest: read %s: %v", path, err)
		return
	}
	stats, err := w.sink.IngestDocument(ctx, userID, kind, string(body))
	if err != nil {
		log.Printf("ingest: %s: %v", path, err)
		return
	}
	log.Printf("ingest: %s: user=%s kind=%s disciplines=%d competencies=%d",
		filepath.Base(path), userID, kind, stats.Disciplines, stats.Competencies)
}

// splitName parses "<user>.<kind>.txt". Anything else is skipped.
func splitName(name string) (userID, kind string, ok bool) {
	if !strings.HasSuffix(name, ".txt") {
		return "", "", false
	}
	parts := strings.Split(strings.TrimSuffix(name, ".txt"), ".")
	if len(parts) != 2 || parts[0] == "" || !session.ValidKind(parts[1]) {
		return "", "", false
	}
	return parts[0], parts[1], true
}
