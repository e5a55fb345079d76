package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/quizforge/quizforge/internal/api/http"
	"github.com/quizforge/quizforge/internal/auth"
	authmw "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/db"
	"github.com/quizforge/quizforge/internal/docgen"
	"github.com/quizforge/quizforge/internal/docstore"
	"github.com/quizforge/quizforge/internal/ingest"
	"github.com/quizforge/quizforge/internal/rbac"
	"github.com/quizforge/quizforge/internal/session"
	"github.com/quizforge/quizforge/internal/storage"
	"github.com/quizforge/quizforge/internal/workspace"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	docs := docstore.New(dbh)

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	svc := workspace.New(docs, bs, session.NewManager(), docgen.PlainWriter{})
	authSvc := authmw.NewAuthService(cfg.AuthSecret)

	// --- Inbox watcher (optional) ---
	if cfg.InboxDir != "" {
		go func() {
			if err := ingest.NewWatcher(svc).Run(context.Background(), cfg.InboxDir); err != nil {
				log.Printf("inbox watcher stopped: %v", err)
			}
		}()
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   cfg.CORSAllowedHeaders,
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", authmw.LoginHandler(authSvc, cfg.AdminUser, cfg.AdminPassHash))
	r.Post("/auth/guest", auth.GuestLoginHandler(authSvc, cfg.EnableGuestAuth))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))
		pr.Route("/api", func(ar chi.Router) {
			ar.With(rbac.Require("doc:upload")).
				Put("/documents/{kind}", api.UploadDocumentHandler(svc))
			ar.With(rbac.Require("doc:delete")).
				Delete("/documents", api.DeleteDocumentsHandler(svc))
			ar.With(rbac.Require("doc:status")).
				Get("/documents/status", api.StatusHandler(svc))
			ar.With(rbac.Require("doc:search")).
				Get("/disciplines", api.SearchDisciplinesHandler(svc))
			ar.With(rbac.Require("quiz:generate")).
				Post("/quiz", api.QuizHandler(svc))
			ar.With(rbac.Require("doc:generate")).
				Post("/generate", api.GenerateHandler(svc))
			ar.With(rbac.Require("doc:generate")).
				Get("/artifacts", api.ListArtifactsHandler(svc))
			ar.With(rbac.Require("doc:generate")).
				Get("/artifacts/{artifactID}/download", api.DownloadArtifactHandler(svc))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	})

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
