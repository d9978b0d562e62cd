package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/attendance"
	authmw "github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/auth/middleware"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/notify"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/rbac"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/storage"
	syncx "github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/sync"
)

type Deps struct {
	Auth     *authmw.AuthService
	Verifier authmw.CredentialVerifier // nil disables /auth/login
	Store    attendance.Store
	Blobs    storage.BlobStore
	Events   EventLog
	Notifier *notify.Notifier

	NotifyOnAutoFail bool
	CORSOrigins      []string
	Ready            func(ctx context.Context) error
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Calculator: public and stateless.
	r.Route("/prelim", func(pr chi.Router) {
		pr.Get("/variants", VariantsHandler())
		pr.Post("/{variant}/compute", ComputeHandler(d.Notifier, d.NotifyOnAutoFail))
	})

	if d.Verifier != nil {
		r.Post("/auth/login", authmw.LoginHandler(d.Auth, d.Verifier, d.loginEvent))
	}

	att := &AttendanceAPI{Store: d.Store, Blobs: d.Blobs, Events: d.Events}
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(d.Auth))

		pr.With(rbac.Require(rbac.PermSummary)).Get("/attendance/summary", att.Summary)
		pr.With(rbac.Require(rbac.PermRecord)).Post("/attendance", att.Record)
		pr.With(rbac.Require(rbac.PermList)).Get("/attendance", att.List)
		pr.With(rbac.Require(rbac.PermExport)).Post("/attendance/export", att.Export)
		pr.With(rbac.Require(rbac.PermClear)).Delete("/attendance", att.Clear)

		if d.Events != nil {
			pr.With(rbac.Require(rbac.PermEvents)).Get("/events", EventsHandler(d.Events))
		}

		pr.Route("/exports", func(er chi.Router) {
			er.Use(rbac.RequireAny(rbac.PermExport, rbac.PermClear))
			MountExports(er, d.Blobs)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if d.Ready != nil {
			if err := d.Ready(r.Context()); err != nil {
				http.Error(w, "not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(200)
	})
	return r
}

func (d Deps) loginEvent(ctx context.Context, username, role string, at time.Time) {
	if d.Events == nil {
		return
	}
	err := d.Events.Append(ctx, syncx.TypeLoginSucceeded, username, map[string]any{
		"role":       role,
		"login_time": at.Unix(),
	})
	if err != nil {
		log.Printf("event %s: %v", syncx.TypeLoginSucceeded, err)
	}
}
