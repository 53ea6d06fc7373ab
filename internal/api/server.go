// File path: internal/api/server.go

// Package api exposes the REST surface the web client consumes.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/truenorth-regtech/truenorth/internal/auth"
	"github.com/truenorth-regtech/truenorth/internal/common"
	"github.com/truenorth-regtech/truenorth/internal/extract"
	"github.com/truenorth-regtech/truenorth/internal/llm"
	"github.com/truenorth-regtech/truenorth/internal/sqlite"
)

// demoAccountEmail owns the operations created through the no-auth demo
// endpoints.
const demoAccountEmail = "demo@truenorth.local"

type Server struct {
	router     chi.Router
	store      *sqlite.Store
	provider   llm.Provider
	extractor  *extract.Extractor
	issuer     *auth.TokenIssuer
	demoUserID string
}

func NewServer(store *sqlite.Store, provider llm.Provider, issuer *auth.TokenIssuer) (*Server, error) {
	logger := common.Logger()
	if provider == nil {
		provider = llm.NewProvider()
	}
	if issuer == nil {
		issuer = auth.NewTokenIssuer()
	}
	srv := &Server{
		router:    chi.NewRouter(),
		store:     store,
		provider:  provider,
		extractor: extract.New(provider),
		issuer:    issuer,
	}
	if err := srv.ensureDemoAccount(); err != nil {
		return nil, err
	}
	srv.routes()
	logger.Info("api: server ready", "provider", provider.Name())
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Get("/api/logs", s.handleLogs)

	s.router.Post("/api/auth/register", s.handleRegister)
	s.router.Post("/api/auth/login", s.handleLogin)

	s.router.Post("/api/process/demo/{key}", s.handleProcessDemo)

	s.router.Get("/api/ncm/search", s.handleNCMSearch)
	s.router.Get("/api/ncm/{code}", s.handleNCMLookup)
	s.router.Get("/api/validate/anuentes", s.handleAnuentes)
	s.router.Get("/api/validate/tipos-erro", s.handleTiposErro)
	s.router.Post("/api/simulate", s.handleSimulate)

	s.router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(s.issuer))
		r.Get("/api/auth/me", s.handleMe)
		r.Post("/api/upload", s.handleUpload)
		r.Post("/api/process/{id}", s.handleProcess)
		r.Post("/api/validate/{id}", s.handleValidate)
		r.Get("/api/operations", s.handleListOperations)
		r.Get("/api/operations/stats/summary", s.handleOperationsStats)
		r.Get("/api/operations/{id}", s.handleGetOperation)
		r.Delete("/api/operations/{id}", s.handleDeleteOperation)
		r.Patch("/api/operations/{id}/items/{idx}/ncm", s.handlePatchItemNCM)
		r.Get("/api/export/{id}/preview", s.handleExportPreview)
		r.Post("/api/export/{id}/preview", s.handleExportPreview)
		r.Get("/api/export/{id}/xml", s.handleExportXML)
		r.Post("/api/export/{id}/xml", s.handleExportXML)
		r.Get("/api/export/{id}/pdf", s.handleExportPDF)
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"logs": common.LogEntries()})
}

// ensureDemoAccount finds or creates the account that owns demo
// operations, so the no-auth demo flow can persist like any other.
func (s *Server) ensureDemoAccount() error {
	ctx := context.Background()
	user, _, err := s.store.CredentialsByEmail(ctx, demoAccountEmail)
	if err == nil {
		s.demoUserID = user.ID
		return nil
	}
	if !errors.Is(err, sqlite.ErrNotFound) {
		return err
	}
	hash, err := auth.HashPassword(uuid.NewString())
	if err != nil {
		return err
	}
	created, err := s.store.CreateUser(ctx, demoAccountEmail, "Conta Demo", hash)
	if err != nil {
		return err
	}
	s.demoUserID = created.ID
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
