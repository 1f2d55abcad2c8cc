package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"symptomcheck/internal/app"
	"symptomcheck/internal/util"
)

// Config wires required dependencies for the HTTP server.
type Config struct {
	App           *app.App
	AllowedOrigin string
}

// Server exposes the HTTP endpoints for the symptom checker.
type Server struct {
	app           *app.App
	allowedOrigin string
	mux           *http.ServeMux
}

// New constructs the server with routes configured.
func New(cfg Config) *Server {
	s := &Server{
		app:           cfg.App,
		allowedOrigin: cfg.AllowedOrigin,
		mux:           http.NewServeMux(),
	}
	s.routes()
	return s
}

// Router returns the configured handler with the middleware chain applied.
func (s *Server) Router() http.Handler {
	return util.WithSecurityHeaders(
		util.WithCORS(s.allowedOrigin,
			util.WithRequestID(
				util.WithRequestLog(s.mux))))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/check_symptoms", s.handleCheckSymptoms)
	s.mux.HandleFunc("/history", s.handleHistory)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Healthcare Symptom Checker API"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type checkSymptomsRequest struct {
	Symptoms string `json:"symptoms"`
}

func (s *Server) handleCheckSymptoms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req checkSymptomsRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	result, err := s.app.CheckSymptoms(r.Context(), req.Symptoms)
	if err != nil {
		if errors.Is(err, app.ErrEmptySymptoms) {
			writeError(w, http.StatusBadRequest, "Symptoms cannot be empty.")
			return
		}
		writeError(w, http.StatusInternalServerError, "An error occurred: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	checks, err := s.app.History(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "An error occurred: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, checks)
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError uses the {"detail": ...} envelope expected by the frontend.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}
