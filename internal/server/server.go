// Package server exposes the proposal editor over HTTP: a JSON API bound to
// the session, a server-rendered preview and the print/PDF endpoint.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/faturaquick/fatura-cli/internal/session"
)

type Server struct {
	sess   *session.Session
	logger *slog.Logger
	router *mux.Router
}

func New(sess *session.Session, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{sess: sess, logger: logger}
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/print", s.handlePrint).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/invoice", s.handleGetInvoice).Methods(http.MethodGet)
	api.HandleFunc("/invoice/update", s.handleUpdate).Methods(http.MethodPost)
	api.HandleFunc("/invoice/items", s.handleAddItem).Methods(http.MethodPost)
	api.HandleFunc("/invoice/items/{id}", s.handleRemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/invoice/reset", s.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/invoice/generate", s.handleGenerate).Methods(http.MethodPost)

	r.Use(s.logRequests)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
