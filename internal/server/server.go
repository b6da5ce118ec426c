// Package server exposes ladder queries over HTTP: a long-running
// process loads the dictionary once and answers searches against a
// shared graph whose candidate cache warms up across requests.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// Server is the HTTP API over one shared wordgraph.Graph. Searches run
// one at a time behind searchMu because Neighbors mutates the cache.
type Server struct {
	graph    *wordgraph.Graph
	searchMu sync.Mutex
	log      zerolog.Logger
	server   *http.Server
}

// NewServer wires the routes and returns a Server bound to addr.
func NewServer(addr string, g *wordgraph.Graph, log zerolog.Logger) *Server {
	s := &Server{graph: g, log: log}

	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	r.HandleFunc("/words/{word}/neighbors", s.neighbors).Methods(http.MethodGet)
	r.HandleFunc("/ladder", s.findLadder).Methods(http.MethodGet)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("listening")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// logRequests logs every request with method, path and latency.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ladderResponse is the wire shape of a /ladder answer. A miss is a
// valid 200 with found=false, mirroring the search result itself.
type ladderResponse struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Found   bool     `json:"found"`
	Path    []string `json:"path,omitempty"`
	Visited int      `json:"visited"`
}

// health handles GET /healthz.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"words":  s.graph.Dictionary().Len(),
	})
}

// neighbors handles GET /words/{word}/neighbors.
func (s *Server) neighbors(w http.ResponseWriter, r *http.Request) {
	word := strings.ToLower(mux.Vars(r)["word"])
	if !s.graph.Dictionary().Contains(word) {
		s.respondError(w, http.StatusNotFound, fmt.Errorf("%q is not contained in the dictionary", word))
		return
	}

	s.searchMu.Lock()
	nbrs := s.graph.Neighbors(word)
	s.searchMu.Unlock()
	if nbrs == nil {
		// isolated words answer with an empty array, not null
		nbrs = []string{}
	}

	s.respond(w, http.StatusOK, map[string]interface{}{
		"word":      word,
		"neighbors": nbrs,
	})
}

// findLadder handles GET /ladder?from=X&to=Y.
func (s *Server) findLadder(w http.ResponseWriter, r *http.Request) {
	from := strings.ToLower(r.URL.Query().Get("from"))
	to := strings.ToLower(r.URL.Query().Get("to"))
	for _, word := range []string{from, to} {
		if word == "" {
			s.respondError(w, http.StatusBadRequest, errors.New("both from and to query parameters are required"))
			return
		}
		if !s.graph.Dictionary().Contains(word) {
			s.respondError(w, http.StatusBadRequest, fmt.Errorf("%q is not contained in the dictionary", word))
			return
		}
	}

	s.searchMu.Lock()
	res, err := ladder.Shortest(s.graph, from, to)
	s.searchMu.Unlock()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	s.log.Info().
		Str("from", from).
		Str("to", to).
		Bool("found", res.Found).
		Int("visited", res.Visited).
		Msg("ladder search")

	s.respond(w, http.StatusOK, ladderResponse{
		From:    from,
		To:      to,
		Found:   res.Found,
		Path:    res.Path,
		Visited: res.Visited,
	})
}

// Helper functions for HTTP responses
func (s *Server) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respond(w, status, map[string]string{"error": err.Error()})
}
