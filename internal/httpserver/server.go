// internal/httpserver/server.go
//
// HTTP server wiring for the solver API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Stateless solving: POST /solve.
//   - Board sessions: mounted under /boards (see routes_boards.go).
//   - Word list upload behind a bearer token: POST /wordlist (see auth.go).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled for a single client origin.
//   - Every error body is JSON: {"error":"<code>"} plus an optional detail.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wrdlstab/internal/engine"
	"github.com/robalobadob/wrdlstab/internal/puzzle"
	"github.com/robalobadob/wrdlstab/internal/rank"
	"github.com/robalobadob/wrdlstab/internal/solver"
	"github.com/robalobadob/wrdlstab/internal/store"
	"github.com/robalobadob/wrdlstab/internal/words"
)

const shutdownGrace = 5 * time.Second

// Options carries the configuration the server needs.
type Options struct {
	Length       int    // default word length when a request omits one
	MaxShow      int    // display cap for candidate lists
	ClientOrigin string // CORS origin; "*" when empty
	JWTSecret    string // enables POST /wordlist when set
}

// Server bundles router, board store, word cache and solving engine.
type Server struct {
	r      *chi.Mux
	store  store.Store
	words  *words.Cache
	engine *engine.Engine
	opts   Options
}

// New constructs a Server, installs middleware, and registers routes.
// The engine takes its words from cache; oracle may be nil.
func New(st store.Store, cache *words.Cache, oracle rank.Oracle, opts Options) *Server {
	if opts.Length < 1 {
		opts.Length = 5
	}
	s := &Server{
		r:     chi.NewRouter(),
		store: st,
		words: cache,
		engine: &engine.Engine{
			Source:  cache,
			Oracle:  oracle,
			MaxShow: opts.MaxShow,
		},
		opts: opts,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wrdlstab","endpoints":["/health","POST /solve","/boards","POST /wordlist"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", s.handleDebugWords)

	s.r.Post("/solve", s.handleSolve)
	s.mountBoards(s.r)
	s.r.With(s.requireAuth()).Post("/wordlist", s.handleWordList)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until ctx is done, then shuts down gracefully,
// giving in-flight requests up to shutdownGrace to finish.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if origin != "*" {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, If-None-Match")
			w.Header().Set("Access-Control-Expose-Headers", "ETag")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ diagnostics --------------------------------

func (s *Server) handleDebugWords(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int{}
	for n, c := range s.words.Stats() {
		counts[strconv.Itoa(n)] = c
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"source":  s.words.String(),
		"version": s.words.Version(),
		"cached":  counts,
	})
}

// ------------------------------- responses ---------------------------------

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError maps domain errors onto status codes and JSON error bodies.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, solver.ErrInvalidInput), errors.Is(err, puzzle.ErrInvalidRow):
		code, msg = http.StatusBadRequest, "invalid_input"
	case errors.Is(err, store.ErrNotFound), errors.Is(err, puzzle.ErrNoSuchRow):
		code, msg = http.StatusNotFound, "not_found"
	case errors.Is(err, words.ErrNoWordSource):
		code, msg = http.StatusServiceUnavailable, "no_word_source"
	}
	ev := log.Warn()
	if code == http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(err).
		Str("reqId", chimw.GetReqID(r.Context())).
		Str("path", r.URL.Path).
		Int("status", code).
		Msg("request failed")

	body := map[string]string{"error": msg}
	if code != http.StatusInternalServerError {
		body["detail"] = err.Error()
	}
	writeJSON(w, code, body)
}

func badJSON(w http.ResponseWriter) {
	http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
}
