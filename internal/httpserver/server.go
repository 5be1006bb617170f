// internal/httpserver/server.go
//
// Read-only HTTP view over saved game data (`termle serve`).
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Session statistics: GET /stats.
//   - Daily leaderboard: mounted under /daily when a database is configured.
//
// Notes:
//   - Nothing here mutates state; the terminal game is the only writer.
//   - CORS allows a single origin for GET requests.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/termle/internal/daily"
	"github.com/robalobadob/wordle/apps/termle/internal/stats"
	"github.com/robalobadob/wordle/apps/termle/internal/store"
	"github.com/robalobadob/wordle/apps/termle/internal/words"
)

// Options are the dependencies of the HTTP view.
type Options struct {
	Sessions     store.Store
	Results      *daily.Store // nil leaves /daily unmounted
	Words        *words.List
	ClientOrigin string
}

// Server bundles the router and the read-only stores behind it.
type Server struct {
	r        *chi.Mux
	sessions store.Store
	results  *daily.Store
	words    *words.List
	now      func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(o Options) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		sessions: o.Sessions,
		results:  o.Results,
		words:    o.Words,
		now:      time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(o.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"termle","endpoints":["/health","/stats","/daily/leaderboard"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		if s.words == nil {
			_ = json.NewEncoder(w).Encode(map[string]int{"answers": 0, "allowed": 0})
			return
		}
		a, g := s.words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	s.r.Get("/stats", s.handleStats)

	if s.results != nil {
		s.mountDaily(s.r)
	}

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start listens on addr and serves until ctx is done.
func (s *Server) Start(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	log.Info().Str("addr", ln.Addr().String()).Msg("http view listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info().Msg("http view stopped")
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

// cors allows GET requests from a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin != "" {
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// ------------------------------ STATS --------------------------------------

type statsRes struct {
	stats.Summary
	CompletedRounds int        `json:"completedRounds"`
	Unused          int        `json:"unused"`
	SavedAt         *time.Time `json:"savedAt,omitempty"`
}

// handleStats summarizes the saved session, or reports zero rounds.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap, err := s.sessions.Load(r.Context())
	if errors.Is(err, store.ErrNoSnapshot) {
		_, _ = w.Write([]byte(`{"played":0}`))
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}

	sum, err := snap.Stats.Summarize()
	if errors.Is(err, stats.ErrNoRounds) {
		_, _ = w.Write([]byte(`{"played":0}`))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "summary_failed")
		return
	}

	res := statsRes{Summary: sum, CompletedRounds: snap.CompletedRounds, Unused: len(snap.Unused)}
	if !snap.SavedAt.IsZero() {
		res.SavedAt = &snap.SavedAt
	}
	_ = json.NewEncoder(w).Encode(res)
}
