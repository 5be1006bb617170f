// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily challenge. Results are written by `termle daily`;
// this side only reads them.
//   - GET /daily/leaderboard?date=YYYY-MM-DD → top 20 results (default today, UTC)

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/termle/internal/daily"
)

const leaderboardSize = 20

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

// handleLeaderboard returns the best results for a date.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = daily.DateKey(s.now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}

	rows, err := s.results.Leaderboard(r.Context(), date, leaderboardSize)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"date": date, "rows": rows})
}
