package daily

import (
	"context"
	"database/sql"
	"fmt"
)

// Result is one player's attempt at a daily challenge.
type Result struct {
	RoundID   string `json:"roundId"`
	Player    string `json:"player"`
	Date      string `json:"date"`
	WordIndex int    `json:"wordIndex"`
	Guesses   int    `json:"guesses"`
	Won       bool   `json:"won"`
	ElapsedMs int    `json:"elapsedMs"`
}

// LBRow is one leaderboard line.
type LBRow struct {
	Player    string `json:"player"`
	Guesses   int    `json:"guesses"`
	Won       bool   `json:"won"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Store reads and writes the daily_results table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether player has a result for date.
func (s *Store) AlreadyPlayed(ctx context.Context, player, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE player=? AND date=?",
		player, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult stores r. A second result for the same player and date is ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(round_id, player, date, word_index, guesses, won, elapsed_ms)
		VALUES(?,?,?,?,?,?,?)`,
		r.RoundID, r.Player, r.Date, r.WordIndex, r.Guesses, r.Won, r.ElapsedMs,
	)
	if err != nil {
		return fmt.Errorf("insert daily result: %w", err)
	}
	return nil
}

// Leaderboard returns the best results for date: wins first, then fewer guesses, then faster.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT player, guesses, won, elapsed_ms
		FROM daily_results
		WHERE date=?
		ORDER BY won DESC, guesses ASC, elapsed_ms ASC, created_at ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.Player, &r.Guesses, &r.Won, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
