// Package storage provides SQLite-based persistence for match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/crucible-tabletop/crucible/internal/ai/difficulty"
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished skirmish.
type MatchRecord struct {
	ID             int64
	Scenario       string
	RedTier        string
	BlueTier       string
	Winner         string
	Rounds         int
	RedPointsLost  int
	BluePointsLost int
	Seed           int64
	CreatedAt      time.Time
}

// TierStats aggregates results for one difficulty tier across both
// sides.
type TierStats struct {
	Tier      difficulty.Tier
	Games     int
	Wins      int
	AvgRounds float64
}

// WinRate returns the tier's win fraction, 0 with no games.
func (s TierStats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario TEXT NOT NULL,
			red_tier TEXT NOT NULL,
			blue_tier TEXT NOT NULL,
			winner TEXT NOT NULL,
			rounds INTEGER NOT NULL,
			red_points_lost INTEGER NOT NULL DEFAULT 0,
			blue_points_lost INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_scenario ON matches(scenario);
		CREATE INDEX IF NOT EXISTS idx_matches_red_tier ON matches(red_tier);
		CREATE INDEX IF NOT EXISTS idx_matches_blue_tier ON matches(blue_tier);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match. Returns the ID of the inserted
// record.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches
		 (scenario, red_tier, blue_tier, winner, rounds, red_points_lost, blue_points_lost, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Scenario, rec.RedTier, rec.BlueTier, rec.Winner,
		rec.Rounds, rec.RedPointsLost, rec.BluePointsLost, rec.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scenario, red_tier, blue_tier, winner, rounds,
		        red_points_lost, blue_points_lost, seed, created_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// MatchesForTier retrieves matches where either side played at the
// given tier, newest first.
func (s *Store) MatchesForTier(tier difficulty.Tier, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	name := tier.Name()
	rows, err := s.db.Query(
		`SELECT id, scenario, red_tier, blue_tier, winner, rounds,
		        red_points_lost, blue_points_lost, seed, created_at
		 FROM matches
		 WHERE red_tier = ? OR blue_tier = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		name, name, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query tier matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// StatsForTier aggregates results for one tier across both sides.
func (s *Store) StatsForTier(tier difficulty.Tier) (TierStats, error) {
	stats := TierStats{Tier: tier}
	name := tier.Name()

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE
		            WHEN red_tier = ? AND winner = 'Red' THEN 1
		            WHEN blue_tier = ? AND winner = 'Blue' THEN 1
		            ELSE 0 END), 0),
		        COALESCE(AVG(rounds), 0)
		 FROM matches
		 WHERE red_tier = ? OR blue_tier = ?`,
		name, name, name, name,
	).Scan(&stats.Games, &stats.Wins, &stats.AvgRounds)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot aggregate tier stats: %w", err)
	}

	return stats, nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

func scanMatches(rows *sql.Rows) ([]MatchRecord, error) {
	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var createdAt any
		if err := rows.Scan(
			&rec.ID, &rec.Scenario, &rec.RedTier, &rec.BlueTier, &rec.Winner,
			&rec.Rounds, &rec.RedPointsLost, &rec.BluePointsLost, &rec.Seed, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			rec.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				rec.CreatedAt = parsed
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}
