// Package storage provides SQLite-based persistence for high scores and
// saved games. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a single high score record. BoardKey identifies the board
// size the score was achieved on, e.g. "4x4".
type ScoreEntry struct {
	ID        int64
	BoardKey  string
	Score     int
	MaxTile   int
	CreatedAt time.Time
}

// SavedGame is a persisted session, keyed by a fixed slot identifier
// ("default" for local play, the SSH username for remote sessions).
type SavedGame struct {
	Slot      string
	Board     engine.Grid
	Score     int
	Won       bool
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_key TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_board_key ON scores(board_key);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(board_key, score DESC);

		CREATE TABLE IF NOT EXISTS saved_games (
			slot TEXT PRIMARY KEY,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			board TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveScore records a finished game's score for the given board size.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(boardKey string, score, maxTile int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (board_key, score, max_tile) VALUES (?, ?, ?)",
		boardKey, score, maxTile,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given board size, ordered by
// score descending.
func (s *Store) TopScores(boardKey string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, board_key, score, max_tile, created_at
		 FROM scores
		 WHERE board_key = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		boardKey, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.BoardKey, &e.Score, &e.MaxTile, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score recorded for the given board size.
// Returns 0 if no scores exist.
func (s *Store) HighScore(boardKey string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE board_key = ?",
		boardKey,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given board size.
func (s *Store) ClearScores(boardKey string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE board_key = ?", boardKey); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveGame upserts the saved session for the given slot. The grid is stored
// as JSON text.
func (s *Store) SaveGame(sg SavedGame) error {
	boardJSON, err := json.Marshal(sg.Board)
	if err != nil {
		return fmt.Errorf("storage: cannot encode board: %w", err)
	}

	rows, cols := len(sg.Board), 0
	if rows > 0 {
		cols = len(sg.Board[0])
	}

	_, err = s.db.Exec(
		`INSERT INTO saved_games (slot, rows, cols, board, score, won, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   rows = excluded.rows,
		   cols = excluded.cols,
		   board = excluded.board,
		   score = excluded.score,
		   won = excluded.won,
		   updated_at = CURRENT_TIMESTAMP`,
		sg.Slot, rows, cols, string(boardJSON), sg.Score, boolToInt(sg.Won),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game %q: %w", sg.Slot, err)
	}
	return nil
}

// LoadGame retrieves the saved session for the given slot.
// Returns (nil, nil) when the slot holds no saved game.
func (s *Store) LoadGame(slot string) (*SavedGame, error) {
	var (
		sg        SavedGame
		boardJSON string
		won       int
		updatedAt any
	)

	err := s.db.QueryRow(
		`SELECT slot, board, score, won, updated_at
		 FROM saved_games
		 WHERE slot = ?`,
		slot,
	).Scan(&sg.Slot, &boardJSON, &sg.Score, &won, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saved game %q: %w", slot, err)
	}

	if err := json.Unmarshal([]byte(boardJSON), &sg.Board); err != nil {
		return nil, fmt.Errorf("storage: cannot decode board for %q: %w", slot, err)
	}
	if !engine.Validate(sg.Board) {
		return nil, fmt.Errorf("storage: saved board for %q is not rectangular", slot)
	}

	sg.Won = won != 0
	sg.UpdatedAt = parseTimestamp(updatedAt)
	return &sg, nil
}

// DeleteGame removes the saved session for the given slot, if any.
func (s *Store) DeleteGame(slot string) error {
	if _, err := s.db.Exec("DELETE FROM saved_games WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete saved game %q: %w", slot, err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
