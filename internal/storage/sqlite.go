// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

// ErrNotFound is returned when a game id does not exist.
var ErrNotFound = errors.New("storage: game not found")

// timeLayout is fixed width so text comparison of played_at orders by time.
const timeLayout = "2006-01-02 15:04:05.000000000"

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// PlayerStats contains aggregated results for one player.
type PlayerStats struct {
	Player     string
	Games      int
	Wins       int
	Losses     int
	TotalMoves int64
	LastPlayed time.Time
}

// WinRate returns the share of won games in [0, 1].
func (p PlayerStats) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uid TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			played_at DATETIME NOT NULL,
			size INTEGER NOT NULL,
			mine_count INTEGER NOT NULL,
			mine_positions TEXT NOT NULL,
			result TEXT NOT NULL,
			total_moves INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_games_played_at ON games(played_at DESC);
		CREATE INDEX IF NOT EXISTS idx_games_player ON games(player);

		CREATE TABLE IF NOT EXISTS moves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id INTEGER NOT NULL REFERENCES games(id),
			move_number INTEGER NOT NULL,
			row_coord INTEGER NOT NULL,
			col_coord INTEGER NOT NULL,
			move_type TEXT NOT NULL,
			result TEXT NOT NULL,
			UNIQUE(game_id, move_number)
		);
		CREATE INDEX IF NOT EXISTS idx_moves_game_id ON moves(game_id);
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

// SaveGame stores a finished game and all of its moves in one transaction.
// A record without a UID gets a fresh one. Returns the new game id.
func (s *Store) SaveGame(ctx context.Context, rec *minesweeper.GameRecord) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	positions, err := json.Marshal(rec.MinePositions)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode mine positions: %w", err)
	}
	uid := rec.UID
	if uid == "" {
		uid = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.ExecContext(ctx,
		`INSERT INTO games
		 (uid, player, played_at, size, mine_count, mine_positions, result, total_moves)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uid,
		rec.Player,
		rec.PlayedAt.UTC().Format(timeLayout),
		rec.Size,
		rec.MineCount,
		string(positions),
		string(rec.Result),
		rec.TotalMoves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO moves (game_id, move_number, row_coord, col_coord, move_type, result)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare move insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range rec.Moves {
		if _, err := stmt.ExecContext(ctx, id, m.Seq, m.Row, m.Col, string(m.Type), string(m.Outcome)); err != nil {
			return 0, fmt.Errorf("storage: cannot save move %d: %w", m.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit game: %w", err)
	}
	return id, nil
}

// GameByID loads a game with its mine positions and moves in sequence
// order. Returns ErrNotFound when the id does not exist.
func (s *Store) GameByID(ctx context.Context, id int64) (*minesweeper.GameRecord, error) {
	var rec minesweeper.GameRecord
	var playedAt any
	var positions, result string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, uid, player, played_at, size, mine_count, mine_positions, result, total_moves
		 FROM games
		 WHERE id = ?`,
		id,
	).Scan(
		&rec.ID,
		&rec.UID,
		&rec.Player,
		&playedAt,
		&rec.Size,
		&rec.MineCount,
		&positions,
		&result,
		&rec.TotalMoves,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}

	rec.PlayedAt = parseTime(playedAt)
	rec.Result = minesweeper.Result(result)
	if err := json.Unmarshal([]byte(positions), &rec.MinePositions); err != nil {
		return nil, fmt.Errorf("storage: cannot decode mine positions of game %d: %w", id, err)
	}

	moves, err := s.movesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Moves = moves

	return &rec, nil
}

func (s *Store) movesFor(ctx context.Context, gameID int64) ([]minesweeper.Move, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT move_number, row_coord, col_coord, move_type, result
		 FROM moves
		 WHERE game_id = ?
		 ORDER BY move_number ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}
	defer rows.Close()

	var moves []minesweeper.Move
	for rows.Next() {
		var m minesweeper.Move
		var typ, outcome string
		if err := rows.Scan(&m.Seq, &m.Row, &m.Col, &typ, &outcome); err != nil {
			return nil, fmt.Errorf("storage: cannot scan move: %w", err)
		}
		m.Type = minesweeper.MoveType(typ)
		m.Outcome = minesweeper.Outcome(outcome)
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return moves, nil
}

// ListGames returns summaries of all saved games, newest first.
func (s *Store) ListGames(ctx context.Context) ([]minesweeper.GameSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, uid, player, played_at, size, mine_count, result, total_moves
		 FROM games
		 ORDER BY played_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []minesweeper.GameSummary
	for rows.Next() {
		var g minesweeper.GameSummary
		var playedAt any
		var result string
		if err := rows.Scan(&g.ID, &g.UID, &g.Player, &playedAt, &g.Size, &g.MineCount, &result, &g.TotalMoves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.PlayedAt = parseTime(playedAt)
		g.Result = minesweeper.Result(result)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return games, nil
}

// DeleteGame removes a game and its moves. It reports false when the id
// does not exist.
func (s *Store) DeleteGame(ctx context.Context, id int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM moves WHERE game_id = ?", id); err != nil {
		return false, fmt.Errorf("storage: cannot delete moves: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM games WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete game: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return n > 0, nil
}

// CountGames returns the number of saved games.
func (s *Store) CountGames(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM games").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count games: %w", err)
	}
	return n, nil
}

// PlayerStats returns per-player aggregates ordered by player name.
func (s *Store) PlayerStats(ctx context.Context) ([]PlayerStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT player,
		        COUNT(*),
		        COALESCE(SUM(CASE WHEN result = 'win' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN result = 'lose' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(total_moves), 0),
		        MAX(played_at)
		 FROM games
		 GROUP BY player
		 ORDER BY player`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	defer rows.Close()

	var stats []PlayerStats
	for rows.Next() {
		var p PlayerStats
		var lastPlayed any
		if err := rows.Scan(&p.Player, &p.Games, &p.Wins, &p.Losses, &p.TotalMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		p.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		// whole-second rows; the layout accepts an optional fraction
		if parsed, err := time.Parse(time.DateTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.UTC()
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}
