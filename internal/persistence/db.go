// Package persistence provides SQLite-based save storage. Each save is
// one JSON game document keyed by player, with a few denormalized columns
// for the leaderboard.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/lemonworks/lemonstand/internal/game"
)

// ErrNotFound is returned when a player or save does not exist.
var ErrNotFound = errors.New("persistence: not found")

// DB wraps a SQLite connection for save storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL REFERENCES players(id),
		game_data TEXT NOT NULL,
		money REAL NOT NULL,
		tips_savings REAL NOT NULL,
		day_count INTEGER NOT NULL,
		total_earned REAL NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_games_player ON games(player_id);
	CREATE INDEX IF NOT EXISTS idx_games_money ON games(money);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Player is a registered stand owner.
type Player struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// SaveRecord is a stored game row without the document blob.
type SaveRecord struct {
	ID          string  `db:"id" json:"id"`
	PlayerID    string  `db:"player_id" json:"player_id"`
	Money       float64 `db:"money" json:"money"`
	TipsSavings float64 `db:"tips_savings" json:"tips_savings"`
	DayCount    int     `db:"day_count" json:"day_count"`
	TotalEarned float64 `db:"total_earned" json:"total_earned"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
	UpdatedAt   string  `db:"updated_at" json:"updated_at"`
}

// LeaderboardRow ranks players by cash plus banked tips.
type LeaderboardRow struct {
	PlayerName  string  `db:"name" json:"player_name"`
	GameID      string  `db:"id" json:"game_id"`
	NetWorth    float64 `db:"net_worth" json:"net_worth"`
	DayCount    int     `db:"day_count" json:"day_count"`
	TotalEarned float64 `db:"total_earned" json:"total_earned"`
}

// CreatePlayer registers a new player name.
func (db *DB) CreatePlayer(name string) (Player, error) {
	p := Player{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	_, err := db.conn.Exec(
		"INSERT INTO players (id, name, created_at) VALUES (?, ?, ?)",
		p.ID, p.Name, p.CreatedAt,
	)
	if err != nil {
		return Player{}, fmt.Errorf("create player: %w", err)
	}
	return p, nil
}

// GetPlayer looks a player up by id.
func (db *DB) GetPlayer(id string) (Player, error) {
	var p Player
	err := db.conn.Get(&p, "SELECT * FROM players WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Player{}, ErrNotFound
	}
	return p, err
}

// CreateGame stores a fresh game document for a player.
func (db *DB) CreateGame(playerID string, state *game.State) (SaveRecord, error) {
	if _, err := db.GetPlayer(playerID); err != nil {
		return SaveRecord{}, err
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return SaveRecord{}, fmt.Errorf("marshal game: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	rec := SaveRecord{
		ID:          uuid.NewString(),
		PlayerID:    playerID,
		Money:       state.Money,
		TipsSavings: state.TipsSavings,
		DayCount:    state.DayCount,
		TotalEarned: state.Statistics.TotalEarned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err = db.conn.Exec(`INSERT INTO games
		(id, player_id, game_data, money, tips_savings, day_count, total_earned, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.PlayerID, string(raw), rec.Money, rec.TipsSavings,
		rec.DayCount, rec.TotalEarned, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return SaveRecord{}, fmt.Errorf("create game: %w", err)
	}
	return rec, nil
}

// LoadGame reads a game document back.
func (db *DB) LoadGame(gameID string) (*game.State, error) {
	var raw string
	err := db.conn.Get(&raw, "SELECT game_data FROM games WHERE id = ?", gameID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}

	var s game.State
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode game: %w", err)
	}
	return &s, nil
}

// SaveGame replaces a stored game document in full.
func (db *DB) SaveGame(gameID string, state *game.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}

	res, err := db.conn.Exec(`UPDATE games
		SET game_data = ?, money = ?, tips_savings = ?, day_count = ?, total_earned = ?, updated_at = ?
		WHERE id = ?`,
		string(raw), state.Money, state.TipsSavings, state.DayCount,
		state.Statistics.TotalEarned, time.Now().UTC().Format(time.RFC3339), gameID,
	)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	slog.Debug("game saved", "game_id", gameID, "day", state.DayCount, "money", state.Money)
	return nil
}

// DeleteGame removes a save.
func (db *DB) DeleteGame(gameID string) error {
	res, err := db.conn.Exec("DELETE FROM games WHERE id = ?", gameID)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListGames returns a player's saves, newest first.
func (db *DB) ListGames(playerID string) ([]SaveRecord, error) {
	var recs []SaveRecord
	err := db.conn.Select(&recs, `SELECT
		id, player_id, money, tips_savings, day_count, total_earned, created_at, updated_at
		FROM games WHERE player_id = ? ORDER BY updated_at DESC`, playerID)
	return recs, err
}

// Leaderboard returns the top saves by net worth.
func (db *DB) Leaderboard(limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := db.conn.Select(&rows, `SELECT
		p.name, g.id, g.money + g.tips_savings AS net_worth, g.day_count, g.total_earned
		FROM games g JOIN players p ON p.id = g.player_id
		ORDER BY net_worth DESC LIMIT ?`, limit)
	return rows, err
}
