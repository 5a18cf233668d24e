// Package persistence provides SQLite-based episode storage: one row per
// finished episode plus its event history and final person snapshots.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/lifesim/internal/entity"
	"github.com/talgya/lifesim/internal/sim"
)

// DB wraps a SQLite connection for episode persistence.
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
	CREATE TABLE IF NOT EXISTS episodes (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		days INTEGER NOT NULL,
		alive INTEGER NOT NULL,
		cause_of_death TEXT NOT NULL,
		age_years REAL NOT NULL,
		net_worth REAL NOT NULL,
		goals_done INTEGER NOT NULL,
		milestones INTEGER NOT NULL,
		total_reward REAL NOT NULL,
		finished_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		episode_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		magnitude REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS persons (
		episode_id TEXT NOT NULL,
		person_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		is_player INTEGER NOT NULL,
		alive INTEGER NOT NULL,
		state_json TEXT NOT NULL,
		PRIMARY KEY (episode_id, person_id)
	);

	CREATE INDEX IF NOT EXISTS idx_events_episode_day ON events(episode_id, day);
	CREATE INDEX IF NOT EXISTS idx_episodes_seed ON episodes(seed);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// EpisodeRow is one finished episode's summary record.
type EpisodeRow struct {
	ID           string  `db:"id"`
	Seed         int64   `db:"seed"`
	Days         int     `db:"days"`
	Alive        bool    `db:"alive"`
	CauseOfDeath string  `db:"cause_of_death"`
	AgeYears     float64 `db:"age_years"`
	NetWorth     float64 `db:"net_worth"`
	GoalsDone    int     `db:"goals_done"`
	Milestones   int     `db:"milestones"`
	TotalReward  float64 `db:"total_reward"`
	FinishedAt   string  `db:"finished_at"`
}

// SaveEpisode writes one finished episode: the summary row, the full
// event log, and final snapshots of the player and every NPC. Returns
// the generated episode ID.
func (db *DB) SaveEpisode(env *sim.Env, totalReward float64) (string, error) {
	id := uuid.NewString()
	player := env.Player()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO episodes
		(id, seed, days, alive, cause_of_death, age_years, net_worth,
		 goals_done, milestones, total_reward, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, env.Seed(), env.World().Day, boolInt(player.Alive), player.CauseOfDeath,
		player.AgeYears(), player.NetWorth(), len(player.GoalsDone),
		player.Milestones, totalReward, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert episode: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO events
		(episode_id, day, category, description, magnitude)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, ev := range env.Events().All() {
		if _, err := stmt.Exec(id, ev.Day, ev.Category, ev.Description, ev.Magnitude); err != nil {
			return "", fmt.Errorf("insert event day %d: %w", ev.Day, err)
		}
	}

	if err := savePerson(tx, id, player, true); err != nil {
		return "", err
	}
	for _, p := range env.NPCs() {
		if err := savePerson(tx, id, p, false); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("episode saved",
		"episode_id", id,
		"days", env.World().Day,
		"events", env.Events().Len(),
		"persons", 1+len(env.NPCs()),
	)
	return id, nil
}

func savePerson(tx *sqlx.Tx, episodeID string, p *entity.Person, player bool) error {
	state, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal person %d: %w", p.ID, err)
	}
	_, err = tx.Exec(`INSERT INTO persons
		(episode_id, person_id, name, is_player, alive, state_json)
		VALUES (?, ?, ?, ?, ?, ?)`,
		episodeID, p.ID, p.Name, boolInt(player), boolInt(p.Alive), string(state),
	)
	if err != nil {
		return fmt.Errorf("insert person %d: %w", p.ID, err)
	}
	return nil
}

// RecentEpisodes returns the most recently finished episodes.
func (db *DB) RecentEpisodes(limit int) ([]EpisodeRow, error) {
	var rows []EpisodeRow
	err := db.conn.Select(&rows,
		"SELECT * FROM episodes ORDER BY finished_at DESC LIMIT ?", limit)
	return rows, err
}

// EpisodeEvents returns the full event log of one stored episode.
func (db *DB) EpisodeEvents(episodeID string) ([]entity.Event, error) {
	var events []entity.Event
	err := db.conn.Select(&events,
		"SELECT day, category, description, magnitude FROM events WHERE episode_id = ? ORDER BY id",
		episodeID)
	return events, err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
