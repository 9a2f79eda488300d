package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rishabhsssrrr13/ppss/internal/domain"
	_ "modernc.org/sqlite"
)

// timeLayout is the chat_history timestamp format. Kept as text for
// compatibility with pre-existing databases.
const timeLayout = "2006-01-02 15:04:05"

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS chat_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_message TEXT,
		bot_response TEXT,
		timestamp TEXT
	);

	CREATE TABLE IF NOT EXISTS intents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tag TEXT NOT NULL,
		pattern TEXT NOT NULL,
		response TEXT NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ListIntents retrieves all intents in ascending id order. Matching relies
// on this order for its first-match-wins tie-break.
func (s *SQLiteStore) ListIntents(ctx context.Context) ([]domain.Intent, error) {
	query := `SELECT id, tag, pattern, response FROM intents ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query intents: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close intent rows", "error", closeErr)
		}
	}()

	var intents []domain.Intent
	for rows.Next() {
		var intent domain.Intent
		if err := rows.Scan(&intent.ID, &intent.Tag, &intent.Pattern, &intent.Response); err != nil {
			return nil, fmt.Errorf("scan intent row: %w", err)
		}
		intents = append(intents, intent)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate intents: %w", err)
	}

	return intents, nil
}

// GetIntent retrieves a single intent by id.
func (s *SQLiteStore) GetIntent(ctx context.Context, id int64) (*domain.Intent, error) {
	query := `SELECT id, tag, pattern, response FROM intents WHERE id = ?`

	var intent domain.Intent
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&intent.ID, &intent.Tag, &intent.Pattern, &intent.Response,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan intent row: %w", err)
	}

	return &intent, nil
}

// InsertIntent creates a new intent and fills in its generated id.
func (s *SQLiteStore) InsertIntent(ctx context.Context, intent *domain.Intent) error {
	query := `INSERT INTO intents (tag, pattern, response) VALUES (?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query, intent.Tag, intent.Pattern, intent.Response)
	if err != nil {
		return fmt.Errorf("insert intent: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get inserted intent id: %w", err)
	}
	intent.ID = id

	return nil
}

// UpdateIntent replaces the tag, pattern and response of an existing intent.
func (s *SQLiteStore) UpdateIntent(ctx context.Context, intent *domain.Intent) error {
	query := `UPDATE intents SET tag = ?, pattern = ?, response = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, intent.Tag, intent.Pattern, intent.Response, intent.ID)
	if err != nil {
		return fmt.Errorf("update intent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		slog.Warn("UpdateIntent affected 0 rows", "intent_id", intent.ID)
	}

	return nil
}

// DeleteIntent removes an intent by id.
func (s *SQLiteStore) DeleteIntent(ctx context.Context, id int64) error {
	query := `DELETE FROM intents WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete intent: %w", err)
	}
	return nil
}

// SeedIntents inserts the given intents only if the intents table is empty.
func (s *SQLiteStore) SeedIntents(ctx context.Context, intents []domain.Intent) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM intents`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count intents: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			slog.Warn("failed to roll back seed transaction", "error", rbErr)
		}
	}()

	query := `INSERT INTO intents (tag, pattern, response) VALUES (?, ?, ?)`
	for i := range intents {
		if _, err := tx.ExecContext(ctx, query, intents[i].Tag, intents[i].Pattern, intents[i].Response); err != nil {
			return 0, fmt.Errorf("seed intent %q: %w", intents[i].Tag, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed transaction: %w", err)
	}

	return int64(len(intents)), nil
}

// LogChat appends one chat exchange to the history.
func (s *SQLiteStore) LogChat(ctx context.Context, entry *domain.ChatLogEntry) error {
	query := `INSERT INTO chat_history (user_message, bot_response, timestamp) VALUES (?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		entry.UserMessage, entry.BotResponse, entry.Timestamp.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert chat log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get inserted chat log id: %w", err)
	}
	entry.ID = id

	return nil
}

// RecentChats retrieves up to limit history entries, newest first.
func (s *SQLiteStore) RecentChats(ctx context.Context, limit int) ([]domain.ChatLogEntry, error) {
	query := `SELECT id, user_message, bot_response, timestamp FROM chat_history ORDER BY id DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query chat history: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close chat history rows", "error", closeErr)
		}
	}()

	var entries []domain.ChatLogEntry
	for rows.Next() {
		var entry domain.ChatLogEntry
		var ts string
		if err := rows.Scan(&entry.ID, &entry.UserMessage, &entry.BotResponse, &ts); err != nil {
			return nil, fmt.Errorf("scan chat history row: %w", err)
		}
		entry.Timestamp, err = time.ParseInLocation(timeLayout, ts, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse chat timestamp %q: %w", ts, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat history: %w", err)
	}

	return entries, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
