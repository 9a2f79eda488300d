// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/rishabhsssrrr13/ppss/internal/domain"
)

// Repository defines the interface for persisting intents and chat history.
type Repository interface {
	// ListIntents retrieves all intents in store order (ascending id).
	ListIntents(ctx context.Context) ([]domain.Intent, error)

	// GetIntent retrieves a single intent by id. Returns nil if not found.
	GetIntent(ctx context.Context, id int64) (*domain.Intent, error)

	// InsertIntent creates a new intent and fills in its generated id.
	InsertIntent(ctx context.Context, intent *domain.Intent) error

	// UpdateIntent replaces the tag, pattern and response of an existing
	// intent. Updating a missing id is a no-op, mirroring SQL UPDATE.
	UpdateIntent(ctx context.Context, intent *domain.Intent) error

	// DeleteIntent removes an intent by id.
	DeleteIntent(ctx context.Context, id int64) error

	// SeedIntents inserts the given intents only if the store is empty.
	// Returns the number of intents inserted.
	SeedIntents(ctx context.Context, intents []domain.Intent) (int64, error)

	// LogChat appends one chat exchange to the history.
	LogChat(ctx context.Context, entry *domain.ChatLogEntry) error

	// RecentChats retrieves up to limit history entries, newest first.
	RecentChats(ctx context.Context, limit int) ([]domain.ChatLogEntry, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
