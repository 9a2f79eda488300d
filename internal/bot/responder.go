package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/rishabhsssrrr13/ppss/internal/domain"
	"github.com/rishabhsssrrr13/ppss/internal/store"
)

// Responder answers chat messages from the intent store and records every
// exchange in the chat history.
type Responder struct {
	repo    store.Repository
	matcher *Matcher
	now     func() time.Time
}

// NewResponder creates a Responder backed by the given repository.
func NewResponder(repo store.Repository) *Responder {
	return &Responder{
		repo:    repo,
		matcher: NewMatcher(),
		now:     time.Now,
	}
}

// Reply matches message against the current intent set and appends the
// exchange to the chat history. The whole intent set is read on every call;
// there is no index, so cost is linear in the number of intents. A history
// write failure fails the whole exchange rather than being swallowed.
func (r *Responder) Reply(ctx context.Context, message string) (string, error) {
	intents, err := r.repo.ListIntents(ctx)
	if err != nil {
		return "", fmt.Errorf("load intents: %w", err)
	}

	response := r.matcher.Match(message, intents)

	entry := &domain.ChatLogEntry{
		UserMessage: message,
		BotResponse: response,
		Timestamp:   r.now(),
	}
	if err := r.repo.LogChat(ctx, entry); err != nil {
		return "", fmt.Errorf("log chat exchange: %w", err)
	}

	return response, nil
}
