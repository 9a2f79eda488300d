package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rishabhsssrrr13/ppss/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()

	repo, err := NewSQLite(filepath.Join(t.TempDir(), "chat.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})

	return repo
}

func TestIntentCRUD(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	first := &domain.Intent{Tag: "exam", Pattern: "Exam Dates", Response: "Oct 15"}
	second := &domain.Intent{Tag: "library", Pattern: "Library Info", Response: "8 AM to 8 PM"}

	if err := repo.InsertIntent(ctx, first); err != nil {
		t.Fatalf("InsertIntent failed: %v", err)
	}
	if err := repo.InsertIntent(ctx, second); err != nil {
		t.Fatalf("InsertIntent failed: %v", err)
	}
	if first.ID == 0 || second.ID == 0 {
		t.Fatal("expected generated ids to be filled in")
	}

	intents, err := repo.ListIntents(ctx)
	if err != nil {
		t.Fatalf("ListIntents failed: %v", err)
	}
	if len(intents) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(intents))
	}
	if intents[0].ID >= intents[1].ID {
		t.Errorf("expected ascending id order, got %d then %d", intents[0].ID, intents[1].ID)
	}
	if intents[0].Pattern != "Exam Dates" {
		t.Errorf("unexpected first intent: %+v", intents[0])
	}

	first.Response = "Oct 20"
	if err := repo.UpdateIntent(ctx, first); err != nil {
		t.Fatalf("UpdateIntent failed: %v", err)
	}
	got, err := repo.GetIntent(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetIntent failed: %v", err)
	}
	if got == nil || got.Response != "Oct 20" {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := repo.DeleteIntent(ctx, first.ID); err != nil {
		t.Fatalf("DeleteIntent failed: %v", err)
	}
	got, err = repo.GetIntent(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetIntent failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected deleted intent to be gone, got %+v", got)
	}
}

func TestDuplicatePatternsAreLegal(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	for _, response := range []string{"first", "second"} {
		intent := &domain.Intent{Tag: "dup", Pattern: "Holidays", Response: response}
		if err := repo.InsertIntent(ctx, intent); err != nil {
			t.Fatalf("InsertIntent failed: %v", err)
		}
	}

	intents, err := repo.ListIntents(ctx)
	if err != nil {
		t.Fatalf("ListIntents failed: %v", err)
	}
	if len(intents) != 2 {
		t.Fatalf("expected duplicate patterns to coexist, got %d intents", len(intents))
	}
}

func TestSeedIntentsOnlyWhenEmpty(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	seeded, err := repo.SeedIntents(ctx, DefaultIntents())
	if err != nil {
		t.Fatalf("SeedIntents failed: %v", err)
	}
	if want := int64(len(DefaultIntents())); seeded != want {
		t.Fatalf("seeded %d intents, want %d", seeded, want)
	}

	// A second seed is a no-op.
	seeded, err = repo.SeedIntents(ctx, DefaultIntents())
	if err != nil {
		t.Fatalf("SeedIntents failed: %v", err)
	}
	if seeded != 0 {
		t.Errorf("second seed inserted %d intents, want 0", seeded)
	}

	intents, err := repo.ListIntents(ctx)
	if err != nil {
		t.Fatalf("ListIntents failed: %v", err)
	}
	if len(intents) != len(DefaultIntents()) {
		t.Errorf("expected %d intents after double seed, got %d", len(DefaultIntents()), len(intents))
	}
}

func TestSeedSkippedWhenStoreHasIntents(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	if err := repo.InsertIntent(ctx, &domain.Intent{Tag: "x", Pattern: "X", Response: "y"}); err != nil {
		t.Fatalf("InsertIntent failed: %v", err)
	}

	seeded, err := repo.SeedIntents(ctx, DefaultIntents())
	if err != nil {
		t.Fatalf("SeedIntents failed: %v", err)
	}
	if seeded != 0 {
		t.Errorf("seed on non-empty store inserted %d intents, want 0", seeded)
	}
}

func TestChatLogRoundTrip(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	at := time.Date(2025, 3, 1, 12, 30, 45, 0, time.Local)
	entries := []domain.ChatLogEntry{
		{UserMessage: "exam dates", BotResponse: "Oct 15", Timestamp: at},
		{UserMessage: "hello", BotResponse: "hi", Timestamp: at.Add(time.Minute)},
	}
	for i := range entries {
		if err := repo.LogChat(ctx, &entries[i]); err != nil {
			t.Fatalf("LogChat failed: %v", err)
		}
		if entries[i].ID == 0 {
			t.Fatal("expected generated chat log id")
		}
	}

	got, err := repo.RecentChats(ctx, 10)
	if err != nil {
		t.Fatalf("RecentChats failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 chat entries, got %d", len(got))
	}

	// Newest first.
	if got[0].UserMessage != "hello" || got[1].UserMessage != "exam dates" {
		t.Errorf("unexpected order: %q then %q", got[0].UserMessage, got[1].UserMessage)
	}
	if !got[1].Timestamp.Equal(at) {
		t.Errorf("timestamp round trip: got %v, want %v", got[1].Timestamp, at)
	}

	limited, err := repo.RecentChats(ctx, 1)
	if err != nil {
		t.Fatalf("RecentChats failed: %v", err)
	}
	if len(limited) != 1 || limited[0].UserMessage != "hello" {
		t.Errorf("unexpected limited result: %+v", limited)
	}
}
