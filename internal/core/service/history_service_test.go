package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/infrastructure/kvstore"
)

func newTestHistory(t *testing.T) (*HistoryService, *kvstore.Memory) {
	t.Helper()
	store := kvstore.NewMemory()
	return NewHistory(store, zerolog.Nop()), store
}

func TestHistory_AddAndRecent(t *testing.T) {
	h, _ := newTestHistory(t)

	h.Add("slides")
	h.Add("boots")

	got := h.Recent(10)
	if len(got) != 2 || got[0] != "boots" || got[1] != "slides" {
		t.Fatalf("unexpected recent: %+v", got)
	}
}

func TestHistory_EmptyQueryIgnored(t *testing.T) {
	h, _ := newTestHistory(t)

	h.Add("")
	h.Add("   ")
	if got := h.Recent(10); len(got) != 0 {
		t.Fatalf("blank queries must not be recorded: %+v", got)
	}
}

func TestHistory_DuplicateMovesToFront(t *testing.T) {
	h, _ := newTestHistory(t)
	ts := time.Now().UnixMilli()
	h.now = func() time.Time { return time.UnixMilli(ts) }

	h.Add("slides")
	h.now = func() time.Time { return time.UnixMilli(ts + 5000) }
	h.Add("boots")
	h.Add("SLIDES")

	entries := h.Entries()
	if len(entries) != 2 {
		t.Fatalf("case-insensitive duplicate must collapse to one entry: %+v", entries)
	}
	if entries[0].Query != "SLIDES" {
		t.Fatalf("duplicate should move to front with the new casing: %+v", entries)
	}
	if entries[0].Timestamp != ts+5000 {
		t.Fatalf("duplicate should take a fresh timestamp: %+v", entries[0])
	}
}

func TestHistory_CapEvictsOldest(t *testing.T) {
	h, _ := newTestHistory(t)

	for i := 0; i < domain.HistoryLimit+1; i++ {
		h.Add(fmt.Sprintf("query-%d", i))
	}

	entries := h.Entries()
	if len(entries) != domain.HistoryLimit {
		t.Fatalf("expected %d entries, got %d", domain.HistoryLimit, len(entries))
	}
	if entries[0].Query != "query-10" {
		t.Fatalf("newest first: %+v", entries[0])
	}
	for _, e := range entries {
		if e.Query == "query-0" {
			t.Fatalf("oldest entry should have been evicted")
		}
	}
}

func TestHistory_RemoveIsExactMatch(t *testing.T) {
	h, _ := newTestHistory(t)

	h.Add("Slides")
	h.Remove("slides") // different case: no-op
	if got := h.Recent(10); len(got) != 1 {
		t.Fatalf("case-mismatched remove must not delete: %+v", got)
	}

	h.Remove("Slides")
	if got := h.Recent(10); len(got) != 0 {
		t.Fatalf("exact remove failed: %+v", got)
	}
}

func TestHistory_Clear(t *testing.T) {
	h, store := newTestHistory(t)

	h.Add("slides")
	h.Clear()
	if got := h.Recent(10); len(got) != 0 {
		t.Fatalf("clear failed: %+v", got)
	}
	if store.Len() != 0 {
		t.Fatalf("clear must delete the persisted key")
	}
}

func TestHistory_RecentLimit(t *testing.T) {
	h, _ := newTestHistory(t)
	h.Add("one")
	h.Add("two")
	h.Add("three")

	if got := h.Recent(2); len(got) != 2 || got[0] != "three" {
		t.Fatalf("unexpected limited recent: %+v", got)
	}
}

func TestHistory_UnparsableStoredPayload(t *testing.T) {
	h, store := newTestHistory(t)
	if err := store.Set(context.Background(), "search_history", "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if got := h.Recent(10); len(got) != 0 {
		t.Fatalf("unparsable payload must read as empty: %+v", got)
	}

	// A later add starts fresh rather than failing.
	h.Add("slides")
	if got := h.Recent(10); len(got) != 1 {
		t.Fatalf("add after corrupt payload failed: %+v", got)
	}
}

func TestHistory_WriteFailuresAbsorbed(t *testing.T) {
	h, store := newTestHistory(t)
	store.FailWrites = errors.New("disk full")

	// Must not panic or propagate anywhere.
	h.Add("slides")
	h.Clear()

	if got := h.Recent(10); len(got) != 0 {
		t.Fatalf("failed write should leave history empty: %+v", got)
	}
}

var _ ports.History = (*HistoryService)(nil)
