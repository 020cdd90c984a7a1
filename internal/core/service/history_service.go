package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

const historyKey = "search_history"

// HistoryService keeps the committed search queries in the key-value store:
// newest first, capped at domain.HistoryLimit, deduplicated
// case-insensitively on the query text.
//
// History is a convenience feature, so every storage failure is absorbed:
// reads degrade to an empty list, writes are logged and dropped. Unparsable
// stored payloads are treated as absent.
type HistoryService struct {
	store ports.KeyValueStore
	log   zerolog.Logger
	now   func() time.Time

	mu sync.Mutex
}

func NewHistory(store ports.KeyValueStore, log zerolog.Logger) *HistoryService {
	return &HistoryService{store: store, log: log, now: time.Now}
}

// Add records a committed query. Empty or whitespace-only queries are
// ignored. An existing case-insensitive duplicate is moved to the front
// with a fresh timestamp rather than appended.
func (h *HistoryService) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	entries := h.load()
	kept := make([]domain.HistoryEntry, 0, len(entries)+1)
	kept = append(kept, domain.HistoryEntry{
		Query:     query,
		Timestamp: h.now().UnixMilli(),
	})
	for _, e := range entries {
		if strings.EqualFold(e.Query, query) {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > domain.HistoryLimit {
		kept = kept[:domain.HistoryLimit]
	}
	h.save(kept)
}

// Remove deletes the entry whose query matches exactly (case-sensitive).
func (h *HistoryService) Remove(query string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := h.load()
	kept := entries[:0]
	for _, e := range entries {
		if e.Query != query {
			kept = append(kept, e)
		}
	}
	h.save(kept)
}

// Clear deletes the persisted collection entirely.
func (h *HistoryService) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.Remove(context.Background(), historyKey); err != nil {
		h.log.Warn().Err(err).Msg("failed to clear search history")
	}
}

// Recent returns up to limit most-recent queries, newest first.
func (h *HistoryService) Recent(limit int) []string {
	entries := h.Entries()
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Query
	}
	return out
}

// Entries returns the full persisted history, newest first.
func (h *HistoryService) Entries() []domain.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

// load reads and parses the stored history. Any failure yields an empty
// list. Caller holds the lock.
func (h *HistoryService) load() []domain.HistoryEntry {
	raw, err := h.store.Get(context.Background(), historyKey)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			h.log.Warn().Err(err).Msg("failed to read search history")
		}
		return nil
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		h.log.Warn().Err(err).Msg("unparsable search history, starting fresh")
		return nil
	}
	return entries
}

// save persists the entries, dropping the write on failure. Caller holds
// the lock.
func (h *HistoryService) save(entries []domain.HistoryEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		h.log.Warn().Err(err).Msg("failed to encode search history")
		return
	}
	if err := h.store.Set(context.Background(), historyKey, string(raw)); err != nil {
		h.log.Warn().Err(err).Msg("failed to write search history")
	}
}
