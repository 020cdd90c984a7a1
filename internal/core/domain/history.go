package domain

// HistoryEntry is one remembered search query.
//
// The persisted collection holds at most HistoryLimit entries, newest first,
// with no two entries case-insensitively equal on Query.
type HistoryEntry struct {
	Query     string `json:"query"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

// HistoryLimit caps the persisted search history.
const HistoryLimit = 10
