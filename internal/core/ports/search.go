package ports

import "github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"

// Commit is the outcome of finalizing a search interaction (Enter on a
// selection, clicking a result, or "view all"). Navigation to Route is the
// caller's responsibility.
type Commit struct {
	Query string
	Slug  string // empty for a "view all" commit
	Route string
}

// Search is the incremental search component: live query, ranked-by-catalog-
// order results capped at the result limit, and a keyboard-navigable panel.
type Search interface {
	// SetQuery updates the live query and recomputes results synchronously.
	// Trimmed queries of length <= 1 clear the results and close the panel.
	SetQuery(q string)
	Query() string
	Results() []domain.SearchResult
	Open() bool

	// Selection returns the highlighted result index, or -1 when none.
	Selection() int
	MoveDown()
	MoveUp()

	// Enter commits the highlighted result. The second return is false when
	// no selection is active (the panel state is left untouched).
	Enter() (Commit, bool)
	// SelectResult commits the result at index i (a click).
	SelectResult(i int) (Commit, bool)
	// ViewAll commits the raw query towards the full results page.
	ViewAll() (Commit, bool)

	// Escape closes the panel, clears the query and fires the close callback.
	Escape()
	// ClickOutside closes the panel but keeps the query.
	ClickOutside()
	// Clear empties query and results, closes the panel and asks the caller
	// to refocus the input field.
	Clear()
}

// History tracks committed search queries in durable storage. Storage
// failures are absorbed: reads degrade to empty, writes are dropped.
type History interface {
	Add(query string)
	Remove(query string)
	Clear()
	Recent(limit int) []string
	Entries() []domain.HistoryEntry
}
