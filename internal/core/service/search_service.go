package service

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

const defaultResultLimit = 8

// SearchController implements the incremental search component: a live
// query filtered against the catalog snapshot, a result panel, and the
// keyboard navigation state machine (closed, open without selection, open
// with a selected index).
//
// Filtering is plain case-insensitive substring containment on name,
// category or description. Results keep catalog iteration order; there is
// no relevance scoring and no debounce. Every SetQuery recomputes from a
// fresh snapshot.
type SearchController struct {
	catalog ports.Catalog
	history ports.History
	log     zerolog.Logger
	limit   int

	onClose func()
	onFocus func()

	mu        sync.Mutex
	query     string
	results   []domain.SearchResult
	open      bool
	selection int // -1 = no selection
}

// NewSearch builds a SearchController. A non-positive limit falls back to
// the default of 8 results.
func NewSearch(catalog ports.Catalog, history ports.History, limit int, log zerolog.Logger) *SearchController {
	if limit <= 0 {
		limit = defaultResultLimit
	}
	return &SearchController{
		catalog:   catalog,
		history:   history,
		log:       log,
		limit:     limit,
		selection: -1,
	}
}

// OnClose registers the callback fired whenever a commit, Escape or Clear
// closes the panel.
func (s *SearchController) OnClose(fn func()) { s.onClose = fn }

// OnFocus registers the callback fired by Clear to return focus to the
// search input.
func (s *SearchController) OnFocus(fn func()) { s.onFocus = fn }

func (s *SearchController) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = q
	if len(strings.TrimSpace(q)) <= 1 {
		s.results = nil
		s.open = false
		s.selection = -1
		return
	}

	s.results = s.compute(q)
	s.open = true
	s.selection = -1
}

// compute filters the catalog snapshot. Caller holds the lock.
func (s *SearchController) compute(q string) []domain.SearchResult {
	needle := strings.ToLower(strings.TrimSpace(q))
	out := make([]domain.SearchResult, 0, s.limit)
	for _, p := range s.catalog.AllProducts() {
		if !matches(p, needle) {
			continue
		}
		out = append(out, domain.SearchResult{Product: p, Slug: domain.Slugify(p.Name)})
		if len(out) == s.limit {
			break
		}
	}
	return out
}

func matches(p domain.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

func (s *SearchController) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *SearchController) Results() []domain.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SearchResult, len(s.results))
	copy(out, s.results)
	return out
}

func (s *SearchController) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *SearchController) Selection() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// MoveDown advances the selection, wrapping from the last result to the
// first. With no selection it selects index 0.
func (s *SearchController) MoveDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open || len(s.results) == 0 {
		return
	}
	if s.selection < 0 || s.selection == len(s.results)-1 {
		s.selection = 0
		return
	}
	s.selection++
}

// MoveUp is the mirror of MoveDown: from no selection or index 0 it wraps
// to the last result.
func (s *SearchController) MoveUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open || len(s.results) == 0 {
		return
	}
	if s.selection <= 0 {
		s.selection = len(s.results) - 1
		return
	}
	s.selection--
}

// Enter commits the highlighted result. Without an active selection it
// reports false and leaves the panel untouched.
func (s *SearchController) Enter() (ports.Commit, bool) {
	s.mu.Lock()
	if !s.open || s.selection < 0 || s.selection >= len(s.results) {
		s.mu.Unlock()
		return ports.Commit{}, false
	}
	i := s.selection
	s.mu.Unlock()
	return s.SelectResult(i)
}

// SelectResult commits the result at index i, the click path.
func (s *SearchController) SelectResult(i int) (ports.Commit, bool) {
	s.mu.Lock()
	if i < 0 || i >= len(s.results) {
		s.mu.Unlock()
		return ports.Commit{}, false
	}
	r := s.results[i]
	q := s.query
	s.closeAndReset()
	s.mu.Unlock()

	s.history.Add(q)
	s.fireClose()
	return ports.Commit{Query: q, Slug: r.Slug, Route: domain.ProductRoute(r.Slug)}, true
}

// ViewAll commits the raw query towards the full results page.
func (s *SearchController) ViewAll() (ports.Commit, bool) {
	s.mu.Lock()
	q := strings.TrimSpace(s.query)
	if len(q) <= 1 {
		s.mu.Unlock()
		return ports.Commit{}, false
	}
	s.closeAndReset()
	s.mu.Unlock()

	s.history.Add(q)
	s.fireClose()
	return ports.Commit{Query: q, Route: domain.SearchRoute(q)}, true
}

// Escape closes the panel, clears the query and fires the close callback.
func (s *SearchController) Escape() {
	s.mu.Lock()
	s.closeAndReset()
	s.mu.Unlock()
	s.fireClose()
}

// ClickOutside closes the panel without clearing the query. Distinct from
// Escape on purpose.
func (s *SearchController) ClickOutside() {
	s.mu.Lock()
	s.open = false
	s.selection = -1
	s.mu.Unlock()
}

// Clear empties query and results, closes the panel and returns focus to
// the input field.
func (s *SearchController) Clear() {
	s.mu.Lock()
	s.closeAndReset()
	s.mu.Unlock()
	if s.onFocus != nil {
		s.onFocus()
	}
}

// closeAndReset empties the live state. Caller holds the lock.
func (s *SearchController) closeAndReset() {
	s.query = ""
	s.results = nil
	s.open = false
	s.selection = -1
}

func (s *SearchController) fireClose() {
	if s.onClose != nil {
		s.onClose()
	}
}
