package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/api/metrics"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

// SearchHandler exposes the incremental search component and its history.
type SearchHandler struct {
	search  ports.Search
	history ports.History
}

func NewSearchHandler(search ports.Search, history ports.History) *SearchHandler {
	return &SearchHandler{search: search, history: history}
}

type searchResponse struct {
	Query   string                `json:"query"`
	Open    bool                  `json:"open"`
	Results []searchResultPayload `json:"results"`
}

type searchResultPayload struct {
	Product domain.Product `json:"product"`
	Slug    string         `json:"slug"`
	Route   string         `json:"route"`
}

type commitRequest struct {
	Query string `json:"query" validate:"required"`
	// Index selects a result (the click/Enter path). Absent means
	// "view all".
	Index *int `json:"index,omitempty"`
}

type commitResponse struct {
	Query string `json:"query"`
	Slug  string `json:"slug,omitempty"`
	Route string `json:"route"`
}

// Query handles GET /v1/search?q=.
//
// @Summary      Incremental product search
// @Tags         search
// @Produce      json
// @Param        q    query     string  true  "Live query; trimmed length <= 1 yields an empty, closed panel"
// @Success      200  {object}  searchResponse
// @Router       /v1/search [get]
func (h *SearchHandler) Query(c echo.Context) error {
	q := c.QueryParam("q")
	h.search.SetQuery(q)

	results := h.search.Results()
	if h.search.Open() {
		metrics.SearchQueriesTotal.Inc()
	}

	payload := make([]searchResultPayload, len(results))
	for i, r := range results {
		payload[i] = searchResultPayload{
			Product: r.Product,
			Slug:    r.Slug,
			Route:   domain.ProductRoute(r.Slug),
		}
	}

	return c.JSON(http.StatusOK, searchResponse{
		Query:   h.search.Query(),
		Open:    h.search.Open(),
		Results: payload,
	})
}

// Commit handles POST /v1/search/commit: finalizes a search interaction,
// records it in history and returns the navigation route.
//
// @Summary      Commit a search interaction
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        body  body      commitRequest  true  "Query plus optional result index"
// @Success      200   {object}  commitResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/search/commit [post]
func (h *SearchHandler) Commit(c echo.Context) error {
	var req commitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	h.search.SetQuery(req.Query)

	var (
		commit ports.Commit
		ok     bool
	)
	if req.Index != nil {
		commit, ok = h.search.SelectResult(*req.Index)
		if !ok {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "no result at index"})
		}
		metrics.SearchCommitsTotal.WithLabelValues("select").Inc()
	} else {
		commit, ok = h.search.ViewAll()
		if !ok {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "query too short"})
		}
		metrics.SearchCommitsTotal.WithLabelValues("view_all").Inc()
	}

	return c.JSON(http.StatusOK, commitResponse{
		Query: commit.Query,
		Slug:  commit.Slug,
		Route: commit.Route,
	})
}

type historyResponse struct {
	Queries []string `json:"queries"`
}

// History handles GET /v1/search/history?limit=.
//
// @Summary      Recent search queries
// @Tags         search
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries, newest first (default 10)"
// @Success      200    {object}  historyResponse
// @Router       /v1/search/history [get]
func (h *SearchHandler) History(c echo.Context) error {
	limit := domain.HistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := parsePositiveInt(raw); err == nil {
			limit = n
		}
	}
	queries := h.history.Recent(limit)
	return c.JSON(http.StatusOK, historyResponse{Queries: queries})
}

// HistoryRemove handles DELETE /v1/search/history/:query (exact match).
//
// @Summary      Remove one history entry
// @Tags         search
// @Param        query  path  string  true  "Exact query text"
// @Success      204
// @Router       /v1/search/history/{query} [delete]
func (h *SearchHandler) HistoryRemove(c echo.Context) error {
	query, err := url.PathUnescape(c.Param("query"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid query"})
	}
	h.history.Remove(query)
	return c.NoContent(http.StatusNoContent)
}

// HistoryClear handles DELETE /v1/search/history.
//
// @Summary      Clear the search history
// @Tags         search
// @Success      204
// @Router       /v1/search/history [delete]
func (h *SearchHandler) HistoryClear(c echo.Context) error {
	h.history.Clear()
	return c.NoContent(http.StatusNoContent)
}
