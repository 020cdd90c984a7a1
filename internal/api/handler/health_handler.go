package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

// HealthHandler handles GET /health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready, the readiness probe. It
// checks the durable key-value store before declaring the service ready.
type ReadinessHandler struct {
	store ports.KeyValueStore
}

func NewReadinessHandler(store ports.KeyValueStore) *ReadinessHandler {
	return &ReadinessHandler{store: store}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	deps := map[string]dependencyStatus{}
	code := http.StatusOK
	overall := "ok"

	// A miss on the probe key is a healthy store; only transport or file
	// errors count as down.
	if _, err := h.store.Get(c.Request().Context(), "health_probe"); err != nil && !errors.Is(err, ports.ErrKeyNotFound) {
		deps["kvstore"] = dependencyStatus{Status: "down", Error: err.Error()}
		code = http.StatusServiceUnavailable
		overall = "degraded"
	} else {
		deps["kvstore"] = dependencyStatus{Status: "ok"}
	}

	return c.JSON(code, readinessResponse{Status: overall, Dependencies: deps})
}
