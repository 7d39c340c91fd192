package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/primelabel/labelview/internal/gateway"
)

// HealthHandler handles GET /healthz, the liveness probe. Returns 200
// immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /healthz/ready, the readiness probe. Checks
// the upstream label API and, when configured, the Redis session store.
type ReadinessHandler struct {
	upstream *gateway.Client
	redis    *redis.Client
}

func NewReadinessHandler(upstream *gateway.Client, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{
		upstream: upstream,
		redis:    rdb,
	}
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
	ctx, cancel := context.WithTimeout(c.Request().Context(), 4*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- Upstream label API probe ---
	if h.upstream.Healthy(ctx) {
		deps["upstream"] = dependencyStatus{Status: "ok"}
	} else {
		deps["upstream"] = dependencyStatus{Status: "unhealthy", Error: "health probe failed"}
		healthy = false
	}

	// --- Redis ping (only when sessions live there) ---
	if h.redis != nil {
		if _, err := h.redis.Ping(ctx).Result(); err != nil {
			deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["redis"] = dependencyStatus{Status: "ok"}
		}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
