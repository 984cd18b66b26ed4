package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/ports"
)

// HealthHandler handles GET /health, the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready. It checks the
// appointment backend and the chat session store.
type HealthDependenciesHandler struct {
	backend   ports.KeepAliveAPI
	chatStore ports.ChatSessionStore
}

func NewHealthDependenciesHandler(backend ports.KeepAliveAPI, chatStore ports.ChatSessionStore) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{backend: backend, chatStore: chatStore}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness pings the backend and the chat session store.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- Backend keep-alive ---
	hb, err := h.backend.Ping(ctx)
	switch {
	case err != nil:
		deps["backend"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	case hb == nil || !hb.Alive():
		deps["backend"] = dependencyStatus{Status: "unhealthy", Error: "unexpected keep-alive response"}
		healthy = false
	default:
		deps["backend"] = dependencyStatus{Status: "ok"}
	}

	// --- Chat session store ---
	if err := h.chatStore.Ping(ctx); err != nil {
		deps["chat_store"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["chat_store"] = dependencyStatus{Status: "ok"}
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
