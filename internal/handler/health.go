package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler reports liveness for load balancers.  Redis is optional, so
// an unreachable Redis degrades the report without failing it.
type HealthHandler struct {
	Redis *redis.Client
}

// Health handles GET /healthz.
func (h *HealthHandler) Health(c echo.Context) error {
	status := echo.Map{"status": "ok"}
	if h.Redis == nil {
		status["redis"] = "disabled"
		return c.JSON(http.StatusOK, status)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second)
	defer cancel()
	if err := h.Redis.Ping(ctx).Err(); err != nil {
		status["status"] = "degraded"
		status["redis"] = "unreachable"
	} else {
		status["redis"] = "ok"
	}
	return c.JSON(http.StatusOK, status)
}
