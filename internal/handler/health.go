package handler

import (
	"context"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports the state of the database and the cache
type HealthHandler struct {
	store domain.Store
	cache domain.Cache // nil when caching is disabled
}

func NewHealthHandler(store domain.Store, cache domain.Cache) *HealthHandler {
	return &HealthHandler{store: store, cache: cache}
}

// Check godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	resp := dto.HealthResponse{Success: true, Database: "up", Cache: "disabled"}
	status := fiber.StatusOK

	if err := h.store.Ping(ctx); err != nil {
		logger.Get().Error("Database health check failed", zap.Error(err))
		resp.Success = false
		resp.Database = "down"
		status = fiber.StatusServiceUnavailable
	}

	if h.cache != nil {
		resp.Cache = "up"
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Cache health check failed", zap.Error(err))
			resp.Cache = "down"
		}
	}

	return c.Status(status).JSON(resp)
}
