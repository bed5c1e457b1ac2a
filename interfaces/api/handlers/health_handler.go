package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"task-manager-api/domain/dto"
	"task-manager-api/infrastructure/database"
	"task-manager-api/pkg/logger"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	db      *gorm.DB
	appName string
}

func NewHealthHandler(db *gorm.DB, appName string) *HealthHandler {
	return &HealthHandler{db: db, appName: appName}
}

// Health reports 200 while the store answers a ping, 503 otherwise.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:   "ok",
		Service:  h.appName,
		Database: "up",
	}

	if h.db == nil {
		resp.Database = "disabled"
		return c.JSON(resp)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		logger.WarnContext(ctx, "Health check ping failed", "error", err)
		resp.Status = "degraded"
		resp.Database = "down"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}

	return c.JSON(resp)
}
